package agent

import (
	"encoding/json"
	"testing"

	"ai-hrchat-be/pkg/maps"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain json",
			raw:  `{"is_map": true}`,
			want: `{"is_map": true}`,
		},
		{
			name: "json fence",
			raw:  "```json\n{\"is_map\": true}\n```",
			want: `{"is_map": true}`,
		},
		{
			name: "bare fence with whitespace",
			raw:  "  ```\n{\"is_map\": false}\n```  ",
			want: `{"is_map": false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.raw); got != tt.want {
				t.Errorf("cleanJSONResponse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIntentDataUnmarshal(t *testing.T) {
	raw := `{"is_map": true, "intent": "distance", "city": "Hyderabad, Telangana", "nearby_type": null, "origin": null, "destination": "airport"}`

	var data IntentData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !data.IsMap {
		t.Error("IsMap = false, want true")
	}
	if data.Intent != "distance" {
		t.Errorf("Intent = %q, want %q", data.Intent, "distance")
	}
	if data.City == nil || *data.City != "Hyderabad, Telangana" {
		t.Errorf("City = %v, want Hyderabad, Telangana", data.City)
	}
	if data.NearbyType != nil {
		t.Errorf("NearbyType = %v, want nil", data.NearbyType)
	}
	if data.Destination == nil || *data.Destination != "airport" {
		t.Errorf("Destination = %v, want airport", data.Destination)
	}
}

func TestIntentDataMapQuery(t *testing.T) {
	city := "Hyderabad, Telangana"
	dest := "  airport  "
	data := IntentData{
		IsMap:       true,
		Intent:      "distance",
		City:        &city,
		Destination: &dest,
	}

	q := data.MapQuery("session-1", "how far is the airport")

	if q.Intent != maps.IntentDistance {
		t.Errorf("Intent = %q, want %q", q.Intent, maps.IntentDistance)
	}
	if q.City != "hyderabad, telangana" {
		t.Errorf("City = %q, want lowercased roster city", q.City)
	}
	if q.Destination != "airport" {
		t.Errorf("Destination = %q, want trimmed value", q.Destination)
	}
	if q.Origin != "" {
		t.Errorf("Origin = %q, want empty for nil pointer", q.Origin)
	}
}

func TestNonMapIntent(t *testing.T) {
	data := NonMapIntent()
	if data.IsMap {
		t.Error("default intent must not be map-routed")
	}
	if data.Intent != string(maps.IntentNonMap) {
		t.Errorf("Intent = %q, want %q", data.Intent, maps.IntentNonMap)
	}
}
