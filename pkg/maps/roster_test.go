package maps

import "testing"

func TestFindOffice(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		wantCity string
		wantOK   bool
	}{
		{
			name:     "exact match",
			city:     "Hyderabad, Telangana",
			wantCity: "Hyderabad, Telangana",
			wantOK:   true,
		},
		{
			name:     "case insensitive",
			city:     "hyderabad, telangana",
			wantCity: "Hyderabad, Telangana",
			wantOK:   true,
		},
		{
			name:     "fuzzy partial match",
			city:     "hyderabad",
			wantCity: "Hyderabad, Telangana",
			wantOK:   true,
		},
		{
			name:     "country alias",
			city:     "malaysia",
			wantCity: "Kuala Lumpur, Malaysia",
			wantOK:   true,
		},
		{
			name:     "uae alias",
			city:     "uae",
			wantCity: "Dubai, UAE",
			wantOK:   true,
		},
		{
			name:   "unknown city",
			city:   "atlantis",
			wantOK: false,
		},
		{
			name:   "empty input",
			city:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			office, ok := FindOffice(tt.city)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && office.City != tt.wantCity {
				t.Errorf("city = %q, want %q", office.City, tt.wantCity)
			}
		})
	}
}

func TestCityNames(t *testing.T) {
	names := CityNames()
	if len(names) != len(Offices) {
		t.Fatalf("got %d names, want %d", len(names), len(Offices))
	}
	if names[0] != "US, Redmond, WA" {
		t.Errorf("first city = %q, want %q", names[0], "US, Redmond, WA")
	}
}

func TestCountryAliasesResolve(t *testing.T) {
	// Every alias must point at a real roster office.
	for alias, city := range CountryAliases {
		if _, ok := FindOffice(city); !ok {
			t.Errorf("alias %q points at unknown city %q", alias, city)
		}
	}
}
