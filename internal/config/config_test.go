package config

import "testing"

func TestValidateRequiresCredentials(t *testing.T) {
	tests := []struct {
		name       string
		openai     string
		googleMaps string
		wantErr    string
	}{
		{
			name:    "missing openai key",
			wantErr: "OPENAI_API_KEY is required",
		},
		{
			name:    "missing google maps key",
			openai:  "sk-test",
			wantErr: "GOOGLE_MAPS_API_KEY is required",
		},
		{
			name:       "all credentials present",
			openai:     "sk-test",
			googleMaps: "maps-test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Keys: APIKeys{OpenAI: tt.openai, GoogleMaps: tt.googleMaps}}
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
