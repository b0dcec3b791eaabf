package agent

import "testing"

func TestLocalCorrect(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "city typo snapped to roster spelling",
			query: "what is the address in hyderbad",
			want:  "what is the address in hyderabad",
		},
		{
			name:  "common term typo",
			query: "any resturants near the office",
			want:  "any restaurants near the office",
		},
		{
			name:  "clean query only lowercased",
			query: "Where are all the offices",
			want:  "where are all the offices",
		},
		{
			name:  "already canonical left untouched",
			query: "restaurants near bengaluru",
			want:  "restaurants near bengaluru",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalCorrect(tt.query); got != tt.want {
				t.Errorf("LocalCorrect(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestLocalCorrectIsPure(t *testing.T) {
	query := "nearbi pgs in warangal"
	first := LocalCorrect(query)
	second := LocalCorrect(query)
	if first != second {
		t.Errorf("LocalCorrect not deterministic: %q vs %q", first, second)
	}
}

func TestFuzzyReplace(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		canonical string
		want      string
	}{
		{
			name:      "close miss replaced",
			query:     "offices in singapre please",
			canonical: "singapore",
			want:      "offices in singapore please",
		},
		{
			name:      "distant word untouched",
			query:     "tell me about the weather",
			canonical: "singapore",
			want:      "tell me about the weather",
		},
		{
			name:      "canonical longer than query",
			query:     "hi",
			canonical: "kuala lumpur",
			want:      "hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fuzzyReplace(tt.query, tt.canonical); got != tt.want {
				t.Errorf("fuzzyReplace(%q, %q) = %q, want %q", tt.query, tt.canonical, got, tt.want)
			}
		})
	}
}
