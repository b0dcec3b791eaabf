package maps

import (
	"math"
	"testing"
	"time"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 17.4416, lng1: 78.3804,
			lat2: 17.4416, lng2: 78.3804,
			wantKm: 0, tolerance: 0.001,
		},
		{
			name: "hyderabad office to warangal office",
			lat1: 17.4416, lng1: 78.3804,
			lat2: 17.9475, lng2: 79.5781,
			wantKm: 140, tolerance: 10,
		},
		{
			name: "redmond to dallas",
			lat1: 47.6456, lng1: -122.1419,
			lat2: 32.8085, lng2: -96.8035,
			wantKm: 2700, tolerance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("Haversine = %.1f km, want %.1f ± %.1f", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{12345, "12.3 km"},
		{1000, "1.0 km"},
		{999, "1.0 km"},
		{150, "0.2 km"},
	}
	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%d) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25 mins"},
		{59*time.Minute + 59*time.Second, "59 mins"},
		{time.Hour, "1 hr 0 mins"},
		{90 * time.Minute, "1 hr 30 mins"},
		{2*time.Hour + 5*time.Minute, "2 hr 5 mins"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseRouteDuration(t *testing.T) {
	d, err := parseRouteDuration("1234s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 1234*time.Second {
		t.Errorf("duration = %v, want %v", d, 1234*time.Second)
	}

	if _, err := parseRouteDuration("abc"); err == nil {
		t.Error("expected error for malformed duration")
	}
}

// Destinations are rejected when they resolve implausibly far from the
// origin office (same-name place in another region).
func TestDestinationPlausibilityThreshold(t *testing.T) {
	hyd := Offices[3] // Hyderabad

	// Warangal office is ~140 km out: a "nearby" destination resolving
	// there is a mis-geocode.
	far := Haversine(hyd.Lat, hyd.Lng, 17.9475, 79.5781)
	if far <= maxPlausibleKm {
		t.Errorf("distance %.1f km should exceed the %d km threshold", far, maxPlausibleKm)
	}

	// A point ~30 km north of the office is a legitimate destination.
	near := Haversine(hyd.Lat, hyd.Lng, hyd.Lat+0.27, hyd.Lng)
	if near > maxPlausibleKm {
		t.Errorf("distance %.1f km should be within the %d km threshold", near, maxPlausibleKm)
	}
}
