package maps

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	gm "googlemaps.github.io/maps"

	"ai-hrchat-be/internal/pkg/logger"
)

type stubGeoClient struct {
	responses []gm.PlacesSearchResponse
	requests  []*gm.NearbySearchRequest
	routes    []gm.Route
}

func (s *stubGeoClient) NearbySearch(_ context.Context, req *gm.NearbySearchRequest) (gm.PlacesSearchResponse, error) {
	s.requests = append(s.requests, req)
	if len(s.responses) == 0 {
		return gm.PlacesSearchResponse{}, nil
	}
	res := s.responses[0]
	s.responses = s.responses[1:]
	return res, nil
}

func (s *stubGeoClient) Directions(_ context.Context, _ *gm.DirectionsRequest) ([]gm.Route, []gm.GeocodedWaypoint, error) {
	return s.routes, nil, nil
}

type mapStateStore struct {
	states map[string]*NearbyState
}

func (m *mapStateStore) Get(sessionID string) (*NearbyState, bool) {
	s, ok := m.states[sessionID]
	return s, ok
}

func (m *mapStateStore) Save(sessionID string, state *NearbyState) {
	m.states[sessionID] = state
}

func testResolver(t *testing.T, geo GeoClient) (*Resolver, *mapStateStore) {
	t.Helper()
	store := &mapStateStore{states: make(map[string]*NearbyState)}
	return &Resolver{
		gmaps:  geo,
		apiKey: "test-key",
		state:  store,
		logger: logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "resolver_test.log")),
	}, store
}

func place(id, name string, lat, lng float64) gm.PlacesSearchResult {
	return gm.PlacesSearchResult{
		PlaceID:  id,
		Name:     name,
		Vicinity: name + " street",
		Geometry: gm.AddressGeometry{Location: gm.LatLng{Lat: lat, Lng: lng}},
	}
}

func nearbyQuery(session, raw string) Query {
	return Query{
		SessionID:  session,
		RawQuery:   raw,
		Intent:     IntentNearby,
		City:       "Hyderabad, Telangana",
		NearbyType: "restaurants",
	}
}

// Repeating a nearby query must not surface places the session has already
// been shown.
func TestResolveNearbyDedupsAcrossCalls(t *testing.T) {
	geo := &stubGeoClient{responses: []gm.PlacesSearchResponse{
		{Results: []gm.PlacesSearchResult{
			place("p1", "Biryani House", 17.44, 78.38),
			place("p2", "Cafe Madhapur", 17.45, 78.39),
		}},
		{Results: []gm.PlacesSearchResult{
			place("p1", "Biryani House", 17.44, 78.38),
			place("p2", "Cafe Madhapur", 17.45, 78.39),
			place("p3", "Dosa Corner", 17.46, 78.37),
		}},
	}}
	r, _ := testResolver(t, geo)

	first, err := r.Resolve(context.Background(), nearbyQuery("s1", "restaurants near the office"))
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if got := len(first.Nearby.Places); got != 2 {
		t.Fatalf("first call places = %d, want 2", got)
	}

	second, err := r.Resolve(context.Background(), nearbyQuery("s1", "restaurants near the office"))
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if got := len(second.Nearby.Places); got != 1 {
		t.Fatalf("second call places = %d, want 1", got)
	}
	if second.Nearby.Places[0].Name != "Dosa Corner" {
		t.Errorf("second call returned %q, want the unseen place", second.Nearby.Places[0].Name)
	}
}

// An empty first page widens the radius once before giving up.
func TestResolveNearbyWidensRadiusOnce(t *testing.T) {
	geo := &stubGeoClient{responses: []gm.PlacesSearchResponse{
		{},
		{Results: []gm.PlacesSearchResult{place("p1", "Far Cafe", 17.47, 78.40)}},
	}}
	r, _ := testResolver(t, geo)

	res, err := r.Resolve(context.Background(), nearbyQuery("s1", "restaurants"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(res.Nearby.Places); got != 1 {
		t.Fatalf("places = %d, want 1", got)
	}

	if len(geo.requests) != 2 {
		t.Fatalf("search calls = %d, want 2", len(geo.requests))
	}
	if geo.requests[0].Radius != nearbyRadiusMeters {
		t.Errorf("first radius = %d, want %d", geo.requests[0].Radius, nearbyRadiusMeters)
	}
	if geo.requests[1].Radius != widenedRadiusMeters {
		t.Errorf("widened radius = %d, want %d", geo.requests[1].Radius, widenedRadiusMeters)
	}
}

// A query containing "more" clears the seen set, so earlier places may
// reappear.
func TestResolveNearbyMoreResetsSeenSet(t *testing.T) {
	geo := &stubGeoClient{responses: []gm.PlacesSearchResponse{
		{Results: []gm.PlacesSearchResult{place("p1", "Biryani House", 17.44, 78.38)}},
	}}
	r, store := testResolver(t, geo)
	store.states["s1"] = &NearbyState{SeenPlaceIDs: []string{"p1"}}

	res, err := r.Resolve(context.Background(), nearbyQuery("s1", "show me more restaurants"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(res.Nearby.Places); got != 1 {
		t.Fatalf("places = %d, want 1 after seen-set reset", got)
	}
}

func TestResolveNearbyExhaustedReturnsNotFound(t *testing.T) {
	geo := &stubGeoClient{responses: []gm.PlacesSearchResponse{
		{Results: []gm.PlacesSearchResult{place("p1", "Biryani House", 17.44, 78.38)}},
		{Results: []gm.PlacesSearchResult{place("p1", "Biryani House", 17.44, 78.38)}},
		{Results: []gm.PlacesSearchResult{place("p1", "Biryani House", 17.44, 78.38)}},
	}}
	r, _ := testResolver(t, geo)

	if _, err := r.Resolve(context.Background(), nearbyQuery("s1", "restaurants")); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// Everything is seen now; the second call widens once, still finds
	// nothing new, and reports no places.
	_, err := r.Resolve(context.Background(), nearbyQuery("s1", "restaurants"))
	if !errors.Is(err, ErrNoPlacesFound) {
		t.Fatalf("err = %v, want ErrNoPlacesFound", err)
	}
}

func TestResolveDirectionsStripsHTML(t *testing.T) {
	geo := &stubGeoClient{routes: []gm.Route{{
		Legs: []*gm.Leg{{
			StartAddress: "Hitec City",
			EndAddress:   "Raheja Mindspace",
			Steps: []*gm.Step{
				{HTMLInstructions: "Head <b>north</b> toward Main St"},
				{HTMLInstructions: "Turn <b>right</b> onto <div>Madhapur Rd</div>"},
			},
		}},
	}}}
	r, _ := testResolver(t, geo)

	res, err := r.Resolve(context.Background(), Query{
		SessionID: "s1",
		Intent:    IntentDirections,
		City:      "Hyderabad, Telangana",
		Origin:    "Hitec City",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := res.Directions.Steps
	if len(steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(steps))
	}
	if steps[0] != "Head north toward Main St" {
		t.Errorf("step[0] = %q, tags not stripped", steps[0])
	}
	if steps[1] != "Turn right onto Madhapur Rd" {
		t.Errorf("step[1] = %q, tags not stripped", steps[1])
	}
}
