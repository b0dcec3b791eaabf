package maps

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ai-hrchat-be/internal/pkg/logger"

	gm "googlemaps.github.io/maps"
)

// Intent is the map-query category produced by the classifier.
type Intent string

const (
	IntentSingleLocation Intent = "single_location"
	IntentMultiLocation  Intent = "multi_location"
	IntentNearby         Intent = "nearby"
	IntentDirections     Intent = "directions"
	IntentDistance       Intent = "distance"
	IntentNonMap         Intent = "non_map"
)

const (
	nearbyRadiusMeters  = 2000
	widenedRadiusMeters = 3000
	maxNearbyResults    = 10
	maxPlausibleKm      = 100
	pageTokenDelay      = 2 * time.Second
)

var htmlTagPattern = regexp.MustCompile(`<[^<]+?>`)

// Query carries the extracted entities of a single map request.
type Query struct {
	SessionID   string
	RawQuery    string
	Intent      Intent
	City        string
	NearbyType  string
	Origin      string
	Destination string
}

// Marker is a coordinate rendered on the frontend map.
type Marker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
}

// AddressResult answers a single-office address query.
type AddressResult struct {
	City         string `json:"city"`
	Address      string `json:"address"`
	MapURL       string `json:"map_url"`
	StaticMapURL string `json:"static_map_url"`
}

// OfficeListing is one office inside a multi-office answer.
type OfficeListing struct {
	City         string `json:"city"`
	Address      string `json:"address"`
	MapURL       string `json:"map_url"`
	StaticMapURL string `json:"static_map_url"`
}

// MultiLocationResult lists every roster office.
type MultiLocationResult struct {
	Offices []OfficeListing `json:"offices"`
	MapURL  string          `json:"map_url"`
}

// Place is one nearby amenity.
type Place struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	MapURL       string  `json:"map_url"`
	StaticMapURL string  `json:"static_map_url"`
	Rating       float32 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
	Type         string  `json:"type"`
	PriceLevel   string  `json:"price_level"`
}

// NearbyResult answers an amenity search around an office.
type NearbyResult struct {
	Places       []Place  `json:"places"`
	Coordinates  []Marker `json:"coordinates"`
	MapURL       string   `json:"map_url"`
	StaticMapURL string   `json:"static_map_url"`
}

// DirectionsResult answers a step-by-step navigation query.
type DirectionsResult struct {
	Steps        []string `json:"steps"`
	MapURL       string   `json:"map_url"`
	StaticMapURL string   `json:"static_map_url"`
}

// DistanceResult answers a travel distance/time query.
type DistanceResult struct {
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	Distance     string   `json:"distance"`
	Duration     string   `json:"duration"`
	MapURL       string   `json:"map_url"`
	StaticMapURL string   `json:"static_map_url"`
	Coordinates  []Marker `json:"coordinates"`
}

// Result is the typed outcome of a resolved map query. Exactly one of the
// payload fields matching Type is set.
type Result struct {
	Type       string               `json:"type"`
	Address    *AddressResult       `json:"address,omitempty"`
	Offices    *MultiLocationResult `json:"offices,omitempty"`
	Nearby     *NearbyResult        `json:"nearby,omitempty"`
	Directions *DirectionsResult    `json:"directions,omitempty"`
	Distance   *DistanceResult      `json:"distance,omitempty"`
}

// NearbyState tracks which places a session has already been shown, so a
// follow-up "more" query pages past them.
type NearbyState struct {
	SeenPlaceIDs  []string
	NextPageToken string
}

// NearbyStateStore persists per-session nearby pagination state.
type NearbyStateStore interface {
	Get(sessionID string) (*NearbyState, bool)
	Save(sessionID string, state *NearbyState)
}

// GeoClient is the subset of the Google Maps SDK the resolver calls.
type GeoClient interface {
	NearbySearch(ctx context.Context, req *gm.NearbySearchRequest) (gm.PlacesSearchResponse, error)
	Directions(ctx context.Context, req *gm.DirectionsRequest) ([]gm.Route, []gm.GeocodedWaypoint, error)
}

// Resolver turns a classified map query into a typed result using the fixed
// office roster and the Google Maps Platform.
type Resolver struct {
	gmaps  GeoClient
	places *Client
	apiKey string
	state  NearbyStateStore
	logger logger.ILogger
}

func NewResolver(apiKey string, state NearbyStateStore, log logger.ILogger) (*Resolver, error) {
	gmapsClient, err := gm.NewClient(gm.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create google maps client: %w", err)
	}
	return &Resolver{
		gmaps:  gmapsClient,
		places: NewClient(apiKey),
		apiKey: apiKey,
		state:  state,
		logger: log,
	}, nil
}

// Resolve dispatches on the query intent. An unknown intent is an error.
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Result, error) {
	var office *Office
	if q.City != "" {
		found, ok := FindOffice(q.City)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrCityNotFound, q.City)
		}
		office = found
	}

	switch q.Intent {
	case IntentSingleLocation:
		return r.resolveSingleLocation(office)
	case IntentMultiLocation:
		return r.resolveMultiLocation()
	case IntentNearby:
		return r.resolveNearby(ctx, q, office)
	case IntentDirections:
		return r.resolveDirections(ctx, q, office)
	case IntentDistance:
		return r.resolveDistance(ctx, q, office)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidIntent, q.Intent)
	}
}

func (r *Resolver) resolveSingleLocation(office *Office) (*Result, error) {
	if office == nil {
		return nil, ErrCityRequired
	}
	return &Result{
		Type: "address",
		Address: &AddressResult{
			City:         office.City,
			Address:      office.Address,
			MapURL:       SearchURL(office.Address),
			StaticMapURL: StaticOfficeMapURL(office.Lat, office.Lng, r.apiKey),
		},
	}, nil
}

func (r *Resolver) resolveMultiLocation() (*Result, error) {
	listings := make([]OfficeListing, 0, len(Offices))
	for _, office := range Offices {
		listings = append(listings, OfficeListing{
			City:         office.City,
			Address:      office.Address,
			MapURL:       SearchURL(office.Address),
			StaticMapURL: StaticOfficeMapURL(office.Lat, office.Lng, r.apiKey),
		})
	}
	return &Result{
		Type: "multi_location",
		Offices: &MultiLocationResult{
			Offices: listings,
			MapURL:  AllOfficesURL,
		},
	}, nil
}

func (r *Resolver) resolveNearby(ctx context.Context, q Query, office *Office) (*Result, error) {
	if office == nil {
		return nil, ErrCityRequired
	}

	keyword := q.NearbyType
	if keyword == "" {
		keyword = "nearby amenities"
	}

	state, ok := r.state.Get(q.SessionID)
	if !ok {
		state = &NearbyState{}
	}

	// A "more" query drops the seen set so pagination can surface fresh
	// places instead of being starved by earlier results.
	wantMore := strings.Contains(strings.ToLower(q.RawQuery), "more")
	if wantMore {
		state.SeenPlaceIDs = nil
	}

	seen := make(map[string]bool, len(state.SeenPlaceIDs))
	for _, id := range state.SeenPlaceIDs {
		seen[id] = true
	}

	coordinates := []Marker{{
		Lat:   office.Lat,
		Lng:   office.Lng,
		Label: office.Address,
		Color: "purple",
	}}
	markers := []string{fmt.Sprintf("color:purple|label:Q|%f,%f", office.Lat, office.Lng)}

	res, err := r.gmaps.NearbySearch(ctx, &gm.NearbySearchRequest{
		Location: &gm.LatLng{Lat: office.Lat, Lng: office.Lng},
		Radius:   nearbyRadiusMeters,
		Keyword:  keyword,
	})
	if err != nil {
		return nil, fmt.Errorf("places nearby search failed: %w", err)
	}
	r.logger.Info("MapsResolver", "Nearby search completed", map[string]interface{}{
		"keyword": keyword,
		"city":    office.City,
		"results": len(res.Results),
	})

	var places []Place
	places, coordinates, markers = r.collectPlaces(res.Results, seen, places, coordinates, markers, maxNearbyResults)

	// Follow the page token when the session asked for more and the first
	// page could not fill the list.
	if wantMore && len(places) < maxNearbyResults && res.NextPageToken != "" {
		time.Sleep(pageTokenDelay)
		moreRes, err := r.gmaps.NearbySearch(ctx, &gm.NearbySearchRequest{
			Location:  &gm.LatLng{Lat: office.Lat, Lng: office.Lng},
			Radius:    nearbyRadiusMeters,
			Keyword:   keyword,
			PageToken: res.NextPageToken,
		})
		if err != nil {
			r.logger.Warn("MapsResolver", "Page token fetch failed", map[string]interface{}{"error": err.Error()})
		} else {
			places, coordinates, markers = r.collectPlaces(moreRes.Results, seen, places, coordinates, markers, maxNearbyResults)
		}
	}

	// Nothing new within 2km: widen once to 3km before giving up.
	if len(places) == 0 {
		r.logger.Warn("MapsResolver", "No places within initial radius, widening", map[string]interface{}{
			"keyword": keyword,
			"radius":  widenedRadiusMeters,
		})
		widerRes, err := r.gmaps.NearbySearch(ctx, &gm.NearbySearchRequest{
			Location: &gm.LatLng{Lat: office.Lat, Lng: office.Lng},
			Radius:   widenedRadiusMeters,
			Keyword:  keyword,
		})
		if err != nil {
			return nil, fmt.Errorf("places nearby search failed: %w", err)
		}
		places, coordinates, markers = r.collectPlaces(widerRes.Results, seen, places, coordinates, markers, maxNearbyResults)
	}

	state.SeenPlaceIDs = state.SeenPlaceIDs[:0]
	for id := range seen {
		state.SeenPlaceIDs = append(state.SeenPlaceIDs, id)
	}
	state.NextPageToken = res.NextPageToken
	r.state.Save(q.SessionID, state)

	if len(places) == 0 {
		return nil, fmt.Errorf("%w: no %s near %s", ErrNoPlacesFound, keyword, office.City)
	}

	// Center the combined map on the mean of all plotted coordinates.
	var sumLat, sumLng float64
	for _, coord := range coordinates {
		sumLat += coord.Lat
		sumLng += coord.Lng
	}
	centerLat := sumLat / float64(len(coordinates))
	centerLng := sumLng / float64(len(coordinates))

	return &Result{
		Type: "nearby",
		Nearby: &NearbyResult{
			Places:       places,
			Coordinates:  coordinates,
			MapURL:       SearchURLForCoords(centerLat, centerLng),
			StaticMapURL: StaticAreaMapURL(centerLat, centerLng, markers, r.apiKey),
		},
	}, nil
}

// collectPlaces appends unseen results until the list reaches limit,
// mutating the seen set as it goes.
func (r *Resolver) collectPlaces(
	results []gm.PlacesSearchResult,
	seen map[string]bool,
	places []Place,
	coordinates []Marker,
	markers []string,
	limit int,
) ([]Place, []Marker, []string) {
	for _, result := range results {
		if len(places) >= limit {
			break
		}
		if seen[result.PlaceID] {
			continue
		}

		lat := result.Geometry.Location.Lat
		lng := result.Geometry.Location.Lng
		address := result.Vicinity
		if address == "" {
			address = result.Name
		}

		places = append(places, Place{
			Name:         result.Name,
			Address:      placeAddressOrNA(result.Vicinity),
			MapURL:       SearchURL(address),
			StaticMapURL: StaticPlaceMapURL(lat, lng, r.apiKey),
			Rating:       result.Rating,
			TotalReviews: result.UserRatingsTotal,
			Type:         displayPlaceType(result.Types),
			PriceLevel:   displayPriceLevel(result.PriceLevel),
		})
		coordinates = append(coordinates, Marker{Lat: lat, Lng: lng, Label: address})
		markers = append(markers, fmt.Sprintf("color:red|%f,%f", lat, lng))
		seen[result.PlaceID] = true
	}
	return places, coordinates, markers
}

func (r *Resolver) resolveDirections(ctx context.Context, q Query, office *Office) (*Result, error) {
	if office == nil {
		return nil, ErrCityRequired
	}
	if q.Origin == "" {
		return nil, ErrOriginRequired
	}

	routes, _, err := r.gmaps.Directions(ctx, &gm.DirectionsRequest{
		Origin:      q.Origin,
		Destination: office.Address,
		Mode:        gm.TravelModeDriving,
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrRouteNotFound
	}

	leg := routes[0].Legs[0]
	steps := make([]string, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		steps = append(steps, htmlTagPattern.ReplaceAllString(step.HTMLInstructions, ""))
	}

	return &Result{
		Type: "directions",
		Directions: &DirectionsResult{
			Steps:        steps,
			MapURL:       DirectionsURL(leg.StartAddress, leg.EndAddress),
			StaticMapURL: StaticRouteMapURL(routes[0].OverviewPolyline.Points, office.Lat, office.Lng, r.apiKey),
		},
	}, nil
}

func (r *Resolver) resolveDistance(ctx context.Context, q Query, office *Office) (*Result, error) {
	if office == nil {
		return nil, ErrCityRequired
	}
	if q.Destination == "" {
		return nil, ErrDestinationRequired
	}

	place, err := r.places.SearchText(ctx, fmt.Sprintf("%s near %s", q.Destination, office.City), office.Lat, office.Lng)
	if err != nil {
		return nil, fmt.Errorf("places text search failed: %w", err)
	}
	if place == nil {
		return nil, fmt.Errorf("%w: %s near %s", ErrDestinationNotFound, q.Destination, office.City)
	}

	// Guard against same-name places in another region.
	if place.Lat != 0 || place.Lng != 0 {
		if km := Haversine(office.Lat, office.Lng, place.Lat, place.Lng); km > maxPlausibleKm {
			r.logger.Warn("MapsResolver", "Resolved destination too far away", map[string]interface{}{
				"destination": place.Address,
				"distance_km": km,
			})
			return nil, fmt.Errorf("%w: %s at %s", ErrDestinationTooFar, place.Name, place.Address)
		}
	}

	route, err := r.places.ComputeRoute(ctx, office.Address, place.PlaceID, place.Name)
	if err != nil {
		return nil, err
	}

	return &Result{
		Type: "distance",
		Distance: &DistanceResult{
			Origin:       office.Address,
			Destination:  place.Name,
			Distance:     FormatDistance(route.DistanceMeters),
			Duration:     FormatDuration(route.Duration),
			MapURL:       DirectionsURL(office.Address, place.Address),
			StaticMapURL: StaticDistanceMapURL(office.Lat, office.Lng, r.apiKey),
			Coordinates: []Marker{
				{Lat: office.Lat, Lng: office.Lng, Label: "Origin", Color: "purple"},
				{Lat: place.Lat, Lng: place.Lng, Label: place.Name, Color: "red"},
			},
		},
	}, nil
}

func displayPriceLevel(level int) string {
	if level <= 0 {
		return "N/A"
	}
	return strings.Repeat("$", level)
}

func displayPlaceType(types []string) string {
	if len(types) == 0 {
		return "N/A"
	}
	words := strings.Split(strings.ReplaceAll(types[0], "_", " "), " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func placeAddressOrNA(vicinity string) string {
	if vicinity == "" {
		return "N/A"
	}
	return vicinity
}
