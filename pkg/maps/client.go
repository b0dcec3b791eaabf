package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client wraps the Google Maps Platform endpoints that have no coverage in
// the official Go client (Places API New and Routes API).
type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ResolvedPlace is a destination resolved through the Places text search.
type ResolvedPlace struct {
	PlaceID string
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

type placesSearchRequest struct {
	TextQuery    string `json:"textQuery"`
	LocationBias struct {
		Circle struct {
			Center struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"center"`
			Radius float64 `json:"radius"`
		} `json:"circle"`
	} `json:"locationBias"`
}

type placesSearchResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string `json:"formattedAddress"`
		Location         struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
	} `json:"places"`
}

// SearchText resolves a free-text destination biased to a 50km circle around
// the given coordinates. Returns nil when nothing matches.
func (c *Client) SearchText(ctx context.Context, query string, biasLat, biasLng float64) (*ResolvedPlace, error) {
	payload := placesSearchRequest{TextQuery: query}
	payload.LocationBias.Circle.Center.Latitude = biasLat
	payload.LocationBias.Circle.Center.Longitude = biasLng
	payload.LocationBias.Circle.Radius = 50000

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		"https://places.googleapis.com/v1/places:searchText",
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "places.id,places.displayName,places.formattedAddress,places.location")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"places api status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var placesRes placesSearchResponse
	if err := json.Unmarshal(resBody, &placesRes); err != nil {
		return nil, err
	}

	if len(placesRes.Places) == 0 {
		return nil, nil
	}

	place := placesRes.Places[0]
	name := place.DisplayName.Text
	if name == "" {
		name = query
	}
	address := place.FormattedAddress
	if address == "" {
		address = name
	}

	return &ResolvedPlace{
		PlaceID: place.ID,
		Name:    name,
		Address: address,
		Lat:     place.Location.Latitude,
		Lng:     place.Location.Longitude,
	}, nil
}

// Route is the distance/duration summary from the Routes API.
type Route struct {
	DistanceMeters int
	Duration       time.Duration
}

type routesRequest struct {
	Origin                 routeWaypoint `json:"origin"`
	Destination            routeWaypoint `json:"destination"`
	TravelMode             string        `json:"travelMode"`
	ComputeAlternateRoutes bool          `json:"computeAlternativeRoutes"`
	Units                  string        `json:"units"`
}

type routeWaypoint struct {
	Address string `json:"address,omitempty"`
	PlaceID string `json:"placeId,omitempty"`
}

type routesResponse struct {
	Routes []struct {
		DistanceMeters int    `json:"distanceMeters"`
		Duration       string `json:"duration"`
	} `json:"routes"`
}

// ComputeRoute returns the driving distance and duration from an origin
// address to a destination, preferring the place ID when available.
func (c *Client) ComputeRoute(ctx context.Context, originAddr, destPlaceID, destAddr string) (*Route, error) {
	payload := routesRequest{
		Origin:     routeWaypoint{Address: originAddr},
		TravelMode: "DRIVE",
		Units:      "METRIC",
	}
	if destPlaceID != "" {
		payload.Destination = routeWaypoint{PlaceID: destPlaceID}
	} else {
		payload.Destination = routeWaypoint{Address: destAddr}
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		"https://routes.googleapis.com/directions/v2:computeRoutes",
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "routes.distanceMeters,routes.duration")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"routes api status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var routesRes routesResponse
	if err := json.Unmarshal(resBody, &routesRes); err != nil {
		return nil, err
	}

	if len(routesRes.Routes) == 0 {
		return nil, ErrRouteNotFound
	}

	route := routesRes.Routes[0]
	duration, err := parseRouteDuration(route.Duration)
	if err != nil {
		return nil, fmt.Errorf("failed to parse route duration %q: %w", route.Duration, err)
	}

	return &Route{
		DistanceMeters: route.DistanceMeters,
		Duration:       duration,
	}, nil
}

// parseRouteDuration parses the Routes API duration format ("1234s").
func parseRouteDuration(raw string) (time.Duration, error) {
	seconds, err := strconv.Atoi(strings.TrimSuffix(raw, "s"))
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

// Haversine returns the great-circle distance in kilometers.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	lat1r, lng1r := toRad(lat1), toRad(lng1)
	lat2r, lng2r := toRad(lat2), toRad(lng2)

	dlat := lat2r - lat1r
	dlng := lng2r - lng1r

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance renders meters as kilometers with one decimal ("12.3 km").
func FormatDistance(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

// FormatDuration renders a trip duration as "N mins" or "N hr M mins".
func FormatDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 3600 {
		return fmt.Sprintf("%d mins", seconds/60)
	}
	return fmt.Sprintf("%d hr %d mins", seconds/3600, (seconds%3600)/60)
}
