package maps

import (
	"fmt"
	"net/url"
	"strings"
)

// Link builders for the Google Maps web and Static Maps APIs. The static
// image URLs embed the API key because the frontend loads them directly.

func SearchURL(query string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

func SearchURLForCoords(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f&zoom=13", lat, lng)
}

func DirectionsURL(origin, destination string) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s&travelmode=driving",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
	)
}

// StaticOfficeMapURL renders a 600x300 preview with a purple Q marker on
// the office.
func StaticOfficeMapURL(lat, lng float64, apiKey string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/staticmap?center=%f,%f&zoom=15&size=600x300&markers=color:purple|label:Q|%f,%f&key=%s",
		lat, lng, lat, lng, apiKey,
	)
}

// StaticPlaceMapURL renders a small 150x112 thumbnail with a red marker.
func StaticPlaceMapURL(lat, lng float64, apiKey string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/staticmap?center=%f,%f&zoom=15&size=150x112&markers=color:red|%f,%f&key=%s",
		lat, lng, lat, lng, apiKey,
	)
}

// StaticAreaMapURL renders a zoomed-out map with the given marker specs
// (already formatted as "color:red|lat,lng" strings).
func StaticAreaMapURL(centerLat, centerLng float64, markers []string, apiKey string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/staticmap?center=%f,%f&zoom=13&size=600x300&markers=%s&key=%s",
		centerLat, centerLng, strings.Join(markers, "|"), apiKey,
	)
}

// StaticRouteMapURL renders a thumbnail of the route polyline with a purple
// Q marker on the office endpoint.
func StaticRouteMapURL(encodedPolyline string, lat, lng float64, apiKey string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/staticmap?size=150x112&path=enc:%s&markers=label:Q|color:purple|%f,%f&key=%s",
		url.QueryEscape(encodedPolyline), lat, lng, apiKey,
	)
}

// StaticDistanceMapURL renders a thumbnail centered on the origin office.
func StaticDistanceMapURL(lat, lng float64, apiKey string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/staticmap?center=%f,%f&zoom=13&size=150x112&markers=label:Q|color:purple|%f,%f&key=%s",
		lat, lng, lat, lng, apiKey,
	)
}

// AllOfficesURL is the search link used for the multi-office listing.
const AllOfficesURL = "https://www.google.com/maps/search/?api=1&query=Quadrant%20Technologies"
