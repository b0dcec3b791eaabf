package maps

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Office is a fixed company office with its verified coordinates.
type Office struct {
	City    string
	Address string
	Lat     float64
	Lng     float64
}

// cityMatchCutoff is the minimum partial-ratio score for a fuzzy city hit.
const cityMatchCutoff = 80

// Offices is the authoritative roster of Quadrant Technologies offices.
var Offices = []Office{
	{City: "US, Redmond, WA", Address: "5020, 148th Ave NE Ste 250, Redmond, WA, 98052", Lat: 47.6456, Lng: -122.1419},
	{City: "Iselin, NJ", Address: "33 S Wood Ave, Suite 600, Iselin, New Jersey, 08830", Lat: 40.5754, Lng: -74.3282},
	{City: "Dallas, TX", Address: "3333 Lee Pkwy #600, Dallas, Texas, 75219", Lat: 32.8085, Lng: -96.8035},
	{City: "Hyderabad, Telangana", Address: "4th floor, Building No.21, Raheja Mindspace, Sy No. 64 (Part), Madhapur, Hyderabad, Telangana, 500081", Lat: 17.4416, Lng: 78.3804},
	{City: "Bengaluru, Karnataka", Address: "Office No. 106, #1, Navarathna garden, Doddakallasandra Kanakpura Road, Bengaluru, Karnataka, 560062", Lat: 12.8797, Lng: 77.5407},
	{City: "Warangal, Telangana", Address: "IT - SEZ, Madikonda, Warangal, Telangana, 506009", Lat: 17.9475, Lng: 79.5781},
	{City: "Noida, Uttar Pradesh", Address: "Worcoz, A-24, 1st Floor, Sector 63, Noida, Uttar Pradesh, 201301", Lat: 28.6270, Lng: 77.3727},
	{City: "Guadalajara, Mexico", Address: "Amado Nervo 785, Guadalajara, Jalisco, 44656", Lat: 20.6720, Lng: -103.3668},
	{City: "Surrey, Canada", Address: "7404 King George Blvd, Suite 200, Surrey, British Columbia, V3W 1N6", Lat: 49.1372, Lng: -122.8457},
	{City: "Dubai, UAE", Address: "The Meydan Hotel, Grandstand, 6th floor, Meydan Road, Dubai, Nad Al Sheba", Lat: 25.1560, Lng: 55.2964},
	{City: "Lane Cove, Australia", Address: "24 Birdwood Lane, Lane Cove, New South Wales", Lat: -33.8144, Lng: 151.1693},
	{City: "Kuala Lumpur, Malaysia", Address: "19A-24-3, Level 24, Wisma UOA No. 19, Jalan Pinang, Business Suite Unit, Kuala Lumpur, Wilayah Persekutuan, 50450", Lat: 3.1517, Lng: 101.7129},
	{City: "Singapore", Address: "#02-01, 68 Circular Road, Singapore, 049422", Lat: 1.2864, Lng: 103.8491},
	{City: "Chiswick, UK", Address: "Gold Building 3 Chiswick Business Park, Chiswick, London, W4 5YA", Lat: 51.4937, Lng: -0.2786},
}

// CountryAliases maps a bare country mention to its office city.
var CountryAliases = map[string]string{
	"malaysia":  "Kuala Lumpur, Malaysia",
	"australia": "Lane Cove, Australia",
	"uk":        "Chiswick, UK",
	"mexico":    "Guadalajara, Mexico",
	"canada":    "Surrey, Canada",
	"uae":       "Dubai, UAE",
}

// CityNames returns the roster city labels in roster order.
func CityNames() []string {
	names := make([]string, 0, len(Offices))
	for _, office := range Offices {
		names = append(names, office.City)
	}
	return names
}

// FindOffice resolves a city mention against the roster. Country aliases and
// exact (case-insensitive) matches win; otherwise the first roster entry with
// a partial-ratio score of at least 80 is returned.
func FindOffice(city string) (*Office, bool) {
	query := strings.ToLower(strings.TrimSpace(city))
	if query == "" {
		return nil, false
	}

	if aliased, ok := CountryAliases[query]; ok {
		query = strings.ToLower(aliased)
	}

	for i := range Offices {
		if strings.ToLower(Offices[i].City) == query {
			return &Offices[i], true
		}
	}

	for i := range Offices {
		if fuzzy.PartialRatio(query, strings.ToLower(Offices[i].City)) >= cityMatchCutoff {
			return &Offices[i], true
		}
	}

	return nil, false
}
