package maps

import "errors"

var (
	// ErrCityNotFound means the mentioned city matched no roster office.
	ErrCityNotFound = errors.New("quadrant office not found for city")

	// ErrCityRequired means the intent needs a city but none was extracted.
	ErrCityRequired = errors.New("please specify a valid city")

	// ErrOriginRequired means a directions query arrived without a start point.
	ErrOriginRequired = errors.New("please specify an origin for directions")

	// ErrDestinationRequired means a distance query arrived without an endpoint.
	ErrDestinationRequired = errors.New("please specify a destination")

	// ErrNoPlacesFound means the nearby search returned nothing, even after
	// widening the radius.
	ErrNoPlacesFound = errors.New("no places found near the office")

	// ErrDestinationNotFound means the free-text destination could not be
	// resolved to a precise place near the office.
	ErrDestinationNotFound = errors.New("could not find a precise location for destination")

	// ErrDestinationTooFar means the resolved destination is implausibly far
	// from the office (likely a same-name place in another region).
	ErrDestinationTooFar = errors.New("resolved destination is too far from the office")

	// ErrRouteNotFound means the routing backend produced no route.
	ErrRouteNotFound = errors.New("no route found")

	// ErrInvalidIntent means an unrecognized map intent reached the resolver.
	ErrInvalidIntent = errors.New("invalid map intent")
)
