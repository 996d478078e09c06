package wikipedia

// Geosearch bounds. Latitude and longitude follow WGS 84; the radius window
// is what the geosearch module accepts, in meters, both ends inclusive.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinRadius    = 10
	MaxRadius    = 10000
)

// validateCoordinates rejects out-of-range geosearch arguments before any
// request is built. Checks run in argument order and stop at the first
// failure.
func validateCoordinates(latitude, longitude float64, radius int) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return &InvalidParameterError{Name: "latitude"}
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return &InvalidParameterError{Name: "longitude"}
	}
	if radius < MinRadius || radius > MaxRadius {
		return &InvalidParameterError{Name: "radius"}
	}
	return nil
}
