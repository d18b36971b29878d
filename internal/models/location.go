package models

// Coordinates is a resolved geographic point, either supplied by the caller or
// derived from the top geocoding result.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeResult is the minimal view of a single Nominatim search hit needed for
// chaining into a forecast call. Nominatim encodes coordinates as strings.
type GeocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// ForecastRequest carries the validated inbound parameters of a forecast call.
// Exactly one coordinate source is used: Location, when non-empty, takes
// precedence over the explicit coordinate pair.
type ForecastRequest struct {
	Location  string
	Latitude  *float64
	Longitude *float64
	Current   string
	Hourly    string
}
