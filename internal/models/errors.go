package models

import (
	"errors"
	"fmt"
)

// Validation failures detected before any upstream call is made.
var (
	ErrEmptyQuery         = errors.New("location query 'q' is required")
	ErrMissingCoordinates = errors.New("provide either 'location' or both 'latitude' and 'longitude'")
	ErrCoordinatesRange   = errors.New("latitude must be in [-90, 90] and longitude in [-180, 180]")
)

// NotFoundError reports that geocoding returned zero results for a query.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no results found for location: %s", e.Query)
}

// UpstreamStatusError reports a non-success HTTP status from a collaborator.
// The proxy mirrors StatusCode outward and embeds Body in the error detail.
type UpstreamStatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Service, e.Body)
}

// UpstreamDataError reports a success status paired with a body the proxy
// cannot use, such as non-numeric coordinate fields in a geocoding hit.
type UpstreamDataError struct {
	Service string
	Reason  string
}

func (e *UpstreamDataError) Error() string {
	return fmt.Sprintf("%s returned unusable data: %s", e.Service, e.Reason)
}
