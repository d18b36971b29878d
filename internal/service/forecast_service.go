package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"weather-proxy-api/internal/models"
)

// ForecastService contains the core business logic for the forecast operation,
// chaining a geocode lookup when the caller supplies a location name.
type ForecastService struct {
	geocoder   NominatimClient
	forecaster OpenMeteoClient
}

// OpenMeteoClient interface for dependency injection
type OpenMeteoClient interface {
	Forecast(ctx context.Context, coords models.Coordinates, current, hourly string) (json.RawMessage, error)
}

// NewForecastService creates a new forecast service
func NewForecastService(geocoder NominatimClient, forecaster OpenMeteoClient) *ForecastService {
	return &ForecastService{geocoder: geocoder, forecaster: forecaster}
}

// Forecast resolves the request to one coordinate pair, fetches the forecast
// for it and returns the upstream payload verbatim.
func (s *ForecastService) Forecast(ctx context.Context, req models.ForecastRequest) (json.RawMessage, error) {
	coords, err := s.resolveCoordinates(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, err := s.forecaster.Forecast(ctx, coords, req.Current, req.Hourly)
	if err != nil {
		return nil, fmt.Errorf("service: forecast failed: %w", err)
	}

	return raw, nil
}

// resolveCoordinates picks the single coordinate source for a request.
// A non-empty location always wins over explicit coordinates and is geocoded
// with limit=1, taking lat/lon of the top result; otherwise both latitude and
// longitude must be present and within range.
func (s *ForecastService) resolveCoordinates(ctx context.Context, req models.ForecastRequest) (models.Coordinates, error) {
	if location := strings.TrimSpace(req.Location); location != "" {
		raw, err := s.geocoder.Search(ctx, location, 1)
		if err != nil {
			return models.Coordinates{}, fmt.Errorf("service: geocoding failed: %w", err)
		}

		results, err := decodeResults(raw)
		if err != nil {
			return models.Coordinates{}, err
		}
		if len(results) == 0 {
			return models.Coordinates{}, &models.NotFoundError{Query: location}
		}

		lat, err := strconv.ParseFloat(results[0].Lat, 64)
		if err != nil {
			return models.Coordinates{}, &models.UpstreamDataError{
				Service: "Nominatim",
				Reason:  fmt.Sprintf("non-numeric latitude %q in top result", results[0].Lat),
			}
		}
		lon, err := strconv.ParseFloat(results[0].Lon, 64)
		if err != nil {
			return models.Coordinates{}, &models.UpstreamDataError{
				Service: "Nominatim",
				Reason:  fmt.Sprintf("non-numeric longitude %q in top result", results[0].Lon),
			}
		}

		return models.Coordinates{Latitude: lat, Longitude: lon}, nil
	}

	if req.Latitude != nil && req.Longitude != nil {
		if *req.Latitude < -90 || *req.Latitude > 90 {
			return models.Coordinates{}, models.ErrCoordinatesRange
		}
		if *req.Longitude < -180 || *req.Longitude > 180 {
			return models.Coordinates{}, models.ErrCoordinatesRange
		}
		return models.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}, nil
	}

	return models.Coordinates{}, models.ErrMissingCoordinates
}
