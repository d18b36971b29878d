package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"weather-proxy-api/internal/models"
)

const (
	defaultLimit = 1
	maxLimit     = 10
)

// GeocodeService contains the core business logic for the geocode operation.
type GeocodeService struct {
	client NominatimClient
}

// NominatimClient interface for dependency injection
type NominatimClient interface {
	Search(ctx context.Context, query string, limit int) (json.RawMessage, error)
}

// NewGeocodeService creates a new geocode service
func NewGeocodeService(client NominatimClient) *GeocodeService {
	return &GeocodeService{client: client}
}

// Geocode resolves a free-text place query against Nominatim and returns the
// upstream result array verbatim. An empty result array is a not-found
// failure, never a silent default.
func (s *GeocodeService) Geocode(ctx context.Context, query string, limit int) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.ErrEmptyQuery
	}

	if limit < 1 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	raw, err := s.client.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("service: search failed: %w", err)
	}

	results, err := decodeResults(raw)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, &models.NotFoundError{Query: query}
	}

	return raw, nil
}

func decodeResults(raw json.RawMessage) ([]models.GeocodeResult, error) {
	var results []models.GeocodeResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, &models.UpstreamDataError{Service: "Nominatim", Reason: "response is not a JSON array"}
	}
	return results, nil
}
