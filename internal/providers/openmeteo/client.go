package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-proxy-api/internal/models"

	"github.com/rs/zerolog/log"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.40&current=temperature_2m&hourly=relative_humidity_2m
const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// ForecastClient calls the Open-Meteo forecast endpoint.
type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewForecastClient(baseURL string, timeout time.Duration) *ForecastClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &ForecastClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Forecast fetches the weather forecast for the given coordinates and returns
// the response body verbatim. The current and hourly variable lists are passed
// through unmodified and omitted from the outbound query when empty.
func (c *ForecastClient) Forecast(ctx context.Context, coords models.Coordinates, current, hourly string) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	if current != "" {
		q.Set("current", current)
	}
	if hourly != "" {
		q.Set("hourly", hourly)
	}
	u.RawQuery = q.Encode()

	log.Debug().Str("url", u.String()).Msg("fetching open-meteo forecast")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to reach open-meteo")
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().
			Int("status_code", resp.StatusCode).
			Str("response_body", string(body)).
			Msg("open-meteo returned error status")
		return nil, &models.UpstreamStatusError{
			Service:    "Open-Meteo",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
