package nominatim

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

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Berlin&format=json&limit=1&addressdetails=1
const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Client calls the Nominatim search endpoint. Nominatim's usage policy
// requires an identifying User-Agent header on every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// Search performs a free-text place search and returns the response body
// verbatim. A non-200 upstream status is reported as *models.UpstreamStatusError;
// any transport failure is returned as-is.
func (c *Client) Search(ctx context.Context, query string, limit int) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	log.Debug().Str("url", u.String()).Msg("fetching nominatim search results")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to reach nominatim")
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
			Msg("nominatim returned error status")
		return nil, &models.UpstreamStatusError{
			Service:    "Nominatim",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
