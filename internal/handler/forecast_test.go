package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-proxy-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockForecastService is a mock implementation of the ForecastService interface
type MockForecastService struct {
	mock.Mock
}

func (m *MockForecastService) Forecast(ctx context.Context, req models.ForecastRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func TestForecastHandler_Forecast(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := `{"current":{"temperature_2m":5.0}}`
	lat, lon := 52.52, 13.4

	tests := []struct {
		name           string
		rawQuery       string
		serviceReq     models.ForecastRequest
		serviceCalled  bool
		mockRaw        json.RawMessage
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no parameters",
			rawQuery:       "",
			serviceReq:     models.ForecastRequest{},
			serviceCalled:  true,
			mockError:      models.ErrMissingCoordinates,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"provide either 'location' or both 'latitude' and 'longitude'"}`,
		},
		{
			name:           "non-numeric latitude",
			rawQuery:       "latitude=abc&longitude=13.4",
			serviceCalled:  false,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid latitude format"}`,
		},
		{
			name:           "non-numeric longitude",
			rawQuery:       "latitude=52.52&longitude=east",
			serviceCalled:  false,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid longitude format"}`,
		},
		{
			name:     "location with variables",
			rawQuery: "location=Berlin&current=temperature_2m&hourly=relative_humidity_2m",
			serviceReq: models.ForecastRequest{
				Location: "Berlin",
				Current:  "temperature_2m",
				Hourly:   "relative_humidity_2m",
			},
			serviceCalled:  true,
			mockRaw:        json.RawMessage(payload),
			expectedStatus: http.StatusOK,
			expectedBody:   payload,
		},
		{
			name:     "explicit coordinates",
			rawQuery: "latitude=52.52&longitude=13.4",
			serviceReq: models.ForecastRequest{
				Latitude:  &lat,
				Longitude: &lon,
			},
			serviceCalled:  true,
			mockRaw:        json.RawMessage(payload),
			expectedStatus: http.StatusOK,
			expectedBody:   payload,
		},
		{
			name:           "unknown location",
			rawQuery:       "location=Atlantis",
			serviceReq:     models.ForecastRequest{Location: "Atlantis"},
			serviceCalled:  true,
			mockError:      &models.NotFoundError{Query: "Atlantis"},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"no results found for location: Atlantis"}`,
		},
		{
			name:           "forecast collaborator rejects the call",
			rawQuery:       "latitude=52.52&longitude=13.4",
			serviceReq:     models.ForecastRequest{Latitude: &lat, Longitude: &lon},
			serviceCalled:  true,
			mockError:      &models.UpstreamStatusError{Service: "Open-Meteo", StatusCode: http.StatusServiceUnavailable, Body: "service temporarily unavailable"},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"detail":"Open-Meteo error: service temporarily unavailable"}`,
		},
		{
			name:           "forecast collaborator unreachable",
			rawQuery:       "latitude=52.52&longitude=13.4",
			serviceReq:     models.ForecastRequest{Latitude: &lat, Longitude: &lon},
			serviceCalled:  true,
			mockError:      assert.AnError,
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"detail":"network error reaching upstream service"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockForecastService)
			handler := NewForecastHandler(mockSvc)

			if tt.serviceCalled {
				mockSvc.On("Forecast", mock.Anything, tt.serviceReq).Return(tt.mockRaw, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/forecast?"+tt.rawQuery, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Forecast(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
