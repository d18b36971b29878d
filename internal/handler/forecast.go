package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"weather-proxy-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ForecastHandler handles weather forecast requests
type ForecastHandler struct {
	service ForecastService
}

// Service interface for dependency injection
type ForecastService interface {
	Forecast(ctx context.Context, req models.ForecastRequest) (json.RawMessage, error)
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(svc ForecastService) *ForecastHandler {
	return &ForecastHandler{service: svc}
}

// Forecast handles GET /forecast requests
// @Summary Get a weather forecast
// @Description Proxy a forecast request to Open-Meteo, geocoding 'location' to coordinates first when supplied; the forecast payload is forwarded verbatim
// @Tags forecast
// @Produce json
// @Param location query string false "Free-text location, geocoded to coordinates (takes precedence over latitude/longitude)" example(Berlin)
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(52.52)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(13.40)
// @Param current query string false "Comma-separated current weather variables" example(temperature_2m,wind_speed_10m)
// @Param hourly query string false "Comma-separated hourly weather variables" example(temperature_2m,relative_humidity_2m)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /forecast [get]
func (h *ForecastHandler) Forecast(c *gin.Context) {
	req := models.ForecastRequest{
		Location: c.Query("location"),
		Current:  c.Query("current"),
		Hourly:   c.Query("hourly"),
	}

	if latStr := c.Query("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid latitude format"})
			return
		}
		req.Latitude = &lat
	}

	if lonStr := c.Query("longitude"); lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid longitude format"})
			return
		}
		req.Longitude = &lon
	}

	raw, err := h.service.Forecast(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
