package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GeocodeHandler handles geocoding requests
type GeocodeHandler struct {
	service GeocodeService
}

// Service interface for dependency injection
type GeocodeService interface {
	Geocode(ctx context.Context, query string, limit int) (json.RawMessage, error)
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(svc GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{service: svc}
}

// Geocode handles GET /geocode requests
// @Summary Geocode a place name
// @Description Resolve a free-text location query via Nominatim and forward the result array verbatim
// @Tags geocoding
// @Produce json
// @Param q query string true "Free-text location query" example(Berlin)
// @Param limit query int false "Maximum number of results (1-10)" default(1)
// @Success 200 {array} models.GeocodeResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /geocode [get]
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	query := c.Query("q")

	limit := 1
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid limit format"})
			return
		}
		limit = parsed
	}

	raw, err := h.service.Geocode(c.Request.Context(), query, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
