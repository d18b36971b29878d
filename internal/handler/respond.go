package handler

import (
	"errors"
	"net/http"

	"weather-proxy-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// writeError translates a pipeline failure into the outward status code and a
// {"detail": ...} body. Local validation maps to 400, an empty geocoding
// result to 404, an upstream HTTP failure mirrors the upstream status, and
// everything else (transport errors, timeouts) is a 502.
func writeError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	var statusErr *models.UpstreamStatusError
	var dataErr *models.UpstreamDataError

	switch {
	case errors.Is(err, models.ErrEmptyQuery),
		errors.Is(err, models.ErrMissingCoordinates),
		errors.Is(err, models.ErrCoordinatesRange):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": notFound.Error()})
	case errors.As(err, &statusErr):
		c.JSON(statusErr.StatusCode, gin.H{"detail": statusErr.Error()})
	case errors.As(err, &dataErr):
		c.JSON(http.StatusBadGateway, gin.H{"detail": dataErr.Error()})
	default:
		log.Error().Err(err).Msg("upstream request failed")
		c.JSON(http.StatusBadGateway, gin.H{"detail": "network error reaching upstream service"})
	}
}
