package server

import (
	"net/http"

	"weather-proxy-api/internal/handler"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "weather-proxy-api/docs" // generated swagger docs
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(geocode *handler.GeocodeHandler, forecast *handler.ForecastHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geocode.Geocode)
	r.GET("/forecast", forecast.Forecast)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
