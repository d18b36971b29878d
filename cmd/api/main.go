package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"weather-proxy-api/internal/config"
	"weather-proxy-api/internal/handler"
	"weather-proxy-api/internal/providers/nominatim"
	"weather-proxy-api/internal/providers/openmeteo"
	"weather-proxy-api/internal/server"
	"weather-proxy-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Weather Forecast Proxy API
// @version 0.2.0
// @description Proxy around the Open-Meteo weather API with Nominatim geocoding
// @BasePath /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	gin.SetMode(config.GinMode)

	// Initialize layers
	nominatimClient := nominatim.NewClient(config.NominatimBaseURL, config.UserAgent, config.UpstreamTimeout)
	openMeteoClient := openmeteo.NewForecastClient(config.OpenMeteoBaseURL, config.UpstreamTimeout)

	geocodeService := service.NewGeocodeService(nominatimClient)
	forecastService := service.NewForecastService(nominatimClient, openMeteoClient)

	geocodeHandler := handler.NewGeocodeHandler(geocodeService)
	forecastHandler := handler.NewForecastHandler(forecastService)

	r := server.NewRouter(geocodeHandler, forecastHandler)

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
