package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds all static application configuration. Values come from
// configs/app.env with environment variable overrides; nothing is mutated
// after startup.
type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	GinMode          string        `mapstructure:"GIN_MODE"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	NominatimBaseURL string        `mapstructure:"NOMINATIM_BASE_URL"`
	OpenMeteoBaseURL string        `mapstructure:"OPEN_METEO_BASE_URL"`
	UserAgent        string        `mapstructure:"USER_AGENT"`
	UpstreamTimeout  time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
}

// LoadConfig reads configuration from the app.env file in the given path and
// from the environment. A missing config file is fine, the defaults cover
// every key.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("OPEN_METEO_BASE_URL", "https://api.open-meteo.com/v1/forecast")
	// Nominatim policy requires an identifying User-Agent on every request.
	viper.SetDefault("USER_AGENT", "weather-proxy-api/0.2.0 (contact@example.com)")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
