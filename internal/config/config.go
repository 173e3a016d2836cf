package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from configs/app.env with
// environment variables taking precedence.
type Config struct {
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`
	DBSource           string `mapstructure:"DB_SOURCE"`
	GinMode            string `mapstructure:"GIN_MODE"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	NominatimBaseURL   string `mapstructure:"NOMINATIM_BASE_URL"`
	NominatimUserAgent string `mapstructure:"NOMINATIM_USER_AGENT"`
}

// LoadConfig reads configuration from the given directory. A missing config
// file is fine as long as the environment provides what the defaults do not.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("DB_SOURCE", "")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("NOMINATIM_USER_AGENT", "geopindrop/1.0")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	return config, nil
}
