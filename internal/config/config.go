// Package config loads campshare configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds all runtime configuration, parsed from CS_-prefixed
// environment variables.
type Config struct {
	DevMode bool   `env:"CS_DEV_MODE" envDefault:"false"`
	DBPath  string `env:"CS_DB_PATH"`

	Server   ServerConfig   `envPrefix:"CS_HTTP_"`
	Geocoder GeocoderConfig `envPrefix:"CS_GEOCODER_"`
	Images   ImageConfig    `envPrefix:"CS_S3_"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// GeocoderConfig configures the geocoding client.
type GeocoderConfig struct {
	URL string `env:"URL" envDefault:"https://maps.googleapis.com/maps/api/geocode/json"`
	Key string `env:"KEY"`
}

// ImageConfig configures the image object store.
type ImageConfig struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"campshare"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
