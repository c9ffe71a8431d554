// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the full server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Lookup LookupConfig `yaml:"lookup"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host" env:"ACCOUNTD_HOST" env-default:""`
	Port            int           `yaml:"port" env:"ACCOUNTD_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"ACCOUNTD_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"ACCOUNTD_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"ACCOUNTD_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LookupConfig configures the remote user lookup client.
type LookupConfig struct {
	BaseURL string        `yaml:"base_url" env:"ACCOUNTD_LOOKUP_URL" env-default:"https://api.example.com"`
	Timeout time.Duration `yaml:"timeout" env:"ACCOUNTD_LOOKUP_TIMEOUT" env-default:"10s"`
}

// LogConfig configures application logging.
type LogConfig struct {
	Level string `yaml:"level" env:"ACCOUNTD_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
