// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Server is the environment configuration of urserver. Command line
// flags override these values.
type Server struct {
	Host           string        `env:"URENGINE_HOST" envDefault:"localhost"`
	Port           int           `env:"URENGINE_PORT" envDefault:"8080"`
	ReadTimeout    time.Duration `env:"URENGINE_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout   time.Duration `env:"URENGINE_WRITE_TIMEOUT" envDefault:"0s"`
	IdleTimeout    time.Duration `env:"URENGINE_IDLE_TIMEOUT" envDefault:"60s"`
	MaxSimulations int           `env:"URENGINE_MAX_SIMULATIONS" envDefault:"2"`
	Seed           int64         `env:"URENGINE_SEED" envDefault:"0"`
	AutoPass       bool          `env:"URENGINE_AUTOPASS" envDefault:"false"`
	Verbose        bool          `env:"URENGINE_VERBOSE" envDefault:"false"`
}

// LoadServer reads the server configuration.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Server{}, fmt.Errorf("URENGINE_PORT %d out of range", cfg.Port)
	}
	return cfg, nil
}
