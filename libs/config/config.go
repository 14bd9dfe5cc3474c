package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the booking app reads from its environment. Every
// key carries a default, so plain invocation works with no configuration at
// all.
type Config struct {
	DataFile string `env:"HOSPBOOK_DATA_FILE" envDefault:"appointments.json"`
	LogLevel string `env:"HOSPBOOK_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
