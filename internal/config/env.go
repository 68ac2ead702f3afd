package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig holds NAMESETL_* overrides. Nil pointers mean the variable is unset.
type EnvConfig struct {
	SourceURL  string         `env:"NAMESETL_SOURCE_URL"`
	CSVPath    string         `env:"NAMESETL_CSV_PATH"`
	StorePath  string         `env:"NAMESETL_DB"`
	SkipHeader *bool          `env:"NAMESETL_SKIP_HEADER"`
	Timeout    *time.Duration `env:"NAMESETL_TIMEOUT"`
	Retries    *int           `env:"NAMESETL_RETRIES"`
	Addr       string         `env:"NAMESETL_ADDR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads an optional .env file into the process environment and
// parses NAMESETL_* variables. Variables already set take precedence over
// the file.
func LoadEnv(dotenvFiles ...string) (*EnvConfig, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
