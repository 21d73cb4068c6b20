// Package config loads the deployment settings for traitseed: where the
// questionnaire lives, where the script goes, which database to apply it
// to, and the static assessment metadata written with every script.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/chriserin/traitseed/internal/seed"
)

// Config represents the top-level application configuration.
type Config struct {
	Input      string          `toml:"input" yaml:"input"`
	Output     string          `toml:"output" yaml:"output"`
	Dialect    string          `toml:"dialect" yaml:"dialect"`
	Database   DatabaseConfig  `toml:"database" yaml:"database"`
	Assessment seed.Assessment `toml:"assessment" yaml:"assessment"`
}

// DatabaseConfig holds the connection used by apply and history.
type DatabaseConfig struct {
	Driver string `toml:"driver" yaml:"driver"`
	DSN    string `toml:"dsn" yaml:"dsn"`
}

// DefaultConfig returns a Config populated with the stock settings.
func DefaultConfig() *Config {
	return &Config{
		Input:   "raw_traits_quiz.txt",
		Output:  "neurodiversity_traits_seed.sql",
		Dialect: string(seed.Postgres),
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "traitseed.db",
		},
		Assessment: seed.DefaultAssessment(),
	}
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. A missing file is not an error. Files ending in
// .yaml or .yml are decoded as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.Decode(string(data), cfg)
		return err
	}
}

func applyEnv(cfg *Config) {
	cfg.Input = envOr("TRAITSEED_INPUT", cfg.Input)
	cfg.Output = envOr("TRAITSEED_OUTPUT", cfg.Output)
	cfg.Dialect = envOr("TRAITSEED_DIALECT", cfg.Dialect)
	cfg.Database.Driver = envOr("TRAITSEED_DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = envOr("TRAITSEED_DB_DSN", cfg.Database.DSN)
}

// Validate reports settings that would produce an unusable script.
func (c *Config) Validate() error {
	if c.Assessment.Slug == "" {
		return fmt.Errorf("assessment slug is required")
	}
	if len(c.Assessment.Scale) == 0 {
		return fmt.Errorf("assessment response scale is empty")
	}
	if _, err := seed.ParseDialect(c.Dialect); err != nil {
		return err
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
