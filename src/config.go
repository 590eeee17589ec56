package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// Config controls where the function listens and where puzzles are looked up.
type Config struct {
	Port      string `env:"PORT"                envDefault:"8080"`
	LocalOnly bool   `env:"LOCAL_ONLY"`
	ProjectID string `env:"MERLIN_PROJECT_ID"   envDefault:"xword-x"`
	Table     string `env:"MERLIN_PUZZLE_TABLE" envDefault:"xword-x.MiniMerlin.puzzles"`
	Location  string `env:"MERLIN_BQ_LOCATION"  envDefault:"US"`
}

// Hostname is the interface to bind to; empty means all interfaces.
func (c Config) Hostname() string {
	if c.LocalOnly {
		return "127.0.0.1"
	}
	return ""
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
