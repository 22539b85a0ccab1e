// SPDX-License-Identifier: MIT

// Package config loads spdsolve settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/spdsolve/cholesky"
)

// Config holds the environment-provided defaults of the CLI. Command-line
// flags override individual fields after Load.
type Config struct {
	Backend      string  `env:"SPDSOLVE_BACKEND"        envDefault:"native"`
	SymmetryTol  float64 `env:"SPDSOLVE_SYMMETRY_TOL"   envDefault:"1e-9"`
	SkipSymmetry bool    `env:"SPDSOLVE_SKIP_SYMMETRY"  envDefault:"false"`
	Workers      int     `env:"SPDSOLVE_WORKERS"        envDefault:"0"`
	LogLevel     string  `env:"SPDSOLVE_LOG_LEVEL"      envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the factorization would refuse later anyway,
// so the CLI can fail before reading any input.
func (c Config) Validate() error {
	if _, err := cholesky.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("config: SPDSOLVE_BACKEND: %w", err)
	}
	if math.IsNaN(c.SymmetryTol) || math.IsInf(c.SymmetryTol, 0) || c.SymmetryTol < 0 {
		return fmt.Errorf("config: SPDSOLVE_SYMMETRY_TOL must be finite and non-negative, got %g", c.SymmetryTol)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Options translates the configuration into factorization options.
// Call Validate first: an invalid tolerance makes WithSymmetryCheck panic.
func (c Config) Options() []cholesky.Option {
	backend, _ := cholesky.ParseBackend(c.Backend)
	opts := []cholesky.Option{cholesky.WithBackend(backend)}
	if c.SkipSymmetry {
		opts = append(opts, cholesky.WithoutSymmetryCheck())
	} else {
		opts = append(opts, cholesky.WithSymmetryCheck(c.SymmetryTol))
	}

	return opts
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("config: SPDSOLVE_LOG_LEVEL: %w", err)
	}

	return level, nil
}
