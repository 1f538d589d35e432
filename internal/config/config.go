// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Unlike a server, the registry is perfectly usable with no config
// file at all: every field carries an env-default, so with neither
// source set the program boots on the in-memory store in dev mode.
// Environment variables still override the defaults in that case.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Storage selects and configures the record-store backend.
	Storage Storage `yaml:"storage"`
}

// Storage holds settings specific to the record store.
// Nested under storage: in the YAML file.
type Storage struct {
	// Driver selects the backend: "memory" (the default hash map) or
	// "sqlite" (the database/sql backend).
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`

	// DSN is the data source name passed to the sqlite driver.
	// ":memory:" keeps all state process-lifetime only, matching the
	// memory backend's semantics. Ignored by the memory driver.
	DSN string `yaml:"dsn" env:"STORAGE_DSN" env-default:":memory:"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	// ── Source 1: environment variable ───────────────────────────────
	configPath = os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	//   go run ./cmd/student-registry --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// No path from either source: fall back to env vars + defaults.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	// Verify the file exists before trying to read it, for a clear
	// message rather than a cryptic "open: no such file" later.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file, populates the struct,
	// and applies any env:"..." overrides from the environment.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
