// Package config resolves roomledger settings from defaults, an optional
// YAML/JSON file, a .env file and ROOMLEDGER_* environment variables, in that
// order of increasing precedence. Command-line flags are applied on top by
// the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"roomledger/internal/billing"
	"roomledger/internal/display"
	"roomledger/internal/logging"
)

// DefaultFile is read when present and no file is named explicitly.
const DefaultFile = "roomledger.yaml"

// DefaultDotEnv is the dotenv file consulted for environment overrides.
const DefaultDotEnv = ".env"

// Environment variable names.
const (
	EnvConfig       = "ROOMLEDGER_CONFIG"
	EnvStoreBackend = "ROOMLEDGER_STORE_BACKEND"
	EnvStorePath    = "ROOMLEDGER_STORE_PATH"
	EnvFlatRate     = "ROOMLEDGER_FLAT_RATE"
	EnvCurrency     = "ROOMLEDGER_CURRENCY"
	EnvLogLevel     = "ROOMLEDGER_LOG_LEVEL"
	EnvLogFormat    = "ROOMLEDGER_LOG_FORMAT"
)

// Config is the resolved configuration.
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store"`
	Billing BillingConfig `json:"billing" yaml:"billing"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// StoreConfig selects the backend. An empty path means the backend default
// (rooms.json or rooms.db).
type StoreConfig struct {
	Backend string `json:"backend" yaml:"backend"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// BillingConfig holds the light tariff.
type BillingConfig struct {
	FlatRate int    `json:"flat_rate" yaml:"flat_rate"`
	Currency string `json:"currency" yaml:"currency"`
}

// LogConfig mirrors logging.Init arguments.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store:   StoreConfig{Backend: "json"},
		Billing: BillingConfig{FlatRate: billing.DefaultFlatRate, Currency: display.DefaultCurrency},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Sources tells Load where to look. Zero values fall back to the defaults:
// no explicit file, DefaultDotEnv, and os.LookupEnv.
type Sources struct {
	File   string
	DotEnv string
	Lookup func(key string) (string, bool)
}

// Load resolves the configuration. A file named explicitly (in Sources.File
// or ROOMLEDGER_CONFIG) must exist; DefaultFile and the dotenv file are
// optional.
func Load(src Sources) (*Config, error) {
	lookup := src.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	dotenvPath := src.DotEnv
	if dotenvPath == "" {
		dotenvPath = DefaultDotEnv
	}
	dotenv, err := readDotEnv(dotenvPath)
	if err != nil {
		return nil, err
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	cfg := Default()
	path := src.File
	if path == "" {
		if v, ok := get(EnvConfig); ok && v != "" {
			path = v
		}
	}
	switch {
	case path != "":
		if err := loadInto(&cfg, path); err != nil {
			return nil, err
		}
	default:
		if _, err := os.Stat(DefaultFile); err == nil {
			if err := loadInto(&cfg, DefaultFile); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(get); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readDotEnv(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vals, nil
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	if v, ok := get(EnvStoreBackend); ok && v != "" {
		c.Store.Backend = v
	}
	if v, ok := get(EnvStorePath); ok && v != "" {
		c.Store.Path = v
	}
	if v, ok := get(EnvFlatRate); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %q is not a whole number", EnvFlatRate, v)
		}
		c.Billing.FlatRate = n
	}
	if v, ok := get(EnvCurrency); ok {
		c.Billing.Currency = v
	}
	if v, ok := get(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := get(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate rejects settings no component can honor.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("store.backend: unknown backend %q (want json, sqlite or memory)", c.Store.Backend)
	}
	if c.Billing.FlatRate < 0 {
		return fmt.Errorf("billing.flat_rate: must not be negative, got %d", c.Billing.FlatRate)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format)
	}
	return nil
}
