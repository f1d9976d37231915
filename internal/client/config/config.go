package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the medadvisor CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the advisory REST backend. Required; there
//     is no default and startup fails without one.
//   - DatabasePath: path of the local SQLite database (session cache and
//     prediction history mirror).
//   - RequestTimeout: upper bound for any single HTTP request.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// ErrMissingBaseURL is returned when no configuration source supplied the
// backend base URL.
var ErrMissingBaseURL = errors.New("server base URL is not configured (set -a, MEDADVISOR_API_URL, or the config file)")

// LoadDefaults populates c with sensible defaults. The base URL has none on
// purpose: the client is useless without a backend and must fail fast.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "medadvisor.db"
	c.RequestTimeout = 15 * time.Second
}

// Validate checks that the assembled configuration is usable.
func (c *Config) Validate() error {
	if c.ServerBaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(c.ServerBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server base URL %q", c.ServerBaseURL)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
