package config

import "time"

// Config holds runtime settings for the CareMate client.
//
// Fields:
//   - EndpointURL: base URL of the CareMate backend (JSON over HTTP).
//   - RequestTimeout: per-request timeout for backend calls.
//   - HealthCheckInterval: how often the client probes backend reachability.
//   - DatabaseDSN: SQLite DSN of the local durable store.
//   - EnableDemoAccount: whether the built-in demo credential may log in.
type Config struct {
	EndpointURL         string
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	DatabaseDSN         string
	EnableDemoAccount   bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.HealthCheckInterval = 3 * time.Second
	c.DatabaseDSN = "caremate.db"
	c.EnableDemoAccount = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
