package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing. env only writes fields
// whose variables are actually set, so the struct is pre-filled from the
// current Config and copied back afterwards.
type envConfig struct {
	EndpointURL         string        `env:"CAREMATE_ENDPOINT"`
	RequestTimeout      time.Duration `env:"CAREMATE_REQUEST_TIMEOUT"`
	HealthCheckInterval time.Duration `env:"CAREMATE_HEALTH_INTERVAL"`
	DatabaseDSN         string        `env:"CAREMATE_DATABASE_DSN"`
	EnableDemoAccount   bool          `env:"CAREMATE_ENABLE_DEMO"`
}

func parseEnv(cfg *Config) {
	ec := envConfig{
		EndpointURL:         cfg.EndpointURL,
		RequestTimeout:      cfg.RequestTimeout,
		HealthCheckInterval: cfg.HealthCheckInterval,
		DatabaseDSN:         cfg.DatabaseDSN,
		EnableDemoAccount:   cfg.EnableDemoAccount,
	}
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	cfg.EndpointURL = ec.EndpointURL
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.HealthCheckInterval = ec.HealthCheckInterval
	cfg.DatabaseDSN = ec.DatabaseDSN
	cfg.EnableDemoAccount = ec.EnableDemoAccount
}
