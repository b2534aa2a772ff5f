package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caremate-ai/caremate/internal/flagx"
	"github.com/caremate-ai/caremate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. Pointer fields distinguish "absent" from the
// zero value so a JSON file can leave settings untouched.
type JsonConfig struct {
	EndpointURL         *string         `json:"endpoint_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	HealthCheckInterval *timex.Duration `json:"health_check_interval"`
	DatabaseDSN         *string         `json:"database_dsn"`
	EnableDemoAccount   *bool           `json:"enable_demo_account"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If no file is named, nothing happens. Read or unmarshal
// errors panic, matching the fail-fast startup contract.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointURL != nil {
		cfg.EndpointURL = *jc.EndpointURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.HealthCheckInterval != nil {
		cfg.HealthCheckInterval = time.Duration(jc.HealthCheckInterval.Duration)
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.EnableDemoAccount != nil {
		cfg.EnableDemoAccount = *jc.EnableDemoAccount
	}
}
