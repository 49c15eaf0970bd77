package config

import "time"

// Config holds runtime settings for the HisabKitab terminal clients.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api/v1 prefix.
//   - RequestTimeout: per-request timeout for backend calls.
//   - CredentialDBPath: path of the local sqlite file that stores the session token.
//   - LogLevel: "debug", "info", "warn" or "error".
type Config struct {
	APIBaseURL       string
	RequestTimeout   time.Duration
	CredentialDBPath string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.CredentialDBPath = "hisabkitab.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
