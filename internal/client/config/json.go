package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hisabkitab/cli/internal/flagx"
	"github.com/hisabkitab/cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like "15s"
// or as integer nanoseconds. After parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	CredentialDBPath string         `json:"credential_db_path"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file path
// comes from the -c or -config flags (via flagx.JsonConfigFlags); when absent,
// nothing is loaded. Empty JSON fields leave the current Config value intact.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialDBPath != "" {
		cfg.CredentialDBPath = jc.CredentialDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
