package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authshell/internal/flagx"
	"github.com/dmitrijs2005/authshell/internal/timex"
	"github.com/tidwall/jsonc"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell "absent" apart from "empty" so a partial file only overrides what it
// names.
type JsonConfig struct {
	DatabasePath     *string         `json:"database_path"`
	StorageDriver    *string         `json:"storage_driver"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
	CredentialPolicy *string         `json:"credential_policy"`
	SplashDelay      *timex.Duration `json:"splash_delay"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// The file may contain // and /* */ comments and trailing commas. Read and
// unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.LookupString(os.Args[1:], "c", "config")
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.StorageDriver != nil {
		cfg.StorageDriver = *jc.StorageDriver
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.CredentialPolicy != nil {
		cfg.CredentialPolicy = *jc.CredentialPolicy
	}
	if jc.SplashDelay != nil {
		cfg.SplashDelay = jc.SplashDelay.Duration
	}
}
