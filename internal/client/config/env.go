package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/authshell/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "AUTHSHELL_"

// parseEnv overlays Config with AUTHSHELL_* environment variables.
//
// A dotenv file named by -e/-env is loaded first and must exist; without the
// flag ./.env is loaded if present. Variables already set in the process
// environment win over dotenv values.
func parseEnv(cfg *Config) {
	if path := flagx.LookupString(os.Args[1:], "e", "env"); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookup := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	lookup("DB_PATH", &cfg.DatabasePath)
	lookup("STORAGE", &cfg.StorageDriver)
	lookup("LOG_LEVEL", &cfg.LogLevel)
	lookup("LOG_FORMAT", &cfg.LogFormat)
	lookup("CREDENTIAL_POLICY", &cfg.CredentialPolicy)

	if v, ok := os.LookupEnv(envPrefix + "SPLASH_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.SplashDelay = d
	}
}
