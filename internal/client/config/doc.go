// Package config loads runtime configuration for the authshell client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed AUTHSHELL_, optionally read from a
//     dotenv file given with -e/-env (or ./.env when present).
//  3. Optional JSON file selected with -c/-config. Comments and trailing
//     commas are allowed.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-d string     path to the SQLite database file
//	-s string     storage driver: sqlite | memory
//	-l string     log level: debug | info | warn | error
//	-f string     log format: text | json
//	-p string     credential policy: demo | exact
//	-t duration   minimum loading notice while the session is restored
//
// Environment
//
//	AUTHSHELL_DB_PATH, AUTHSHELL_STORAGE, AUTHSHELL_LOG_LEVEL,
//	AUTHSHELL_LOG_FORMAT, AUTHSHELL_CREDENTIAL_POLICY, AUTHSHELL_SPLASH_DELAY
//
// # JSON schema
//
//	{
//	  // local device storage
//	  "database_path": "authshell.db",
//	  "storage_driver": "sqlite",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "credential_policy": "demo",
//	  "splash_delay": "500ms",
//	}
//
// Malformed input in any layer panics; main is expected to run LoadConfig
// before anything else.
package config
