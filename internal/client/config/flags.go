package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/authshell/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed below are considered, so -c/-config and -e/-env handled by the other
// layers do not make parsing fail. A malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l", "-f", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite|memory)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")
	fs.StringVar(&cfg.CredentialPolicy, "p", cfg.CredentialPolicy, "credential policy (demo|exact)")
	fs.DurationVar(&cfg.SplashDelay, "t", cfg.SplashDelay, "minimum loading notice while the session is restored")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
