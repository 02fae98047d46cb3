package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authshell/internal/client/cli"
	"github.com/dmitrijs2005/authshell/internal/client/client"
	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/authshell/internal/client/services"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	store, closeStore, err := client.OpenStorage(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "error opening storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error(ctx, "error closing storage", "error", err)
		}
	}()

	repo := accounts.NewKVRepository(store, logger)
	auth := services.NewAuthService(repo, store, services.MatcherForPolicy(cfg.CredentialPolicy), logger)

	app := cli.NewApp(cfg, auth, logger)
	app.Run(ctx)

}
