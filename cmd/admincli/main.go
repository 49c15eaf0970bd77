package main

import (
	"context"
	"log"
	"os"

	"github.com/hisabkitab/cli/internal/client/admincli"
	"github.com/hisabkitab/cli/internal/client/config"
	"github.com/hisabkitab/cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := admincli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
