package main

import (
	"context"
	"log"
	"os"

	"github.com/hisabkitab/cli/internal/client/cli"
	"github.com/hisabkitab/cli/internal/client/config"
	"github.com/hisabkitab/cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
