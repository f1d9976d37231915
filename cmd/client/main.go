package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"medadvisor/internal/client/cli"
	"medadvisor/internal/client/config"
	"medadvisor/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
