package main

import (
	"context"
	"log"
	"os"

	"github.com/UkralStul/posts-service/internal/app"
	"github.com/UkralStul/posts-service/internal/config"
	"github.com/UkralStul/posts-service/internal/logging"
)

func main() {
	cfg, err := config.FromOS()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.NewJSON(os.Stdout, level)

	ctx := context.Background()
	logger.Info(ctx, "starting server", "storage", cfg.Storage, "addr", cfg.Addr)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
