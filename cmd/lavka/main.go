package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkenzhe/lavka/internal/cli"
	"github.com/dkenzhe/lavka/internal/config"
	"github.com/dkenzhe/lavka/internal/logging"
	"github.com/dkenzhe/lavka/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	// interrupt cancels the context, which also abandons any pending
	// simulated completion
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	backend, err := storage.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer backend.Close()

	app := cli.NewApp(cfg, backend, logger)
	app.Run(ctx)
}
