package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mtgBot/internal/app/runtime"
	"mtgBot/internal/infrastructure/config"
	"mtgBot/internal/infrastructure/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mtgBot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rt, err := runtime.Start(ctx, runtime.Options{Config: cfg, Logger: logger})
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}

	<-ctx.Done()

	logger.Info("shutting down")
	rt.Stop()
	return nil
}
