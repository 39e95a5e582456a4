package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"curio_backend/internal/adapters/storage"
	"curio_backend/internal/cleanup"
	"curio_backend/platform/config"
	"curio_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting cleanup worker", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}

	worker, err := cleanup.NewWorker(cfg, storageSvc, log)
	if err != nil {
		log.Error("failed to initialize cleanup worker", "error", err)
		panic("failed to initialize cleanup worker: " + err.Error())
	}

	worker.Run(ctx)
}
