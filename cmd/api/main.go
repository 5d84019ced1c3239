package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	httpadapter "todoapi/internal/adapter/http"
	"todoapi/pkg/config"
	"todoapi/pkg/logging"
	"todoapi/pkg/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.AppName, cfg.Environment)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	appMetrics := metrics.NewAppMetrics()

	if err := httpadapter.StartServer(ctx, cfg, logger, appMetrics); err != nil {
		log.Fatal("Server failed:", err)
	}
}
