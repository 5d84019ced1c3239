package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"todoapi/internal/adapter/http/routes"
	"todoapi/pkg/config"
	"todoapi/pkg/metrics"
)

// StartServer wires the container, serves until ctx is canceled, then
// shuts down gracefully.
func StartServer(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.AppMetrics) error {
	container, err := NewContainer(ctx, cfg, m)

	if err != nil {
		return err
	}

	defer container.Close()

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler:   container.AuthHandler,
		UserHandler:   container.UserHandler,
		TodoHandler:   container.TodoHandler,
		HealthHandler: container.HealthHandler,
	}, container.Tokens, m, logger, container.ResponseCache)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("database_driver", cfg.DatabaseDriver),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
