package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/cmd"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so every deferred cleanup happens before
// main reports the error.
func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	db, err := postgres.Open(postgres.Options{DSN: configs.DSN(), Driver: configs.DBDriver})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	codes, err := cmd.NewDeliveryCodes(configs)
	if err != nil {
		return fmt.Errorf("create delivery code store: %w", err)
	}
	defer func() {
		if closeErr := codes.Close(); closeErr != nil {
			logger.Error("Failed to close delivery code store", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, db, codes, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	router, err := app.CreateHTTPRouter(ctx)
	if err != nil {
		return fmt.Errorf("create HTTP router: %w", err)
	}

	return serve(ctx, router, fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort), logger)
}

// serve blocks until ctx is done or the listener fails. A failed listener is
// returned as an error; a cancelled ctx shuts the server down gracefully.
func serve(ctx context.Context, e *echo.Echo, addr string, logger *slog.Logger) error {
	startErr := make(chan error, 1)
	go func() {
		startErr <- e.Start(addr)
	}()

	select {
	case err := <-startErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("start HTTP server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shut down HTTP server: %w", err)
	}
	return nil
}
