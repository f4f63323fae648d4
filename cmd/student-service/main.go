// main is the entry point of the student service.
//
// Startup sequence:
//  1. Load configuration (environment, optional .env and YAML file)
//  2. Initialise the logger
//  3. Open the record store (MongoDB by default)
//  4. Register metrics and HTTP routes
//  5. Serve in a separate goroutine
//  6. Block until SIGINT/SIGTERM, then shut down gracefully and close the store
//
// Running the server:
//
//	MONGO_URI=mongodb://localhost:27017/studentsdb go run ./cmd/student-service
//
// or without a database server:
//
//	STORAGE_DRIVER=sqlite go run ./cmd/student-service
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aanand-mishra/student-service/internal/config"
	"github.com/aanand-mishra/student-service/internal/http/router"
	"github.com/aanand-mishra/student-service/internal/logger"
	"github.com/aanand-mishra/student-service/internal/metrics"
	"github.com/aanand-mishra/student-service/internal/storage"
	"github.com/aanand-mishra/student-service/internal/storage/memory"
	"github.com/aanand-mishra/student-service/internal/storage/mongodb"
	"github.com/aanand-mishra/student-service/internal/storage/sqlite"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.SetupDefault(cfg.Env, os.Stdout)
	log.Info("starting student-service",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Driver),
	)

	store, err := openStorage(context.Background(), cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(router.Deps{
			Storage:      storage.WithMetrics(store, collector),
			Logger:       log,
			Collector:    collector,
			Gatherer:     reg,
			MaxBodyBytes: cfg.MaxBodyBytes,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Student Service running", slog.String("address", cfg.Addr()))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
	}

	if err := store.Close(ctx); err != nil {
		log.Error("failed to close storage", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

// openStorage returns the backend selected by cfg.Driver.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		m, err := mongodb.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.DriverSQLite:
		s, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
