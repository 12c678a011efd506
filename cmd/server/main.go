package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iliyamo/aspire-counter-api/internal/config"  // Internal config loader
	"github.com/iliyamo/aspire-counter-api/internal/counter" // Counter store selection
	"github.com/iliyamo/aspire-counter-api/internal/handler" // HTTP handlers
	"github.com/iliyamo/aspire-counter-api/internal/logging" // slog setup
	"github.com/iliyamo/aspire-counter-api/internal/router"  // Internal router setup
	"github.com/iliyamo/aspire-counter-api/internal/service" // Counter event publisher
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.Setup("counter-api", cfg.SlogLevel(), cfg.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, rdb := counter.FromDescriptor(cfg.CacheDescriptor, cfg.CounterKey, logger)
	if rdb != nil {
		defer rdb.Close()
	}
	if cfg.BrokerURL() != "" {
		logger.Info("counter events enabled")
	}

	h := handler.NewAPIHandler(store, service.NewCounterPublisher(cfg.BrokerURL()), cfg.CounterKey, logger)
	e := router.New(h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port // Address string with port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "cache", store.Enabled())
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("start server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
