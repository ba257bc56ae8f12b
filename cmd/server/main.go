package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/config"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/events"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/logger"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/metrics"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/middleware"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/service"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	SERVICE = "campaignconsole"
	VERSION = "1.0.0"
)

func init() {
	config.LoadConfigs()
}

func main() {
	cfg := config.AppConfigInstance
	lg := logger.New(logger.Config{
		Service: SERVICE,
		Version: VERSION,
		Level:   cfg.GeneralConfig.LogLevel,
	})

	if err := run(cfg, lg); err != nil {
		level.Error(lg).Log("msg", "server stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.AppConfig, lg log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	location, err := time.LoadLocation(cfg.StorageConfig.Timezone)
	if err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.StorageConfig.Timezone, err)
	}

	m := metrics.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	backend, err := newStorageBackend(cfg, lg)
	if err != nil {
		return err
	}
	defer backend.close()

	records := backend.instrumented(m)
	campaignStore := store.New(ctx, records,
		store.WithKey(cfg.StorageConfig.Key),
		store.WithLogger(log.With(lg, "component", "store")),
		store.WithLocation(location),
	)

	publisher, err := newPublisher(cfg.EventsConfig, lg, m)
	if err != nil {
		return err
	}
	defer publisher.Close()

	var svc service.CampaignService
	svc = service.NewCampaignService(campaignStore, publisher, log.With(lg, "component", "service"),
		service.WithLocation(location),
	)
	svc = middleware.NewServiceMetricsMiddleware(m)(svc)
	svc = middleware.NewLoggingMiddleware(log.With(lg, "component", "service"))(svc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.GeneralConfig.Port),
		Handler:      Routes(svc, m, lg, backend.healthChecks()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		level.Info(lg).Log("msg", "starting server", "port", cfg.GeneralConfig.Port, "storage", backend.name)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	level.Info(lg).Log("msg", "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GeneralConfig.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// newPublisher returns an AMQP publisher when a broker URL is configured, a no-op one otherwise
func newPublisher(cfg config.EventsConfig, lg log.Logger, m *metrics.Metrics) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		level.Info(lg).Log("msg", "campaign events disabled, EVENTS_AMQP_URL not set")
		return events.NopPublisher{}, nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.Queue)
	if err != nil {
		return nil, err
	}
	level.Info(lg).Log("msg", "publishing campaign events", "queue", cfg.Queue)
	return events.NewInstrumentedPublisher(publisher, m), nil
}
