package main

import (
	"context"
	"net/http"

	"github.com/go-kit/log"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/endpoint"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/metrics"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/middleware"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/service"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/transport"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes wires the campaign API, /health and /metrics behind the request id
// and HTTP metrics middlewares.
func Routes(svc service.CampaignService, m *metrics.Metrics, lg log.Logger, checks map[string]transport.HealthCheck) http.Handler {
	router := transport.NewHTTPHandler(
		endpoint.MakeCampaignEndpoints(svc),
		log.With(lg, "component", "http"),
		transport.ServiceInfo{Name: SERVICE, Version: VERSION},
		withHealthMetrics(checks, m),
	)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.Use(
		middleware.NewRequestIDMiddleware().Middleware,
		middleware.NewMetricsMiddleware(m).Middleware,
	)
	return router
}

// withHealthMetrics mirrors every health check result into the health gauge
func withHealthMetrics(checks map[string]transport.HealthCheck, m *metrics.Metrics) map[string]transport.HealthCheck {
	wrapped := make(map[string]transport.HealthCheck, len(checks))
	for name, check := range checks {
		name, check := name, check
		wrapped[name] = func(ctx context.Context) error {
			err := check(ctx)
			m.SetHealthCheckStatus(name, err == nil)
			return err
		}
	}
	return wrapped
}
