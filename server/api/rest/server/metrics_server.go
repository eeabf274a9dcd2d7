package server

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/metrics"
)

type MetricsServerConfig struct {
	HTTPServerConfig
}

// MetricsServer serves Prometheus metrics on a separate address from the API.
// A MetricsServer with an empty address is disabled and its Start and Stop are no-ops.
type MetricsServer struct {
	server APIServer
	log    logger.Log
}

func NewMetricsServer(metrics *metrics.Metrics, config MetricsServerConfig, httpServerFactory HTTPServerFactory, logFactory logger.LogFactory) (*MetricsServer, error) {
	log := logFactory("MetricsServer")
	if config.Address == "" {
		return &MetricsServer{log: log}, nil
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Method("GET", "/metrics", metrics.Handler())
	httpServer, err := httpServerFactory(r, config.HTTPServerConfig, log)
	if err != nil {
		return nil, fmt.Errorf("error creating metrics HTTP server: %w", err)
	}
	return &MetricsServer{server: httpServer, log: log}, nil
}

func (s *MetricsServer) Enabled() bool {
	return s.server != nil
}

func (s *MetricsServer) Start() {
	if !s.Enabled() {
		s.log.Info("Metrics server disabled")
		return
	}
	s.server.Start()
}

func (s *MetricsServer) Stop(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.server.Stop(ctx)
}

// GetServerURL returns the base URL of the metrics server, or an empty string if disabled.
func (s *MetricsServer) GetServerURL() string {
	if !s.Enabled() {
		return ""
	}
	return s.server.GetServerURL()
}
