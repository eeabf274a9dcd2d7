package app

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/server"
	"github.com/gwhitehawk/device-net/server/services"
)

type Server struct {
	DeviceService services.DeviceService
	APIServer     *server.AppAPIServer
	MetricsServer *server.MetricsServer
	log           logger.Log
}

func NewServer(
	deviceService services.DeviceService,
	apiServer *server.AppAPIServer,
	metricsServer *server.MetricsServer,
	logFactory logger.LogFactory,
) *Server {
	return &Server{
		DeviceService: deviceService,
		APIServer:     apiServer,
		MetricsServer: metricsServer,
		log:           logFactory("Server"),
	}
}

// Start starts the API and metrics servers. Both servers listen on their own goroutines.
func (s *Server) Start() {
	s.APIServer.Start()
	s.MetricsServer.Start()
}

// Stop gracefully shuts down the API and metrics servers, waiting for in-flight requests
// until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	err := s.APIServer.Stop(ctx)
	if err != nil {
		return errors.Wrap(err, "error stopping API server")
	}
	err = s.MetricsServer.Stop(ctx)
	if err != nil {
		return errors.Wrap(err, "error stopping metrics server")
	}
	s.log.Info("Server shutdown complete")
	return nil
}
