package server_test

import (
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/server"
	"github.com/gwhitehawk/device-net/server/metrics"
	"github.com/gwhitehawk/device-net/server/services"
	"github.com/gwhitehawk/device-net/server/store"
)

// TestServer is a fully wired server backed by a test database and httptest servers.
type TestServer struct {
	DB            *store.DB
	DeviceStore   store.DeviceStore
	DeviceService services.DeviceService
	Metrics       *metrics.Metrics
	LogFactory    logger.LogFactory

	APIServer     *server.AppAPIServer
	MetricsServer *server.MetricsServer
}

func NewTestServer(
	db *store.DB,
	deviceStore store.DeviceStore,
	deviceService services.DeviceService,
	metrics *metrics.Metrics,
	logFactory logger.LogFactory,
	apiServer *server.AppAPIServer,
	metricsServer *server.MetricsServer,
) *TestServer {
	return &TestServer{
		DB:            db,
		DeviceStore:   deviceStore,
		DeviceService: deviceService,
		Metrics:       metrics,
		LogFactory:    logFactory,
		APIServer:     apiServer,
		MetricsServer: metricsServer,
	}
}
