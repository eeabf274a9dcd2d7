//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/google/wire"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/server"
	"github.com/gwhitehawk/device-net/server/metrics"
	"github.com/gwhitehawk/device-net/server/services"
	"github.com/gwhitehawk/device-net/server/services/device"
	"github.com/gwhitehawk/device-net/server/store"
	"github.com/gwhitehawk/device-net/server/store/devices"
	"github.com/gwhitehawk/device-net/server/store/migrations"
)

func New(ctx context.Context, config *ServerConfig) (*Server, func(), error) {
	panic(wire.Build(
		NewServer,
		wire.FieldsOf(new(*ServerConfig), "APIConfig", "MetricsConfig", "DatabaseConfig", "LogLevels"),
		store.NewDatabase,
		migrations.NewDeviceNetMigrateRunner,
		wire.Bind(new(store.MigrationRunner), new(*migrations.GolangMigrateRunner)),

		// Stores
		devices.NewStore,
		wire.Bind(new(store.DeviceStore), new(*devices.DeviceStore)),

		// Services
		device.NewDeviceService,
		wire.Bind(new(services.DeviceService), new(*device.DeviceService)),

		// APIs
		server.NewDeviceAPI,
		server.NewNetworkAPI,

		// HTTP Servers
		server.NewAppAPIServer,
		server.NewAppAPIRouter,
		server.NewMetricsServer,
		server.RealHTTPServerFactory,

		metrics.NewMetrics,
		logger.NewLogRegistry,
		logger.MakeLogrusLogFactoryStdOut,
		clock.New,
	))
}
