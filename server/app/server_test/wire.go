//go:build wireinject
// +build wireinject

package server_test

import (
	"github.com/benbjohnson/clock"
	"github.com/google/wire"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/server"
	"github.com/gwhitehawk/device-net/server/api/rest/server/servertest"
	"github.com/gwhitehawk/device-net/server/app"
	"github.com/gwhitehawk/device-net/server/metrics"
	"github.com/gwhitehawk/device-net/server/services"
	"github.com/gwhitehawk/device-net/server/services/device"
	"github.com/gwhitehawk/device-net/server/store"
	"github.com/gwhitehawk/device-net/server/store/devices"
	"github.com/gwhitehawk/device-net/server/store/store_test"
)

func New(config *app.ServerConfig) (*TestServer, func(), error) {
	panic(wire.Build(
		NewTestServer,
		wire.FieldsOf(new(*app.ServerConfig), "APIConfig", "MetricsConfig", "LogLevels"),
		store_test.Connect,

		devices.NewStore,
		wire.Bind(new(store.DeviceStore), new(*devices.DeviceStore)),

		device.NewDeviceService,
		wire.Bind(new(services.DeviceService), new(*device.DeviceService)),

		server.NewDeviceAPI,
		server.NewNetworkAPI,
		server.NewAppAPIServer,
		server.NewAppAPIRouter,
		server.NewMetricsServer,
		servertest.HTTPTestServerFactory,

		metrics.NewMetrics,
		logger.NewLogRegistry,
		logger.MakeLogrusLogFactoryStdOut,
		clock.New,
	))
}
