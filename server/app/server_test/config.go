package server_test

import (
	"testing"

	"github.com/gwhitehawk/device-net/server/api/rest/server"
	"github.com/gwhitehawk/device-net/server/app"
)

// testServerAddress is a placeholder; httptest servers pick their own address.
const testServerAddress = "127.0.0.1:0"

func TestConfig(t *testing.T) *app.ServerConfig {
	return &app.ServerConfig{
		APIConfig: server.AppAPIServerConfig{
			HTTPServerConfig: server.HTTPServerConfig{Address: testServerAddress},
		},
		MetricsConfig: server.MetricsServerConfig{
			HTTPServerConfig: server.HTTPServerConfig{Address: testServerAddress},
		},
		LogLevels: "*=warning",
	}
}
