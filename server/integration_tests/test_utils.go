package integration_tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/server/api/rest/client"
	"github.com/gwhitehawk/device-net/server/app/server_test"
)

const serverStopTimeout = 10 * time.Second

// StartTestServer starts the API and metrics servers of a fresh test server, and returns the
// server together with a REST client pointed at it that does not retry. Both servers are stopped
// when the test finishes.
func StartTestServer(t *testing.T) (*server_test.TestServer, *client.APIClient) {
	app, cleanup, err := server_test.New(server_test.TestConfig(t))
	require.NoError(t, err)
	t.Cleanup(cleanup)

	app.APIServer.Start()
	app.MetricsServer.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), serverStopTimeout)
		defer cancel()
		require.NoError(t, app.APIServer.Stop(ctx))
		require.NoError(t, app.MetricsServer.Stop(ctx))
	})

	apiClient, err := client.NewAPIClient([]string{app.APIServer.GetServerURL()}, app.LogFactory)
	require.NoError(t, err)
	apiClient.SetRetryMax(0)
	return app, apiClient
}
