package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/common/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewAPIClient([]string{server.URL + "/"}, logger.NoOpLogFactory)
	require.NoError(t, err)
	client.SetRetryMax(0)
	return client
}

func TestNewAPIClientRequiresEndpoint(t *testing.T) {
	_, err := NewAPIClient(nil, logger.NoOpLogFactory)
	require.Error(t, err)
}

func TestAddDeviceDecodesErrorDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/devices", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"CycleDetected","http_status_code":400,"message":"Cycle detected: cannot link node as it would create a cycle.","details":{"mac_address":"A"}}`))
	})

	_, err := client.AddDevice(context.Background(), "A", models.DeviceTypeSwitch, "B")
	require.Error(t, err)
	require.True(t, gerror.IsCycleDetected(err))
	gErr, ok := gerror.As(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, gErr.HTTPStatusCode())
	require.Equal(t, "Cycle detected: cannot link node as it would create a cycle.", gErr.Message())
	require.Equal(t, "A", gErr.Details()["mac_address"].Value())
}

func TestGetDeviceUnstructuredError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/devices/AA:BB", r.URL.Path)
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	_, err := client.GetDevice(context.Background(), "AA:BB")
	require.Error(t, err)
	require.True(t, gerror.IsHttpOperationFailed(err))
	require.True(t, gerror.HasHTTPStatusCode(err, http.StatusTeapot))
	require.Contains(t, err.Error(), "short and stout")
}

func TestListDevices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"url":"http://x/api/devices/A","macAddress":"A","deviceType":"Access Point","uplinkMacAddress":""}]`))
	})

	docs, err := client.ListDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "A", docs[0].MACAddress)
	require.Equal(t, models.DeviceTypeAccessPoint, docs[0].DeviceType)
	require.Equal(t, "http://x/api/devices/A", docs[0].GetLink())
}

func TestConvertMsg(t *testing.T) {
	require.Equal(t, "retrying", convertMsg("retrying", nil))
	require.Equal(t, "retrying: method=GET url=/x remaining", convertMsg("retrying", []interface{}{"method", "GET", "url", "/x", "remaining"}))
}

func TestRetriesOnlyIdempotentRequests(t *testing.T) {
	var posts, gets int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			atomic.AddInt32(&posts, 1)
		case http.MethodGet:
			atomic.AddInt32(&gets, 1)
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	client.SetRetryMax(2)
	client.retryableClient.RetryWaitMin = time.Millisecond
	client.retryableClient.RetryWaitMax = time.Millisecond

	_, err := client.AddDevice(context.Background(), "AA", models.DeviceTypeGateway, "")
	require.Error(t, err)
	require.True(t, gerror.HasHTTPStatusCode(err, http.StatusServiceUnavailable))
	require.Equal(t, int32(1), atomic.LoadInt32(&posts))

	_, err = client.GetDevice(context.Background(), "AA")
	require.Error(t, err)
	require.Equal(t, int32(3), atomic.LoadInt32(&gets))
}
