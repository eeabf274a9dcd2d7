package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandlerUsesRoutePattern(t *testing.T) {
	m := NewMetrics()
	r := chi.NewRouter()
	r.Use(m.InstrumentHandler)
	r.Get("/api/devices/{mac}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/devices/AA:BB", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	require.Equal(t, float64(2), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/devices/{mac}", "404")))
}

func TestDeviceCounters(t *testing.T) {
	m := NewMetrics()
	m.DeviceAdded("Gateway")
	m.DeviceAdded("Gateway")
	m.DeviceRejected("CycleDetected")
	m.DeviceRejected("")

	require.Equal(t, float64(2), testutil.ToFloat64(m.devicesAdded.WithLabelValues("Gateway")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.deviceRejections.WithLabelValues("unknown")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "device_net_devices_added_total"))
}
