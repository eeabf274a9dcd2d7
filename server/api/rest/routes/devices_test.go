package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example.com:8080/api/devices", nil)
	rctx := RequestCtx(r)
	require.Equal(t, "http://example.com:8080", rctx.BaseURL())
	require.Equal(t, "http://example.com:8080/api/devices/AA:BB:CC:DD:EE:FF", MakeDeviceLink(rctx, "AA:BB:CC:DD:EE:FF"))
	require.Equal(t, "http://example.com:8080/api/network/AA:BB", MakeNetworkNodeLink(rctx, "AA:BB"))
	require.Equal(t, "http://example.com:8080/api/devices/a%2Fb", MakeDeviceLink(rctx, "a/b"))
}

func TestForwardedRequestContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://internal/api/devices", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Forwarded-Host", "devices.example.com")
	require.Equal(t, "https://devices.example.com", RequestCtx(r).BaseURL())
}

func withMACParam(r *http.Request, param string) *http.Request {
	chiCtx := chi.NewRouteContext()
	chiCtx.URLParams.Add(MACAddressURLParam, param)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, chiCtx))
}

func TestMACAddressParam(t *testing.T) {
	// Escaped slash: the URL keeps a raw path and chi routes on it
	r := httptest.NewRequest(http.MethodGet, "http://example.com/api/devices/a%2Fb", nil)
	require.NotEmpty(t, r.URL.RawPath)
	mac, err := MACAddressParam(withMACParam(r, "a%2Fb"))
	require.NoError(t, err)
	require.Equal(t, "a/b", mac)

	// No raw path: chi routes on the decoded path, so the param must not be decoded again
	r = httptest.NewRequest(http.MethodGet, "http://example.com/api/devices/A%2541", nil)
	require.Empty(t, r.URL.RawPath)
	mac, err = MACAddressParam(withMACParam(r, "A%41"))
	require.NoError(t, err)
	require.Equal(t, "A%41", mac)
}
