package routes

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

const MACAddressURLParam = "mac_address"

func MakeDevicesLink(rctx RequestContext) string {
	return fmt.Sprintf("%s/api/devices", rctx.BaseURL())
}

func MakeDeviceLink(rctx RequestContext, mac string) string {
	return fmt.Sprintf("%s/%s", MakeDevicesLink(rctx), url.PathEscape(mac))
}

func MakeNetworkLink(rctx RequestContext) string {
	return fmt.Sprintf("%s/api/network", rctx.BaseURL())
}

func MakeNetworkNodeLink(rctx RequestContext, mac string) string {
	return fmt.Sprintf("%s/%s", MakeNetworkLink(rctx), url.PathEscape(mac))
}

// MACAddressParam returns the unescaped MAC address from the request URL.
// chi routes on the raw path only when the URL carries one; otherwise the param is already decoded.
func MACAddressParam(r *http.Request) (string, error) {
	param := chi.URLParam(r, MACAddressURLParam)
	if r.URL.RawPath == "" {
		return param, nil
	}
	mac, err := url.PathUnescape(param)
	if err != nil {
		return "", errors.Wrapf(err, "error unescaping MAC address %q", param)
	}
	return mac, nil
}
