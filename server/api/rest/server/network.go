package server

import (
	"net/http"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
	"github.com/gwhitehawk/device-net/server/api/rest/routes"
	"github.com/gwhitehawk/device-net/server/services"
)

type NetworkAPI struct {
	deviceService services.DeviceService
	*APIBase
}

func NewNetworkAPI(deviceService services.DeviceService, logFactory logger.LogFactory) *NetworkAPI {
	return &NetworkAPI{
		deviceService: deviceService,
		APIBase:       NewAPIBase(logFactory("NetworkAPI")),
	}
}

// GetFull returns one tree per root device.
func (a *NetworkAPI) GetFull(w http.ResponseWriter, r *http.Request) {
	forest, err := a.deviceService.GetFullNetwork(r.Context(), nil)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.GotList(w, r, documents.MakeNetwork(routes.RequestCtx(r), forest))
}

// Get returns the subtree rooted at the device named in the URL.
func (a *NetworkAPI) Get(w http.ResponseWriter, r *http.Request) {
	mac, err := routes.MACAddressParam(r)
	if err != nil {
		a.Error(w, r, gerror.NewErrNotFound("Not Found").Wrap(err))
		return
	}
	node, err := a.deviceService.GetNetwork(r.Context(), nil, mac)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.GotResource(w, r, documents.MakeNetworkNode(routes.RequestCtx(r), node))
}
