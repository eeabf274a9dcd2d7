package server

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
	"github.com/gwhitehawk/device-net/server/api/rest/routes"
	"github.com/gwhitehawk/device-net/server/services"
)

type DeviceAPI struct {
	deviceService services.DeviceService
	*APIBase
}

func NewDeviceAPI(deviceService services.DeviceService, logFactory logger.LogFactory) *DeviceAPI {
	return &DeviceAPI{
		deviceService: deviceService,
		APIBase:       NewAPIBase(logFactory("DeviceAPI")),
	}
}

func (a *DeviceAPI) Create(w http.ResponseWriter, r *http.Request) {
	req := &documents.CreateDeviceRequest{}
	err := render.Bind(r, req)
	if err != nil {
		a.Error(w, r, gerror.NewErrValidationFailed("Invalid request body").Wrap(err))
		return
	}
	device, err := a.deviceService.Add(r.Context(), nil, req.ToModel())
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.CreatedResource(w, r, documents.MakeDevice(routes.RequestCtx(r), device))
}

func (a *DeviceAPI) Get(w http.ResponseWriter, r *http.Request) {
	mac, err := routes.MACAddressParam(r)
	if err != nil {
		a.Error(w, r, gerror.NewErrNotFound("Not Found").Wrap(err))
		return
	}
	device, err := a.deviceService.Read(r.Context(), nil, mac)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.GotResource(w, r, documents.MakeDevice(routes.RequestCtx(r), device))
}

func (a *DeviceAPI) List(w http.ResponseWriter, r *http.Request) {
	devices, err := a.deviceService.List(r.Context(), nil)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.GotList(w, r, documents.MakeDevices(routes.RequestCtx(r), devices))
}
