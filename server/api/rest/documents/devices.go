package documents

import (
	"net/http"

	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/api/rest/routes"
)

type Device struct {
	baseResourceDocument

	MACAddress       string            `json:"macAddress"`
	DeviceType       models.DeviceType `json:"deviceType"`
	UplinkMACAddress string            `json:"uplinkMacAddress"`
}

func MakeDevice(rctx routes.RequestContext, device *models.Device) *Device {
	return &Device{
		baseResourceDocument: baseResourceDocument{
			URL: routes.MakeDeviceLink(rctx, device.MACAddress),
		},
		MACAddress:       device.MACAddress,
		DeviceType:       device.DeviceType,
		UplinkMACAddress: device.UplinkMACAddress,
	}
}

func MakeDevices(rctx routes.RequestContext, devices []*models.Device) []*Device {
	docs := make([]*Device, 0, len(devices))
	for _, device := range devices {
		docs = append(docs, MakeDevice(rctx, device))
	}
	return docs
}

func (d *Device) GetETag() models.ETag {
	eTag, err := computeETag(d)
	if err != nil {
		return ""
	}
	return eTag
}

// CreateDeviceRequest is the body of a request to add a device. Field validation is left to the
// device service so that errors are reported in a consistent order.
type CreateDeviceRequest struct {
	MACAddress       string            `json:"macAddress"`
	DeviceType       models.DeviceType `json:"deviceType"`
	UplinkMACAddress string            `json:"uplinkMacAddress"`
}

func (d *CreateDeviceRequest) Bind(r *http.Request) error {
	return nil
}

func (d *CreateDeviceRequest) ToModel() *models.Device {
	return models.NewDevice(d.MACAddress, d.DeviceType, d.UplinkMACAddress)
}
