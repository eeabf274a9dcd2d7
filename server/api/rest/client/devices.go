package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
)

// AddDevice adds a device to the network. Returns a gerror.Error carrying the server's error code
// if the device was rejected.
func (a *APIClient) AddDevice(ctx context.Context, mac string, deviceType models.DeviceType, uplinkMAC string) (*documents.Device, error) {
	req := &documents.CreateDeviceRequest{
		MACAddress:       mac,
		DeviceType:       deviceType,
		UplinkMACAddress: uplinkMAC,
	}
	code, _, body, err := a.post(ctx, "/api/devices", req)
	if err != nil {
		return nil, fmt.Errorf("error in request: %w", err)
	}
	if !a.isOneOf(code, http.StatusOK, http.StatusCreated) {
		return nil, a.makeHTTPError(code, body)
	}
	doc := &documents.Device{}
	if err := decode(body, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetDevice reads a device by MAC address.
func (a *APIClient) GetDevice(ctx context.Context, mac string) (*documents.Device, error) {
	code, _, body, err := a.get(ctx, fmt.Sprintf("/api/devices/%s", url.PathEscape(mac)))
	if err != nil {
		return nil, fmt.Errorf("error in request: %w", err)
	}
	if !a.isOneOf(code, http.StatusOK) {
		return nil, a.makeHTTPError(code, body)
	}
	doc := &documents.Device{}
	if err := decode(body, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDevices lists every device, access points first and gateways last.
func (a *APIClient) ListDevices(ctx context.Context) ([]*documents.Device, error) {
	code, _, body, err := a.get(ctx, "/api/devices")
	if err != nil {
		return nil, fmt.Errorf("error in request: %w", err)
	}
	if !a.isOneOf(code, http.StatusOK) {
		return nil, a.makeHTTPError(code, body)
	}
	var docs []*documents.Device
	if err := decode(body, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
