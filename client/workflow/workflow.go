package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
)

// DeviceClient is the subset of the REST API client used by workflows.
type DeviceClient interface {
	AddDevice(ctx context.Context, mac string, deviceType models.DeviceType, uplinkMAC string) (*documents.Device, error)
	GetDevice(ctx context.Context, mac string) (*documents.Device, error)
	ListDevices(ctx context.Context) ([]*documents.Device, error)
	GetNetwork(ctx context.Context, mac string) (*documents.NetworkNode, error)
	GetFullNetwork(ctx context.Context) ([]*documents.NetworkNode, error)
}

// Device is a device to add to the network, as described in a seed file.
type Device struct {
	MACAddress       string            `yaml:"mac_address"`
	DeviceType       models.DeviceType `yaml:"device_type"`
	UplinkMACAddress string            `yaml:"uplink_mac_address"`
}

// StatusCode returns the HTTP status code a request finished with: successCode if err is nil,
// the code carried by err if known, or -1 if the request never received a response.
func StatusCode(err error, successCode int) int {
	if err == nil {
		return successCode
	}
	if gErr, ok := gerror.As(err); ok && gErr.HTTPStatusCode() > 0 {
		return gErr.HTTPStatusCode()
	}
	return -1
}

// PrintJSON writes v to out as indented JSON followed by a newline.
func PrintJSON(out io.Writer, v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(buf))
	return err
}

// AddDevices adds each device in order, printing the response code for each. Devices that are rejected
// do not stop the remaining devices being added; the returned error lists every rejection.
func AddDevices(ctx context.Context, client DeviceClient, devices []Device, out io.Writer) error {
	var result error
	for _, device := range devices {
		_, err := client.AddDevice(ctx, device.MACAddress, device.DeviceType, device.UplinkMACAddress)
		fmt.Fprintf(out, "addDevice %s response code: %d\n", device.MACAddress, StatusCode(err, http.StatusCreated))
		if err != nil {
			result = appendError(result, fmt.Errorf("error adding device %s: %w", device.MACAddress, err))
		}
	}
	return result
}
