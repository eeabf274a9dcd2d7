package workflow

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gwhitehawk/device-net/common/models"
)

// DemoSubtreeRoot is the device whose subtree the demo prints.
const DemoSubtreeRoot = "00:11:22:33:44:55"

// DemoDevices are added by the demo. The access point is added before its uplink exists, and the
// orphan switch has no uplink at all.
var DemoDevices = []Device{
	{MACAddress: "00:11:AA:BB:44:55", DeviceType: models.DeviceTypeAccessPoint, UplinkMACAddress: "00:11:22:33:44:55"},
	{MACAddress: "00:11:22:33:44:55", DeviceType: models.DeviceTypeSwitch, UplinkMACAddress: "AA:BB:CC:DD:EE:FF"},
	{MACAddress: "AA:BB:CC:DD:EE:FF", DeviceType: models.DeviceTypeGateway},
	{MACAddress: "FF:EE:DD:CC:BB:AA", DeviceType: models.DeviceTypeSwitch},
}

// RunDemo runs the sample workflow against the server: it adds the demo devices, reads each one back,
// lists every device, then prints the full network and the subtree below the demo switch.
// Every step runs even if an earlier one failed; the returned error collects all failures.
func RunDemo(ctx context.Context, client DeviceClient, out io.Writer) error {
	fmt.Fprintln(out, "Sample server workflow.")

	result := AddDevices(ctx, client, DemoDevices, out)

	for _, device := range DemoDevices {
		doc, err := client.GetDevice(ctx, device.MACAddress)
		fmt.Fprintf(out, "GET device %s response code: %d\n", device.MACAddress, StatusCode(err, http.StatusOK))
		if err != nil {
			result = appendError(result, fmt.Errorf("error getting device %s: %w", device.MACAddress, err))
			continue
		}
		if err := PrintJSON(out, doc); err != nil {
			return appendError(result, err)
		}
	}

	list, err := client.ListDevices(ctx)
	fmt.Fprintf(out, "GET all devices response code: %d\n", StatusCode(err, http.StatusOK))
	if err != nil {
		result = appendError(result, fmt.Errorf("error listing devices: %w", err))
	} else if err := PrintJSON(out, list); err != nil {
		return appendError(result, err)
	}

	forest, err := client.GetFullNetwork(ctx)
	fmt.Fprintf(out, "GET full network response code: %d\n", StatusCode(err, http.StatusOK))
	if err != nil {
		result = appendError(result, fmt.Errorf("error getting full network: %w", err))
	} else if err := PrintJSON(out, forest); err != nil {
		return appendError(result, err)
	}

	subtree, err := client.GetNetwork(ctx, DemoSubtreeRoot)
	fmt.Fprintf(out, "GET switch subtree response code: %d\n", StatusCode(err, http.StatusOK))
	if err != nil {
		result = appendError(result, fmt.Errorf("error getting network below %s: %w", DemoSubtreeRoot, err))
	} else if err := PrintJSON(out, subtree); err != nil {
		return appendError(result, err)
	}

	return result
}
