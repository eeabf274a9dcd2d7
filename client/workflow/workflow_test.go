package workflow

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
)

type fakeClient struct {
	added   []string
	reject  map[string]error
	devices map[string]*documents.Device
}

func newFakeClient() *fakeClient {
	return &fakeClient{reject: map[string]error{}, devices: map[string]*documents.Device{}}
}

func (f *fakeClient) AddDevice(ctx context.Context, mac string, deviceType models.DeviceType, uplinkMAC string) (*documents.Device, error) {
	if err, ok := f.reject[mac]; ok {
		return nil, err
	}
	f.added = append(f.added, mac)
	doc := &documents.Device{MACAddress: mac, DeviceType: deviceType, UplinkMACAddress: uplinkMAC}
	f.devices[mac] = doc
	return doc, nil
}

func (f *fakeClient) GetDevice(ctx context.Context, mac string) (*documents.Device, error) {
	doc, ok := f.devices[mac]
	if !ok {
		return nil, gerror.NewErrNotFound("Device not found")
	}
	return doc, nil
}

func (f *fakeClient) ListDevices(ctx context.Context) ([]*documents.Device, error) {
	var docs []*documents.Device
	for _, mac := range f.added {
		docs = append(docs, f.devices[mac])
	}
	return docs, nil
}

func (f *fakeClient) GetNetwork(ctx context.Context, mac string) (*documents.NetworkNode, error) {
	doc, err := f.GetDevice(ctx, mac)
	if err != nil {
		return nil, err
	}
	return &documents.NetworkNode{Device: doc, Children: []*documents.NetworkNode{}}, nil
}

func (f *fakeClient) GetFullNetwork(ctx context.Context) ([]*documents.NetworkNode, error) {
	return nil, errors.New("connection refused")
}

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusCreated, StatusCode(nil, http.StatusCreated))
	require.Equal(t, http.StatusNotFound, StatusCode(gerror.NewErrNotFound("nope"), http.StatusOK))
	require.Equal(t, -1, StatusCode(errors.New("connection refused"), http.StatusOK))
}

func TestAddDevicesContinuesAfterRejection(t *testing.T) {
	client := newFakeClient()
	client.reject["B"] = gerror.NewErrCycleDetected("Cycle detected: cannot link node as it would create a cycle.")
	out := &bytes.Buffer{}

	err := AddDevices(context.Background(), client, []Device{
		{MACAddress: "A", DeviceType: models.DeviceTypeGateway},
		{MACAddress: "B", DeviceType: models.DeviceTypeSwitch, UplinkMACAddress: "A"},
		{MACAddress: "C", DeviceType: models.DeviceTypeSwitch, UplinkMACAddress: "A"},
	}, out)
	require.Error(t, err)
	require.True(t, gerror.IsCycleDetected(err))
	require.Equal(t, []string{"A", "C"}, client.added)
	require.Equal(t, "addDevice A response code: 201\naddDevice B response code: 400\naddDevice C response code: 201\n", out.String())
}

func TestRunDemo(t *testing.T) {
	client := newFakeClient()
	out := &bytes.Buffer{}

	err := RunDemo(context.Background(), client, out)
	require.Error(t, err, "full network fails in the fake client")
	require.Contains(t, err.Error(), "error getting full network")
	require.Len(t, client.added, len(DemoDevices))

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "Sample server workflow.", lines[0])
	require.Contains(t, out.String(), "GET device 00:11:AA:BB:44:55 response code: 200")
	require.Contains(t, out.String(), "GET all devices response code: 200")
	require.Contains(t, out.String(), "GET full network response code: -1")
	require.Contains(t, out.String(), "GET switch subtree response code: 200")
	require.Contains(t, out.String(), `"macAddress": "FF:EE:DD:CC:BB:AA"`)
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(`
devices:
  - mac_address: "AA:BB:CC:DD:EE:FF"
    device_type: Gateway
  - mac_address: "00:11:22:33:44:55"
    device_type: Switch
    uplink_mac_address: "AA:BB:CC:DD:EE:FF"
`))
	require.NoError(t, err)
	require.Equal(t, []Device{
		{MACAddress: "AA:BB:CC:DD:EE:FF", DeviceType: models.DeviceTypeGateway},
		{MACAddress: "00:11:22:33:44:55", DeviceType: models.DeviceTypeSwitch, UplinkMACAddress: "AA:BB:CC:DD:EE:FF"},
	}, seed.Devices)

	_, err = ParseSeed([]byte("devices:\n  - mac: AA\n"))
	require.Error(t, err)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(t.TempDir() + "/missing.yaml")
	require.Error(t, err)
}
