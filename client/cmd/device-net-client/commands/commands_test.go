package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
	"github.com/gwhitehawk/device-net/server/integration_tests"
)

// resetFlags puts every flag of cmd and its subcommands back to its default, unset state so that
// each execution of the root command starts from scratch.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// isolateEnv points the config search at an empty home directory and clears the endpoint variable.
func isolateEnv(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEVICE_NET_ENDPOINT", "")
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)
	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetErr(out)
	RootCmd.SetArgs(args)
	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEndpointPrecedence(t *testing.T) {
	home := isolateEnv(t)

	// add without --mac/--type fails after the config is loaded, without touching the network
	_, err := execute(t, "add")
	require.Error(t, err)
	require.Contains(t, err.Error(), "required flag")
	require.Equal(t, DefaultEndpoint, Endpoint())

	require.NoError(t, os.WriteFile(filepath.Join(home, ".device-net.yaml"), []byte("endpoint: http://from-config:1\n"), 0644))
	_, err = execute(t, "add")
	require.Error(t, err)
	require.Equal(t, "http://from-config:1", Endpoint())

	t.Setenv("DEVICE_NET_ENDPOINT", "http://from-env:2")
	_, err = execute(t, "add")
	require.Error(t, err)
	require.Equal(t, "http://from-env:2", Endpoint())

	_, err = execute(t, "add", "--endpoint", "http://from-flag:3")
	require.Error(t, err)
	require.Equal(t, "http://from-flag:3", Endpoint())

	t.Setenv("DEVICE_NET_ENDPOINT", "")
	other := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("endpoint: http://from-other-config:4\n"), 0644))
	_, err = execute(t, "add", "--config", other)
	require.Error(t, err)
	require.Equal(t, "http://from-other-config:4", Endpoint())
}

func TestAddRequiresMACAndType(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "add", "--type", "Switch")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"mac"`)

	_, err = execute(t, "add", "--mac", "AA:BB:CC:DD:EE:FF")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"type"`)
}

func TestDeviceCommands(t *testing.T) {
	isolateEnv(t)
	app, _ := integration_tests.StartTestServer(t)
	endpoint := app.APIServer.GetServerURL()

	out, err := execute(t, "add", "--endpoint", endpoint, "--mac", "AA:BB:CC:DD:EE:FF", "--type", "Gateway")
	require.NoError(t, err, out)
	device := &documents.Device{}
	require.NoError(t, json.Unmarshal([]byte(out), device))
	require.Equal(t, "AA:BB:CC:DD:EE:FF", device.MACAddress)

	out, err = execute(t, "add", "--endpoint", endpoint, "--mac", "00:11:22:33:44:55", "--type", "Switch", "--uplink", "AA:BB:CC:DD:EE:FF")
	require.NoError(t, err, out)

	_, err = execute(t, "add", "--endpoint", endpoint, "--mac", "AA:BB:CC:DD:EE:FF", "--type", "Gateway", "--uplink", "00:11:22:33:44:55")
	require.True(t, gerror.IsAlreadyExists(err), "unexpected error: %v", err)

	out, err = execute(t, "get", "--endpoint", endpoint, "00:11:22:33:44:55")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), device))
	require.Equal(t, "AA:BB:CC:DD:EE:FF", device.UplinkMACAddress)

	_, err = execute(t, "get", "--endpoint", endpoint, "11:11:11:11:11:11")
	require.True(t, gerror.IsNotFound(err), "unexpected error: %v", err)

	out, err = execute(t, "list", "--endpoint", endpoint)
	require.NoError(t, err, out)
	var list []*documents.Device
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 2)
	require.Equal(t, "00:11:22:33:44:55", list[0].MACAddress)

	out, err = execute(t, "network", "--endpoint", endpoint)
	require.NoError(t, err, out)
	var forest []*documents.NetworkNode
	require.NoError(t, json.Unmarshal([]byte(out), &forest))
	require.Len(t, forest, 1)
	require.Equal(t, "AA:BB:CC:DD:EE:FF", forest[0].Device.MACAddress)
	require.Len(t, forest[0].Children, 1)

	out, err = execute(t, "network", "--endpoint", endpoint, "00:11:22:33:44:55")
	require.NoError(t, err, out)
	node := &documents.NetworkNode{}
	require.NoError(t, json.Unmarshal([]byte(out), node))
	require.Equal(t, "00:11:22:33:44:55", node.Device.MACAddress)
	require.True(t, node.HasParent)
	require.Empty(t, node.Children)

	_, err = execute(t, "network", "--endpoint", endpoint, "a", "b")
	require.Error(t, err)
}

func TestSeedAndDemoCommands(t *testing.T) {
	isolateEnv(t)

	app, _ := integration_tests.StartTestServer(t)
	t.Setenv("DEVICE_NET_ENDPOINT", app.APIServer.GetServerURL())

	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(strings.Join([]string{
		"devices:",
		`  - mac_address: "10:00:00:00:00:01"`,
		"    device_type: Gateway",
		`  - mac_address: "10:00:00:00:00:02"`,
		"    device_type: Router",
		"",
	}, "\n")), 0644))
	out, err := execute(t, "seed", seed)
	require.Error(t, err)
	require.Contains(t, out, "addDevice 10:00:00:00:00:01 response code: 201")
	require.Contains(t, out, "addDevice 10:00:00:00:00:02 response code: 400")

	out, err = execute(t, "demo")
	require.NoError(t, err, out)
	require.True(t, strings.HasPrefix(out, "Sample server workflow.\n"), out)
	require.Contains(t, out, "addDevice 00:11:AA:BB:44:55 response code: 201")
	require.Contains(t, out, "GET full network response code: 200")
	require.Contains(t, out, "GET switch subtree response code: 200")
}
