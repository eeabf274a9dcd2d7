package migrate

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/server/store/migrations"
)

func TestParseVersion(t *testing.T) {
	version, err := parseVersion("1")
	require.NoError(t, err)
	require.Equal(t, uint(1), version)

	latest := migrations.DeviceNetMigrations.LatestVersion()
	version, err = parseVersion(strconv.Itoa(int(latest)))
	require.NoError(t, err)
	require.Equal(t, latest, version)

	for _, arg := range []string{"0", "-1", "abc", "", strconv.Itoa(int(latest) + 1)} {
		_, err := parseVersion(arg)
		require.Error(t, err, "expected error for %q", arg)
	}
}
