package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterOSArgs(t *testing.T) {
	allowed := []string{
		"api_server_address",
		"database_driver",
	}
	in := []string{
		"/usr/bin/device-net-server",
		"--api_server_address",
		"0.0.0.0:8080",
		"--database_driver",
		"postgres",
		"--database_connection_string",
		"postgres://user:secret@db/devices",
		"-database_connection_string=postgres://user:secret@db/devices",
		"--database_driver=sqlite3",
	}
	out := FilterOSArgs(in, allowed)
	require.Equal(t, []string{
		"/usr/bin/device-net-server",
		"--api_server_address",
		"0.0.0.0:8080",
		"--database_driver",
		"postgres",
		"--database_connection_string",
		"*********************************",
		"-database_connection_string=*********************************",
		"--database_driver=sqlite3",
	}, out)
}

func TestFilterOSArgsBooleanFlag(t *testing.T) {
	// A trailing unknown flag with no value must not panic or mask anything.
	out := FilterOSArgs([]string{"prog", "--verbose"}, nil)
	require.Equal(t, []string{"prog", "--verbose"}, out)
}
