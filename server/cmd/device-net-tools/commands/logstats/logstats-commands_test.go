package logstats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("a 1 2 x\nb 1 2 y\n"), 0644))

	lines, err := readLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a 1 2 x", "b 1 2 y"}, lines)

	_, err = readLines(filepath.Join(t.TempDir(), "missing.log"))
	require.Error(t, err)
}
