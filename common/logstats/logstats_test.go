package logstats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMostCommonByKey(t *testing.T) {
	lines := []string{
		"alice 2024-01-01 12:00 ERROR disk",
		"alice 2024-01-01 12:01 WARN disk",
		"alice 2024-01-01 12:02 ERROR net",
		"bob 2024-01-01 12:03 INFO boot",
	}
	result, err := MostCommonByKey(lines)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, Pair{Value: "ERROR", Count: 2}, result["alice"])
	require.Equal(t, Pair{Value: "INFO", Count: 1}, result["bob"])
}

func TestMostCommonByKeyTieBreak(t *testing.T) {
	lines := []string{
		"carol a b WARN",
		"carol a b ERROR",
		"carol a b WARN",
		"carol a b ERROR",
	}
	result, err := MostCommonByKey(lines)
	require.NoError(t, err)
	require.Equal(t, Pair{Value: "ERROR", Count: 2}, result["carol"])
}

func TestMostCommonByKeyEmpty(t *testing.T) {
	result, err := MostCommonByKey(nil)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestMostCommonByKeyShortLine(t *testing.T) {
	_, err := MostCommonByKey([]string{"alice a b ERROR", "bob a b"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")

	_, err = MostCommonByKey([]string{"alice a b   "})
	require.Error(t, err)
}

func TestMostCommonByKeyRepeatedSpaces(t *testing.T) {
	// Consecutive spaces produce empty fields, so the value here is field 3 counting the empty one.
	result, err := MostCommonByKey([]string{"dave  x ERROR y"})
	require.NoError(t, err)
	require.Equal(t, Pair{Value: "ERROR", Count: 1}, result["dave"])
}

func TestPairString(t *testing.T) {
	require.Equal(t, "(ERROR, 3)", Pair{Value: "ERROR", Count: 3}.String())
}
