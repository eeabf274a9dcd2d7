package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogRegistryParsesLevels(t *testing.T) {
	r, err := NewLogRegistry("*=warning,store=debug")
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, r.GetLogLevel("store"))
	require.Equal(t, logrus.WarnLevel, r.GetLogLevel("api"))
}

func TestLogRegistryDefaults(t *testing.T) {
	r, err := NewLogRegistry("")
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, r.GetLogLevel("anything"))
}

func TestLogRegistryRejectsBadConfig(t *testing.T) {
	_, err := NewLogRegistry("store")
	require.Error(t, err)
	_, err = NewLogRegistry("store=loud")
	require.Error(t, err)
}

func TestSetDefaultLevel(t *testing.T) {
	r, err := NewLogRegistry("store=error")
	require.NoError(t, err)
	factory := MakeLogrusLogFactoryStdErrPlain(r)
	api := factory("api").(*LogrusLogger)
	store := factory("store").(*LogrusLogger)

	r.SetDefaultLevel(logrus.DebugLevel)
	require.Equal(t, logrus.DebugLevel, api.Logger.GetLevel())
	require.Equal(t, logrus.ErrorLevel, store.Logger.GetLevel())
	require.Equal(t, logrus.DebugLevel, r.GetLogLevel("new"))
}
