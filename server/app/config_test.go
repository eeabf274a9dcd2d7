package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/store"
)

func TestConfigFromFlagsDefaults(t *testing.T) {
	config, err := ConfigFromFlags(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultAPIServerAddress, config.APIConfig.Address)
	require.Nil(t, config.APIConfig.TLSConfig)
	require.Equal(t, DefaultMetricsServerAddress, config.MetricsConfig.Address)
	require.Equal(t, store.Sqlite, config.DatabaseConfig.Driver)
	require.Equal(t, store.DatabaseConnectionString(DefaultSQLiteConnectionString), config.DatabaseConfig.ConnectionString)
	require.Equal(t, store.DefaultDatabaseMaxIdleConnections, config.DatabaseConfig.MaxIdleConnections)
	require.Equal(t, store.DefaultDatabaseMaxOpenConnections, config.DatabaseConfig.MaxOpenConnections)
	require.Equal(t, logger.LogLevelConfig(""), config.LogLevels)
}

func TestConfigFromFlags(t *testing.T) {
	config, err := ConfigFromFlags([]string{
		"--api_server_address", "127.0.0.1:9000",
		"--metrics_server_address=",
		"--database_driver", "postgres",
		"--database_connection_string", "postgres://localhost/devices",
		"--database_max_open_connections", "10",
		"--log_levels", "*=debug",
		"--api_server_tls_certificate_file", "cert.pem",
		"--api_server_tls_private_key_file", "key.pem",
	})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", config.APIConfig.Address)
	require.Equal(t, "", config.MetricsConfig.Address)
	require.Equal(t, store.Postgres, config.DatabaseConfig.Driver)
	require.Equal(t, store.DatabaseConnectionString("postgres://localhost/devices"), config.DatabaseConfig.ConnectionString)
	require.Equal(t, 10, config.DatabaseConfig.MaxOpenConnections)
	require.Equal(t, logger.LogLevelConfig("*=debug"), config.LogLevels)
	require.NotNil(t, config.APIConfig.TLSConfig)
	require.Equal(t, "cert.pem", config.APIConfig.TLSConfig.CertificateFile)
}

func TestConfigFromFlagsErrors(t *testing.T) {
	_, err := ConfigFromFlags([]string{"--database_driver", "mysql"})
	require.Error(t, err)

	_, err = ConfigFromFlags([]string{"--api_server_tls_certificate_file", "cert.pem"})
	require.Error(t, err)

	_, err = ConfigFromFlags([]string{"--no_such_flag"})
	require.Error(t, err)
}
