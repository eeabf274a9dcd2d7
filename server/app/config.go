package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/server"
	"github.com/gwhitehawk/device-net/server/store"
)

const (
	DefaultAPIServerAddress     = "0.0.0.0:8080"
	DefaultMetricsServerAddress = "0.0.0.0:9090"
)

// LogSafeFlags is a list of flags by name whose values are safe to log.
var LogSafeFlags = []string{
	"api_server_address",
	"api_server_tls_certificate_file",
	"api_server_tls_private_key_file",
	"metrics_server_address",
	"database_driver",
	"database_max_idle_connections",
	"database_max_open_connections",
	"log_levels",
}

type ServerConfig struct {
	APIConfig      server.AppAPIServerConfig
	MetricsConfig  server.MetricsServerConfig
	DatabaseConfig store.DatabaseConfig
	LogLevels      logger.LogLevelConfig
}

// ConfigFromFlags parses the server configuration from command line arguments, excluding the program name.
func ConfigFromFlags(args []string) (*ServerConfig, error) {
	var (
		databaseDriverStr        string
		databaseConnectionString string
		tlsCertificateFile       string
		tlsPrivateKeyFile        string
		logLevels                string
		config                   = &ServerConfig{}
		flags                    = flag.NewFlagSet("device-net-server", flag.ContinueOnError)
	)

	// API
	flags.StringVar(&config.APIConfig.Address, "api_server_address",
		DefaultAPIServerAddress, "The interface and port to bind the API server to.")
	flags.StringVar(&tlsCertificateFile, "api_server_tls_certificate_file",
		"", "The PEM certificate file to serve the API over HTTPS with. Requires api_server_tls_private_key_file.")
	flags.StringVar(&tlsPrivateKeyFile, "api_server_tls_private_key_file",
		"", "The PEM private key file to serve the API over HTTPS with. Requires api_server_tls_certificate_file.")

	// Metrics
	flags.StringVar(&config.MetricsConfig.Address, "metrics_server_address",
		DefaultMetricsServerAddress, "The interface and port to serve Prometheus metrics on. Empty to disable.")

	// Database
	flags.StringVar(&databaseConnectionString, "database_connection_string",
		DefaultSQLiteConnectionString, "The connection string for the database")
	flags.StringVar(&databaseDriverStr, "database_driver",
		string(store.Sqlite), "The Database Driver to use (i.e sqlite3|postgres)")
	flags.IntVar(&config.DatabaseConfig.MaxIdleConnections, "database_max_idle_connections",
		store.DefaultDatabaseMaxIdleConnections, "The maximum number of idle database connections to use")
	flags.IntVar(&config.DatabaseConfig.MaxOpenConnections, "database_max_open_connections",
		store.DefaultDatabaseMaxOpenConnections, "The maximum number of open database connections to use")

	// Misc
	flags.StringVar(&logLevels, "log_levels",
		"", fmt.Sprintf("A comma separated list of name=level pairs where name is the name of the logger and level is one of: %s", logger.ListLogLevels()))

	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}

	// API
	if tlsCertificateFile != "" || tlsPrivateKeyFile != "" {
		if tlsCertificateFile == "" || tlsPrivateKeyFile == "" {
			return nil, errors.New("--api_server_tls_certificate_file and --api_server_tls_private_key_file must be set together")
		}
		config.APIConfig.TLSConfig = &server.TLSConfig{
			CertificateFile: tlsCertificateFile,
			PrivateKeyFile:  tlsPrivateKeyFile,
		}
	}

	// Database
	config.DatabaseConfig.Driver = store.DBDriver(databaseDriverStr)
	switch config.DatabaseConfig.Driver {
	case store.Sqlite, store.Postgres:
	default:
		return nil, fmt.Errorf("--database_driver must be one of %s|%s", store.Sqlite, store.Postgres)
	}
	config.DatabaseConfig.ConnectionString = store.DatabaseConnectionString(databaseConnectionString)

	// Misc
	config.LogLevels = logger.LogLevelConfig(logLevels)

	return config, nil
}
