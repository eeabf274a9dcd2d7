package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gwhitehawk/device-net/client/cmd/device-net-client/cli"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/common/version"
	"github.com/gwhitehawk/device-net/server/api/rest/client"
)

const (
	DefaultConfigDir = "$HOME/"
	ConfigFileName   = ".device-net"
	EnvPrefix        = "DEVICE_NET"
	DefaultEndpoint  = "http://localhost:8080"

	endpointKey = "endpoint"
)

var (
	defaultConfigFilePath = fmt.Sprintf("%s%s.yaml", DefaultConfigDir, ConfigFileName)
)

type GlobalConfig struct {
	Debug          bool
	ConfigFilePath string
}

var Global = &GlobalConfig{}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(
		&Global.ConfigFilePath,
		"config",
		"c",
		defaultConfigFilePath,
		"The config file to use when executing commands.")

	RootCmd.PersistentFlags().BoolVarP(
		&Global.Debug,
		"debug",
		"d",
		false,
		"Enable verbose debug output.")

	RootCmd.PersistentFlags().StringP(
		endpointKey,
		"e",
		DefaultEndpoint,
		"The base URL of the device-net server.")
}

// config holds the settings resolved from flags, environment and config file. It is rebuilt by initConfig
// each time the root command executes.
var config = viper.New()

// bindFlag makes the named flag the highest priority source for the config key of the same name.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key string, defaultValue interface{}) {
	if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
		panic(err)
	}
	v.SetDefault(key, defaultValue)
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cli.Exit(RootCmd.ExecuteContext(context.Background()))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config = viper.New()
	bindFlag(config, RootCmd.PersistentFlags(), endpointKey, DefaultEndpoint)

	if Global.ConfigFilePath != "" && Global.ConfigFilePath != defaultConfigFilePath {
		config.SetConfigFile(Global.ConfigFilePath)
	} else {
		config.SetConfigName(ConfigFileName)
		config.AddConfigPath(DefaultConfigDir)
		config.AddConfigPath(".")
	}

	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	// If a config file is found, read it in.
	err := config.ReadInConfig()
	if err == nil {
		if Global.Debug {
			cli.Stderr.Printf("Using config file: %s", config.ConfigFileUsed())
		}
	} else {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
		default:
			cli.Exit(fmt.Errorf("error loading config file (%s): %s", config.ConfigFileUsed(), err))
		}
	}
}

// Endpoint returns the base URL of the server, taken from the --endpoint flag, the DEVICE_NET_ENDPOINT
// environment variable or the config file, in that order of precedence.
func Endpoint() string {
	return config.GetString(endpointKey)
}

// NewAPIClient returns a client for the configured server endpoint.
func NewAPIClient() (*client.APIClient, error) {
	levels := logger.LogLevelConfig("*=warning")
	if Global.Debug {
		levels = "*=debug"
	}
	logRegistry, err := logger.NewLogRegistry(levels)
	if err != nil {
		return nil, err
	}
	logFactory := logger.MakeLogrusLogFactoryStdErrPlain(logRegistry)
	return client.NewAPIClient([]string{Endpoint()}, logFactory)
}

var RootCmd = &cobra.Command{
	Use:     "device-net-client",
	Short:   "device-net client",
	Long:    `Command line client for the device-net server: add, read and list devices and view the network topology.`,
	Version: version.VersionToString(),
}
