package commands

import (
	"github.com/spf13/cobra"

	"github.com/gwhitehawk/device-net/common/version"
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/cli"
)

type GlobalConfig struct {
	Debug bool
}

var Global = &GlobalConfig{}

func init() {
	RootCmd.PersistentFlags().BoolVarP(
		&Global.Debug,
		"debug",
		"d",
		false,
		"Enable debug-level log output.")
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cli.Exit(RootCmd.Execute())
}

// LogLevels returns the log level configuration selected by the global flags.
func LogLevels() string {
	if Global.Debug {
		return "*=debug"
	}
	return ""
}

var RootCmd = &cobra.Command{
	Use:     "device-net-tools command",
	Short:   "device-net tools",
	Long:    `Administrative tools for the device-net server: database migrations and log statistics.`,
	Version: version.VersionToString(),
}
