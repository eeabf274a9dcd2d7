package commands

import (
	"github.com/spf13/cobra"

	"github.com/gwhitehawk/device-net/client/workflow"
)

func init() {
	RootCmd.AddCommand(seedCmd)
	RootCmd.AddCommand(demoCmd)
}

var seedCmd = &cobra.Command{
	Use:           "seed <file.yaml>",
	Short:         "Adds every device listed in a YAML seed file, in order",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := workflow.LoadSeedFile(args[0])
		if err != nil {
			return err
		}
		apiClient, err := NewAPIClient()
		if err != nil {
			return err
		}
		return workflow.AddDevices(cmd.Context(), apiClient, seed.Devices, cmd.OutOrStdout())
	},
}

var demoCmd = &cobra.Command{
	Use:           "demo",
	Short:         "Runs the sample workflow against the server",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := NewAPIClient()
		if err != nil {
			return err
		}
		return workflow.RunDemo(cmd.Context(), apiClient, cmd.OutOrStdout())
	},
}
