package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwhitehawk/device-net/client/workflow"
	"github.com/gwhitehawk/device-net/common/models"
)

var addCmdConfig = struct {
	mac    string
	typ    string
	uplink string
}{}

func init() {
	addCmd.Flags().StringVar(&addCmdConfig.mac, "mac", "", "MAC address of the device to add")
	addCmd.Flags().StringVar(&addCmdConfig.typ, "type", "", `Device type ("Access Point", "Switch" or "Gateway")`)
	addCmd.Flags().StringVar(&addCmdConfig.uplink, "uplink", "", "MAC address of the device's uplink, if any")
	if err := addCmd.MarkFlagRequired("mac"); err != nil {
		panic(err)
	}
	if err := addCmd.MarkFlagRequired("type"); err != nil {
		panic(err)
	}

	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(networkCmd)
}

var addCmd = &cobra.Command{
	Use:           "add --mac <mac> --type <type> [--uplink <mac>]",
	Short:         "Adds a device to the network",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := NewAPIClient()
		if err != nil {
			return err
		}
		device, err := apiClient.AddDevice(cmd.Context(), addCmdConfig.mac, models.DeviceType(addCmdConfig.typ), addCmdConfig.uplink)
		if err != nil {
			return fmt.Errorf("error adding device: %w", err)
		}
		return workflow.PrintJSON(cmd.OutOrStdout(), device)
	},
}

var getCmd = &cobra.Command{
	Use:           "get <mac>",
	Short:         "Gets a single device by MAC address",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := NewAPIClient()
		if err != nil {
			return err
		}
		device, err := apiClient.GetDevice(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("error getting device: %w", err)
		}
		return workflow.PrintJSON(cmd.OutOrStdout(), device)
	},
}

var listCmd = &cobra.Command{
	Use:           "list",
	Short:         "Lists all devices, ordered by device type then MAC address",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := NewAPIClient()
		if err != nil {
			return err
		}
		devices, err := apiClient.ListDevices(cmd.Context())
		if err != nil {
			return fmt.Errorf("error listing devices: %w", err)
		}
		return workflow.PrintJSON(cmd.OutOrStdout(), devices)
	},
}

var networkCmd = &cobra.Command{
	Use:           "network [mac]",
	Short:         "Prints the full network topology, or the subtree below a single device",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := NewAPIClient()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			node, err := apiClient.GetNetwork(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error getting network: %w", err)
			}
			return workflow.PrintJSON(cmd.OutOrStdout(), node)
		}
		forest, err := apiClient.GetFullNetwork(cmd.Context())
		if err != nil {
			return fmt.Errorf("error getting network: %w", err)
		}
		return workflow.PrintJSON(cmd.OutOrStdout(), forest)
	},
}
