package devices

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/app"
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/cli"
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/commands"
	"github.com/gwhitehawk/device-net/server/store"
	device_store "github.com/gwhitehawk/device-net/server/store/devices"
)

func init() {
	devicesRootCmd.PersistentFlags().StringVar(
		&devicesCmdConfig.databaseDriver,
		"driver",
		string(store.Sqlite),
		"The Database Driver to use (i.e sqlite3|postgres)")
	devicesRootCmd.PersistentFlags().StringVar(
		&devicesCmdConfig.databaseConnectionString,
		"connection",
		app.DefaultSQLiteConnectionString,
		"The connection string for the database")
	devicesDeleteCmd.Flags().BoolVarP(
		&devicesCmdConfig.skipConfirmation,
		"skip-confirmation",
		"",
		false,
		"Skip interactive confirmation and automatically answer Yes to confirmation questions")

	commands.RootCmd.AddCommand(devicesRootCmd)
	devicesRootCmd.AddCommand(devicesCountCmd)
	devicesRootCmd.AddCommand(devicesDeleteCmd)
}

var devicesCmdConfig = struct {
	databaseDriver           string
	databaseConnectionString string
	skipConfirmation         bool
	db                       *store.DB
	cleanup                  func()
	deviceStore              store.DeviceStore
}{}

var devicesRootCmd = &cobra.Command{
	Use:   "devices count|delete [mac]",
	Short: "Inspects or removes devices directly in the database",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		driver := store.DBDriver(devicesCmdConfig.databaseDriver)
		switch driver {
		case store.Sqlite, store.Postgres:
		default:
			return fmt.Errorf("error: unsupported database driver %q", devicesCmdConfig.databaseDriver)
		}
		logRegistry, err := logger.NewLogRegistry(logger.LogLevelConfig(commands.LogLevels()))
		if err != nil {
			return err
		}
		logFactory := logger.MakeLogrusLogFactoryStdErrPlain(logRegistry)
		config := store.DatabaseConfig{
			ConnectionString: store.DatabaseConnectionString(devicesCmdConfig.databaseConnectionString),
			Driver:           driver,
		}
		// the schema is owned by the migrate command, so no migration runner here
		db, cleanup, err := store.NewDatabase(context.Background(), config, nil)
		if err != nil {
			return err
		}
		devicesCmdConfig.db = db
		devicesCmdConfig.cleanup = cleanup
		devicesCmdConfig.deviceStore = device_store.NewStore(db, logFactory)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if devicesCmdConfig.cleanup != nil {
			devicesCmdConfig.cleanup()
		}
	},
}

var devicesCountCmd = &cobra.Command{
	Use:           "count",
	Short:         "Prints the number of stored devices",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := devicesCmdConfig.deviceStore.Count(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("error counting devices: %w", err)
		}
		cli.Stdout.Printf("%d", count)
		return nil
	},
}

var devicesDeleteCmd = &cobra.Command{
	Use:           "delete <mac>",
	Short:         "Deletes a device; devices uplinked to it become roots of the network",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteDevice(context.Background(), devicesCmdConfig.db, devicesCmdConfig.deviceStore, args[0], devicesCmdConfig.skipConfirmation)
	},
}

// deleteDevice removes the device with the specified MAC address after confirmation.
// Returns gerror.ErrNotFound if no such device is stored.
func deleteDevice(ctx context.Context, db *store.DB, deviceStore store.DeviceStore, mac string, skipConfirmation bool) error {
	_, err := deviceStore.Read(ctx, nil, mac)
	if err != nil {
		if gerror.IsNotFound(err) {
			return gerror.NewErrNotFound(fmt.Sprintf("Device %q not found", mac))
		}
		return fmt.Errorf("error reading device: %w", err)
	}
	children, err := deviceStore.ListByUplink(ctx, nil, mac)
	if err != nil {
		return fmt.Errorf("error listing devices uplinked to %q: %w", mac, err)
	}
	prompt := fmt.Sprintf("Delete device %s? %d device(s) uplinked to it will become roots of the network.", mac, len(children))
	if !cli.AskForConfirmation(prompt, skipConfirmation) {
		cli.Stdout.Printf("Delete cancelled.")
		return nil
	}
	err = db.WithTx(ctx, nil, func(tx *store.Tx) error {
		return deviceStore.Delete(ctx, tx, mac)
	})
	if err != nil {
		return fmt.Errorf("error deleting device: %w", err)
	}
	cli.Stdout.Printf("Deleted device %s", mac)
	return nil
}
