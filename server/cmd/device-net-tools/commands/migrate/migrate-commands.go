package migrate

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/app"
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/cli"
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/commands"
	"github.com/gwhitehawk/device-net/server/store"
	"github.com/gwhitehawk/device-net/server/store/migrations"
)

func init() {
	migrateRootCmd.PersistentFlags().StringVar(
		&migrateCmdConfig.databaseDriver,
		"driver",
		string(store.Sqlite),
		"The Database Driver to use for migration (i.e sqlite3|postgres)")
	migrateRootCmd.PersistentFlags().StringVar(
		&migrateCmdConfig.databaseConnectionString,
		"connection",
		app.DefaultSQLiteConnectionString,
		"The connection string for the database to use for migration")
	migrateRootCmd.PersistentFlags().BoolVarP(
		&migrateCmdConfig.skipConfirmation,
		"skip-confirmation",
		"",
		false,
		"Skip interactive confirmation and automatically answer Yes to confirmation questions")

	commands.RootCmd.AddCommand(migrateRootCmd)
	migrateRootCmd.AddCommand(migrateUpCmd)
	migrateRootCmd.AddCommand(migrateDownCmd)
	migrateRootCmd.AddCommand(migrateGotoCmd)
	migrateRootCmd.AddCommand(migrateForceCmd)
}

var migrateCmdConfig = struct {
	databaseDriver           string
	databaseConnectionString string
	skipConfirmation         bool
	migrationRunner          store.MigrationRunner
}{}

func driver() store.DBDriver {
	return store.DBDriver(migrateCmdConfig.databaseDriver)
}

func connectionString() store.DatabaseConnectionString {
	return store.DatabaseConnectionString(migrateCmdConfig.databaseConnectionString)
}

// parseVersion parses a positive migration version number.
func parseVersion(arg string) (uint, error) {
	version, err := strconv.Atoi(arg)
	if err != nil || version <= 0 {
		return 0, fmt.Errorf("error: version must be a positive number, got %q", arg)
	}
	if latest := migrations.DeviceNetMigrations.LatestVersion(); uint(version) > latest {
		return 0, fmt.Errorf("error: version %d is beyond the latest migration version %d", version, latest)
	}
	return uint(version), nil
}

var migrateRootCmd = &cobra.Command{
	Use:   "migrate up|down|goto|force [version-number]",
	Short: "Migrates the database up to the latest version, down to empty, or to a specific version number",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch driver() {
		case store.Sqlite, store.Postgres:
		default:
			return fmt.Errorf("error: unsupported database driver %q", migrateCmdConfig.databaseDriver)
		}
		// migration runner needs a log factory; use a very plain log format
		logRegistry, err := logger.NewLogRegistry(logger.LogLevelConfig(commands.LogLevels()))
		if err != nil {
			return err
		}
		logFactory := logger.MakeLogrusLogFactoryStdErrPlain(logRegistry)
		migrateCmdConfig.migrationRunner = migrations.NewDeviceNetMigrateRunner(logFactory)
		return nil
	},
}

var migrateUpCmd = &cobra.Command{
	Use:           "up",
	Short:         "Migrates the database up to the latest version",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := migrateCmdConfig.migrationRunner.Up(context.Background(), driver(), connectionString())
		if err != nil {
			return fmt.Errorf("error running 'up' migration: %w", err)
		}
		cli.Stdout.Printf("Database migrated up to version %d.", migrations.DeviceNetMigrations.LatestVersion())
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:           "down",
	Short:         "Migrates the database down to being empty",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cli.AskForConfirmation("Running a Down migration will remove ALL devices from this database. Are you sure?", migrateCmdConfig.skipConfirmation) {
			cli.Stdout.Printf("Down migration cancelled.")
			return nil
		}
		err := migrateCmdConfig.migrationRunner.Down(context.Background(), driver(), connectionString())
		if err != nil {
			return fmt.Errorf("error running 'down' migration: %w", err)
		}
		return nil
	},
}

var migrateGotoCmd = &cobra.Command{
	Use:           "goto V",
	Short:         "Migrates the database up or down as required to be at specific version V",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := parseVersion(args[0])
		if err != nil {
			return err
		}
		if !cli.AskForConfirmation("Running a Goto migration will sometimes REMOVE data from this database. Are you sure?", migrateCmdConfig.skipConfirmation) {
			cli.Stdout.Printf("Goto migration cancelled.")
			return nil
		}
		err = migrateCmdConfig.migrationRunner.Goto(context.Background(), driver(), connectionString(), version)
		if err != nil {
			return fmt.Errorf("error running 'goto' migration: %w", err)
		}
		return nil
	},
}

var migrateForceCmd = &cobra.Command{
	Use:           "force V",
	Short:         "Marks the database as being clean and in version V, but don't run migrations",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := parseVersion(args[0])
		if err != nil {
			return err
		}
		if !cli.AskForConfirmation("Running a Force migration should only be performed after the database has been manually checked and fixed. Are you sure?", migrateCmdConfig.skipConfirmation) {
			cli.Stdout.Printf("Force migration cancelled.")
			return nil
		}
		err = migrateCmdConfig.migrationRunner.Force(context.Background(), driver(), connectionString(), version)
		if err != nil {
			return fmt.Errorf("error running 'force' operation: %w", err)
		}
		return nil
	},
}
