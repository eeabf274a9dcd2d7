package migrations

// DialectTemplate is used as the templating control for differing SQL syntax between our supported databases
type DialectTemplate struct {
	Timestamp string
}

// MigrationSet provides a set of migrations that can be applied to a database.
type MigrationSet []MigrationData

// MigrationData provides the data for a single migration, including Up and Down SQL.
// Templated values are substituted for database-specific values before the migrations are applied.
type MigrationData struct {
	SequenceNumber int64
	Name           string
	UpSQL          string
	DownSQL        string
}

// DeviceNetMigrations is the set of migrations to set up the database for the device-net server.
var DeviceNetMigrations = MigrationSet{
	{
		SequenceNumber: 1,
		Name:           "create_devices",
		UpSQL: `CREATE TABLE IF NOT EXISTS devices
				(
					device_mac_address text NOT NULL PRIMARY KEY,
					device_type text NOT NULL,
					device_uplink_mac_address text NOT NULL DEFAULT '',
					device_created_at {{ .Timestamp }} NOT NULL
				);`,
		DownSQL: `DROP TABLE devices;`,
	},
	{
		SequenceNumber: 2,
		Name:           "create_devices_uplink_index",
		UpSQL:          `CREATE INDEX IF NOT EXISTS devices_uplink_mac_address_index ON devices(device_uplink_mac_address);`,
		DownSQL:        `DROP INDEX devices_uplink_mac_address_index;`,
	},
}

// LatestVersion returns the sequence number of the last migration in the set.
func (s MigrationSet) LatestVersion() uint {
	var latest int64
	for _, migration := range s {
		if migration.SequenceNumber > latest {
			latest = migration.SequenceNumber
		}
	}
	return uint(latest)
}
