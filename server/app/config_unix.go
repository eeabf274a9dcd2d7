//go:build !windows
// +build !windows

package app

const DefaultSQLiteConnectionString = "file:/var/lib/device-net/db/sqlite.db?cache=shared&_foreign_keys=1"
