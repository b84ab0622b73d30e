// Package database opens the SQL database that backs the action journal.
//
// It wraps GORM and selects the dialector from configuration: sqlite (a local
// file, the default) or mysql for a shared journal.
//
// # Connect
//
// Connect opens the database and pings it within the configured timeout.
// ConnectDialector accepts a ready dialector and is used with go-sqlmock in tests.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns report the columns of an existing table so
// read-only callers can check a journal table without migrating it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Journal.Config)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
package database
