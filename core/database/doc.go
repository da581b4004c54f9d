// Package database handles connections to the operational fuel database.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database holding the
// field-capture schema (measurements, dispatches, transfers, restocks, calibrations).
// The reconciliation engine only ever reads from it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
