// Package database handles database connections for the database asset source.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections from
// the application's configuration, and defines the asset_blobs table that the
// database source reads raw asset bytes from.
//
// # Connect
//
// Connect opens and pings the database. SQLite connections are pinned to a single
// connection so that in-memory databases stay consistent across queries.
//
// # Schema
//
// Blob maps one asset path to its raw bytes and an update timestamp that serves as
// the modification stamp for hot reloading. Migrate creates the table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	_ = database.Migrate(db)
package database
