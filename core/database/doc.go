// Package database handles database connections for the aggregation store.
//
// It wraps GORM to open MySQL, PostgreSQL or SQLite connections based on the
// application's configuration. SQLite is used for local runs and tests; an
// in-memory SQLite database is pinned to a single pooled connection so the
// schema survives between statements.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	if missing := database.MissingTables(db, "products", "sync_logs"); len(missing) > 0 {
//	    log.Fatal("run migrate first")
//	}
package database
