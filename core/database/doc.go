// Package database handles database connections for the parts-list cache.
//
// It provides a wrapper around GORM that configures MySQL (production) or
// SQLite (tests, single-binary setups) connections based on the application's
// configuration.
//
// The database is strictly optional: the acquisition log itself never touches
// it, only the catalog cache does, and the application degrades to direct
// catalog fetches when no connection is available.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
