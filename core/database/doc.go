// Package database manages the optional SQL connection behind the database
// catalog source.
//
// It uses GORM with the MySQL driver for shared product databases and the SQLite
// driver for local files. Connect pings the database before returning, so callers
// learn about a missing source before any item is processed.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
package database
