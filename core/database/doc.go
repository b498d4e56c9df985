// Package database handles the connection to the calendar store's
// backing database.
//
// It wraps GORM (Go Object Relational Mapping) to configure a MySQL
// connection from the application's configuration. The calendar event
// table itself is owned by feature/calendar; this package only knows
// how to connect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
