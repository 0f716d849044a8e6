// Package database handles the optional MySQL connection used for run history.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration. Reconciliation itself never touches the database;
// only summaries of finished runs are archived.
//
// # Connect
//
// Connect establishes the connection, applies pool settings and pings the server
// within the configured timeout. Callers treat a failed connection as "history
// disabled" rather than as a fatal error.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
