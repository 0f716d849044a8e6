// Package config provides configuration management for orth-check.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Storage: S3/MinIO credentials and the report bucket
//   - Log: Logging level and format
//   - Database: MySQL connection for run history (disabled by default)
//   - Orthology: report prefix and history listing limit
//
// Environment variables map to nested keys with underscores, e.g. SERVER_PORT,
// STORAGE_BUCKET, LOG_LEVEL, DATABASE_ENABLED, ORTHOLOGY_REPORT_PREFIX.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
