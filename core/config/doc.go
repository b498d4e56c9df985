// Package config provides configuration management for the Roster Importer.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the calendar store
//   - Storage: S3/MinIO credentials and bucket settings for the document archive
//   - Log: Logging level and format
//   - Mailer: SMTP settings for import report delivery
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
