// Package config provides configuration management for the kit inventory service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Catalog: remote part catalog URL, kit category, timeouts
//   - Inventory: collectible system name
//   - Cache: parts-list cache toggle and TTL
//   - Thumbnail: thumbnail mirror toggle and image host
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL/SQLite connection details
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
