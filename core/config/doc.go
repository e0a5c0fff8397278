// Package config provides configuration management for the asset loader.
//
// It utilizes Viper for loading configuration from environment variables, with an
// optional .env file overlay loaded through godotenv. Defaults come from the
// `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Loader: worker count, hot reload and the default directory source
//   - Storage: S3/MinIO object store source
//   - Database: MySQL/SQLite blob source
//   - Server: HTTP listen port and API key
//   - Log: Logging level, format and optional rotating file
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Loader.Workers)
package config
