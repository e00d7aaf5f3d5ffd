// Package config provides configuration management for the bucket manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Storage: service credentials, region and bucket settings
//   - Log: logging level and format
//
// Environment variables map onto nested keys with underscores, so
// STORAGE_SECRET_ID populates storage.secret_id.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Region)
package config
