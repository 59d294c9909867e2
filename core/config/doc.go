// Package config provides configuration management for catalog-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Default values come from `default:` struct tags and are
// registered recursively, so every nested key is reachable through AutomaticEnv
// (e.g. UPSTREAM_ACCESS_TOKEN -> upstream.access_token).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Log: logging level and format
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Upstream: catalog API base URL, access token, page size, pacing
//   - Cache: advisory response cache backend and max age
//   - Storage: S3/MinIO credentials for the object cache backend
//   - Redis: connection for the distributed sync lock and redis cache backend
//   - Sync: batch sizes and lock lease
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
