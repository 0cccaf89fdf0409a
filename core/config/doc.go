// Package config provides configuration management for theme-sync.
//
// It utilizes Viper for loading configuration from struct tag defaults, an
// optional config.yaml, environment variables and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and API key
//   - Log: Logging level and format
//   - ION: API gateway URL, tenant and HTTP timeout
//   - Auth: OAuth2 provider, client credentials and service-account keys
//   - PLM: re-index schema and theme fan-out
//   - IDM: value-list cache TTL and integrity probe entity
//   - Schedule: optional cron expression and themes for unattended syncs
//
// Nested keys map to upper-case environment variables joined by underscores,
// so auth.client_id is read from AUTH_CLIENT_ID.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
