// Package config provides configuration management for nbcli.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file and an optional nbcli.yaml in the config directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - NetBox: API URL, token or token file, timeouts, page size and rate limit
//   - Log: Logging level and format
//   - Journal: whether to journal actions and the journal database connection
//   - Storage: S3/MinIO credentials and bucket for exports
//
// Environment keys map to nested keys by replacing "." with "_", so NETBOX_URL
// sets netbox.url and JOURNAL_DRIVER sets journal.driver.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.NetBox.URL)
package config
