// Package config provides configuration management for the Console Server.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared as struct tags on the
// per-package Config types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings:
//   - Server: bind host, port and the asset bundle directory
//   - Gateway: endpoint URL and auth token handed to the console
//   - Log: logging level and format
//
// CLI flags are applied on top of the loaded configuration by the cmd
// package, and the token credential-file tier lives in core/gateway;
// neither is Viper's concern.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
