// Package config loads runtime configuration for the duosync CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "debounce_interval": "2s",
//	  "sweep_interval": "1h",
//	  "message_ttl": "24h",
//	  "log_level": "warn"
//	}
package config
