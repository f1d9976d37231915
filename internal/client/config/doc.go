// Package config loads runtime configuration for the medadvisor CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables: MEDADVISOR_API_URL, MEDADVISOR_DB_PATH.
//  4. Command-line flags (-a, -d, -t), which override everything else.
//
// The backend base URL is the one required setting; LoadConfig returns
// ErrMissingBaseURL when no source supplied it, and the entrypoint treats
// that as fatal.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://advisor.example.com",
//	  "database_path": "medadvisor.db",
//	  "request_timeout": "15s"
//	}
package config
