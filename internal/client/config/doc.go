// Package config loads runtime configuration for the recordsync client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds, 0 disables)
//	-l string   log level
//	-m string   metrics listen address (empty disables)
//	-x string   tracing exporter: none, grpc or http
//	-r float    tracing sample ratio
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Fields left out of the file keep their previous values:
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "request_timeout": "5s",
//	  "log_level": "debug",
//	  "metrics_addr": ":9100",
//	  "tracing_exporter": "grpc",
//	  "tracing_sample_ratio": 0.5
//	}
package config
