package config

import "time"

// Config holds runtime settings for the recordsync terminal client.
//
// Fields:
//   - ServerURL: base URL of the record backend.
//   - RequestTimeout: per-request limit; zero means no limit.
//   - LogLevel: debug, info, warn or error.
//   - MetricsAddr: bind address for /metrics; empty disables it.
//   - TracingExporter / TracingSampleRatio: OTLP export settings.
type Config struct {
	ServerURL          string
	RequestTimeout     time.Duration
	LogLevel           string
	MetricsAddr        string
	TracingExporter    string
	TracingSampleRatio float64
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.MetricsAddr = ""
	c.TracingExporter = "none"
	c.TracingSampleRatio = 1.0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
