// Package config handles configuration for the development backend,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the record server.
//
// Fields:
//   - ListenAddr: bind address for the HTTP endpoint.
//   - LogLevel: debug, info, warn or error.
//   - Seed: contents stored at startup, in order.
//   - TracingExporter / TracingSampleRatio: OTLP export settings.
type Config struct {
	ListenAddr         string
	LogLevel           string
	Seed               []string
	TracingExporter    string
	TracingSampleRatio float64
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":5000"
	c.LogLevel = "info"
	c.Seed = nil
	c.TracingExporter = "none"
	c.TracingSampleRatio = 1.0
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
