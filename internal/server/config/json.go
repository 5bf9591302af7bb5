package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recordsync/internal/flagx"
)

// JsonConfig is the on-disk shape of the server config. Absent fields keep
// their current values.
type JsonConfig struct {
	ListenAddr         string   `json:"listen_addr"`
	LogLevel           string   `json:"log_level"`
	Seed               []string `json:"seed"`
	TracingExporter    string   `json:"tracing_exporter"`
	TracingSampleRatio *float64 `json:"tracing_sample_ratio"`
}

// parseJson overlays values from the file named by -c/-config. It panics if
// the file cannot be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.Seed != nil {
		config.Seed = c.Seed
	}
	if c.TracingExporter != "" {
		config.TracingExporter = c.TracingExporter
	}
	if c.TracingSampleRatio != nil {
		config.TracingSampleRatio = *c.TracingSampleRatio
	}
}
