package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recordsync/internal/flagx"
	"github.com/dmitrijs2005/recordsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from a zero value.
type JsonConfig struct {
	ServerURL          string          `json:"server_url"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	LogLevel           string          `json:"log_level"`
	MetricsAddr        *string         `json:"metrics_addr"`
	TracingExporter    string          `json:"tracing_exporter"`
	TracingSampleRatio *float64        `json:"tracing_sample_ratio"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.MetricsAddr != nil {
		cfg.MetricsAddr = *jc.MetricsAddr
	}
	if jc.TracingExporter != "" {
		cfg.TracingExporter = jc.TracingExporter
	}
	if jc.TracingSampleRatio != nil {
		cfg.TracingSampleRatio = *jc.TracingSampleRatio
	}
}
