package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recordsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags handled here are passed to the flag set, see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l", "-m", "-x", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")
	fs.StringVar(&cfg.TracingExporter, "x", cfg.TracingExporter, "tracing exporter (none|grpc|http)")
	fs.Float64Var(&cfg.TracingSampleRatio, "r", cfg.TracingSampleRatio, "tracing sample ratio")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
