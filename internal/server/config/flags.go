package config

import (
	"flag"
	"os"
	"strings"

	"github.com/dmitrijs2005/recordsync/internal/flagx"
)

// parseFlags overrides Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":5000")
//	-l string   log level
//	-s string   comma-separated seed contents
//	-x string   tracing exporter: none, grpc or http
//	-r float    tracing sample ratio
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-s", "-x", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	seed := fs.String("s", strings.Join(config.Seed, ","), "comma-separated initial records")
	fs.StringVar(&config.TracingExporter, "x", config.TracingExporter, "tracing exporter (none|grpc|http)")
	fs.Float64Var(&config.TracingSampleRatio, "r", config.TracingSampleRatio, "tracing sample ratio")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.Seed = splitSeed(*seed)
}

func splitSeed(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
