// Package mcp parses MCP command flags and serves the chartlab tools over
// stdio.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/chartlab/internal/platform/cmd"
	"github.com/louisbranch/chartlab/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	DataPath string `env:"DATA_PATH"`
	DBPath   string `env:"DB_PATH"`
}

// ParseConfig parses environment and flags into a Config. Flags are
// registered before the environment is read, so only flags actually passed
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.DataPath, "data", "", "NBA physiques CSV file")
	fs.StringVar(&cfg.DBPath, "db-path", "", "dataset database path")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{DataPath: cfg.DataPath, DBPath: cfg.DBPath})
	})
}
