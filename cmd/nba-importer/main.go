// Package main loads an NBA physiques CSV into the chartlab dataset store.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/louisbranch/chartlab/internal/platform/config"
	"github.com/louisbranch/chartlab/internal/tools/importer"
)

func main() {
	cfg, err := importer.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := importer.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
