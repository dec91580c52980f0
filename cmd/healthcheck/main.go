// Package main exits 0 when the chartlab health endpoint reports SERVING.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/louisbranch/chartlab/internal/cmd/healthcheck"
	entrypoint "github.com/louisbranch/chartlab/internal/platform/cmd"
	"github.com/louisbranch/chartlab/internal/platform/config"
)

func main() {
	cfg, err := healthcheck.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceHealthcheck))

	if err := healthcheck.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
