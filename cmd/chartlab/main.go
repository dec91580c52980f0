// Package main starts the chartlab web server.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	chartlabcmd "github.com/louisbranch/chartlab/internal/cmd/chartlab"
	entrypoint "github.com/louisbranch/chartlab/internal/platform/cmd"
	"github.com/louisbranch/chartlab/internal/platform/config"
)

func main() {
	cfg, err := chartlabcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceChartlab))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := chartlabcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
