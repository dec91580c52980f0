// Package healthcheck probes the chartlab gRPC health endpoint, for use as a
// container health command.
package healthcheck

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/chartlab/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/chartlab/internal/platform/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config holds healthcheck configuration.
type Config struct {
	Addr    string        `env:"GRPC_ADDR" envDefault:"localhost:8051"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"2s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC health address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "how long to wait for SERVING")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return Config{}, errors.New("addr is required")
	}
	return cfg, nil
}

// Run waits for the endpoint to report SERVING within the timeout and writes
// the final status to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	logf := func(format string, args ...any) {
		log.Printf("healthcheck %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.Addr, cfg.Timeout, logf)
	if err != nil {
		return fmt.Errorf("probe %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	status, err := platformgrpc.Check(ctx, conn, "")
	if err != nil {
		return fmt.Errorf("check %s: %w", cfg.Addr, err)
	}
	if _, err := fmt.Fprintf(out, "%s %s\n", cfg.Addr, status); err != nil {
		return err
	}
	if status != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("%s is %s", cfg.Addr, status)
	}
	return nil
}
