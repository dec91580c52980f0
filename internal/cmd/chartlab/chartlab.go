// Package chartlab parses server configuration and runs the web UI with its
// optional gRPC health endpoint.
package chartlab

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/chartlab/internal/nba/source"
	entrypoint "github.com/louisbranch/chartlab/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/chartlab/internal/platform/grpc"
	"github.com/louisbranch/chartlab/internal/random"
	"github.com/louisbranch/chartlab/internal/services/web"
	"golang.org/x/sync/errgroup"
)

// Config holds chartlab server configuration.
type Config struct {
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:"localhost:8050"`
	GRPCAddr  string `env:"GRPC_ADDR"`
	DataPath  string `env:"DATA_PATH"`
	DBPath    string `env:"DB_PATH"`
	Seed      string `env:"SEED"`
	GitHubURL string `env:"GITHUB_URL"`
	Title     string `env:"TITLE" envDefault:"chartlab"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address (empty disables)")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "NBA physiques CSV file")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "dataset database path")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "fixed sampling seed")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := seedSource(cfg.Seed); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the chartlab server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceChartlab, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

// run serves until ctx ends. The health endpoint, when configured, listens
// before the dataset loads and reports SERVING once the web server starts.
func run(ctx context.Context, cfg Config) error {
	newSeed, err := seedSource(cfg.Seed)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	var health *platformgrpc.HealthServer
	if addr := strings.TrimSpace(cfg.GRPCAddr); addr != "" {
		health, err = platformgrpc.NewHealthServer(addr)
		if err != nil {
			return fmt.Errorf("init health server: %w", err)
		}
		g.Go(func() error { return health.Serve(gctx) })
	}

	dataset, err := source.Load(gctx, source.Config{DBPath: cfg.DBPath, CSVPath: cfg.DataPath})
	if err != nil {
		cancel()
		_ = g.Wait()
		return fmt.Errorf("load dataset: %w", err)
	}
	log.Printf("dataset loaded source=%q players=%d", dataset.Source(), dataset.Len())

	server, err := web.NewServer(web.Config{
		HTTPAddr:  cfg.HTTPAddr,
		Dataset:   dataset,
		Title:     cfg.Title,
		GitHubURL: cfg.GitHubURL,
		NewSeed:   newSeed,
	})
	if err != nil {
		cancel()
		_ = g.Wait()
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	g.Go(func() error { return server.ListenAndServe(gctx) })
	health.SetServing("", true)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve chartlab: %w", err)
	}
	return nil
}

// seedSource returns nil for a blank seed, so the web server draws fresh
// seeds, or a source that always yields the fixed seed.
func seedSource(value string) (func() (int64, error), error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	seed, ok := random.ParseSeed(value)
	if !ok {
		return nil, fmt.Errorf("invalid seed %q", value)
	}
	return func() (int64, error) { return seed, nil }, nil
}
