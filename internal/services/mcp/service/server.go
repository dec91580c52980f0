package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/nba/source"
	"github.com/louisbranch/chartlab/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "chartlab-mcp"
	serverVersion = "0.1.0"
)

// Config selects the dataset the NBA tools read.
type Config struct {
	DataPath string
	DBPath   string
	// NewSeed overrides the seed source of particle_box_sample.
	NewSeed func() (int64, error)
}

// Server wraps the MCP server and the dataset its tools share.
type Server struct {
	mcpServer *mcp.Server
	dataset   *nba.Dataset
}

// Run loads the dataset and serves the tools over stdio until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
}

func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	dataset, err := source.Load(ctx, source.Config{DBPath: cfg.DBPath, CSVPath: cfg.DataPath})
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	log.Printf("mcp dataset loaded source=%q players=%d", dataset.Source(), dataset.Len())
	return newServer(dataset, cfg.NewSeed).serveWithTransport(ctx, transport)
}

// newServer registers every tool against one dataset.
func newServer(dataset *nba.Dataset, newSeed func() (int64, error)) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.ParticleBoxLevelTool(), domain.ParticleBoxLevelHandler())
	mcp.AddTool(mcpServer, domain.ParticleBoxSampleTool(), domain.ParticleBoxSampleHandler(newSeed))
	mcp.AddTool(mcpServer, domain.RadialProbabilityTool(), domain.RadialProbabilityHandler())
	mcp.AddTool(mcpServer, domain.OrbitalNodesTool(), domain.OrbitalNodesHandler())
	mcp.AddTool(mcpServer, domain.NBAColumnsTool(), domain.NBAColumnsHandler(dataset))
	mcp.AddTool(mcpServer, domain.NBAPivotTool(), domain.NBAPivotHandler(dataset))

	return &Server{mcpServer: mcpServer, dataset: dataset}
}

// serveWithTransport blocks until the client disconnects or ctx is done.
// Cancellation is a clean exit.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
