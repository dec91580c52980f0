package service

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// connect starts the server over in-memory transports and returns a client
// session plus a stop func that waits for the server to exit.
func connect(t *testing.T, cfg Config) (*mcp.ClientSession, func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- runWithTransport(ctx, cfg, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}

	stop := func() {
		defer session.Close()
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Fatalf("run returned error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("run did not stop after cancel")
		}
	}
	return session, stop
}

func TestRunWithTransportListsTools(t *testing.T) {
	session, stop := connect(t, Config{})
	defer stop()

	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	slices.Sort(names)
	want := []string{"nba_columns", "nba_pivot", "orbital_nodes", "particle_box_level", "particle_box_sample", "radial_probability"}
	if !slices.Equal(names, want) {
		t.Fatalf("tools = %v, want %v", names, want)
	}
}

func TestCallTools(t *testing.T) {
	session, stop := connect(t, Config{NewSeed: func() (int64, error) { return 3, nil }})
	defer stop()

	tests := []struct {
		name string
		args map[string]any
		key  string
	}{
		{name: "particle_box_level", args: map[string]any{"level": 2}, key: "energy_ev"},
		{name: "particle_box_sample", args: map[string]any{"level": 2, "points": 10}, key: "positions"},
		{name: "radial_probability", args: map[string]any{"n": 1, "l": 0, "r1": 0, "r2": 1}, key: "probability"},
		{name: "orbital_nodes", args: map[string]any{"name": "2s"}, key: "nodal_radii"},
		{name: "nba_columns", args: map[string]any{}, key: "columns"},
		{name: "nba_pivot", args: map[string]any{"value": "weight"}, key: "table"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: tc.name, Arguments: tc.args})
			if err != nil {
				t.Fatalf("CallTool(%s) error = %v", tc.name, err)
			}
			if result.IsError {
				t.Fatalf("CallTool(%s) returned tool error: %+v", tc.name, result.Content)
			}
			structured, ok := result.StructuredContent.(map[string]any)
			if !ok {
				t.Fatalf("StructuredContent = %T, want object", result.StructuredContent)
			}
			if _, ok := structured[tc.key]; !ok {
				t.Fatalf("StructuredContent = %v, want key %q", structured, tc.key)
			}
		})
	}
}

func TestCallToolReportsDomainErrors(t *testing.T) {
	session, stop := connect(t, Config{})
	defer stop()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "orbital_nodes",
		Arguments: map[string]any{"name": "9z"},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for unknown orbital")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok || !strings.Contains(text.Text, "unknown orbital") {
		t.Fatalf("Content = %+v, want unknown orbital message", result.Content)
	}
}

func TestRunFailsWithoutDataset(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), Config{DataPath: filepath.Join(t.TempDir(), "missing.csv")})
	if err == nil || !strings.Contains(err.Error(), "load dataset") {
		t.Fatalf("Run() error = %v, want load dataset error", err)
	}
}

func TestServeWithTransportRequiresServer(t *testing.T) {
	t.Parallel()

	var s *Server
	if err := s.serveWithTransport(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil server")
	}
}
