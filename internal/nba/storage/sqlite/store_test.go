package sqlite

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/nba/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nba.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	})
	return store
}

func testPlayers() []nba.Player {
	return []nba.Player{
		{Index: 0, Name: "Ann", Year: 1990, Height: 190, Weight: 80, PER: 15, PTS: 300, Position: nba.PointGuard},
		{Index: 1, Name: "Bob", Year: 1991, Height: 211, Weight: 112, PER: math.NaN(), PTS: 820, Position: nba.Center},
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("Open(blank) error = nil, want error")
	}
}

func TestLatestImportEmpty(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	_, err := store.LatestImport(context.Background())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("LatestImport() error = %v, want ErrNotFound", err)
	}
	players, err := store.ListPlayers(context.Background())
	if err != nil {
		t.Fatalf("ListPlayers() error = %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("len(ListPlayers()) = %d, want 0", len(players))
	}
}

func TestReplacePlayersRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t)
	importedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	batch, err := store.ReplacePlayers(ctx, storage.DatasetImport{Source: "players.csv", ImportedAt: importedAt}, testPlayers())
	if err != nil {
		t.Fatalf("ReplacePlayers() error = %v", err)
	}
	if batch.ID == "" || batch.RowCount != 2 {
		t.Fatalf("ReplacePlayers() = %+v, want id and row count 2", batch)
	}

	players, err := store.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers() error = %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("len(ListPlayers()) = %d, want 2", len(players))
	}
	if players[0].Name != "Ann" || players[0].Height != 190 || players[0].Position != nba.PointGuard {
		t.Fatalf("players[0] = %+v", players[0])
	}
	if !math.IsNaN(players[1].PER) {
		t.Fatalf("players[1].PER = %v, want NaN", players[1].PER)
	}

	latest, err := store.LatestImport(ctx)
	if err != nil {
		t.Fatalf("LatestImport() error = %v", err)
	}
	if latest.ID != batch.ID || latest.Source != "players.csv" || !latest.ImportedAt.Equal(importedAt) {
		t.Fatalf("LatestImport() = %+v, want %+v", latest, batch)
	}
}

func TestReplacePlayersReplaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t)
	first := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := store.ReplacePlayers(ctx, storage.DatasetImport{Source: "a.csv", ImportedAt: first}, testPlayers()); err != nil {
		t.Fatalf("ReplacePlayers(first) error = %v", err)
	}
	only := testPlayers()[:1]
	second, err := store.ReplacePlayers(ctx, storage.DatasetImport{ID: "batch-2", Source: "b.csv", ImportedAt: first.Add(time.Hour)}, only)
	if err != nil {
		t.Fatalf("ReplacePlayers(second) error = %v", err)
	}
	if second.ID != "batch-2" {
		t.Fatalf("ReplacePlayers() ID = %q, want batch-2", second.ID)
	}
	players, err := store.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers() error = %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("len(ListPlayers()) = %d, want 1", len(players))
	}
	latest, err := store.LatestImport(ctx)
	if err != nil {
		t.Fatalf("LatestImport() error = %v", err)
	}
	if latest.Source != "b.csv" {
		t.Fatalf("LatestImport().Source = %q, want b.csv", latest.Source)
	}
}

func TestReplacePlayersRequiresRows(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if _, err := store.ReplacePlayers(context.Background(), storage.DatasetImport{Source: "x"}, nil); err == nil {
		t.Fatal("ReplacePlayers(nil) error = nil, want error")
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.ListPlayers(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListPlayers() error = %v, want context.Canceled", err)
	}
}
