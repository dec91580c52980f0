package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/nba/sampledata"
	"github.com/louisbranch/chartlab/internal/nba/storage"
	"github.com/louisbranch/chartlab/internal/nba/storage/sqlite"
	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

const smallCSV = ",Player,Year,height,weight,PER,PTS,pos_simple\n" +
	"0,A,1990,190,80,15,300,PG\n" +
	"1,B,1991,200,95,16,400,SF\n" +
	"2,C,1992,210,110,17,500,C\n"

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte(smallCSV), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadSample(t *testing.T) {
	t.Parallel()

	d, err := Load(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Source() != sampledata.Source || d.Len() != 100 {
		t.Fatalf("Load() = %q with %d rows, want the embedded sample", d.Source(), d.Len())
	}
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	d, err := Load(context.Background(), Config{CSVPath: writeCSV(t)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Source() != "players.csv" || d.Len() != 3 {
		t.Fatalf("Load() = %q with %d rows, want players.csv with 3", d.Source(), d.Len())
	}
}

func TestLoadMissingCSV(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), Config{CSVPath: filepath.Join(t.TempDir(), "missing.csv")})
	if got := apperrors.GetCode(err); got != apperrors.CodeDatasetUnavailable {
		t.Fatalf("Load() code = %v, want %v", got, apperrors.CodeDatasetUnavailable)
	}
}

func TestLoadEmptyStoreFallsBack(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nba.db")
	d, err := Load(context.Background(), Config{DBPath: dbPath, CSVPath: writeCSV(t)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Source() != "players.csv" {
		t.Fatalf("Load().Source() = %q, want players.csv", d.Source())
	}
}

func TestLoadStorePrecedence(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nba.db")
	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	players := []nba.Player{
		{Index: 0, Year: 2000, Height: 195, Weight: 90, PER: 12, PTS: 200, Position: nba.ShootingGuard},
		{Index: 1, Year: 2001, Height: 205, Weight: 100, PER: 14, PTS: 250, Position: nba.PowerForward},
	}
	if _, err := store.ReplacePlayers(context.Background(), storage.DatasetImport{Source: "stored.csv"}, players); err != nil {
		t.Fatalf("ReplacePlayers() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	d, err := Load(context.Background(), Config{DBPath: dbPath, CSVPath: writeCSV(t)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Source() != "stored.csv" || d.Len() != 2 {
		t.Fatalf("Load() = %q with %d rows, want stored.csv with 2", d.Source(), d.Len())
	}
}

type fakeReader struct {
	batch      storage.DatasetImport
	batchErr   error
	players    []nba.Player
	playersErr error
}

func (f fakeReader) LatestImport(context.Context) (storage.DatasetImport, error) {
	return f.batch, f.batchErr
}

func (f fakeReader) ListPlayers(context.Context) ([]nba.Player, error) {
	return f.players, f.playersErr
}

func TestFromStoreErrors(t *testing.T) {
	t.Parallel()

	if _, err := FromStore(context.Background(), fakeReader{batchErr: storage.ErrNotFound}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("FromStore() error = %v, want ErrNotFound", err)
	}
	_, err := FromStore(context.Background(), fakeReader{playersErr: errors.New("boom")})
	if got := apperrors.GetCode(err); got != apperrors.CodeDatasetUnavailable {
		t.Fatalf("FromStore() code = %v, want %v", got, apperrors.CodeDatasetUnavailable)
	}
	if _, err := FromStore(context.Background(), nil); err == nil {
		t.Fatal("FromStore(nil) error = nil, want error")
	}
}
