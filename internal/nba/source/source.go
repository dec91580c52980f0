// Package source loads the NBA dataset from the configured origin: the
// sqlite store when it holds an import, a CSV file, or the embedded sample.
package source

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/nba/sampledata"
	"github.com/louisbranch/chartlab/internal/nba/storage"
	"github.com/louisbranch/chartlab/internal/nba/storage/sqlite"
	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// Config selects the dataset origin. Empty fields are skipped.
type Config struct {
	DBPath  string
	CSVPath string
}

// Load returns the dataset from the first configured origin that has data,
// in order: database, CSV file, embedded sample. An empty database falls
// through; a missing CSV file does not.
func Load(ctx context.Context, cfg Config) (*nba.Dataset, error) {
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeDatasetUnavailable, "open dataset store", err)
		}
		defer store.Close()

		dataset, err := FromStore(ctx, store)
		if err == nil {
			return dataset, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		log.Printf("dataset store empty path=%s", path)
	}
	if path := strings.TrimSpace(cfg.CSVPath); path != "" {
		return FromFile(path)
	}
	return Sample()
}

// FromStore loads the latest import. It returns storage.ErrNotFound when the
// store holds no import.
func FromStore(ctx context.Context, reader storage.PlayerReader) (*nba.Dataset, error) {
	if reader == nil {
		return nil, errors.New("player reader is required")
	}
	batch, err := reader.LatestImport(ctx)
	if err != nil {
		return nil, err
	}
	players, err := reader.ListPlayers(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatasetUnavailable, "list players", err)
	}
	return nba.NewDataset(players, batch.Source)
}

// FromFile parses a CSV file.
func FromFile(path string) (*nba.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatasetUnavailable, "open dataset csv", err)
	}
	defer f.Close()

	players, err := nba.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return nba.NewDataset(players, filepath.Base(path))
}

// Sample returns the embedded sample dataset.
func Sample() (*nba.Dataset, error) {
	players, err := sampledata.Players()
	if err != nil {
		return nil, fmt.Errorf("parse embedded sample: %w", err)
	}
	return nba.NewDataset(players, sampledata.Source)
}
