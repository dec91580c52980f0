// Package importer loads an NBA physiques CSV into the chartlab dataset store.
package importer

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/nba/storage"
	storagesqlite "github.com/louisbranch/chartlab/internal/nba/storage/sqlite"
)

// Config holds configuration for the dataset importer.
type Config struct {
	CSVPath string
	DBPath  string
	DryRun  bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "chartlab.db"),
	}

	fs.StringVar(&cfg.CSVPath, "csv", "", "NBA physiques CSV file")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "dataset database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.CSVPath) == "" {
		return Config{}, errors.New("csv is required")
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	path := strings.TrimSpace(cfg.CSVPath)
	if path == "" {
		return errors.New("csv is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	players, err := nba.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	dataset, err := nba.NewDataset(players, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d player(s) in %d height bin(s)\n", dataset.Len(), dataset.HeightBins().Len())
		return err
	}

	store, err := storagesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open dataset store: %w", err)
	}
	defer store.Close()

	batch, err := store.ReplacePlayers(ctx, storage.DatasetImport{
		Source:     dataset.Source(),
		ImportedAt: time.Now().UTC(),
	}, players)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	_, err = fmt.Fprintf(out, "imported %d player(s) into %s (import %s)\n", batch.RowCount, cfg.DBPath, batch.ID)
	return err
}
