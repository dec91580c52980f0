// Package storage defines persistence contracts for the NBA dataset.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/chartlab/internal/nba"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// DatasetImport records one importer run.
type DatasetImport struct {
	ID         string
	Source     string
	RowCount   int
	ImportedAt time.Time
}

// PlayerReader reads the stored dataset.
type PlayerReader interface {
	ListPlayers(ctx context.Context) ([]nba.Player, error)
	LatestImport(ctx context.Context) (DatasetImport, error)
}

// PlayerStore persists the dataset. ReplacePlayers swaps every row in one
// transaction.
type PlayerStore interface {
	PlayerReader
	ReplacePlayers(ctx context.Context, batch DatasetImport, players []nba.Player) (DatasetImport, error)
}
