// Package sqlite provides a SQLite-backed NBA dataset store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/nba/storage"
	"github.com/louisbranch/chartlab/internal/nba/storage/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/chartlab/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists the dataset in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.PlayerStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite dataset store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplacePlayers deletes every stored player and inserts players under a new
// import record. A blank batch ID gets a fresh UUID and a zero ImportedAt the
// current time. The stored import is returned.
func (s *Store) ReplacePlayers(ctx context.Context, batch storage.DatasetImport, players []nba.Player) (storage.DatasetImport, error) {
	if err := ctx.Err(); err != nil {
		return storage.DatasetImport{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DatasetImport{}, fmt.Errorf("storage is not configured")
	}
	if len(players) == 0 {
		return storage.DatasetImport{}, fmt.Errorf("players are required")
	}
	batch.ID = strings.TrimSpace(batch.ID)
	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	if batch.ImportedAt.IsZero() {
		batch.ImportedAt = s.now()
	}
	batch.ImportedAt = batch.ImportedAt.UTC().Truncate(time.Millisecond)
	batch.RowCount = len(players)

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.DatasetImport{}, fmt.Errorf("begin replace players: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return storage.DatasetImport{}, fmt.Errorf("clear players: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO dataset_imports (id, source, row_count, imported_at) VALUES (?, ?, ?, ?)`,
		batch.ID, batch.Source, batch.RowCount, toMillis(batch.ImportedAt),
	); err != nil {
		return storage.DatasetImport{}, fmt.Errorf("record import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO players (
	   row_index, import_id, name, year, height, weight, per, pts, position
	 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return storage.DatasetImport{}, fmt.Errorf("prepare player insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.ExecContext(ctx,
			p.Index, batch.ID, p.Name, p.Year,
			nullFloat(p.Height), nullFloat(p.Weight), nullFloat(p.PER), nullFloat(p.PTS),
			string(p.Position),
		); err != nil {
			return storage.DatasetImport{}, fmt.Errorf("insert player %d: %w", p.Index, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storage.DatasetImport{}, fmt.Errorf("commit replace players: %w", err)
	}
	return batch, nil
}

// ListPlayers returns every stored player ordered by row index.
func (s *Store) ListPlayers(ctx context.Context) ([]nba.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT row_index, name, year, height, weight, per, pts, position
	 FROM players ORDER BY row_index`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []nba.Player
	for rows.Next() {
		var p nba.Player
		var height, weight, per, pts sql.NullFloat64
		var position string
		if err := rows.Scan(&p.Index, &p.Name, &p.Year, &height, &weight, &per, &pts, &position); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		p.Height = fromNull(height)
		p.Weight = fromNull(weight)
		p.PER = fromNull(per)
		p.PTS = fromNull(pts)
		p.Position = nba.Position(position)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

// LatestImport returns the most recent import record.
func (s *Store) LatestImport(ctx context.Context) (storage.DatasetImport, error) {
	if err := ctx.Err(); err != nil {
		return storage.DatasetImport{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DatasetImport{}, fmt.Errorf("storage is not configured")
	}
	var (
		batch      storage.DatasetImport
		importedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx, `SELECT id, source, row_count, imported_at
	 FROM dataset_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`).
		Scan(&batch.ID, &batch.Source, &batch.RowCount, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.DatasetImport{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.DatasetImport{}, fmt.Errorf("get latest import: %w", err)
	}
	batch.ImportedAt = fromMillis(importedAt)
	return batch, nil
}

func nullFloat(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNull(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
