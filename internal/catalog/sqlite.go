package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cutroom/roughcut/internal/domain"
)

// SQLiteCatalog implements Catalog using SQLite. Asset metadata is stored as
// a JSON column; the position column preserves registration order.
type SQLiteCatalog struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteCatalog opens or creates a SQLite database at the given path.
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	c := &SQLiteCatalog{db: db, now: time.Now}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

func (c *SQLiteCatalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS assets (
		timeline_id TEXT NOT NULL,
		id          TEXT NOT NULL,
		position    INTEGER NOT NULL,
		metadata    TEXT NOT NULL DEFAULT '{}',
		PRIMARY KEY (timeline_id, id)
	);
	CREATE INDEX IF NOT EXISTS idx_assets_timeline ON assets(timeline_id, position);
	`
	_, err := c.db.Exec(schema)
	return err
}

// PutAssets registers assets for a timeline.
func (c *SQLiteCatalog) PutAssets(ctx context.Context, timelineID string, assets []domain.Asset) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM assets WHERE timeline_id = ?`, timelineID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("next position for %q: %w", timelineID, err)
	}

	uploadTime := c.now().UTC().Format(time.RFC3339)
	for i, asset := range assets {
		if asset.ID == "" {
			return fmt.Errorf("%w: asset at position %d has no id", domain.ErrValidation, i)
		}

		metadata := domain.Metadata{}
		for k, v := range asset.Metadata {
			metadata[k] = v
		}
		if _, ok := metadata.UploadTime(); !ok {
			metadata["uploadTime"] = uploadTime
		}

		encoded, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata for %q: %w", asset.ID, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO assets (timeline_id, id, position, metadata) VALUES (?, ?, ?, ?)
			 ON CONFLICT (timeline_id, id) DO UPDATE SET metadata = excluded.metadata`,
			timelineID, asset.ID, next+i, string(encoded),
		)
		if err != nil {
			return fmt.Errorf("insert asset %q: %w", asset.ID, err)
		}
	}

	return tx.Commit()
}

// ListAssets returns the assets for a timeline in registration order.
func (c *SQLiteCatalog) ListAssets(ctx context.Context, timelineID string) ([]domain.Asset, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, metadata FROM assets WHERE timeline_id = ? ORDER BY position`, timelineID)
	if err != nil {
		return nil, fmt.Errorf("list assets for %q: %w", timelineID, err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		var metadata string
		if err := rows.Scan(&asset.ID, &metadata); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		if err := json.Unmarshal([]byte(metadata), &asset.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata for %q: %w", asset.ID, err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// Close closes the underlying database.
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}
