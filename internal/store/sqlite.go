package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cutroom/roughcut/internal/domain"
)

// SQLiteStore implements Store using SQLite. Tracks are stored as a JSON
// column; the version column backs the optimistic-concurrency check.
type SQLiteStore struct {
	db    *sql.DB
	newID func() string
	now   func() time.Time
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:    db,
		newID: uuid.NewString,
		now:   time.Now,
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS timelines (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		framerate  INTEGER NOT NULL,
		resolution TEXT NOT NULL DEFAULT '',
		duration   REAL NOT NULL DEFAULT 0,
		tracks     TEXT NOT NULL DEFAULT '[]',
		modified   TEXT NOT NULL,
		version    INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_timelines_modified ON timelines(modified DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Create inserts a new timeline. A missing id and framerate are filled in;
// the stored version starts at 1.
func (s *SQLiteStore) Create(ctx context.Context, t domain.Timeline) (domain.Timeline, error) {
	if t.ID == "" {
		t.ID = s.newID()
	}
	if t.Framerate <= 0 {
		t.Framerate = domain.DefaultFramerate
	}
	t.Modified = s.now()
	t.Version = 1

	tracks, err := json.Marshal(t.Tracks)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("marshal tracks: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO timelines (id, name, framerate, resolution, duration, tracks, modified, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Framerate, t.Resolution, t.Duration, string(tracks),
		t.Modified.UTC().Format(time.RFC3339Nano), t.Version,
	)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("insert timeline %q: %w", t.ID, err)
	}
	return t, nil
}

// Load returns the timeline with the given id.
func (s *SQLiteStore) Load(ctx context.Context, id string) (domain.Timeline, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, framerate, resolution, duration, tracks, modified, version
		 FROM timelines WHERE id = ?`, id)
	return scanTimeline(row, id)
}

// Save updates the timeline if the stored version still matches t.Version.
func (s *SQLiteStore) Save(ctx context.Context, t domain.Timeline) (domain.Timeline, error) {
	tracks, err := json.Marshal(t.Tracks)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("marshal tracks: %w", err)
	}
	if t.Modified.IsZero() {
		t.Modified = s.now()
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE timelines
		 SET name = ?, framerate = ?, resolution = ?, duration = ?, tracks = ?, modified = ?, version = version + 1
		 WHERE id = ? AND version = ?`,
		t.Name, t.Framerate, t.Resolution, t.Duration, string(tracks),
		t.Modified.UTC().Format(time.RFC3339Nano), t.ID, t.Version,
	)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("update timeline %q: %w", t.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Timeline{}, err
	}
	if affected == 0 {
		if _, loadErr := s.Load(ctx, t.ID); loadErr != nil {
			return domain.Timeline{}, loadErr
		}
		return domain.Timeline{}, fmt.Errorf("%w: timeline %q version %d", ErrVersionConflict, t.ID, t.Version)
	}

	t.Version++
	return t, nil
}

// List returns all timelines, most recently modified first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Timeline, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, framerate, resolution, duration, tracks, modified, version
		 FROM timelines ORDER BY modified DESC`)
	if err != nil {
		return nil, fmt.Errorf("list timelines: %w", err)
	}
	defer rows.Close()

	var timelines []domain.Timeline
	for rows.Next() {
		t, err := scanTimeline(rows, "")
		if err != nil {
			return nil, err
		}
		timelines = append(timelines, t)
	}
	return timelines, rows.Err()
}

// Delete removes the timeline with the given id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM timelines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete timeline %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeline(row rowScanner, id string) (domain.Timeline, error) {
	var t domain.Timeline
	var tracks, modified string

	err := row.Scan(&t.ID, &t.Name, &t.Framerate, &t.Resolution, &t.Duration, &tracks, &modified, &t.Version)
	if err == sql.ErrNoRows {
		return domain.Timeline{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("scan timeline: %w", err)
	}

	if err := json.Unmarshal([]byte(tracks), &t.Tracks); err != nil {
		return domain.Timeline{}, fmt.Errorf("unmarshal tracks for %q: %w", t.ID, err)
	}
	t.Modified, err = time.Parse(time.RFC3339Nano, modified)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("parse modified for %q: %w", t.ID, err)
	}
	return t, nil
}
