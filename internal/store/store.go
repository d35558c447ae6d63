// Package store persists timelines. The assembly engine never touches
// storage itself; it consumes and produces Timeline values and this package
// wraps them with the optimistic-concurrency check assembly results require.
package store

import (
	"context"
	"errors"

	"github.com/cutroom/roughcut/internal/domain"
)

var (
	// ErrNotFound is returned when a timeline id is unknown.
	ErrNotFound = errors.New("timeline not found")
	// ErrVersionConflict is returned by Save when the timeline was modified
	// since it was loaded. Callers must re-load and retry; a blind overwrite
	// would silently discard the concurrent write.
	ErrVersionConflict = errors.New("timeline version conflict")
)

// Store loads and saves timelines.
type Store interface {
	Create(ctx context.Context, t domain.Timeline) (domain.Timeline, error)
	Load(ctx context.Context, id string) (domain.Timeline, error)
	// Save persists t only if the stored version still matches t.Version,
	// returning the timeline with its version bumped.
	Save(ctx context.Context, t domain.Timeline) (domain.Timeline, error)
	List(ctx context.Context) ([]domain.Timeline, error)
	Delete(ctx context.Context, id string) error
}
