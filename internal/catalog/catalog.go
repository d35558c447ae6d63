// Package catalog stores the assets registered against a timeline. The
// assembly engine only ever reads from it.
package catalog

import (
	"context"

	"github.com/cutroom/roughcut/internal/domain"
)

// Catalog supplies the asset snapshot for a timeline.
type Catalog interface {
	// PutAssets registers assets for a timeline, appending after any already
	// registered. Assets without an uploadTime are stamped with the catalog's
	// ingestion time so chronological ordering always has a fallback.
	PutAssets(ctx context.Context, timelineID string, assets []domain.Asset) error
	// ListAssets returns the assets for a timeline in registration order.
	ListAssets(ctx context.Context, timelineID string) ([]domain.Asset, error)
}
