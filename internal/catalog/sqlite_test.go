package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutroom/roughcut/internal/domain"
)

func newTestCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()
	c, err := NewSQLiteCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPutAndListPreservesOrder(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	first := []domain.Asset{
		{ID: "b", Metadata: domain.Metadata{"duration": 10.0}},
		{ID: "a", Metadata: domain.Metadata{"duration": 5.0}},
	}
	require.NoError(t, c.PutAssets(ctx, "tl-1", first))

	// A second batch appends after the first.
	require.NoError(t, c.PutAssets(ctx, "tl-1", []domain.Asset{{ID: "c", Metadata: domain.Metadata{}}}))

	assets, err := c.ListAssets(ctx, "tl-1")
	require.NoError(t, err)
	require.Len(t, assets, 3)
	assert.Equal(t, "b", assets[0].ID)
	assert.Equal(t, "a", assets[1].ID)
	assert.Equal(t, "c", assets[2].ID)

	duration, ok := assets[0].Metadata.Duration()
	require.True(t, ok)
	assert.Equal(t, 10.0, duration)
}

func TestPutAssetsStampsUploadTime(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	assets := []domain.Asset{
		{ID: "stamped", Metadata: domain.Metadata{"uploadTime": "2024-01-01T00:00:00Z"}},
		{ID: "unstamped", Metadata: domain.Metadata{}},
	}
	require.NoError(t, c.PutAssets(ctx, "tl-1", assets))

	listed, err := c.ListAssets(ctx, "tl-1")
	require.NoError(t, err)

	up, ok := listed[0].Metadata.UploadTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), up)

	up, ok = listed[1].Metadata.UploadTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), up)
}

func TestPutAssetsDoesNotMutateInput(t *testing.T) {
	c := newTestCatalog(t)

	input := []domain.Asset{{ID: "a", Metadata: domain.Metadata{}}}
	require.NoError(t, c.PutAssets(context.Background(), "tl-1", input))

	_, ok := input[0].Metadata.UploadTime()
	assert.False(t, ok)
}

func TestPutAssetsRequiresID(t *testing.T) {
	c := newTestCatalog(t)

	err := c.PutAssets(context.Background(), "tl-1", []domain.Asset{{Metadata: domain.Metadata{}}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListAssetsScopedByTimeline(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.PutAssets(ctx, "tl-1", []domain.Asset{{ID: "a", Metadata: domain.Metadata{}}}))
	require.NoError(t, c.PutAssets(ctx, "tl-2", []domain.Asset{{ID: "b", Metadata: domain.Metadata{}}}))

	assets, err := c.ListAssets(ctx, "tl-1")
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "a", assets[0].ID)

	assets, err = c.ListAssets(ctx, "tl-3")
	require.NoError(t, err)
	assert.Empty(t, assets)
}
