package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutroom/roughcut/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "roughcut.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Timeline{Name: "Demo", Resolution: "1920x1080"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.DefaultFramerate, created.Framerate)
	assert.Equal(t, int64(1), created.Version)

	loaded, err := s.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, loaded.Name)
	assert.Equal(t, created.Resolution, loaded.Resolution)
	assert.Equal(t, created.Version, loaded.Version)
	assert.Empty(t, loaded.Tracks)
}

func TestLoadNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestSaveRoundTripsTracks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Timeline{Name: "Demo", Framerate: 24})
	require.NoError(t, err)

	created.Duration = 15
	created.Tracks = []domain.Track{
		{
			ID:   "trk-1",
			Type: domain.TrackVideo,
			Clips: []domain.Clip{
				{
					ID: "c1", AssetID: "a1", StartTime: 0, EndTime: 15, InPoint: 0, OutPoint: 15,
					Transitions: domain.Transitions{In: &domain.Transition{Type: domain.TransitionDissolve, Duration: 1}},
				},
			},
		},
	}

	saved, err := s.Save(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Version)

	loaded, err := s.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.0, loaded.Duration)
	require.Len(t, loaded.Tracks, 1)
	require.Len(t, loaded.Tracks[0].Clips, 1)
	assert.Equal(t, created.Tracks[0].Clips[0], loaded.Tracks[0].Clips[0])
}

func TestSaveVersionConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Timeline{Name: "Demo"})
	require.NoError(t, err)

	// Two loads of the same version, two saves: the second must fail.
	first := created
	second := created

	_, err = s.Save(ctx, first)
	require.NoError(t, err)

	_, err = s.Save(ctx, second)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestSaveNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(context.Background(), domain.Timeline{ID: "missing", Version: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.Create(ctx, domain.Timeline{Name: "A"})
	require.NoError(t, err)
	_, err = s.Create(ctx, domain.Timeline{Name: "B"})
	require.NoError(t, err)

	timelines, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, timelines, 2)

	require.NoError(t, s.Delete(ctx, a.ID))

	timelines, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, timelines, 1)
	assert.Equal(t, "B", timelines[0].Name)

	assert.ErrorIs(t, s.Delete(ctx, a.ID), ErrNotFound)
}
