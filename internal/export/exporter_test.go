package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutroom/roughcut/internal/domain"
	"github.com/cutroom/roughcut/internal/edl"
	"github.com/cutroom/roughcut/internal/storage"
)

func TestFilename(t *testing.T) {
	now := time.Unix(1709294400, 0)

	tests := []struct {
		name string
		want string
	}{
		{"Demo", "demo_1709294400.edl"},
		{"My Summer Cut (v2)", "mysummercutv2_1709294400.edl"},
		{"Überreel #1", "berreel1_1709294400.edl"},
		{"!!!", "timeline_1709294400.edl"},
		{"", "timeline_1709294400.edl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.name, now))
		})
	}
}

func demoTimeline() domain.Timeline {
	return domain.Timeline{
		ID:        "tl-1",
		Name:      "Demo",
		Framerate: 24,
		Duration:  15,
		Tracks: []domain.Track{
			{
				ID:   "trk-1",
				Type: domain.TrackVideo,
				Clips: []domain.Clip{
					{ID: "c1", AssetID: "asset-42", StartTime: 0, EndTime: 15, InPoint: 0, OutPoint: 15},
				},
			},
		},
	}
}

func TestExport(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	exporter := New(st)
	exporter.now = func() time.Time { return time.Unix(1709294400, 0) }

	result, err := exporter.Export(context.Background(), demoTimeline(), edl.FormatCMX3600)
	require.NoError(t, err)

	assert.Equal(t, "demo_1709294400.edl", result.Filename)
	assert.Contains(t, result.Location, result.Filename)
	assert.Contains(t, result.Content, "TITLE: Demo\n")
	assert.Contains(t, result.Content, "* FROM CLIP NAME: asset-42")

	exports, err := st.ListExports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"demo_1709294400.edl"}, exports)
}

func TestExportSurfacesCodecErrors(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	exporter := New(st)

	_, err = exporter.Export(context.Background(), domain.Timeline{Name: "Empty", Framerate: 24}, edl.FormatCMX3600)
	assert.ErrorIs(t, err, domain.ErrNoClips)

	_, err = exporter.Export(context.Background(), demoTimeline(), "AAF")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
