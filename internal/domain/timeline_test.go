package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipJSONSerialization(t *testing.T) {
	clip := Clip{
		ID:        "c1",
		AssetID:   "a1",
		StartTime: 0,
		EndTime:   12.5,
		InPoint:   0,
		OutPoint:  12.5,
		Transitions: Transitions{
			In: &Transition{Type: TransitionDissolve, Duration: 1},
		},
	}

	data, err := json.Marshal(clip)
	require.NoError(t, err)

	expected := `{"id":"c1","assetId":"a1","startTime":0,"endTime":12.5,"inPoint":0,"outPoint":12.5,"transitions":{"in":{"type":"dissolve","durationSeconds":1}}}`
	assert.JSONEq(t, expected, string(data))

	var decoded Clip
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, clip, decoded)
	assert.Equal(t, 12.5, decoded.Duration())
}

func TestTimelineClipCount(t *testing.T) {
	timeline := Timeline{
		Tracks: []Track{
			{ID: "t1", Type: TrackVideo, Clips: []Clip{{ID: "c1"}, {ID: "c2"}}},
			{ID: "t2", Type: TrackAudio},
			{ID: "t3", Type: TrackGraphics, Clips: []Clip{{ID: "c3"}}},
		},
	}

	assert.Equal(t, 3, timeline.ClipCount())
	assert.True(t, timeline.HasClips())

	assert.False(t, Timeline{}.HasClips())
	assert.False(t, Timeline{Tracks: []Track{{ID: "t1"}}}.HasClips())
}
