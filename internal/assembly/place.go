package assembly

import (
	"math"

	"github.com/cutroom/roughcut/internal/domain"
)

const (
	// defaultClipDuration is used for assets that declare no duration.
	defaultClipDuration = 5.0
	// maxTransitionDuration caps synthesized dissolves at one second.
	maxTransitionDuration = 1.0
)

// placeClips walks the ordered asset sequence and emits a single video track
// of contiguous clips. A running cursor advances monotonically, so clips can
// never overlap. In/out points always span the asset's full declared
// duration: the engine never trims source media. Returns the track and the
// final cursor position, which is the timeline duration.
func (e *Engine) placeClips(assets []domain.Asset, addTransitions bool) (domain.Track, float64) {
	track := domain.Track{
		ID:   e.newID(),
		Type: domain.TrackVideo,
	}

	currentTime := 0.0
	for i, asset := range assets {
		clipDuration := defaultClipDuration
		if d, ok := asset.Metadata.Duration(); ok && d > 0 {
			clipDuration = d
		}

		clip := domain.Clip{
			ID:        e.newID(),
			AssetID:   asset.ID,
			StartTime: currentTime,
			EndTime:   currentTime + clipDuration,
			InPoint:   0,
			OutPoint:  clipDuration,
		}

		// The first clip has nothing to dissolve from; out-transitions are
		// reserved and never populated here.
		if addTransitions && i > 0 {
			clip.Transitions.In = &domain.Transition{
				Type:     domain.TransitionDissolve,
				Duration: math.Min(maxTransitionDuration, clipDuration/4),
			}
		}

		track.Clips = append(track.Clips, clip)
		currentTime += clipDuration
	}

	return track, currentTime
}
