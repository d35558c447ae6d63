package domain

import "time"

// DefaultFramerate is used when a timeline does not declare one.
const DefaultFramerate = 24

// TransitionType identifies the kind of transition between adjacent clips.
type TransitionType string

// TransitionDissolve is a cross-fade between adjacent clips. It is the only
// transition type the assembly engine synthesizes.
const TransitionDissolve TransitionType = "dissolve"

// Transition describes a transition on one edge of a clip.
type Transition struct {
	Type     TransitionType `json:"type"`
	Duration float64        `json:"durationSeconds"`
}

// Transitions holds the optional in/out transitions of a clip.
type Transitions struct {
	In  *Transition `json:"in,omitempty"`
	Out *Transition `json:"out,omitempty"`
}

// Clip is a placed reference to an asset. StartTime/EndTime are
// timeline-relative seconds, InPoint/OutPoint are source-relative seconds
// within the asset. EndTime-StartTime always equals OutPoint-InPoint: the
// engine never applies speed changes.
type Clip struct {
	ID          string      `json:"id"`
	AssetID     string      `json:"assetId"`
	StartTime   float64     `json:"startTime"`
	EndTime     float64     `json:"endTime"`
	InPoint     float64     `json:"inPoint"`
	OutPoint    float64     `json:"outPoint"`
	Transitions Transitions `json:"transitions"`
}

// Duration returns the timeline-relative length of the clip in seconds.
func (c Clip) Duration() float64 {
	return c.EndTime - c.StartTime
}

// TrackType identifies the kind of media a track carries.
type TrackType string

const (
	TrackVideo    TrackType = "video"
	TrackAudio    TrackType = "audio"
	TrackGraphics TrackType = "graphics"
)

// Track is an ordered sequence of non-overlapping clips sorted ascending by
// start time.
type Track struct {
	ID    string    `json:"id"`
	Type  TrackType `json:"type"`
	Clips []Clip    `json:"clips"`
}

// Timeline is the assembled edit. Duration equals the largest clip end time
// across all tracks, or 0 when no clips exist. Version supports optimistic
// concurrency in the timeline store and is not touched by the engine.
type Timeline struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Framerate  int       `json:"framerate"`
	Resolution string    `json:"resolution,omitempty"`
	Duration   float64   `json:"duration"`
	Tracks     []Track   `json:"tracks"`
	Modified   time.Time `json:"modified"`
	Version    int64     `json:"version"`
}

// ClipCount returns the total number of clips across all tracks.
func (t Timeline) ClipCount() int {
	n := 0
	for _, track := range t.Tracks {
		n += len(track.Clips)
	}
	return n
}

// HasClips reports whether any track holds at least one clip.
func (t Timeline) HasClips() bool {
	return t.ClipCount() > 0
}
