// Package edl renders timelines as Edit Decision List text. Only the
// CMX3600 dialect is supported and the codec is encode-only.
package edl

import (
	"fmt"
	"strings"

	"github.com/cutroom/roughcut/internal/domain"
	"github.com/cutroom/roughcut/internal/timecode"
)

// Format identifies an EDL dialect.
type Format string

// FormatCMX3600 is the fixed-column CMX 3600 dialect.
const FormatCMX3600 Format = "CMX3600"

// Encode renders the timeline as CMX3600 EDL text. Events are numbered
// globally across tracks, visiting tracks in timeline order and clips in
// stored order. Every clip becomes one event block: the edit line, a
// FROM CLIP NAME comment carrying the asset id, and a trailing blank line.
func Encode(t domain.Timeline, format Format) (string, error) {
	if format != FormatCMX3600 {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	if !t.HasClips() {
		return "", fmt.Errorf("%w: timeline %q", domain.ErrNoClips, t.ID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TITLE: %s\n", t.Name)
	b.WriteString("FCM: NON-DROP FRAME\n\n")

	event := 1
	for _, track := range t.Tracks {
		for _, clip := range track.Clips {
			srcIn, err := timecode.FromSeconds(clip.InPoint, t.Framerate)
			if err != nil {
				return "", fmt.Errorf("clip %q in point: %w", clip.ID, err)
			}
			srcOut, err := timecode.FromSeconds(clip.OutPoint, t.Framerate)
			if err != nil {
				return "", fmt.Errorf("clip %q out point: %w", clip.ID, err)
			}
			recIn, err := timecode.FromSeconds(clip.StartTime, t.Framerate)
			if err != nil {
				return "", fmt.Errorf("clip %q record in: %w", clip.ID, err)
			}
			recOut, err := timecode.FromSeconds(clip.EndTime, t.Framerate)
			if err != nil {
				return "", fmt.Errorf("clip %q record out: %w", clip.ID, err)
			}

			fmt.Fprintf(&b, "%03d  AX       V     C        %s %s %s %s\n", event, srcIn, srcOut, recIn, recOut)
			fmt.Fprintf(&b, "* FROM CLIP NAME: %s\n\n", clip.AssetID)
			event++
		}
	}

	return b.String(), nil
}
