// Package timecode converts between floating-point seconds and frame-based
// timecode strings. All functions are pure.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cutroom/roughcut/internal/domain"
)

// FromSeconds renders seconds as an HH:MM:SS:FF timecode at the given
// integer framerate. The frame field counts whole frames within the current
// second.
func FromSeconds(seconds float64, framerate int) (string, error) {
	if framerate <= 0 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidFramerate, framerate)
	}
	if seconds < 0 {
		return "", fmt.Errorf("%w: %g", domain.ErrInvalidTime, seconds)
	}

	whole := int(seconds)
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60
	frames := int((seconds - math.Floor(seconds)) * float64(framerate))

	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secs, frames), nil
}

// DisplayTime renders seconds as HH:MM:SS.cc with a centisecond field. It is
// meant for human-facing output, never for EDL text.
func DisplayTime(seconds float64) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: %g", domain.ErrInvalidTime, seconds)
	}

	whole := int(seconds)
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60
	centis := int((seconds - math.Floor(seconds)) * 100)

	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, secs, centis), nil
}

// ParseFrameRate parses a frame rate declared in technical metadata, either
// a plain number ("24", "29.97") or a rational fraction ("30000/1001").
func ParseFrameRate(s string) (float64, error) {
	s = strings.TrimSpace(s)

	if num, den, found := strings.Cut(s, "/"); found {
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidFramerate, s)
		}
		d, err := strconv.Atoi(strings.TrimSpace(den))
		if err != nil || d == 0 || n <= 0 {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidFramerate, s)
		}
		return float64(n) / float64(d), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidFramerate, s)
	}
	return f, nil
}
