// Package export renders timelines to EDL text and hands the blob to the
// configured export destination.
package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cutroom/roughcut/internal/domain"
	"github.com/cutroom/roughcut/internal/edl"
	"github.com/cutroom/roughcut/internal/storage"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Filename builds the suggested filename for an export: the timeline name
// lower-cased with everything outside [a-z0-9] stripped, a Unix timestamp,
// and the .edl extension.
func Filename(name string, now time.Time) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(name), "")
	if base == "" {
		base = "timeline"
	}
	return fmt.Sprintf("%s_%d.edl", base, now.Unix())
}

// Result describes a completed export.
type Result struct {
	Filename string `json:"filename"`
	Location string `json:"location"`
	Content  string `json:"content"`
}

// Exporter encodes timelines and stores the result.
type Exporter struct {
	storage storage.Storage
	now     func() time.Time
}

// New creates an Exporter over the given destination.
func New(st storage.Storage) *Exporter {
	return &Exporter{storage: st, now: time.Now}
}

// Export renders the timeline in the requested format and saves the blob.
func (e *Exporter) Export(ctx context.Context, t domain.Timeline, format edl.Format) (*Result, error) {
	content, err := edl.Encode(t, format)
	if err != nil {
		return nil, err
	}

	filename := Filename(t.Name, e.now())
	location, err := e.storage.SaveExport(ctx, filename, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("failed to save export for timeline %q: %w", t.ID, err)
	}

	return &Result{Filename: filename, Location: location, Content: content}, nil
}
