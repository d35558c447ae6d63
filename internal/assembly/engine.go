// Package assembly implements the timeline assembly engine: it orders and
// groups a snapshot of assets and places them as contiguous clips on a fresh
// video track. The engine is a synchronous, allocation-only computation with
// no I/O and no shared state; distinct calls may run concurrently.
package assembly

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cutroom/roughcut/internal/domain"
)

// Engine assembles timelines from assets. Id generation and the clock are
// injected so output is reproducible in tests.
type Engine struct {
	newID  func() string
	now    func() time.Time
	ranker Ranker
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides the clip/track id source.
func WithIDGenerator(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// WithClock overrides the modified-timestamp source.
func WithClock(f func() time.Time) Option {
	return func(e *Engine) { e.now = f }
}

// WithRanker supplies the ordering collaborator for the semantic strategy.
func WithRanker(r Ranker) Option {
	return func(e *Engine) { e.ranker = r }
}

// New creates an Engine with UUID ids and the wall clock.
func New(opts ...Option) *Engine {
	e := &Engine{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assemble orders and groups the given assets, places them on a single new
// video track and returns a new Timeline value. Id, name, framerate and
// resolution are carried over from base; tracks, duration and modified are
// overwritten. Neither base nor assets are mutated. Persisting the result,
// including any concurrency check, is the caller's responsibility.
func (e *Engine) Assemble(base domain.Timeline, assets []domain.Asset, opts domain.AssemblyOptions) (domain.Timeline, error) {
	if len(assets) == 0 {
		return domain.Timeline{}, fmt.Errorf("%w: timeline %q", domain.ErrNoAssets, base.ID)
	}

	ordered, err := orderAssets(assets, opts.Strategy, e.ranker)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("timeline %q: %w", base.ID, err)
	}

	grouped := groupAssets(ordered, opts.GroupBy)
	track, duration := e.placeClips(grouped, opts.AddTransitions)

	assembled := base
	if assembled.Framerate <= 0 {
		assembled.Framerate = domain.DefaultFramerate
	}
	assembled.Tracks = []domain.Track{track}
	assembled.Duration = duration
	assembled.Modified = e.now()
	return assembled, nil
}
