package assembly

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/cutroom/roughcut/internal/domain"
)

// Ranker produces a total order over assets for the semantic strategy. The
// engine defines only the interface; semantic reasoning belongs to an
// external collaborator such as the content-analysis service.
type Ranker interface {
	Rank(assets []domain.Asset) []domain.Asset
}

// AnalysisRanker orders assets by the numeric "rank" hint the
// content-analysis service writes into metadata.analysis. Assets without a
// hint sort after ranked ones, keeping their relative input order.
type AnalysisRanker struct{}

func (AnalysisRanker) Rank(assets []domain.Asset) []domain.Asset {
	ranked := slices.Clone(assets)
	sort.SliceStable(ranked, func(i, j int) bool {
		return analysisRank(ranked[i]) < analysisRank(ranked[j])
	})
	return ranked
}

func analysisRank(a domain.Asset) float64 {
	if analysis := a.Metadata.Analysis(); analysis != nil {
		if rank, ok := analysis.Float("rank"); ok {
			return rank
		}
	}
	return float64(1 << 53)
}

// orderAssets returns a new ordered slice; the input is never reordered in
// place. The sort is stable so downstream grouping sees a deterministic base
// order.
func orderAssets(assets []domain.Asset, strategy domain.Strategy, ranker Ranker) ([]domain.Asset, error) {
	switch strategy {
	case "":
		return nil, fmt.Errorf("%w: strategy is required", domain.ErrValidation)
	case domain.StrategyChronological:
		ordered := slices.Clone(assets)
		sort.SliceStable(ordered, func(i, j int) bool {
			return sortTime(ordered[i]).Before(sortTime(ordered[j]))
		})
		return ordered, nil
	case domain.StrategySemantic:
		if ranker == nil {
			// Documented default: without a ranker, semantic ordering keeps
			// the input order.
			return slices.Clone(assets), nil
		}
		return ranker.Rank(assets), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedStrategy, strategy)
	}
}

func sortTime(a domain.Asset) time.Time {
	if ts, ok := a.Metadata.Timestamp(); ok {
		return ts
	}
	if up, ok := a.Metadata.UploadTime(); ok {
		return up
	}
	return time.Time{}
}
