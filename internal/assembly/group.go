package assembly

import "github.com/cutroom/roughcut/internal/domain"

// fallbackGroup collects assets whose group key cannot be resolved.
const fallbackGroup = "unknown"

// groupAssets partitions an ordered asset sequence by the groupBy metadata
// key and flattens the groups back in order of first appearance. It is a
// stable partition, never a re-sort: assets sharing a key keep their relative
// order from the input. An empty groupBy is the identity.
func groupAssets(assets []domain.Asset, groupBy string) []domain.Asset {
	if groupBy == "" {
		return assets
	}

	var order []string
	groups := make(map[string][]domain.Asset)
	for _, asset := range assets {
		key := groupKey(asset, groupBy)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], asset)
	}

	grouped := make([]domain.Asset, 0, len(assets))
	for _, key := range order {
		grouped = append(grouped, groups[key]...)
	}
	return grouped
}

// groupKey resolves an asset's group key: direct metadata first, then the
// nested analysis object, then the literal fallback.
func groupKey(asset domain.Asset, groupBy string) string {
	if v, ok := asset.Metadata.StringValue(groupBy); ok {
		return v
	}
	if analysis := asset.Metadata.Analysis(); analysis != nil {
		if v, ok := analysis.StringValue(groupBy); ok {
			return v
		}
	}
	return fallbackGroup
}
