package domain

// Strategy selects how assets are ordered before placement.
type Strategy string

const (
	// StrategyChronological orders assets by capture time, falling back to
	// catalog upload time.
	StrategyChronological Strategy = "chronological"
	// StrategySemantic delegates ordering to a caller-supplied ranker. With
	// no ranker configured the input order is kept.
	StrategySemantic Strategy = "semantic"
)

// AssemblyOptions configures a single assembly run. It is pure configuration
// and is never persisted.
type AssemblyOptions struct {
	Strategy       Strategy `json:"strategy"`
	GroupBy        string   `json:"groupBy,omitempty"`
	AddTransitions bool     `json:"addTransitions"`
}
