// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GapType identifies which dimension a research gap was found on.
type GapType string

const (
	GapTopical        GapType = "topical"
	GapTemporal       GapType = "temporal"
	GapMethodological GapType = "methodological"
	GapGeographic     GapType = "geographic"
)

// Severity buckets a numeric gap size for display.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ResearchGap is one heuristic finding from the gap analysis. Gaps carry
// no independent lifecycle; the full set is regenerated on every run.
type ResearchGap struct {
	Type        GapType  `json:"type" yaml:"type"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Severity    Severity `json:"severity" yaml:"severity"`

	// GapSize is the raw numeric difference between expected and actual
	// activity on this dimension.
	GapSize float64 `json:"gap_size" yaml:"gap_size"`

	// OpportunityScore is a heuristic ranking value, not a validated
	// statistical measure. Gaps are returned sorted by it, descending.
	OpportunityScore float64 `json:"opportunity_score" yaml:"opportunity_score"`

	// Topics names the topic clusters involved, where applicable.
	Topics []string `json:"topics,omitempty" yaml:"topics,omitempty"`

	// Years bounds the affected period for temporal gaps.
	Years []int `json:"years,omitempty" yaml:"years,omitempty"`

	// Recommendations holds templated human-readable guidance.
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`

	// Evidence holds contextual findings (e.g. stagnant or emerging
	// topic flags) supporting the gap.
	Evidence []string `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}
