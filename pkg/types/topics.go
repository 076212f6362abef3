// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TopicCluster groups the papers assigned to one topic category.
// Membership is non-exclusive: a paper may belong to any number of
// clusters, including none.
type TopicCluster struct {
	// ID is the stable topic identifier from the vocabulary.
	ID string `json:"id" yaml:"id"`

	// Label is the human-readable topic name.
	Label string `json:"label" yaml:"label"`

	// Papers holds the keys of member records.
	Papers []string `json:"papers" yaml:"papers"`

	// Coverage is the membership size as a percentage of the corpus.
	Coverage float64 `json:"coverage" yaml:"coverage"`

	// Connections lists ids of topics whose paper overlap with this
	// cluster exceeds ten percent of the smaller cluster.
	Connections []string `json:"connections,omitempty" yaml:"connections,omitempty"`
}

// TrendDirection classifies a topic's recent publication activity.
type TrendDirection string

const (
	TrendRising    TrendDirection = "rising"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

// TopicTrend compares a cluster's recent-year activity against the
// baseline expected from the corpus's year span.
type TopicTrend struct {
	TopicID string `json:"topic_id" yaml:"topic_id"`

	// RecentRatio is the fraction of the cluster's papers published in
	// the recent window.
	RecentRatio float64 `json:"recent_ratio" yaml:"recent_ratio"`

	// ExpectedRatio is the ratio a uniformly active topic would show.
	ExpectedRatio float64 `json:"expected_ratio" yaml:"expected_ratio"`

	Direction TrendDirection `json:"direction" yaml:"direction"`
}
