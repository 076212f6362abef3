// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Validation is the outcome of checking a single record. A record is
// invalid only on hard errors; warnings never block processing.
type Validation struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// DatasetStats counts the outcome of dataset-level validation and
// deduplication.
type DatasetStats struct {
	Total      int `json:"total" yaml:"total"`
	Valid      int `json:"valid" yaml:"valid"`
	Invalid    int `json:"invalid" yaml:"invalid"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`

	// Warnings counts records that validated with warnings.
	Warnings int `json:"warnings" yaml:"warnings"`
}

// QualityReport holds per-field completeness percentages over the valid
// record set plus derived guidance.
type QualityReport struct {
	TitleCoverage    float64 `json:"title_coverage" yaml:"title_coverage"`
	AuthorCoverage   float64 `json:"author_coverage" yaml:"author_coverage"`
	YearCoverage     float64 `json:"year_coverage" yaml:"year_coverage"`
	AbstractCoverage float64 `json:"abstract_coverage" yaml:"abstract_coverage"`
	DOICoverage      float64 `json:"doi_coverage" yaml:"doi_coverage"`
	URLCoverage      float64 `json:"url_coverage" yaml:"url_coverage"`
	VenueCoverage    float64 `json:"venue_coverage" yaml:"venue_coverage"`

	// Score is the mean of the field coverages, a single composite
	// completeness figure.
	Score float64 `json:"score" yaml:"score"`

	// Recommendations holds qualitative guidance emitted when coverage
	// falls under fixed thresholds.
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// VenueStat counts papers per publication venue.
type VenueStat struct {
	Venue string `json:"venue" yaml:"venue"`
	Count int    `json:"count" yaml:"count"`
}

// YearRange bounds the corpus's publication years.
type YearRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// ProcessedData is the pipeline's single output aggregate. It is built
// once per run and treated as read-only by every consumer.
type ProcessedData struct {
	Papers    []PaperRecord `json:"papers" yaml:"papers"`
	YearRange YearRange     `json:"year_range" yaml:"year_range"`

	Network AuthorNetwork  `json:"network" yaml:"network"`
	Topics  []TopicCluster `json:"topics" yaml:"topics"`
	Trends  []TopicTrend   `json:"trends,omitempty" yaml:"trends,omitempty"`
	Gaps    []ResearchGap  `json:"gaps" yaml:"gaps"`

	Venues  []VenueStat   `json:"venues" yaml:"venues"`
	Quality QualityReport `json:"quality" yaml:"quality"`
	Stats   DatasetStats  `json:"stats" yaml:"stats"`
}
