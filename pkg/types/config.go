// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "litscope/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ParserConfig holds settings for record parsing.
type ParserConfig struct {
	// YearMin and YearMax bound plausible publication years. Years
	// outside the range are discarded, not clamped (defaults 1990-2025).
	YearMin int `json:"year_min" yaml:"year_min"`
	YearMax int `json:"year_max" yaml:"year_max"`

	// MinTitleLength is the shortest title accepted for a record
	// (default 3). Shorter titles cause the row to be skipped.
	MinTitleLength int `json:"min_title_length" yaml:"min_title_length"`
}

// ClassifierConfig holds settings for keyword-based topic classification.
type ClassifierConfig struct {
	// MinScore is the normalized keyword score a paper must exceed to
	// join a topic cluster (default 0.1).
	MinScore float64 `json:"min_score" yaml:"min_score"`

	// ConnectionOverlap is the shared-paper ratio (relative to the
	// smaller cluster) above which two clusters are linked (default 0.1).
	ConnectionOverlap float64 `json:"connection_overlap" yaml:"connection_overlap"`

	// RecentWindow is the number of trailing years treated as "recent"
	// by trend analysis (default 3).
	RecentWindow int `json:"recent_window" yaml:"recent_window"`
}

// GapConfig exposes the gap analyzer's thresholds. The defaults come from
// the original heuristic design and carry no empirical derivation; treat
// them as tunable parameters.
type GapConfig struct {
	// ExpectedOverlap is the assumed fraction of coverage-predicted
	// topic co-occurrence that should materialize (default 0.3).
	ExpectedOverlap float64 `json:"expected_overlap" yaml:"expected_overlap"`

	// MinGapSize and MinImpact filter topical gap candidates
	// (defaults 5 and 0.7).
	MinGapSize float64 `json:"min_gap_size" yaml:"min_gap_size"`
	MinImpact  float64 `json:"min_impact" yaml:"min_impact"`

	// HighGap and MediumGap bucket topical gap severity (defaults 15, 10).
	HighGap   float64 `json:"high_gap" yaml:"high_gap"`
	MediumGap float64 `json:"medium_gap" yaml:"medium_gap"`

	// MovingAvgWindow is the number of years either side of a year used
	// for the temporal moving average (default 3).
	MovingAvgWindow int `json:"moving_avg_window" yaml:"moving_avg_window"`

	// TemporalThreshold is how far below its local expectation a year's
	// count must fall to be flagged (default 5).
	TemporalThreshold float64 `json:"temporal_threshold" yaml:"temporal_threshold"`

	// MethodMinShare is the corpus share below which a methodology
	// category counts as under-utilized (default 0.15).
	MethodMinShare float64 `json:"method_min_share" yaml:"method_min_share"`

	// BiasThreshold is the theoretical-vs-empirical bias score above
	// which a high-severity gap is reported (default 0.7).
	BiasThreshold float64 `json:"bias_threshold" yaml:"bias_threshold"`

	// RecentWindow is the trailing-years window used for stagnant and
	// emerging topic flags (default 3).
	RecentWindow int `json:"recent_window" yaml:"recent_window"`
}

// EnrichmentConfig holds settings for the optional citation enrichment
// client. The core pipeline functions fully without it.
type EnrichmentConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional key for higher citation API rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BatchSize is how many papers are enriched concurrently (default 3).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// RequestsPerSecond caps the request rate to the citation API
	// (default 1).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// CacheTTL is how long enrichment lookups are memoized (default 1h).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`

	// MaxRetries bounds retry attempts on rate-limited responses.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig groups the stage configurations for one pipeline run.
type PipelineConfig struct {
	Parser     ParserConfig     `json:"parser" yaml:"parser"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Gaps       GapConfig        `json:"gaps" yaml:"gaps"`
	Enrichment EnrichmentConfig `json:"enrichment" yaml:"enrichment"`
}

// DefaultPipelineConfig returns the configuration used when no config
// file overrides are present.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Parser: ParserConfig{
			YearMin:        1990,
			YearMax:        2025,
			MinTitleLength: 3,
		},
		Classifier: ClassifierConfig{
			MinScore:          0.1,
			ConnectionOverlap: 0.1,
			RecentWindow:      3,
		},
		Gaps: GapConfig{
			ExpectedOverlap:   0.3,
			MinGapSize:        5,
			MinImpact:         0.7,
			HighGap:           15,
			MediumGap:         10,
			MovingAvgWindow:   3,
			TemporalThreshold: 5,
			MethodMinShare:    0.15,
			BiasThreshold:     0.7,
			RecentWindow:      3,
		},
		Enrichment: EnrichmentConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   15 * time.Second,
				UserAgent: "litscope/0.1",
			},
			BatchSize:         3,
			RequestsPerSecond: 1,
			CacheTTL:          time.Hour,
			MaxRetries:        3,
		},
	}
}
