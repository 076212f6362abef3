// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CitingPaper is a minimal reference to a paper that cites an enriched
// record.
type CitingPaper struct {
	Title string `json:"title" yaml:"title"`
	Year  int    `json:"year,omitempty" yaml:"year,omitempty"`
}

// CitationPoint is one synthesized year/count pair in a citation trend.
// Trend data is illustrative, not measured: the citation API reports only
// totals, and the per-year shape is generated from a seeded source.
type CitationPoint struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// CitationInfo is the best-effort enrichment result for one paper. The
// zero value means "no data available" and is what callers receive when
// the citation API is unreachable or returns nothing.
type CitationInfo struct {
	Found               bool            `json:"found" yaml:"found"`
	CitationCount       int             `json:"citation_count" yaml:"citation_count"`
	InfluentialCount    int             `json:"influential_count" yaml:"influential_count"`
	CitingPapers        []CitingPaper   `json:"citing_papers,omitempty" yaml:"citing_papers,omitempty"`
	Trend               []CitationPoint `json:"trend,omitempty" yaml:"trend,omitempty"`
}

// VenueImpact is the best-effort impact lookup for a publication venue.
type VenueImpact struct {
	Found        bool    `json:"found" yaml:"found"`
	ImpactFactor float64 `json:"impact_factor" yaml:"impact_factor"`
	Quartile     string  `json:"quartile,omitempty" yaml:"quartile,omitempty"`
}
