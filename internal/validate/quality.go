// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"math"

	"github.com/meshintel/litscope/pkg/types"
)

// Coverage thresholds below which Quality emits a recommendation.
const (
	yearCoverageFloor     = 80.0
	abstractCoverageFloor = 60.0
	doiCoverageFloor      = 50.0
)

// Quality computes per-field completeness percentages over a record set
// and derives qualitative recommendations for the dataset owner.
func Quality(papers []types.PaperRecord) types.QualityReport {
	var r types.QualityReport
	n := len(papers)
	if n == 0 {
		return r
	}

	var title, authors, year, abstract, doi, urlN, venue int
	for _, p := range papers {
		if p.Title != "" {
			title++
		}
		if len(p.Authors) > 0 {
			authors++
		}
		if p.HasYear() {
			year++
		}
		if p.Abstract != "" {
			abstract++
		}
		if p.DOI != "" {
			doi++
		}
		if p.URL != "" {
			urlN++
		}
		if p.Venue != "" || p.PublicationTitle != "" {
			venue++
		}
	}

	pct := func(count int) float64 {
		return round1(float64(count) / float64(n) * 100)
	}
	r.TitleCoverage = pct(title)
	r.AuthorCoverage = pct(authors)
	r.YearCoverage = pct(year)
	r.AbstractCoverage = pct(abstract)
	r.DOICoverage = pct(doi)
	r.URLCoverage = pct(urlN)
	r.VenueCoverage = pct(venue)

	r.Score = round1((r.TitleCoverage + r.AuthorCoverage + r.YearCoverage +
		r.AbstractCoverage + r.DOICoverage + r.URLCoverage + r.VenueCoverage) / 7)

	if r.YearCoverage < yearCoverageFloor {
		r.Recommendations = append(r.Recommendations,
			"publication years are incomplete; timeline and trend analysis will undercount")
	}
	if r.AbstractCoverage < abstractCoverageFloor {
		r.Recommendations = append(r.Recommendations,
			"many records lack abstracts; topic classification falls back to titles and tags")
	}
	if r.DOICoverage < doiCoverageFloor {
		r.Recommendations = append(r.Recommendations,
			"low DOI coverage limits citation enrichment; consider completing identifiers")
	}

	return r
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
