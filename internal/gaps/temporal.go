// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gaps

import (
	"fmt"
	"math"
	"sort"

	"github.com/meshintel/litscope/pkg/types"
)

// temporal flags publication-rate anomalies: years (or runs of years)
// whose paper count falls well below the local moving average, plus an
// aggregate decline over the most recent five years.
func temporal(papers []types.PaperRecord, cfg types.GapConfig) []types.ResearchGap {
	counts := make(map[int]int)
	minYear, maxYear := 0, 0
	for _, p := range papers {
		if !p.HasYear() {
			continue
		}
		counts[p.PublicationYear]++
		if minYear == 0 || p.PublicationYear < minYear {
			minYear = p.PublicationYear
		}
		if p.PublicationYear > maxYear {
			maxYear = p.PublicationYear
		}
	}
	if minYear == 0 || maxYear-minYear < 2 {
		return nil
	}

	var gaps []types.ResearchGap

	// Centered moving average over the zero-filled year series; a year
	// more than the threshold below its local expectation is flagged.
	type deficit struct {
		year int
		gap  float64
	}
	var flagged []deficit
	for y := minYear; y <= maxYear; y++ {
		expected := movingAverage(counts, y, minYear, maxYear, cfg.MovingAvgWindow)
		gap := expected - float64(counts[y])
		if gap > cfg.TemporalThreshold {
			flagged = append(flagged, deficit{y, gap})
		}
	}

	// Merge consecutive flagged years into one finding.
	for i := 0; i < len(flagged); {
		j := i
		for j+1 < len(flagged) && flagged[j+1].year == flagged[j].year+1 {
			j++
		}

		years := make([]int, 0, j-i+1)
		worst := 0.0
		for k := i; k <= j; k++ {
			years = append(years, flagged[k].year)
			worst = math.Max(worst, flagged[k].gap)
		}

		severity := types.SeverityMedium
		if worst > 20 {
			severity = types.SeverityHigh
		}

		gaps = append(gaps, types.ResearchGap{
			Type:     types.GapTemporal,
			Title:    fmt.Sprintf("Publication slump %d-%d", years[0], years[len(years)-1]),
			Severity: severity,
			Description: fmt.Sprintf(
				"Output in %d-%d runs up to %.0f paper(s) below the surrounding trend.",
				years[0], years[len(years)-1], worst),
			GapSize:          round1(worst),
			OpportunityScore: round1(math.Min(worst*5, 100)),
			Years:            years,
			Recommendations: []string{
				"Check whether the slump reflects missing records rather than reduced activity.",
				"Revisit questions that were active before the slump; they may remain open.",
			},
		})
		i = j + 1
	}

	if g, ok := recentDecline(counts, maxYear); ok {
		gaps = append(gaps, g)
	}
	return gaps
}

// movingAverage returns the mean count over the window of years centered
// on y (excluding y itself), clipped to the corpus range.
func movingAverage(counts map[int]int, y, minYear, maxYear, window int) float64 {
	if window <= 0 {
		window = 3
	}
	sum, n := 0, 0
	for k := y - window; k <= y+window; k++ {
		if k == y || k < minYear || k > maxYear {
			continue
		}
		sum += counts[k]
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// recentDecline compares the first and second half of the trailing five
// years and reports a gap when the second half drops under 80% of the
// first.
func recentDecline(counts map[int]int, maxYear int) (types.ResearchGap, bool) {
	years := make([]int, 0, 5)
	for y := maxYear - 4; y <= maxYear; y++ {
		years = append(years, y)
	}
	sort.Ints(years)

	firstMean := (float64(counts[years[0]]) + float64(counts[years[1]])) / 2
	secondMean := (float64(counts[years[3]]) + float64(counts[years[4]])) / 2
	if firstMean == 0 || secondMean >= firstMean*0.8 {
		return types.ResearchGap{}, false
	}

	drop := firstMean - secondMean
	return types.ResearchGap{
		Type:     types.GapTemporal,
		Title:    "Recent decline in publication activity",
		Severity: types.SeverityMedium,
		Description: fmt.Sprintf(
			"Mean output over %d-%d (%.1f/yr) is under 80%% of %d-%d (%.1f/yr).",
			years[3], years[4], secondMean, years[0], years[1], firstMean),
		GapSize:          round1(drop),
		OpportunityScore: round1(math.Min(drop*5, 100)),
		Years:            years,
		Recommendations: []string{
			"Recent decline may signal topic fatigue or a shift the review has not yet captured.",
		},
	}, true
}
