// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"math"

	"github.com/meshintel/litscope/pkg/types"
)

// Trend thresholds: a topic whose recent-paper ratio exceeds 1.5x the
// uniform expectation is rising; under 0.5x it is declining.
const (
	risingFactor    = 1.5
	decliningFactor = 0.5
)

// Trends classifies each cluster's recent activity against the baseline
// a uniformly active topic would show over the corpus's year span.
// Papers without years are ignored.
func (c *Classifier) Trends(clusters []types.TopicCluster, papers []types.PaperRecord) []types.TopicTrend {
	years := make(map[string]int, len(papers)) // paper key → year
	minYear, maxYear := 0, 0
	for _, p := range papers {
		if !p.HasYear() {
			continue
		}
		years[p.Key] = p.PublicationYear
		if minYear == 0 || p.PublicationYear < minYear {
			minYear = p.PublicationYear
		}
		if p.PublicationYear > maxYear {
			maxYear = p.PublicationYear
		}
	}
	if minYear == 0 || maxYear == minYear {
		return nil
	}

	span := maxYear - minYear + 1
	window := c.cfg.RecentWindow
	if window > span {
		window = span
	}
	expected := float64(window) / float64(span)
	recentFrom := maxYear - window + 1

	trends := make([]types.TopicTrend, 0, len(clusters))
	for _, cluster := range clusters {
		dated, recent := 0, 0
		for _, key := range cluster.Papers {
			y, ok := years[key]
			if !ok {
				continue
			}
			dated++
			if y >= recentFrom {
				recent++
			}
		}
		if dated == 0 {
			continue
		}

		ratio := float64(recent) / float64(dated)
		direction := types.TrendStable
		switch {
		case ratio > expected*risingFactor:
			direction = types.TrendRising
		case ratio < expected*decliningFactor:
			direction = types.TrendDeclining
		}

		trends = append(trends, types.TopicTrend{
			TopicID:       cluster.ID,
			RecentRatio:   math.Round(ratio*100) / 100,
			ExpectedRatio: math.Round(expected*100) / 100,
			Direction:     direction,
		})
	}
	return trends
}
