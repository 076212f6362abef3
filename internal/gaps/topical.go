// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gaps

import (
	"fmt"
	"math"

	"github.com/meshintel/litscope/internal/topics"
	"github.com/meshintel/litscope/pkg/types"
)

// crossDomainBoost multiplies the impact score when the two topics sit in
// different coarse domains (technical/economic/theoretical); bridging
// domains is assumed more valuable than filling within-domain gaps.
const crossDomainBoost = 1.5

// Thresholds for the contextual topic-activity flags.
const (
	stagnantRecentRatio = 0.2
	stagnantMinSize     = 10
	emergingRecentRatio = 0.4
)

// topical finds under-explored topic intersections. For every cluster
// pair it predicts co-occurrence from the clusters' coverages under the
// configured expected-overlap assumption and compares it with the actual
// shared-paper count.
func topical(papers []types.PaperRecord, clusters []types.TopicCluster, cfg types.GapConfig) []types.ResearchGap {
	n := len(papers)
	if n == 0 || len(clusters) < 2 {
		return nil
	}

	evidence := activityFlags(papers, clusters, cfg)

	var found []types.ResearchGap
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			a, b := clusters[i], clusters[j]

			expected := float64(n) * (a.Coverage / 100) * (b.Coverage / 100) * cfg.ExpectedOverlap
			actual := float64(topics.SharedPapers(a, b))
			gapSize := math.Max(0, expected-actual)

			impact := (a.Coverage + b.Coverage) / 100
			if topics.Domain(a.ID) != topics.Domain(b.ID) {
				impact *= crossDomainBoost
			}
			impact = math.Min(impact, 1)

			if gapSize <= cfg.MinGapSize || impact <= cfg.MinImpact {
				continue
			}

			g := types.ResearchGap{
				Type:     types.GapTopical,
				Title:    fmt.Sprintf("Underexplored intersection: %s × %s", a.Label, b.Label),
				Severity: topicalSeverity(gapSize, cfg),
				Description: fmt.Sprintf(
					"%s and %s co-occur in %.0f paper(s); coverage predicts about %.0f.",
					a.Label, b.Label, actual, expected),
				GapSize:          round1(gapSize),
				OpportunityScore: round1(impact * (gapSize / 20) * 100),
				Topics:           []string{a.ID, b.ID},
				Recommendations: []string{
					fmt.Sprintf("Survey the few existing %s/%s papers for open problems.", a.Label, b.Label),
					fmt.Sprintf("Consider study designs combining %s methods with %s questions.", a.Label, b.Label),
				},
			}
			for _, ev := range evidence {
				if ev.topicID == a.ID || ev.topicID == b.ID {
					g.Evidence = append(g.Evidence, ev.text)
				}
			}
			found = append(found, g)
		}
	}
	return found
}

func topicalSeverity(gapSize float64, cfg types.GapConfig) types.Severity {
	switch {
	case gapSize > cfg.HighGap:
		return types.SeverityHigh
	case gapSize > cfg.MediumGap:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

type topicFlag struct {
	topicID string
	text    string
}

// activityFlags marks stagnant topics (large but barely active recently)
// and emerging ones (strong recent concentration) as contextual evidence
// for the topical gaps.
func activityFlags(papers []types.PaperRecord, clusters []types.TopicCluster, cfg types.GapConfig) []topicFlag {
	years := make(map[string]int, len(papers))
	maxYear := 0
	for _, p := range papers {
		if p.HasYear() {
			years[p.Key] = p.PublicationYear
			if p.PublicationYear > maxYear {
				maxYear = p.PublicationYear
			}
		}
	}
	if maxYear == 0 {
		return nil
	}
	recentFrom := maxYear - cfg.RecentWindow + 1

	var flags []topicFlag
	for _, c := range clusters {
		dated, recent := 0, 0
		for _, key := range c.Papers {
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

		switch {
		case ratio < stagnantRecentRatio && len(c.Papers) > stagnantMinSize:
			flags = append(flags, topicFlag{c.ID, fmt.Sprintf(
				"topic %s looks stagnant: %.0f%% of its %d papers are recent", c.ID, ratio*100, len(c.Papers))})
		case ratio > emergingRecentRatio:
			flags = append(flags, topicFlag{c.ID, fmt.Sprintf(
				"topic %s is emerging: %.0f%% of its papers are recent", c.ID, ratio*100)})
		}
	}
	return flags
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
