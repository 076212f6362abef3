// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gaps surfaces under-researched areas from the classified
// corpus. Every finding is a heuristic over topic, temporal, and
// methodological distributions; opportunity scores rank findings and
// claim no statistical validity. All sub-analyses are pure functions of
// their immutable inputs.
package gaps

import (
	"sort"

	"github.com/meshintel/litscope/pkg/types"
)

// Analyze runs every gap sub-analysis and returns the concatenated
// findings sorted by descending opportunity score.
func Analyze(papers []types.PaperRecord, clusters []types.TopicCluster, authors []types.AuthorProfile, cfg types.GapConfig) []types.ResearchGap {
	var all []types.ResearchGap
	all = append(all, topical(papers, clusters, cfg)...)
	all = append(all, temporal(papers, cfg)...)
	all = append(all, methodological(papers, cfg)...)
	all = append(all, geographic(authors))

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].OpportunityScore > all[j].OpportunityScore
	})
	return all
}

// geographic is a deliberate data-availability stub: the record model
// carries no author affiliations, so fabricating regional findings would
// be dishonest. It always emits one informational entry naming the
// limitation.
func geographic(authors []types.AuthorProfile) types.ResearchGap {
	return types.ResearchGap{
		Type:     types.GapGeographic,
		Title:    "Geographic analysis unavailable",
		Severity: types.SeverityLow,
		Description: "The dataset carries no author affiliation data, so regional " +
			"research gaps cannot be assessed. Export affiliations from the source " +
			"reference manager to enable this analysis.",
		GapSize:          0,
		OpportunityScore: 0,
		Recommendations: []string{
			"Re-export the dataset with an affiliation or country column.",
		},
	}
}
