// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authornet

import (
	"math"
	"sort"

	"github.com/meshintel/litscope/internal/topics"
	"github.com/meshintel/litscope/pkg/types"
)

// Build runs the full network derivation: profiles, collaboration edges,
// communities, and summary statistics.
func Build(papers []types.PaperRecord, classifier *topics.Classifier) types.AuthorNetwork {
	profiles := BuildProfiles(papers, classifier)
	edges := BuildEdges(papers, profiles)

	return types.AuthorNetwork{
		Authors:        profiles,
		Collaborations: edges,
		Communities:    Communities(edges, profiles),
		Stats:          Stats(profiles, edges),
	}
}

// Stats summarizes the collaboration graph: sizes, average collaborators
// per author, top-10 lists, and overall density.
func Stats(profiles []types.AuthorProfile, edges []types.CollaborationEdge) types.NetworkStats {
	s := types.NetworkStats{
		TotalAuthors:        len(profiles),
		TotalCollaborations: len(edges),
	}
	if len(profiles) == 0 {
		return s
	}

	s.AvgCollaborators = math.Round(2*float64(len(edges))/float64(len(profiles))*100) / 100

	possible := len(profiles) * (len(profiles) - 1) / 2
	if possible > 0 {
		s.Density = math.Round(float64(len(edges))/float64(possible)*1000) / 1000
	}

	s.TopByPapers = topNames(profiles, 10, func(a, b types.AuthorProfile) bool {
		if a.PaperCount != b.PaperCount {
			return a.PaperCount > b.PaperCount
		}
		return a.CleanName < b.CleanName
	})
	s.TopByInfluence = topNames(profiles, 10, func(a, b types.AuthorProfile) bool {
		if a.Influence != b.Influence {
			return a.Influence > b.Influence
		}
		return a.CleanName < b.CleanName
	})

	return s
}

func topNames(profiles []types.AuthorProfile, n int, less func(a, b types.AuthorProfile) bool) []string {
	ranked := append([]types.AuthorProfile(nil), profiles...)
	sort.Slice(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	names := make([]string, len(ranked))
	for i, p := range ranked {
		names[i] = p.Name
	}
	return names
}
