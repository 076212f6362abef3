// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authornet

import (
	"sort"

	"github.com/meshintel/litscope/pkg/types"
)

// BuildEdges derives the collaboration graph: one undirected edge per
// unordered pair of canonical co-authors, weighted by the number of
// papers they share. Edges are returned sorted by descending weight,
// pair name as tiebreaker.
func BuildEdges(papers []types.PaperRecord, profiles []types.AuthorProfile) []types.CollaborationEdge {
	// Map every normalized variant back to its canonical clean name.
	canon := make(map[string]string, len(profiles))
	for _, p := range profiles {
		canon[p.CleanName] = p.CleanName
	}

	resolve := func(raw string) string {
		norm := NormalizeName(raw)
		if _, ok := canon[norm]; ok {
			return norm
		}
		for _, p := range profiles {
			if Similar(raw, p.Name) {
				return p.CleanName
			}
		}
		return ""
	}

	weights := make(map[[2]string]int)
	for _, paper := range papers {
		names := make([]string, 0, len(paper.Authors))
		seen := make(map[string]bool)
		for _, a := range paper.Authors {
			c := resolve(a)
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			names = append(names, c)
		}

		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				a, b := names[i], names[j]
				if a > b {
					a, b = b, a
				}
				weights[[2]string{a, b}]++
			}
		}
	}

	edges := make([]types.CollaborationEdge, 0, len(weights))
	for pair, w := range weights {
		if w == 0 {
			continue
		}
		edges = append(edges, types.CollaborationEdge{AuthorA: pair[0], AuthorB: pair[1], Weight: w})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}
		if edges[i].AuthorA != edges[j].AuthorA {
			return edges[i].AuthorA < edges[j].AuthorA
		}
		return edges[i].AuthorB < edges[j].AuthorB
	})
	return edges
}

// adjacency builds the neighbor map for community detection.
func adjacency(edges []types.CollaborationEdge) map[string][]string {
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e.AuthorA] = append(adj[e.AuthorA], e.AuthorB)
		adj[e.AuthorB] = append(adj[e.AuthorB], e.AuthorA)
	}
	return adj
}
