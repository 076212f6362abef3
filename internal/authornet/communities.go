// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authornet

import (
	"math"
	"sort"

	"github.com/meshintel/litscope/pkg/types"
)

// minCommunitySize is the smallest connected component reported as a
// community.
const minCommunitySize = 3

// centralFraction selects the share of members (by degree) marked as
// central within a community.
const centralFraction = 0.3

// Communities finds connected components of the collaboration graph via
// breadth-first traversal and keeps those with at least three members.
// Components are numbered in order of their lexicographically smallest
// member so output is stable across runs.
func Communities(edges []types.CollaborationEdge, profiles []types.AuthorProfile) []types.AuthorCommunity {
	adj := adjacency(edges)

	nodes := make([]string, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	byClean := make(map[string]types.AuthorProfile, len(profiles))
	for _, p := range profiles {
		byClean[p.CleanName] = p
	}

	visited := make(map[string]bool, len(nodes))
	var communities []types.AuthorCommunity

	for _, start := range nodes {
		if visited[start] {
			continue
		}

		// BFS over the component using a work queue.
		var members []string
		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			members = append(members, cur)
			for _, next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		if len(members) < minCommunitySize {
			continue
		}
		sort.Strings(members)

		communities = append(communities, buildCommunity(len(communities), members, edges, byClean))
	}

	return communities
}

func buildCommunity(id int, members []string, edges []types.CollaborationEdge, byClean map[string]types.AuthorProfile) types.AuthorCommunity {
	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}

	// Internal degree and edge count.
	degree := make(map[string]int, len(members))
	internalEdges := 0
	for _, e := range edges {
		if memberSet[e.AuthorA] && memberSet[e.AuthorB] {
			internalEdges++
			degree[e.AuthorA]++
			degree[e.AuthorB]++
		}
	}

	// Central members: top 30% by degree, at least one.
	ranked := append([]string(nil), members...)
	sort.Slice(ranked, func(i, j int) bool {
		if degree[ranked[i]] != degree[ranked[j]] {
			return degree[ranked[i]] > degree[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	nCentral := int(math.Ceil(float64(len(members)) * centralFraction))
	if nCentral < 1 {
		nCentral = 1
	}
	central := append([]string(nil), ranked[:nCentral]...)

	// Distinct papers and dominant topics across members.
	paperKeys := make(map[string]bool)
	topicCounts := make(map[string]int)
	for _, m := range members {
		profile, ok := byClean[m]
		if !ok {
			continue
		}
		for _, p := range profile.Papers {
			paperKeys[p.Key] = true
		}
		for _, t := range profile.PrimaryTopics {
			topicCounts[t]++
		}
	}

	topTopics := make([]string, 0, len(topicCounts))
	for t := range topicCounts {
		topTopics = append(topTopics, t)
	}
	sort.Slice(topTopics, func(i, j int) bool {
		if topicCounts[topTopics[i]] != topicCounts[topTopics[j]] {
			return topicCounts[topTopics[i]] > topicCounts[topTopics[j]]
		}
		return topTopics[i] < topTopics[j]
	})
	if len(topTopics) > 3 {
		topTopics = topTopics[:3]
	}

	possible := len(members) * (len(members) - 1) / 2
	strength := 0.0
	if possible > 0 {
		strength = math.Round(float64(internalEdges)/float64(possible)*100) / 100
	}

	return types.AuthorCommunity{
		ID:                    id,
		Members:               members,
		PaperCount:            len(paperKeys),
		DominantTopics:        topTopics,
		CentralMembers:        central,
		CollaborationStrength: strength,
	}
}
