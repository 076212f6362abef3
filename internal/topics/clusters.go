// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"math"
	"sort"

	"github.com/meshintel/litscope/pkg/types"
)

// BuildClusters classifies every paper and assembles topic clusters with
// coverage percentages and inter-topic connections. Membership is
// non-exclusive; a paper may appear in any number of clusters. Clusters
// are returned sorted by descending coverage, id as tiebreaker.
func (c *Classifier) BuildClusters(papers []types.PaperRecord) []types.TopicCluster {
	n := len(papers)
	if n == 0 {
		return nil
	}

	membership := make(map[string][]string, len(c.vocab)) // topic id → paper keys
	memberSet := make(map[string]map[string]bool, len(c.vocab))
	for _, topic := range c.vocab {
		memberSet[topic.ID] = make(map[string]bool)
	}

	for _, p := range papers {
		for id, score := range c.Classify(p) {
			if score > c.cfg.MinScore {
				membership[id] = append(membership[id], p.Key)
				memberSet[id][p.Key] = true
			}
		}
	}

	clusters := make([]types.TopicCluster, 0, len(c.vocab))
	for _, topic := range c.vocab {
		members := membership[topic.ID]
		if len(members) == 0 {
			continue
		}
		clusters = append(clusters, types.TopicCluster{
			ID:       topic.ID,
			Label:    topic.Label,
			Papers:   members,
			Coverage: round1(float64(len(members)) / float64(n) * 100),
		})
	}

	// Link clusters whose shared papers exceed the overlap threshold
	// relative to the smaller cluster.
	for i := range clusters {
		for j := range clusters {
			if i == j {
				continue
			}
			smaller := math.Min(float64(len(clusters[i].Papers)), float64(len(clusters[j].Papers)))
			if smaller == 0 {
				continue
			}
			shared := overlap(memberSet[clusters[i].ID], memberSet[clusters[j].ID])
			if float64(shared)/smaller > c.cfg.ConnectionOverlap {
				clusters[i].Connections = append(clusters[i].Connections, clusters[j].ID)
			}
		}
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Coverage != clusters[j].Coverage {
			return clusters[i].Coverage > clusters[j].Coverage
		}
		return clusters[i].ID < clusters[j].ID
	})
	return clusters
}

// SharedPapers counts papers belonging to both clusters.
func SharedPapers(a, b types.TopicCluster) int {
	set := make(map[string]bool, len(a.Papers))
	for _, k := range a.Papers {
		set[k] = true
	}
	n := 0
	for _, k := range b.Papers {
		if set[k] {
			n++
		}
	}
	return n
}

func overlap(a, b map[string]bool) int {
	n := 0
	for k := range a {
		if b[k] {
			n++
		}
	}
	return n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
