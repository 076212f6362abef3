// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authornet

import (
	"math"
	"sort"
	"strings"

	"github.com/meshintel/litscope/internal/topics"
	"github.com/meshintel/litscope/pkg/types"
)

// identity accumulates the papers attributed to one canonical author
// while variants are being merged.
type identity struct {
	canonical string // longest raw variant seen
	norm      string
	papers    []types.PaperRecord
	paperKeys map[string]bool
}

// resolver merges raw author name variants into identities. Exact
// normalized matches resolve through a map; fuzzy matches (initials,
// swapped order) fall back to a linear scan over known identities.
type resolver struct {
	byNorm     map[string]*identity
	identities []*identity
}

func newResolver() *resolver {
	return &resolver{byNorm: make(map[string]*identity)}
}

func (r *resolver) resolve(raw string) *identity {
	norm := NormalizeName(raw)
	if norm == "" {
		return nil
	}

	id, ok := r.byNorm[norm]
	if !ok {
		for _, cand := range r.identities {
			if Similar(raw, cand.canonical) {
				id = cand
				break
			}
		}
	}

	if id == nil {
		id = &identity{canonical: strings.TrimSpace(raw), norm: norm, paperKeys: make(map[string]bool)}
		r.identities = append(r.identities, id)
	} else if len(strings.TrimSpace(raw)) > len(id.canonical) {
		// The longest variant becomes the display name.
		id.canonical = strings.TrimSpace(raw)
	}

	r.byNorm[norm] = id
	return id
}

func (r *resolver) attribute(raw string, p types.PaperRecord) *identity {
	id := r.resolve(raw)
	if id == nil || id.paperKeys[p.Key] {
		return id
	}
	id.paperKeys[p.Key] = true
	id.papers = append(id.papers, p)
	return id
}

// BuildProfiles merges author name variants across the paper set and
// computes one profile per canonical identity. The classifier supplies
// each author's primary topics from their combined paper text.
func BuildProfiles(papers []types.PaperRecord, classifier *topics.Classifier) []types.AuthorProfile {
	r := newResolver()
	for _, p := range papers {
		for _, a := range p.Authors {
			r.attribute(a, p)
		}
	}

	profiles := make([]types.AuthorProfile, 0, len(r.identities))
	for _, id := range r.identities {
		profiles = append(profiles, buildProfile(id, classifier))
	}
	return profiles
}

func buildProfile(id *identity, classifier *topics.Classifier) types.AuthorProfile {
	p := types.AuthorProfile{
		Name:       id.canonical,
		CleanName:  NormalizeName(id.canonical),
		Papers:     id.papers,
		PaperCount: len(id.papers),
	}

	for _, paper := range id.papers {
		if !paper.HasYear() {
			continue
		}
		if p.FirstYear == 0 || paper.PublicationYear < p.FirstYear {
			p.FirstYear = paper.PublicationYear
		}
		if paper.PublicationYear > p.LastYear {
			p.LastYear = paper.PublicationYear
		}
	}
	if p.FirstYear != 0 {
		p.YearSpan = p.LastYear - p.FirstYear + 1
	}

	span := p.YearSpan
	if span < 1 {
		span = 1
	}
	p.AveragePapersPerYear = math.Round(float64(p.PaperCount)/float64(span)*100) / 100

	p.PrimaryTopics = primaryTopics(id.papers, classifier)
	p.Influence = influence(p)
	return p
}

// primaryTopics scores the author's combined paper text and returns the
// top three topic ids, highest score first.
func primaryTopics(papers []types.PaperRecord, classifier *topics.Classifier) []string {
	if classifier == nil {
		return nil
	}

	var combined strings.Builder
	for _, p := range papers {
		combined.WriteString(p.SearchText())
		combined.WriteString(" ")
	}
	scores := classifier.Score(combined.String())
	if len(scores) == 0 {
		return nil
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > 3 {
		ids = ids[:3]
	}
	return ids
}

// influence combines productivity, consistency, longevity, and topic
// breadth into one heuristic score. It deliberately uses no citation
// data, so it works on any offline dataset.
func influence(p types.AuthorProfile) float64 {
	score := 10*math.Log(float64(p.PaperCount)+1) +
		5*p.AveragePapersPerYear +
		2*math.Min(float64(p.YearSpan), 10) +
		3*float64(len(p.PrimaryTopics))
	return math.Round(score*10) / 10
}
