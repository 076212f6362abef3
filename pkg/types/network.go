// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AuthorProfile aggregates the papers attributed to one canonical author
// identity after name deduplication.
type AuthorProfile struct {
	// Name is the canonical display name, chosen as the longest variant
	// among merged duplicates.
	Name string `json:"name" yaml:"name"`

	// CleanName is the normalized lowercase key used for identity
	// merging.
	CleanName string `json:"clean_name" yaml:"clean_name"`

	// Papers is the subset of records attributed to this identity.
	Papers []PaperRecord `json:"-" yaml:"-"`

	// PaperCount is len(Papers), kept explicit for serialized output.
	PaperCount int `json:"paper_count" yaml:"paper_count"`

	// FirstYear and LastYear bound the identity's publication activity.
	// Zero when no paper carries a year.
	FirstYear int `json:"first_year,omitempty" yaml:"first_year,omitempty"`
	LastYear  int `json:"last_year,omitempty" yaml:"last_year,omitempty"`

	// YearSpan is LastYear - FirstYear + 1, or 0 without year data.
	YearSpan int `json:"year_span" yaml:"year_span"`

	// AveragePapersPerYear is PaperCount / max(YearSpan, 1).
	AveragePapersPerYear float64 `json:"average_papers_per_year" yaml:"average_papers_per_year"`

	// PrimaryTopics holds the top-3 topic ids by keyword score across
	// the identity's papers.
	PrimaryTopics []string `json:"primary_topics,omitempty" yaml:"primary_topics,omitempty"`

	// Influence is a composite productivity/consistency/longevity/breadth
	// heuristic. It is not a citation metric.
	Influence float64 `json:"influence" yaml:"influence"`
}

// CollaborationEdge is an undirected co-authorship edge. The pair is
// canonicalized so that AuthorA < AuthorB lexicographically and each
// unordered pair has exactly one edge.
type CollaborationEdge struct {
	AuthorA string `json:"author_a" yaml:"author_a"`
	AuthorB string `json:"author_b" yaml:"author_b"`

	// Weight counts co-authored papers.
	Weight int `json:"weight" yaml:"weight"`
}

// AuthorCommunity is a connected component of the collaboration graph
// with at least three members.
type AuthorCommunity struct {
	ID      int      `json:"id" yaml:"id"`
	Members []string `json:"members" yaml:"members"`

	// PaperCount is the number of distinct papers authored by members.
	PaperCount int `json:"paper_count" yaml:"paper_count"`

	// DominantTopics lists the most common primary topics of members.
	DominantTopics []string `json:"dominant_topics,omitempty" yaml:"dominant_topics,omitempty"`

	// CentralMembers holds the top 30% of members by within-community
	// degree, always at least one.
	CentralMembers []string `json:"central_members" yaml:"central_members"`

	// CollaborationStrength is internal edge count over all possible
	// member pairs (graph density within the community).
	CollaborationStrength float64 `json:"collaboration_strength" yaml:"collaboration_strength"`
}

// NetworkStats summarizes the collaboration graph.
type NetworkStats struct {
	TotalAuthors        int     `json:"total_authors" yaml:"total_authors"`
	TotalCollaborations int     `json:"total_collaborations" yaml:"total_collaborations"`
	AvgCollaborators    float64 `json:"avg_collaborators" yaml:"avg_collaborators"`

	// TopByPapers and TopByInfluence hold up to ten canonical names each.
	TopByPapers    []string `json:"top_by_papers" yaml:"top_by_papers"`
	TopByInfluence []string `json:"top_by_influence" yaml:"top_by_influence"`

	// Density is edges / (n*(n-1)/2) over the whole graph.
	Density float64 `json:"density" yaml:"density"`
}

// AuthorNetwork bundles everything derived from co-authorship.
type AuthorNetwork struct {
	Authors        []AuthorProfile     `json:"authors" yaml:"authors"`
	Collaborations []CollaborationEdge `json:"collaborations" yaml:"collaborations"`
	Communities    []AuthorCommunity   `json:"communities" yaml:"communities"`
	Stats          NetworkStats        `json:"stats" yaml:"stats"`
}
