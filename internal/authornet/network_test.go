package authornet

import (
	"math"
	"testing"

	"github.com/meshintel/litscope/internal/topics"
	"github.com/meshintel/litscope/pkg/types"
)

func testClassifier() *topics.Classifier {
	return topics.NewClassifier(topics.DefaultVocabulary(), types.ClassifierConfig{})
}

func paper(key string, year int, authors ...string) types.PaperRecord {
	return types.PaperRecord{
		Key:             key,
		Title:           "Security economics of networked systems " + key,
		PublicationYear: year,
		Authors:         authors,
	}
}

func TestBuildProfilesMergesVariants(t *testing.T) {
	papers := []types.PaperRecord{
		paper("p1", 2019, "J. Smith", "Alice Brown"),
		paper("p2", 2020, "John Smith", "Alice Brown"),
		paper("p3", 2021, "Smith, John"),
	}

	profiles := BuildProfiles(papers, testClassifier())
	if len(profiles) != 2 {
		t.Fatalf("len(profiles) = %d, want 2 (Smith variants merged)", len(profiles))
	}

	var smith *types.AuthorProfile
	for i := range profiles {
		if profiles[i].CleanName == "john smith" || profiles[i].CleanName == "smith john" {
			smith = &profiles[i]
		}
	}
	if smith == nil {
		t.Fatalf("no merged Smith profile in %+v", profiles)
	}
	if smith.PaperCount != 3 {
		t.Errorf("smith.PaperCount = %d, want 3", smith.PaperCount)
	}
	if smith.Name != "John Smith" && smith.Name != "Smith, John" {
		t.Errorf("smith.Name = %q, want longest variant", smith.Name)
	}
	if smith.FirstYear != 2019 || smith.LastYear != 2021 {
		t.Errorf("smith years = %d..%d, want 2019..2021", smith.FirstYear, smith.LastYear)
	}
	if smith.YearSpan != 3 {
		t.Errorf("smith.YearSpan = %d, want 3", smith.YearSpan)
	}
	if smith.AveragePapersPerYear != 1.0 {
		t.Errorf("smith.AveragePapersPerYear = %f, want 1.0", smith.AveragePapersPerYear)
	}
}

func TestInfluenceFormula(t *testing.T) {
	p := types.AuthorProfile{
		PaperCount:           3,
		YearSpan:             3,
		AveragePapersPerYear: 1.0,
		PrimaryTopics:        []string{"security", "economics"},
	}
	// 10*ln(4) + 5*1 + 2*3 + 3*2 = 13.86... + 5 + 6 + 6
	want := math.Round((10*math.Log(4)+5+6+6)*10) / 10
	if got := influence(p); got != want {
		t.Errorf("influence() = %f, want %f", got, want)
	}
}

func TestBuildEdgesCanonicalPairs(t *testing.T) {
	papers := []types.PaperRecord{
		paper("p1", 2020, "Alice Brown", "Bob Clark"),
		paper("p2", 2021, "Bob Clark", "Alice Brown"),
		paper("p3", 2021, "Alice Brown", "Dan Evans"),
	}
	profiles := BuildProfiles(papers, testClassifier())
	edges := BuildEdges(papers, profiles)

	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2", len(edges))
	}
	// Sorted descending by weight: the Brown-Clark pair first.
	if edges[0].Weight != 2 {
		t.Errorf("edges[0].Weight = %d, want 2", edges[0].Weight)
	}
	if edges[0].AuthorA > edges[0].AuthorB {
		t.Errorf("edge pair not canonicalized: %q > %q", edges[0].AuthorA, edges[0].AuthorB)
	}
}

func TestBuildEdgesSelfPairExcluded(t *testing.T) {
	// The same person listed twice on one byline must not self-link.
	papers := []types.PaperRecord{
		paper("p1", 2020, "J. Smith", "John Smith"),
	}
	profiles := BuildProfiles(papers, testClassifier())
	edges := BuildEdges(papers, profiles)
	if len(edges) != 0 {
		t.Errorf("len(edges) = %d, want 0", len(edges))
	}
}

func TestCommunitiesTriangle(t *testing.T) {
	// Three authors all co-authoring with each other and no one else:
	// one community of size 3 with density 1.0.
	papers := []types.PaperRecord{
		paper("p1", 2020, "Alice Brown", "Bob Clark"),
		paper("p2", 2020, "Bob Clark", "Dan Evans"),
		paper("p3", 2021, "Alice Brown", "Dan Evans"),
		paper("p4", 2021, "Solo Author"),
	}
	profiles := BuildProfiles(papers, testClassifier())
	edges := BuildEdges(papers, profiles)
	communities := Communities(edges, profiles)

	if len(communities) != 1 {
		t.Fatalf("len(communities) = %d, want 1", len(communities))
	}
	c := communities[0]
	if len(c.Members) != 3 {
		t.Errorf("len(Members) = %d, want 3", len(c.Members))
	}
	if c.CollaborationStrength != 1.0 {
		t.Errorf("CollaborationStrength = %f, want 1.0", c.CollaborationStrength)
	}
	if len(c.CentralMembers) != 1 {
		t.Errorf("len(CentralMembers) = %d, want 1 (30%% of 3)", len(c.CentralMembers))
	}
	if c.PaperCount != 3 {
		t.Errorf("PaperCount = %d, want 3", c.PaperCount)
	}
}

func TestCommunitiesSizeThreshold(t *testing.T) {
	// A pair is a component but not a community.
	papers := []types.PaperRecord{
		paper("p1", 2020, "Alice Brown", "Bob Clark"),
	}
	profiles := BuildProfiles(papers, testClassifier())
	edges := BuildEdges(papers, profiles)
	if got := Communities(edges, profiles); len(got) != 0 {
		t.Errorf("len(communities) = %d, want 0 for a two-member component", len(got))
	}
}

func TestStats(t *testing.T) {
	papers := []types.PaperRecord{
		paper("p1", 2020, "Alice Brown", "Bob Clark"),
		paper("p2", 2020, "Bob Clark", "Dan Evans"),
		paper("p3", 2021, "Alice Brown", "Dan Evans"),
	}
	profiles := BuildProfiles(papers, testClassifier())
	edges := BuildEdges(papers, profiles)
	s := Stats(profiles, edges)

	if s.TotalAuthors != 3 {
		t.Errorf("TotalAuthors = %d, want 3", s.TotalAuthors)
	}
	if s.TotalCollaborations != 3 {
		t.Errorf("TotalCollaborations = %d, want 3", s.TotalCollaborations)
	}
	if s.AvgCollaborators != 2.0 {
		t.Errorf("AvgCollaborators = %f, want 2.0 (2E/N)", s.AvgCollaborators)
	}
	if s.Density != 1.0 {
		t.Errorf("Density = %f, want 1.0", s.Density)
	}
	if len(s.TopByPapers) != 3 || len(s.TopByInfluence) != 3 {
		t.Errorf("top lists = %d/%d entries, want 3/3", len(s.TopByPapers), len(s.TopByInfluence))
	}
}

func TestBuildFullNetwork(t *testing.T) {
	papers := []types.PaperRecord{
		paper("p1", 2020, "Alice Brown", "Bob Clark"),
		paper("p2", 2020, "Bob Clark", "Dan Evans"),
		paper("p3", 2021, "Alice Brown", "Dan Evans"),
	}
	net := Build(papers, testClassifier())
	if len(net.Authors) != 3 || len(net.Collaborations) != 3 || len(net.Communities) != 1 {
		t.Errorf("Build() = %d authors, %d edges, %d communities; want 3/3/1",
			len(net.Authors), len(net.Collaborations), len(net.Communities))
	}
}
