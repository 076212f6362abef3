// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences parsing output through validation,
// classification, network building, and gap analysis into the single
// ProcessedData aggregate every display surface consumes. A run is a pure
// function of its input: no state survives between invocations, so
// reprocessing after a filter change is always safe.
package pipeline

import (
	"fmt"
	"io"
	"sort"

	"github.com/meshintel/litscope/internal/authornet"
	"github.com/meshintel/litscope/internal/gaps"
	"github.com/meshintel/litscope/internal/topics"
	"github.com/meshintel/litscope/internal/validate"
	"github.com/meshintel/litscope/pkg/types"
)

// Run processes a parsed record set into ProcessedData. It fails only on
// an unusable dataset (no input, or nothing survives validation); every
// lesser problem is absorbed into the returned statistics. Progress is
// reported line-by-line to w.
func Run(papers []types.PaperRecord, cfg types.PipelineConfig, w io.Writer) (*types.ProcessedData, error) {
	return RunWithVocabulary(papers, topics.DefaultVocabulary(), cfg, w)
}

// RunWithVocabulary is Run with a caller-supplied topic vocabulary, for
// deployments covering a different field than the built-in categories.
func RunWithVocabulary(papers []types.PaperRecord, vocab topics.Vocabulary, cfg types.PipelineConfig, w io.Writer) (*types.ProcessedData, error) {
	if len(papers) == 0 {
		return nil, fmt.Errorf("unusable dataset: no records to process")
	}

	valid, _, stats := validate.Dataset(papers)
	if len(valid) == 0 {
		return nil, fmt.Errorf("unusable dataset: none of %d record(s) passed validation", len(papers))
	}
	fmt.Fprintf(w, "validated %d record(s): %d valid, %d invalid, %d duplicate(s)\n",
		stats.Total, stats.Valid, stats.Invalid, stats.Duplicates)

	classifier := topics.NewClassifier(vocab, cfg.Classifier)
	clusters := classifier.BuildClusters(valid)
	trends := classifier.Trends(clusters, valid)
	fmt.Fprintf(w, "classified into %d topic cluster(s)\n", len(clusters))

	network := authornet.Build(valid, classifier)
	fmt.Fprintf(w, "author network: %d author(s), %d collaboration(s), %d communit(ies)\n",
		network.Stats.TotalAuthors, network.Stats.TotalCollaborations, len(network.Communities))

	findings := gaps.Analyze(valid, clusters, network.Authors, cfg.Gaps)
	fmt.Fprintf(w, "gap analysis: %d finding(s)\n", len(findings))

	return &types.ProcessedData{
		Papers:    valid,
		YearRange: yearRange(valid),
		Network:   network,
		Topics:    clusters,
		Trends:    trends,
		Gaps:      findings,
		Venues:    venueStats(valid),
		Quality:   validate.Quality(valid),
		Stats:     stats,
	}, nil
}

func yearRange(papers []types.PaperRecord) types.YearRange {
	var r types.YearRange
	for _, p := range papers {
		if !p.HasYear() {
			continue
		}
		if r.Min == 0 || p.PublicationYear < r.Min {
			r.Min = p.PublicationYear
		}
		if p.PublicationYear > r.Max {
			r.Max = p.PublicationYear
		}
	}
	return r
}

// venueStats counts papers per venue, preferring the venue column and
// falling back to the publication title. Sorted by count descending,
// venue name as tiebreaker.
func venueStats(papers []types.PaperRecord) []types.VenueStat {
	counts := make(map[string]int)
	for _, p := range papers {
		venue := p.Venue
		if venue == "" {
			venue = p.PublicationTitle
		}
		if venue == "" {
			continue
		}
		counts[venue]++
	}

	stats := make([]types.VenueStat, 0, len(counts))
	for v, c := range counts {
		stats = append(stats, types.VenueStat{Venue: v, Count: c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Venue < stats[j].Venue
	})
	return stats
}
