// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/meshintel/litscope/pkg/types"
)

// printSummary writes the analyze command's human-readable digest.
func printSummary(data *types.ProcessedData) {
	fmt.Println()
	fmt.Println("Analysis summary")
	fmt.Println("----------------")
	fmt.Printf("Papers:        %d valid (%d invalid, %d duplicates of %d rows)\n",
		data.Stats.Valid, data.Stats.Invalid, data.Stats.Duplicates, data.Stats.Total)
	if data.YearRange.Min != 0 {
		fmt.Printf("Year range:    %d-%d\n", data.YearRange.Min, data.YearRange.Max)
	}
	fmt.Printf("Quality score: %.1f%%\n", data.Quality.Score)
	fmt.Printf("Authors:       %d (%d collaborations, %d communities)\n",
		data.Network.Stats.TotalAuthors, data.Network.Stats.TotalCollaborations, len(data.Network.Communities))

	fmt.Printf("Topics:        %d\n", len(data.Topics))
	for _, cluster := range data.Topics {
		trend := trendFor(data.Trends, cluster.ID)
		fmt.Printf("  %-14s %4d papers (%.1f%% coverage)%s\n",
			cluster.Label, len(cluster.Papers), cluster.Coverage, trend)
	}

	fmt.Printf("Gaps:          %d identified\n", len(data.Gaps))

	for _, rec := range data.Quality.Recommendations {
		fmt.Printf("Note: %s\n", rec)
	}
}

func trendFor(trends []types.TopicTrend, topicID string) string {
	for _, t := range trends {
		if t.TopicID == topicID {
			return fmt.Sprintf(" [%s]", t.Direction)
		}
	}
	return ""
}

// printGaps writes the gaps command's report. Gaps arrive sorted by
// opportunity score, descending.
func printGaps(gaps []types.ResearchGap) {
	if len(gaps) == 0 {
		fmt.Println("No research gaps identified.")
		return
	}

	for i, gap := range gaps {
		fmt.Printf("%d. [%s/%s] %s (opportunity %.1f)\n", i+1, gap.Type, gap.Severity, gap.Title, gap.OpportunityScore)
		fmt.Printf("   %s\n", gap.Description)
		if len(gap.Topics) > 0 {
			fmt.Printf("   Topics: %s\n", strings.Join(gap.Topics, ", "))
		}
		if len(gap.Years) > 0 {
			fmt.Printf("   Years: %s\n", joinYears(gap.Years))
		}
		for _, ev := range gap.Evidence {
			fmt.Printf("   Evidence: %s\n", ev)
		}
		for _, rec := range gap.Recommendations {
			fmt.Printf("   -> %s\n", rec)
		}
	}
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprintf("%d", y)
	}
	return strings.Join(parts, ", ")
}
