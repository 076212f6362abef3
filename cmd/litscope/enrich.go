// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/meshintel/litscope/internal/enrich"
	"github.com/meshintel/litscope/internal/validate"
	"github.com/meshintel/litscope/pkg/types"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <dataset>",
	Short: "Fetch best-effort citation counts for a dataset",
	Long: `Enrich looks up citation counts and venue impact for the valid papers
in a dataset. Lookups are rate-limited and every failure degrades to "no
data" for that paper; enrichment never blocks or fails the analysis.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().Int("limit", 0, "enrich at most N papers (default: all)")
	enrichCmd.Flags().Bool("venues", false, "also look up venue impact factors")

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	records, err := loadDataset(args[0], cfg.Parser)
	if err != nil {
		return err
	}

	papers, _, _ := validate.Dataset(records)
	if len(papers) == 0 {
		return fmt.Errorf("dataset contains no valid records")
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && limit < len(papers) {
		papers = papers[:limit]
	}

	cache := enrich.NewCache(cfg.Enrichment.CacheTTL)
	client := enrich.NewClient(cfg.Enrichment, cache, logger)

	fmt.Printf("Enriching %d paper(s)...\n", len(papers))
	results := client.EnrichAll(cmd.Context(), papers)

	found := 0
	for _, paper := range papers {
		info := results[paper.Key]
		if !info.Found {
			fmt.Printf("  %-60.60s  no data\n", paper.Title)
			continue
		}
		found++
		fmt.Printf("  %-60.60s  %d citations (%d influential)\n",
			paper.Title, info.CitationCount, info.InfluentialCount)
	}
	fmt.Printf("Citation data found for %d of %d paper(s)\n", found, len(papers))

	if venues, _ := cmd.Flags().GetBool("venues"); venues {
		printVenueImpact(cmd, client, papers)
	}
	return nil
}

func printVenueImpact(cmd *cobra.Command, client *enrich.Client, papers []types.PaperRecord) {
	seen := make(map[string]bool)
	var names []string
	for _, p := range papers {
		if p.Venue != "" && !seen[p.Venue] {
			seen[p.Venue] = true
			names = append(names, p.Venue)
		}
	}
	sort.Strings(names)

	fmt.Println("\nVenue impact:")
	for _, venue := range names {
		impact := client.VenueImpact(cmd.Context(), venue)
		if !impact.Found {
			fmt.Printf("  %-50.50s  no data\n", venue)
			continue
		}
		fmt.Printf("  %-50.50s  %.2f (%s)\n", venue, impact.ImpactFactor, impact.Quartile)
	}
}
