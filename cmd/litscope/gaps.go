// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/meshintel/litscope/internal/pipeline"
	"github.com/meshintel/litscope/pkg/types"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <dataset>",
	Short: "Report heuristic research gaps for a dataset",
	Long: `Gaps runs the pipeline and prints only the research-gap findings:
under-explored topic intersections, temporal publication lulls,
under-utilized methodologies, and a geographic-coverage note. Scores are
heuristic rankings, not validated statistical measures.`,
	Args: cobra.ExactArgs(1),
	RunE: runGaps,
}

func init() {
	gapsCmd.Flags().Int("top", 0, "show only the N highest-opportunity gaps")
	gapsCmd.Flags().String("severity", "", "show only gaps at this severity (high, medium, low)")

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	records, err := loadDataset(args[0], cfg.Parser)
	if err != nil {
		return err
	}

	data, err := pipeline.Run(records, cfg, io.Discard)
	if err != nil {
		return err
	}

	gaps := data.Gaps
	if severity, _ := cmd.Flags().GetString("severity"); severity != "" {
		gaps = filterSeverity(gaps, types.Severity(severity))
	}
	if top, _ := cmd.Flags().GetInt("top"); top > 0 && top < len(gaps) {
		gaps = gaps[:top]
	}

	printGaps(gaps)
	return nil
}

func filterSeverity(gaps []types.ResearchGap, severity types.Severity) []types.ResearchGap {
	var out []types.ResearchGap
	for _, gap := range gaps {
		if gap.Severity == severity {
			out = append(out, gap)
		}
	}
	return out
}
