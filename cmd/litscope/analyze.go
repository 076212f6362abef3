// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshintel/litscope/internal/export"
	"github.com/meshintel/litscope/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset>",
	Short: "Run the full analysis pipeline on a CSV or XLSX export",
	Long: `Analyze parses a literature review export, validates and deduplicates
the records, classifies papers into topic clusters, builds the author
collaboration network, and runs the research-gap heuristics. A summary is
printed to stdout; --report writes the complete result as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("report", "", "write the full analysis as YAML to this file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	records, err := loadDataset(args[0], cfg.Parser)
	if err != nil {
		return err
	}
	logger.Debug().Int("records", len(records)).Str("dataset", args[0]).Msg("dataset parsed")

	data, err := pipeline.Run(records, cfg, os.Stdout)
	if err != nil {
		return err
	}

	printSummary(data)

	if report, _ := cmd.Flags().GetString("report"); report != "" {
		f, err := os.Create(report)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()

		if err := export.WriteYAML(f, data); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to %s\n", report)
	}
	return nil
}
