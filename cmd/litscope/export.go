// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshintel/litscope/internal/export"
	"github.com/meshintel/litscope/internal/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export <dataset>",
	Short: "Export analysis results to SQLite, CSV, or YAML",
	Long: `Export runs the pipeline and writes the results to one or more output
formats. The SQLite database holds papers, authors, collaborations, topics,
and gaps in queryable tables; CSV flattens the paper records; YAML captures
the full analysis aggregate. Exports are regenerated from scratch on every
run.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("db", "", "write a SQLite database to this path")
	exportCmd.Flags().String("csv", "", "write the paper records as CSV to this path")
	exportCmd.Flags().String("yaml", "", "write the full analysis as YAML to this path")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	csvPath, _ := cmd.Flags().GetString("csv")
	yamlPath, _ := cmd.Flags().GetString("yaml")
	if dbPath == "" && csvPath == "" && yamlPath == "" {
		return fmt.Errorf("provide at least one output: --db, --csv, or --yaml")
	}

	cfg := pipelineConfig()

	records, err := loadDataset(args[0], cfg.Parser)
	if err != nil {
		return err
	}

	data, err := pipeline.Run(records, cfg, io.Discard)
	if err != nil {
		return err
	}

	if dbPath != "" {
		store, err := export.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Write(cmd.Context(), data); err != nil {
			return fmt.Errorf("writing database export: %w", err)
		}
		fmt.Printf("Database written to %s\n", dbPath)
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating CSV export: %w", err)
		}
		defer f.Close()

		if err := export.WriteCSV(f, data.Papers); err != nil {
			return fmt.Errorf("writing CSV export: %w", err)
		}
		fmt.Printf("CSV written to %s\n", csvPath)
	}

	if yamlPath != "" {
		f, err := os.Create(yamlPath)
		if err != nil {
			return fmt.Errorf("creating YAML export: %w", err)
		}
		defer f.Close()

		if err := export.WriteYAML(f, data); err != nil {
			return fmt.Errorf("writing YAML export: %w", err)
		}
		fmt.Printf("YAML written to %s\n", yamlPath)
	}

	return nil
}
