// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litscope CLI, the driver around
// the literature analysis pipeline: parse a bibliographic export, derive
// topics, the author network, and research gaps, and write reports or
// export artifacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/litscope/internal/ingest"
	"github.com/meshintel/litscope/internal/secrets"
	"github.com/meshintel/litscope/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the process-wide structured logger; --verbose lowers the
// level to debug.
var logger zerolog.Logger

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

var rootCmd = &cobra.Command{
	Use:   "litscope",
	Short: "Analyze literature review exports for topics, networks, and research gaps",
	Long: `litscope turns a literature review export (CSV or XLSX) into analysis:
topic clusters from keyword classification, an author collaboration network
with community detection, and a heuristic research-gap report.

The pipeline is a pure function of the dataset: no state persists between
runs, and citation enrichment is strictly best-effort.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litscope.yaml or ~/.config/litscope/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litscope"))
		}
	}

	viper.SetEnvPrefix("LITSCOPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig merges config-file overrides over the built-in defaults.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if viper.IsSet("parser.year_min") {
		cfg.Parser.YearMin = viper.GetInt("parser.year_min")
	}
	if viper.IsSet("parser.year_max") {
		cfg.Parser.YearMax = viper.GetInt("parser.year_max")
	}
	if viper.IsSet("classifier.min_score") {
		cfg.Classifier.MinScore = viper.GetFloat64("classifier.min_score")
	}
	if viper.IsSet("gaps.expected_overlap") {
		cfg.Gaps.ExpectedOverlap = viper.GetFloat64("gaps.expected_overlap")
	}
	if viper.IsSet("enrichment.batch_size") {
		cfg.Enrichment.BatchSize = viper.GetInt("enrichment.batch_size")
	}
	if key, ok := loadedSecrets["citation-api-key"]; ok {
		cfg.Enrichment.APIKey = key
	}
	return cfg
}

// loadDataset parses a CSV or XLSX export by extension.
func loadDataset(path string, cfg types.ParserConfig) ([]types.PaperRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ingest.ParseXLSX(path, cfg)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening dataset %s: %w", path, err)
		}
		defer f.Close()
		return ingest.ParseCSV(f, cfg)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
