// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gulsah-atas/Literature-Review-Scoring/internal/pipeline"
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/report"
	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score tagged BibTeX records and report the distribution",
	Long: `Score reads a tagged BibTeX file, sums the taxonomy weight of every label
in each record's keywords field, and prints how many records received each
score along with positive, negative, and zero totals.

Use --records for a ranked per-record table and --plot to render a kernel
density chart of the scores (PNG, SVG, or PDF by file extension).`,
	Example: `  litscore score --input output.bib
  litscore score --format table --records
  litscore score --plot scores.png --bandwidth 0.3`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("input", "input.bib", "tagged BibTeX file to read")
	scoreCmd.Flags().String("format", string(types.ReportText), "report format: text, table, json, or yaml")
	scoreCmd.Flags().Bool("records", false, "also list every record ranked by score")
	scoreCmd.Flags().String("plot", "", "write a score density chart to this file")
	scoreCmd.Flags().Float64("bandwidth", report.DefaultBandwidth, "density bandwidth multiplier")
	bindFlag("score.input", scoreCmd.Flags().Lookup("input"))
	bindFlag("report.format", scoreCmd.Flags().Lookup("format"))
	bindFlag("report.records", scoreCmd.Flags().Lookup("records"))
	bindFlag("report.plot", scoreCmd.Flags().Lookup("plot"))
	bindFlag("report.bandwidth", scoreCmd.Flags().Lookup("bandwidth"))

	rootCmd.AddCommand(scoreCmd)
}

func scoreConfig() (types.ScoreConfig, types.ReportConfig) {
	cfg := types.ScoreConfig{
		Input:    viper.GetString("score.input"),
		Taxonomy: viper.GetString("taxonomy"),
	}
	rcfg := types.ReportConfig{
		Format:    types.ReportFormat(viper.GetString("report.format")),
		Records:   viper.GetBool("report.records"),
		PlotPath:  viper.GetString("report.plot"),
		Bandwidth: viper.GetFloat64("report.bandwidth"),
	}
	return cfg, rcfg
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, rcfg := scoreConfig()
	_, err := pipeline.Score(cfg, rcfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return err
}
