// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gulsah-atas/Literature-Review-Scoring/internal/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print or validate the active taxonomy",
	Long: `Taxonomy prints the active taxonomy (the built-in one, or the file given
with --taxonomy) as YAML. Redirect the output to a file to start a custom
taxonomy.

With --validate it checks the taxonomy instead: every status and topic needs
terms, every label needs a weight, and all term patterns must compile.`,
	Example: `  litscore taxonomy > my-taxonomy.yaml
  litscore taxonomy --taxonomy my-taxonomy.yaml --validate`,
	RunE: runTaxonomy,
}

func init() {
	taxonomyCmd.Flags().Bool("validate", false, "validate the taxonomy instead of printing it")
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	validate, _ := cmd.Flags().GetBool("validate")

	tax, err := taxonomy.Resolve(viper.GetString("taxonomy"))
	if err != nil {
		return err
	}

	if !validate {
		return tax.Write(cmd.OutOrStdout())
	}
	if _, err := tax.Compile(); err != nil {
		return fmt.Errorf("invalid taxonomy: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Taxonomy OK: %d topics, %d weighted labels\n",
		len(tax.Topics), len(tax.Weights))
	return nil
}
