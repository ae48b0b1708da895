// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gulsah-atas/Literature-Review-Scoring/internal/pipeline"
	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add topic keywords to every record of a BibTeX file",
	Long: `Tag reads a BibTeX file, matches each record's title, abstract, and
existing keywords against the taxonomy, and writes the records to the output
file with the matched topic labels merged into their keywords field.

Exactly one of evacuation / non-evacuation is kept on every record.
Existing keywords are never removed apart from that pair, and running tag
on its own output changes nothing.`,
	Example: `  litscore tag --input refs.bib --output refs.tagged.bib
  LITSCORE_TAG_INPUT=refs.bib litscore tag`,
	RunE: runTag,
}

func init() {
	tagCmd.Flags().String("input", "input.bib", "BibTeX file to read")
	tagCmd.Flags().String("output", "output.bib", "BibTeX file to write")
	bindFlag("tag.input", tagCmd.Flags().Lookup("input"))
	bindFlag("tag.output", tagCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(tagCmd)
}

func tagConfig() types.TagConfig {
	return types.TagConfig{
		Input:    viper.GetString("tag.input"),
		Output:   viper.GetString("tag.output"),
		Taxonomy: viper.GetString("taxonomy"),
	}
}

func runTag(cmd *cobra.Command, args []string) error {
	_, err := pipeline.Tag(tagConfig(), cmd.OutOrStdout())
	return err
}
