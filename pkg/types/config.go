// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TagConfig holds settings for the tagging pipeline.
type TagConfig struct {
	// Input is the BibTeX file to read (default "input.bib").
	Input string `json:"input" yaml:"input"`

	// Output is the BibTeX file the tagged records are written to
	// (default "output.bib").
	Output string `json:"output" yaml:"output"`

	// Taxonomy is an optional path to a custom taxonomy YAML file.
	// Empty selects the built-in taxonomy.
	Taxonomy string `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
}

// ScoreConfig holds settings for the scoring pipeline.
type ScoreConfig struct {
	// Input is the BibTeX file to score (default "input.bib").
	Input string `json:"input" yaml:"input"`

	// Taxonomy is an optional path to a custom taxonomy YAML file.
	Taxonomy string `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
}

// ReportFormat selects how the score distribution is printed.
type ReportFormat string

const (
	ReportText  ReportFormat = "text"
	ReportTable ReportFormat = "table"
	ReportJSON  ReportFormat = "json"
	ReportYAML  ReportFormat = "yaml"
)

// ReportConfig holds settings for the distribution report.
type ReportConfig struct {
	// Format selects the console layout: text, table, json, or yaml.
	Format ReportFormat `json:"format" yaml:"format"`

	// Records adds a per-record score table to the report.
	Records bool `json:"records" yaml:"records"`

	// PlotPath is where the density chart is written. Empty disables it.
	// The extension (.png, .svg, .pdf) selects the image format.
	PlotPath string `json:"plot_path,omitempty" yaml:"plot_path,omitempty"`

	// Bandwidth scales the Scott's-rule KDE bandwidth (default 0.5).
	Bandwidth float64 `json:"bandwidth" yaml:"bandwidth"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Tag    TagConfig    `json:"tag" yaml:"tag"`
	Score  ScoreConfig  `json:"score" yaml:"score"`
	Report ReportConfig `json:"report" yaml:"report"`
}
