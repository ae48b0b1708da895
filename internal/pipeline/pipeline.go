// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the loader, tagger, scorer, and reporter into the
// two batch runs exposed by the CLI: tag (file to file) and score (file to
// console report and optional density chart).
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/gulsah-atas/Literature-Review-Scoring/internal/bibtex"
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/report"
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/score"
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/tag"
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/taxonomy"
	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

// Tag loads cfg.Input, tags every entry, and writes the result to
// cfg.Output. Progress goes to w. Any load, parse, or save error aborts
// the run before or without replacing the output file.
func Tag(cfg types.TagConfig, w io.Writer) (tag.Summary, error) {
	tax, err := taxonomy.Resolve(cfg.Taxonomy)
	if err != nil {
		return tag.Summary{}, err
	}
	m, err := tax.Compile()
	if err != nil {
		return tag.Summary{}, fmt.Errorf("compiling taxonomy: %w", err)
	}

	records, err := bibtex.Load(cfg.Input)
	if err != nil {
		return tag.Summary{}, err
	}

	summary := tag.New(m).TagAll(records, w)

	if err := bibtex.Save(cfg.Output, records); err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "Updated BibTeX file saved to %s\n", cfg.Output)
	return summary, nil
}

// Score loads cfg.Input, scores every entry, and writes the distribution
// report to out. Notices (plot written or skipped) go to status so that
// JSON and YAML reports on out stay machine-readable.
func Score(cfg types.ScoreConfig, rcfg types.ReportConfig, out, status io.Writer) (report.Distribution, error) {
	tax, err := taxonomy.Resolve(cfg.Taxonomy)
	if err != nil {
		return report.Distribution{}, err
	}
	if err := tax.Validate(); err != nil {
		return report.Distribution{}, fmt.Errorf("invalid taxonomy: %w", err)
	}

	records, err := bibtex.Load(cfg.Input)
	if err != nil {
		return report.Distribution{}, err
	}

	scores := score.New(tax).ScoreAll(records)
	dist := report.Summarize(scores)

	if err := report.Write(out, dist, rcfg.Format); err != nil {
		return dist, err
	}
	if rcfg.Records {
		fmt.Fprintln(out)
		if err := report.FormatRecords(records, out); err != nil {
			return dist, err
		}
	}

	if rcfg.PlotPath == "" {
		return dist, nil
	}
	points, err := report.Density(scores, rcfg.Bandwidth)
	if errors.Is(err, report.ErrNoScores) {
		fmt.Fprintf(status, "warning: %s has no entries, skipping density plot\n", cfg.Input)
		return dist, nil
	}
	if err != nil {
		return dist, err
	}
	if err := report.Plot(points, rcfg.PlotPath); err != nil {
		return dist, err
	}
	fmt.Fprintf(status, "Density plot saved to %s\n", rcfg.PlotPath)
	return dist, nil
}
