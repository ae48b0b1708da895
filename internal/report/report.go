// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report tabulates score distributions and renders them as text,
// tables, JSON, YAML, or a density chart.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.yaml.in/yaml/v3"

	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

// Distribution holds exact per-score counts for a set of records.
type Distribution struct {
	Histogram map[int]int `json:"histogram" yaml:"histogram"`
	Positive  int         `json:"positive" yaml:"positive"`
	Negative  int         `json:"negative" yaml:"negative"`
	Zero      int         `json:"zero" yaml:"zero"`
	Total     int         `json:"total" yaml:"total"`
}

// Summarize counts scores by value and by sign.
func Summarize(scores []int) Distribution {
	d := Distribution{Histogram: make(map[int]int), Total: len(scores)}
	for _, s := range scores {
		d.Histogram[s]++
		switch {
		case s > 0:
			d.Positive++
		case s < 0:
			d.Negative++
		default:
			d.Zero++
		}
	}
	return d
}

// Scores returns the distinct score values in ascending order.
func (d Distribution) Scores() []int {
	keys := make([]int, 0, len(d.Histogram))
	for k := range d.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Write dispatches to the formatter for format.
func Write(w io.Writer, d Distribution, format types.ReportFormat) error {
	switch format {
	case types.ReportText, "":
		FormatText(d, w)
		return nil
	case types.ReportTable:
		return FormatTable(d, w)
	case types.ReportJSON:
		return FormatJSON(d, w)
	case types.ReportYAML:
		return FormatYAML(d, w)
	default:
		return fmt.Errorf("unsupported report format %q: use text, table, json, or yaml", format)
	}
}

// FormatText writes the distribution in the plain console layout.
func FormatText(d Distribution, w io.Writer) {
	fmt.Fprintln(w, "\nScore Distribution:")
	for _, s := range d.Scores() {
		fmt.Fprintf(w, "Score %d: %d entries\n", s, d.Histogram[s])
	}
	fmt.Fprintf(w, "\n# pos: %d\n", d.Positive)
	fmt.Fprintf(w, "#neg: %d\n", d.Negative)
	fmt.Fprintf(w, "#0: %d\n", d.Zero)
}

// FormatTable writes the distribution as a bordered table followed by
// sign totals.
func FormatTable(d Distribution, w io.Writer) error {
	if d.Total == 0 {
		fmt.Fprintln(w, "No entries scored.")
		return nil
	}

	rows := make([][]string, 0, len(d.Histogram))
	for _, s := range d.Scores() {
		rows = append(rows, []string{strconv.Itoa(s), strconv.Itoa(d.Histogram[s])})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Score", "Entries"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("building score table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering score table: %w", err)
	}

	fmt.Fprintf(w, "\n%d entries: %d positive, %d negative, %d zero\n",
		d.Total, d.Positive, d.Negative, d.Zero)
	return nil
}

// FormatJSON writes the distribution as indented JSON.
func FormatJSON(d Distribution, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// FormatYAML writes the distribution as YAML.
func FormatYAML(d Distribution, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(d)
}

// FormatRecords writes one row per entry, highest score first. Entries with
// equal scores keep their file order.
func FormatRecords(records []types.Record, w io.Writer) error {
	entries := make([]types.Record, 0, len(records))
	for _, r := range records {
		if r.IsEntry() {
			entries = append(entries, r)
		}
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	rows := make([][]string, len(entries))
	for i, r := range entries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			truncate(r.Key, 24),
			strconv.Itoa(r.Score),
			truncate(r.Get(types.FieldTitle), 60),
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Key", "Score", "Title"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("building record table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering record table: %w", err)
	}
	return nil
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
