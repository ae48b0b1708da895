// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score turns a record's keyword set into an integer relevance score
// by summing the taxonomy weight of every keyword.
package score

import (
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/keywords"
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/taxonomy"
	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

// Scorer sums keyword weights.
type Scorer struct {
	tax *taxonomy.Taxonomy
}

// New returns a Scorer that reads weights from t.
func New(t *taxonomy.Taxonomy) *Scorer {
	return &Scorer{tax: t}
}

// Score returns the sum of the weights of rec's keywords. Keywords without
// a weight count 0; a missing keywords field scores 0.
func (s *Scorer) Score(rec types.Record) int {
	total := 0
	for _, c := range s.Breakdown(rec) {
		total += c.Weight
	}
	return total
}

// Contribution is the weight one keyword adds to a score.
type Contribution struct {
	Label  string `json:"label" yaml:"label"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Breakdown lists every keyword of rec with its weight, in label order.
// Unweighted keywords are included with weight 0.
func (s *Scorer) Breakdown(rec types.Record) []Contribution {
	set := keywords.Parse(rec.Get(types.FieldKeywords))
	out := make([]Contribution, 0, set.Len())
	for _, l := range set.Labels() {
		out = append(out, Contribution{Label: l, Weight: s.tax.Weight(l)})
	}
	return out
}

// ScoreAll sets Score on every entry of records and returns the scores in
// record order. Non-entry blocks are skipped and contribute no score.
func (s *Scorer) ScoreAll(records []types.Record) []int {
	scores := make([]int, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !rec.IsEntry() {
			continue
		}
		rec.Score = s.Score(*rec)
		scores = append(scores, rec.Score)
	}
	return scores
}
