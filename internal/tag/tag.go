// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tag adds topic labels to bibliographic records by matching the
// taxonomy's term lists against each record's title, abstract, and keywords.
package tag

import (
	"fmt"
	"io"
	"strings"

	"github.com/gulsah-atas/Literature-Review-Scoring/internal/keywords"
	"github.com/gulsah-atas/Literature-Review-Scoring/internal/taxonomy"
	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

// Tagger labels records against a compiled taxonomy.
type Tagger struct {
	m *taxonomy.Matcher

	// own holds the labels the tagger writes, except the status label.
	// They are left out of the match text so a label never triggers
	// another one on a later run ("non-evacuation" contains "evacuation",
	// "fire dynamics" contains "fire").
	own map[string]bool
}

// New returns a Tagger that uses m.
func New(m *taxonomy.Matcher) *Tagger {
	tax := m.Taxonomy()
	own := make(map[string]bool)
	for _, l := range tax.Labels() {
		if l != tax.Status.Label {
			own[l] = true
		}
	}
	return &Tagger{m: m, own: own}
}

// Result lists the labels a single Tag call changed.
type Result struct {
	Added   []string
	Removed []string
}

// Changed reports whether the record's keyword set was modified.
func (r Result) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// Tag updates rec's keywords field in place. Exactly one of the status
// pair ends up present. Every topic with a matching term is added; no
// label outside the status pair is ever removed. The field is rewritten
// in sorted order even when no label changed.
func (t *Tagger) Tag(rec *types.Record) Result {
	set := keywords.Parse(rec.Get(types.FieldKeywords))
	text := strings.ToLower(rec.Get(types.FieldTitle) + " " +
		rec.Get(types.FieldAbstract) + " " + t.evidence(set))

	var res Result

	st := t.m.Status()
	keep, drop := st.Complement, st.Label
	if t.m.MatchStatus(text) {
		keep, drop = st.Label, st.Complement
	}
	if set.Add(keep) {
		res.Added = append(res.Added, keep)
	}
	if set.Remove(drop) {
		res.Removed = append(res.Removed, drop)
	}

	for _, label := range t.m.MatchTopics(text) {
		if set.Add(label) {
			res.Added = append(res.Added, label)
		}
	}

	rec.Set(types.FieldKeywords, set.String())
	return res
}

// evidence joins the keywords that count as record text.
func (t *Tagger) evidence(set keywords.Set) string {
	var kept []string
	for _, l := range set.Labels() {
		if !t.own[l] {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, keywords.Separator)
}

// Summary holds counts from a TagAll run.
type Summary struct {
	Records int
	Changed int
	Added   int
	Removed int
}

// TagAll tags every entry in records in place and writes one progress line
// per changed entry to w, followed by a summary line. Non-entry blocks
// (@comment, @string, @preamble) are skipped.
func (t *Tagger) TagAll(records []types.Record, w io.Writer) Summary {
	var sum Summary
	for i := range records {
		rec := &records[i]
		if !rec.IsEntry() {
			continue
		}
		sum.Records++

		res := t.Tag(rec)
		if !res.Changed() {
			continue
		}
		sum.Changed++
		sum.Added += len(res.Added)
		sum.Removed += len(res.Removed)
		fmt.Fprintf(w, "tagged  %s:%s\n", rec.Key, formatChanges(res))
	}

	fmt.Fprintf(w, "\nrecords: %d, changed: %d, labels added: %d, labels removed: %d\n",
		sum.Records, sum.Changed, sum.Added, sum.Removed)
	return sum
}

func formatChanges(res Result) string {
	var b strings.Builder
	for _, l := range res.Added {
		fmt.Fprintf(&b, " +%s", l)
	}
	for _, l := range res.Removed {
		fmt.Fprintf(&b, " -%s", l)
	}
	return b.String()
}
