// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy holds the topic term table and the score weight table.
// A Taxonomy is loaded once, validated, and handed to the tagger (as a
// compiled Matcher) and to the scorer. Nothing in it changes during a run.
package taxonomy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Status is the mutually exclusive label pair. A record whose text matches
// one of Terms carries Label and never Complement; every other record
// carries Complement and never Label.
type Status struct {
	Label      string   `yaml:"label"`
	Complement string   `yaml:"complement"`
	Terms      []string `yaml:"terms"`
}

// Topic is an additive label triggered by any of its terms.
type Topic struct {
	Label string   `yaml:"label"`
	Terms []string `yaml:"terms"`
}

// Taxonomy is the full classification and scoring table.
type Taxonomy struct {
	Status  Status         `yaml:"status"`
	Topics  []Topic        `yaml:"topics"`
	Weights map[string]int `yaml:"weights"`
}

// Default returns the built-in taxonomy.
func Default() (*Taxonomy, error) {
	t, err := decode(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("parsing built-in taxonomy: %w", err)
	}
	return t, nil
}

// Load reads a taxonomy YAML file and validates it. Unknown keys are
// rejected so a misspelt section does not silently drop a table.
func Load(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening taxonomy %s: %w", path, err)
	}
	defer f.Close()

	t, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing taxonomy %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy %s: %w", path, err)
	}
	return t, nil
}

// Resolve returns the taxonomy at path, or the built-in one when path is empty.
func Resolve(path string) (*Taxonomy, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func decode(r io.Reader) (*Taxonomy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Taxonomy
	if err := dec.Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Write encodes the taxonomy as YAML.
func (t *Taxonomy) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding taxonomy: %w", err)
	}
	return enc.Close()
}

// Labels returns every label the tagger can emit, sorted.
func (t *Taxonomy) Labels() []string {
	seen := make(map[string]struct{}, len(t.Topics)+2)
	for _, l := range []string{t.Status.Label, t.Status.Complement} {
		if l != "" {
			seen[l] = struct{}{}
		}
	}
	for _, tp := range t.Topics {
		if tp.Label != "" {
			seen[tp.Label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Weight returns the score contribution of label, or 0 if it has none.
func (t *Taxonomy) Weight(label string) int {
	return t.Weights[label]
}

// Validate checks that the taxonomy is usable: the status pair is complete
// and distinct, every topic has a unique label and at least one non-blank
// term, and every emitted label has a weight spelled exactly the same.
// All problems are reported together.
func (t *Taxonomy) Validate() error {
	var errs []error

	st := t.Status
	if st.Label == "" || st.Complement == "" {
		errs = append(errs, errors.New("status needs both label and complement"))
	} else if st.Label == st.Complement {
		errs = append(errs, fmt.Errorf("status label and complement are both %q", st.Label))
	}
	errs = append(errs, checkTerms("status", st.Terms)...)

	seen := map[string]bool{st.Label: true, st.Complement: true}
	for i, tp := range t.Topics {
		if tp.Label == "" {
			errs = append(errs, fmt.Errorf("topic %d has no label", i+1))
			continue
		}
		if seen[tp.Label] {
			errs = append(errs, fmt.Errorf("topic label %q is defined more than once", tp.Label))
		}
		seen[tp.Label] = true
		errs = append(errs, checkTerms(fmt.Sprintf("topic %q", tp.Label), tp.Terms)...)
	}

	for _, l := range t.Labels() {
		if _, ok := t.Weights[l]; !ok {
			errs = append(errs, fmt.Errorf("label %q has no weight", l))
		}
	}

	return errors.Join(errs...)
}

func checkTerms(owner string, terms []string) []error {
	if len(terms) == 0 {
		return []error{fmt.Errorf("%s has no terms", owner)}
	}
	var errs []error
	for i, term := range terms {
		if strings.TrimSpace(term) == "" {
			errs = append(errs, fmt.Errorf("%s term %d is blank", owner, i+1))
		}
	}
	return errs
}
