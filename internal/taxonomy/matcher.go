// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher tests text against the compiled term lists of a taxonomy.
// Terms match case-insensitively and only as whole words; a multi-word
// term is bounded at its outer edges. Word characters are Unicode letters,
// digits, and '_', so "fireé" does not contain the word "fire".
type Matcher struct {
	tax    *Taxonomy
	status *regexp.Regexp
	topics []compiledTopic
}

type compiledTopic struct {
	label string
	re    *regexp.Regexp
}

// Compile validates t and builds one word-boundary pattern per term list.
func (t *Taxonomy) Compile() (*Matcher, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	status, err := termPattern(t.Status.Terms)
	if err != nil {
		return nil, fmt.Errorf("compiling status terms: %w", err)
	}
	m := &Matcher{tax: t, status: status}
	for _, tp := range t.Topics {
		re, err := termPattern(tp.Terms)
		if err != nil {
			return nil, fmt.Errorf("compiling topic %q: %w", tp.Label, err)
		}
		m.topics = append(m.topics, compiledTopic{label: tp.Label, re: re})
	}
	return m, nil
}

// wordEdge is a non-word character. RE2's \b only treats ASCII as word
// characters, so edges are spelled out.
const wordEdge = `[^\p{L}\p{N}_]`

// termPattern joins terms into (?i)(?:^|edge)(?:t1|t2|...)(?:$|edge).
func termPattern(terms []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	return regexp.Compile(`(?i)(?:^|` + wordEdge + `)(?:` + strings.Join(quoted, "|") + `)(?:$|` + wordEdge + `)`)
}

// Taxonomy returns the table the matcher was compiled from.
func (m *Matcher) Taxonomy() *Taxonomy {
	return m.tax
}

// Status returns the exclusive label pair.
func (m *Matcher) Status() Status {
	return m.tax.Status
}

// MatchStatus reports whether text contains any status term.
func (m *Matcher) MatchStatus(text string) bool {
	return m.status.MatchString(text)
}

// MatchTopics returns, in taxonomy order, the labels of every topic with a
// term in text.
func (m *Matcher) MatchTopics(text string) []string {
	var labels []string
	for _, tp := range m.topics {
		if tp.re.MatchString(text) {
			labels = append(labels, tp.label)
		}
	}
	return labels
}
