// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Well-known BibTeX field names read by the tagger and scorer.
const (
	FieldTitle    = "title"
	FieldAbstract = "abstract"
	FieldKeywords = "keywords"
)

// Field is one named value of a bibliographic entry.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`

	// Bare marks a value written without delimiters: a number, a @string
	// macro, or a '#' concatenation kept verbatim.
	Bare bool `json:"bare,omitempty" yaml:"bare,omitempty"`
}

// Record holds one entry loaded from a bibliography file. Fields keep the
// order in which they appeared in the file so a round trip does not
// reshuffle them. Non-entry blocks (@comment, @preamble, @string) are
// carried as records with Raw set and no fields. Free text between blocks
// is carried as a record with an empty Type and the text in Raw.
type Record struct {
	// Type is the entry type without the leading '@' (e.g. "article").
	Type string `json:"type" yaml:"type"`

	// Key is the citation key.
	Key string `json:"key" yaml:"key"`

	// Fields lists the entry fields in file order.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Raw holds the verbatim body of a non-entry block or free text.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`

	// Score is set by the scorer. It is never written back to the file.
	Score int `json:"score" yaml:"score"`
}

// IsEntry reports whether r is a regular entry rather than a
// @comment, @preamble, or @string block or free text.
func (r *Record) IsEntry() bool {
	switch strings.ToLower(r.Type) {
	case "", "comment", "preamble", "string":
		return false
	}
	return true
}

// Get returns the value of the named field, or "" if the record has no
// such field. Names compare case-insensitively.
func (r *Record) Get(name string) string {
	for _, f := range r.Fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Has reports whether the record carries the named field.
func (r *Record) Has(name string) bool {
	for _, f := range r.Fields {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// Set replaces the value of the named field in place, or appends the field
// when the record does not have it yet.
func (r *Record) Set(name, value string) {
	for i, f := range r.Fields {
		if strings.EqualFold(f.Name, name) {
			r.Fields[i].Value = value
			r.Fields[i].Bare = false
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// IsText reports whether r is free text found between blocks.
func (r *Record) IsText() bool {
	return r.Type == ""
}
