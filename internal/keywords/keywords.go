// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords models the comma-delimited keywords field of a record as a
// set of labels with a deterministic serialised order.
package keywords

import (
	"sort"
	"strings"
)

// Separator joins labels when a set is written back to a record.
const Separator = ", "

// Set is a set of keyword labels. Labels compare as exact strings.
// The zero value is an empty set ready to use.
type Set struct {
	m map[string]struct{}
}

// Parse splits a keywords field on commas, trims whitespace from every
// token, and drops empty tokens.
func Parse(field string) Set {
	var s Set
	for _, tok := range strings.Split(field, ",") {
		s.Add(tok)
	}
	return s
}

// Add inserts label after trimming it. It reports whether the set changed.
func (s *Set) Add(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	if s.m == nil {
		s.m = make(map[string]struct{})
	}
	if _, ok := s.m[label]; ok {
		return false
	}
	s.m[label] = struct{}{}
	return true
}

// Remove deletes label. It reports whether the set changed.
func (s *Set) Remove(label string) bool {
	if _, ok := s.m[label]; !ok {
		return false
	}
	delete(s.m, label)
	return true
}

// Has reports whether label is in the set.
func (s Set) Has(label string) bool {
	_, ok := s.m[label]
	return ok
}

// Len returns the number of labels.
func (s Set) Len() int {
	return len(s.m)
}

// Labels returns the labels in ascending byte order.
func (s Set) Labels() []string {
	labels := make([]string, 0, len(s.m))
	for l := range s.m {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// String returns the sorted labels joined by Separator.
func (s Set) String() string {
	return strings.Join(s.Labels(), Separator)
}
