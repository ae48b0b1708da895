// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := mustDefault(t).Compile()
	require.NoError(t, err)
	return m
}

func TestMatchTopicsWordBoundaries(t *testing.T) {
	m := mustMatcher(t)

	tests := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{"plural term", "interviews with firefighters", []string{"firefighter"}, []string{"fire"}},
		{"joined word", "a carfire on the highway", nil, []string{"fire", "traffic"}},
		{"separate words", "a car fire on the highway", []string{"fire", "traffic"}, nil},
		{"case insensitive", "WILDFIRE RESPONSE", []string{"fire"}, nil},
		{"uppercase term", "symptoms of ptsd", []string{"psychological effects"}, nil},
		{"phrase edges", "a neural network model", []string{"modeling"}, nil},
		{"phrase prefix only", "neural networking events", nil, []string{"modeling"}},
		{"hyphen is a boundary", "multi-agent crowd", []string{"modeling"}, nil},
		{"no partial match", "firearms and architecture", nil, []string{"fire", "vr"}},
		{"two-letter term", "an ar headset", []string{"vr"}, nil},
		{"fire and fire dynamics", "fire spread in tunnels", []string{"fire", "fire dynamics"}, nil},
		{"accented letter joins word", "fireé safety", nil, []string{"fire"}},
		{"accented letter before term", "éfire safety", nil, []string{"fire"}},
		{"accented neighbour word", "café fire drill", []string{"fire"}, nil},
		{"unicode punctuation", "«fire»", []string{"fire"}, nil},
		{"underscore joins word", "fire_exit", nil, []string{"fire"}},
		{"term at end of text", "after the fire", []string{"fire"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MatchTopics(tt.text)
			for _, l := range tt.want {
				assert.Contains(t, got, l)
			}
			for _, l := range tt.notWant {
				assert.NotContains(t, got, l)
			}
		})
	}
}

func TestMatchTopicsOrder(t *testing.T) {
	m := mustMatcher(t)
	got := m.MatchTopics("neural network model for building fire evacuation during earthquake")
	assert.Equal(t, []string{"earthquake", "fire", "indoor", "modeling"}, got)
}

func TestMatchStatus(t *testing.T) {
	m := mustMatcher(t)

	tests := []struct {
		text string
		want bool
	}{
		{"mass evacuation of coastal towns", true},
		{"residents evacuated", false},
		{"evacuees returned", true},
		{"pre-evacuation delay", true},
		{"an evacuationist", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.MatchStatus(tt.text), tt.text)
	}
	assert.Equal(t, "evacuation", m.Status().Label)
	assert.Len(t, m.Taxonomy().Topics, 35)
}

func TestCompileRejectsInvalidTaxonomy(t *testing.T) {
	tax := &Taxonomy{
		Status:  Status{Label: "a", Complement: "b", Terms: []string{"x"}},
		Topics:  []Topic{{Label: "c", Terms: []string{"y"}}},
		Weights: map[string]int{"a": 1, "b": -1},
	}
	_, err := tax.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `label "c" has no weight`)
}

func TestTermsAreQuoted(t *testing.T) {
	tax := &Taxonomy{
		Status:  Status{Label: "a", Complement: "b", Terms: []string{"x"}},
		Topics:  []Topic{{Label: "c", Terms: []string{"c++"}}},
		Weights: map[string]int{"a": 0, "b": 0, "c": 0},
	}
	m, err := tax.Compile()
	require.NoError(t, err)
	assert.Empty(t, m.MatchTopics("ccc"))
	assert.Empty(t, m.MatchTopics("c"))
}
