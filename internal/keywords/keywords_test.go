// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"empty field", "", []string{}},
		{"whitespace only", "  ,  , ", []string{}},
		{"comma space", "fire, evacuation", []string{"evacuation", "fire"}},
		{"bare comma", "fire,flood", []string{"fire", "flood"}},
		{"duplicates collapse", "fire, fire,fire ", []string{"fire"}},
		{"case preserved", "Fire, fire", []string{"Fire", "fire"}},
		{"multi word labels", "human factors, fire dynamics", []string{"fire dynamics", "human factors"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.field)
			assert.Equal(t, tt.want, got.Labels())
			assert.Equal(t, len(tt.want), got.Len())
		})
	}
}

func TestAddRemove(t *testing.T) {
	var s Set
	assert.False(t, s.Has("fire"))
	assert.False(t, s.Remove("fire"), "remove from zero set")

	assert.True(t, s.Add("fire"))
	assert.False(t, s.Add(" fire "), "re-adding a trimmed duplicate")
	assert.False(t, s.Add("   "), "blank labels are ignored")
	assert.True(t, s.Has("fire"))

	assert.True(t, s.Add("evacuation"))
	assert.Equal(t, "evacuation, fire", s.String())

	assert.True(t, s.Remove("fire"))
	assert.False(t, s.Has("fire"))
	assert.Equal(t, "evacuation", s.String())
}

func TestStringIsOrderIndependent(t *testing.T) {
	a := Parse("traffic, fire, vr, evacuation")
	b := Parse("evacuation,vr,fire,traffic")
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "evacuation, fire, traffic, vr", a.String())
}

func TestEmptySetString(t *testing.T) {
	var s Set
	assert.Equal(t, "", s.String())
	assert.Empty(t, s.Labels())
}
