package keyed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	key   string
	value int
}

func entryKey(e entry) string { return e.key }

func TestUnionBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		primary   []entry
		secondary []entry
		expected  []entry
	}{
		{
			name:      "disjoint keys",
			primary:   []entry{{"a", 1}, {"b", 2}},
			secondary: []entry{{"c", 3}},
			expected:  []entry{{"a", 1}, {"b", 2}, {"c", 3}},
		},
		{
			name:      "primary wins on collision",
			primary:   []entry{{"a", 1}},
			secondary: []entry{{"a", 99}, {"b", 2}},
			expected:  []entry{{"a", 1}, {"b", 2}},
		},
		{
			name:      "order preserved on both sides",
			primary:   []entry{{"b", 2}, {"a", 1}},
			secondary: []entry{{"d", 4}, {"a", 99}, {"c", 3}},
			expected:  []entry{{"b", 2}, {"a", 1}, {"d", 4}, {"c", 3}},
		},
		{
			name:      "empty primary",
			primary:   nil,
			secondary: []entry{{"a", 1}},
			expected:  []entry{{"a", 1}},
		},
		{
			name:      "empty secondary",
			primary:   []entry{{"a", 1}},
			secondary: nil,
			expected:  []entry{{"a", 1}},
		},
		{
			name:      "both empty",
			primary:   nil,
			secondary: nil,
			expected:  []entry{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := UnionBy(entryKey, tt.primary, tt.secondary)
			assert.EqualValues(t, tt.expected, got)
		})
	}
}

func TestDiffBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []entry
		exclude    []string
		expected   []entry
	}{
		{
			name:       "nothing excluded",
			candidates: []entry{{"a", 1}, {"b", 2}},
			exclude:    nil,
			expected:   []entry{{"a", 1}, {"b", 2}},
		},
		{
			name:       "some excluded, order preserved",
			candidates: []entry{{"c", 3}, {"a", 1}, {"b", 2}},
			exclude:    []string{"a"},
			expected:   []entry{{"c", 3}, {"b", 2}},
		},
		{
			name:       "all excluded",
			candidates: []entry{{"a", 1}},
			exclude:    []string{"a", "b"},
			expected:   nil,
		},
		{
			name:       "exclusion of absent keys is a no-op",
			candidates: []entry{{"a", 1}},
			exclude:    []string{"z"},
			expected:   []entry{{"a", 1}},
		},
		{
			name:       "empty candidates",
			candidates: nil,
			exclude:    []string{"a"},
			expected:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DiffBy(entryKey, tt.candidates, tt.exclude)
			assert.EqualValues(t, tt.expected, got)
		})
	}
}
