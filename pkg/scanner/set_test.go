package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet("b", "a")
	s.Add("c")
	s.Add("a")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("z"))
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(s))
}

func TestDifferenceAndIntersection(t *testing.T) {
	a := []string{"http", "provider", "http", "intl"}
	b := NewSet("intl", "dio")

	assert.Equal(t, []string{"http", "provider"}, Difference(a, b))
	assert.Equal(t, []string{"intl"}, Intersection(a, b))
	assert.Equal(t, []string{"http", "provider", "intl"}, Unique(a))
	assert.Empty(t, Difference([]string{}, b))
}
