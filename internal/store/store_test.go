package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSetGet(t *testing.T) {
	t.Parallel()

	s := NewOrdered[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
	assert.True(t, s.Has("b"))
	assert.Equal(t, 2, s.Len())
}

func TestOrderedKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewOrdered[string, int]()
	s.Set("c", 3)
	s.Set("a", 1)
	s.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, s.Keys())
	assert.Equal(t, []int{3, 1, 2}, s.Values())
}

func TestOrderedOverwriteKeepsPosition(t *testing.T) {
	t.Parallel()

	s := NewOrdered[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, s.Keys())
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, got)
	assert.Equal(t, 2, s.Len())
}

func TestOrderedClone(t *testing.T) {
	t.Parallel()

	s := NewOrdered[string, int]()
	s.Set("a", 1)

	clone := s.Clone()
	clone.Set("b", 2)
	clone.Set("a", 10)

	assert.Equal(t, []string{"a"}, s.Keys())
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, 2, clone.Len())
}
