package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/dtx/internal/collections"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("set with initial values", func(t *testing.T) {
		s := collections.NewSet("a", "b", "c")
		assert.Equal(t, 3, s.Len())
		assert.True(t, s.Has("a"))
		assert.True(t, s.Has("b"))
		assert.True(t, s.Has("c"))
	})

	t.Run("duplicates are deduplicated", func(t *testing.T) {
		s := collections.NewSet("a", "b", "a", "c", "b")
		assert.Equal(t, 3, s.Len())
	})
}

func TestSetAdd(t *testing.T) {
	t.Run("add multiple values", func(t *testing.T) {
		s := collections.NewSet[string]()
		s.Add("a", "b", "c")
		assert.Equal(t, 3, s.Len())
		assert.True(t, s.Has("b"))
	})

	t.Run("adding a duplicate does not grow the set", func(t *testing.T) {
		s := collections.NewSet("a")
		s.Add("a")
		assert.Equal(t, 1, s.Len())
	})
}

func TestSetHas(t *testing.T) {
	s := collections.NewSet("red", "green", "blue")

	assert.True(t, s.Has("red"))
	assert.True(t, s.Has("blue"))
	assert.False(t, s.Has("yellow"))
	assert.False(t, s.Has(""))
}

func TestSetMembers(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[int]()
		assert.Empty(t, s.Members())
	})

	t.Run("non-empty set", func(t *testing.T) {
		s := collections.NewSet("a", "b", "c")
		members := s.Members()
		assert.Len(t, members, 3)
		// Membership only; map iteration order is not guaranteed.
		assert.Contains(t, members, "a")
		assert.Contains(t, members, "b")
		assert.Contains(t, members, "c")
	})
}

func TestSortedStrings(t *testing.T) {
	s := collections.NewSet("spacing", "color", "opacity")
	assert.Equal(t, []string{"color", "opacity", "spacing"}, collections.SortedStrings(s))
}

func TestSetWithDifferentTypes(t *testing.T) {
	t.Run("int set", func(t *testing.T) {
		s := collections.NewSet(1, 2, 3)
		assert.True(t, s.Has(2))
		assert.False(t, s.Has(4))
	})

	t.Run("float64 set", func(t *testing.T) {
		s := collections.NewSet(1.5, 2.5)
		assert.True(t, s.Has(1.5))
		assert.False(t, s.Has(4.5))
	})
}
