package collections_test

import (
	"testing"

	"bennypowers.dev/checkbridge/internal/collections"
	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Equal(t, 0, len(s))
	})

	t.Run("set with initial values", func(t *testing.T) {
		s := collections.NewSet("a", "b", "c")
		assert.Equal(t, 3, len(s))
		assert.True(t, s.Has("a"))
		assert.True(t, s.Has("b"))
		assert.True(t, s.Has("c"))
	})

	t.Run("set with duplicate initial values", func(t *testing.T) {
		s := collections.NewSet("a", "b", "a", "c", "b")
		assert.Equal(t, 3, len(s), "duplicates should be deduplicated")
	})
}

func TestSetAddRemove(t *testing.T) {
	t.Run("add multiple values", func(t *testing.T) {
		s := collections.NewSet[string]()
		s.Add("a", "b", "c")
		assert.Equal(t, 3, len(s))
		assert.True(t, s.Has("b"))
	})

	t.Run("add duplicate values", func(t *testing.T) {
		s := collections.NewSet("a")
		s.Add("a")
		assert.Equal(t, 1, len(s), "adding duplicate should not increase size")
	})

	t.Run("remove existing value", func(t *testing.T) {
		s := collections.NewSet("a", "b")
		s.Remove("a")
		assert.False(t, s.Has("a"))
		assert.True(t, s.Has("b"))
	})

	t.Run("remove missing value is a no-op", func(t *testing.T) {
		s := collections.NewSet("a")
		s.Remove("z")
		assert.Equal(t, 1, len(s))
	})
}

func TestSetHas(t *testing.T) {
	s := collections.NewSet("error", "warning", "info")

	t.Run("has existing value", func(t *testing.T) {
		assert.True(t, s.Has("error"))
		assert.True(t, s.Has("info"))
	})

	t.Run("does not have non-existing value", func(t *testing.T) {
		assert.False(t, s.Has("hint"))
		assert.False(t, s.Has(""))
	})
}

func TestSetMembers(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		members := s.Members()
		assert.NotNil(t, members)
		assert.Equal(t, 0, len(members))
	})

	t.Run("non-empty set", func(t *testing.T) {
		s := collections.NewSet("a", "b", "c")
		members := s.Members()
		assert.Equal(t, 3, len(members))
		// Check all expected members are present (order is not guaranteed)
		assert.Contains(t, members, "a")
		assert.Contains(t, members, "b")
		assert.Contains(t, members, "c")
	})
}

func TestSetString(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.Equal(t, "[]", s.String())
	})

	t.Run("single value", func(t *testing.T) {
		s := collections.NewSet("a")
		assert.Equal(t, "[a]", s.String())
	})
}

func TestSetWithDifferentTypes(t *testing.T) {
	t.Run("int set", func(t *testing.T) {
		s := collections.NewSet(1, 2, 3)
		assert.True(t, s.Has(2))
		assert.False(t, s.Has(4))
	})
}
