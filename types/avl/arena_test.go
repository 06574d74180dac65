package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	t.Run("grow reserves slots", func(t *testing.T) {
		s := NewOrderedSet[int]()
		s.Grow(0)
		require.Nil(t, s.nodes)

		s.Grow(1000)
		require.Len(t, s.nodes, 1)
		require.GreaterOrEqual(t, cap(s.nodes), 1001)

		for i := 0; i < 1000; i++ {
			s.Insert(i)
		}
		require.Len(t, s.nodes, 1001)
		s.Grow(10)
		require.GreaterOrEqual(t, cap(s.nodes)-len(s.nodes), 10)
		require.NoError(t, s.Verify())
	})

	t.Run("released slots are reused", func(t *testing.T) {
		s := NewOrderedSet[int]()
		for i := 0; i < 10; i++ {
			s.Insert(i)
		}
		s.Clear()
		require.Len(t, s.nodes, 11)
		for i := 0; i < 10; i++ {
			s.Insert(i)
		}
		require.Len(t, s.nodes, 11)
		require.Equal(t, none, s.free)
		require.NoError(t, s.Verify())
	})

	t.Run("released slot is cleaned up", func(t *testing.T) {
		s := NewOrderedSet[string]()
		s.Insert("a")
		v := s.root
		gen := s.nodes[v].gen
		s.Erase("a")
		n := s.nodes[v]
		require.Equal(t, "", n.value)
		require.Zero(t, n.height)
		require.Zero(t, n.size)
		require.Equal(t, gen+1, n.gen)
		require.Equal(t, v, s.free)
	})

	t.Run("sentinel stays zero", func(t *testing.T) {
		s := NewOrderedSet[int]()
		for i := 0; i < 100; i++ {
			s.Insert(i)
		}
		for i := 0; i < 100; i += 2 {
			s.Erase(i)
		}
		sentinel := s.nodes[none]
		require.Zero(t, sentinel.height)
		require.Zero(t, sentinel.size)
		require.Equal(t, none, sentinel.parent)
	})
}
