package avl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	set   *Set[int]
	nodes map[int]nodeIndex
}

// newFixture allocates unlinked nodes for given values.
func newFixture(values ...int) *fixture {
	f := &fixture{
		set:   NewSet[int](func(a, b int) bool { return a < b }),
		nodes: make(map[int]nodeIndex),
	}
	for _, v := range values {
		f.nodes[v] = f.set.alloc(v)
	}
	return f
}

// link attaches children to the node, 0 means no child.
func (f *fixture) link(parent, left, right int) {
	p := f.nodes[parent]
	l, r := f.nodes[left], f.nodes[right]
	f.set.nodes[p].left = l
	f.set.nodes[p].right = r
	f.set.setParent(l, p)
	f.set.setParent(r, p)
}

// finish makes the node a root and calculates heights and sizes.
func (f *fixture) finish(root int) {
	s := f.set
	s.root = f.nodes[root]
	var calc func(v nodeIndex)
	calc = func(v nodeIndex) {
		if v == none {
			return
		}
		calc(s.nodes[v].left)
		calc(s.nodes[v].right)
		s.recalc(v)
	}
	calc(s.root)
	s.mostLeft = s.mostLeftOf(s.root)
}

// describe renders subtree shape as "value(left,right)".
func describe[T any](s *Set[T], v nodeIndex) string {
	if v == none {
		return "_"
	}
	n := &s.nodes[v]
	if n.left == none && n.right == none {
		return fmt.Sprint(n.value)
	}
	return fmt.Sprintf("%v(%s,%s)", n.value, describe(s, n.left), describe(s, n.right))
}

func TestRotateSmallRight(t *testing.T) {
	/*
		    4
		   /
		  2
		 / \
		1   3
	*/
	f := newFixture(1, 2, 3, 4)
	f.link(2, 1, 3)
	f.link(4, 2, 0)
	f.finish(4)

	/*
		  2
		 / \
		1   4
		   /
		  3
	*/
	got := f.set.rotateSmallRight(f.nodes[4])
	require.Equal(t, f.nodes[2], got)
	require.Equal(t, "2(1,4(3,_))", describe(f.set, f.set.root))
	require.Equal(t, 3, f.set.Height())
	require.Equal(t, 2, f.set.nodes[f.nodes[4]].size)
	require.NoError(t, f.set.Verify())
}

func TestRotateSmallLeft(t *testing.T) {
	/*
		1
		 \
		  3
		 / \
		2   4
	*/
	f := newFixture(1, 2, 3, 4)
	f.link(3, 2, 4)
	f.link(1, 0, 3)
	f.finish(1)

	/*
		  3
		 / \
		1   4
		 \
		  2
	*/
	got := f.set.rotateSmallLeft(f.nodes[1])
	require.Equal(t, f.nodes[3], got)
	require.Equal(t, "3(1(_,2),4)", describe(f.set, f.set.root))
	require.Equal(t, 4, f.set.Size())
	require.NoError(t, f.set.Verify())
}

func TestRotateBigLeft(t *testing.T) {
	t.Run("three nodes", func(t *testing.T) {
		/*
			1
			 \
			  3
			 /
			2
		*/
		f := newFixture(1, 2, 3)
		f.link(3, 2, 0)
		f.link(1, 0, 3)
		f.finish(1)

		got := f.set.rotateBigLeft(f.nodes[1])
		require.Equal(t, f.nodes[2], got)
		require.Equal(t, "2(1,3)", describe(f.set, f.set.root))
		require.NoError(t, f.set.Verify())
	})

	t.Run("grandchild subtrees are split", func(t *testing.T) {
		/*
			  2
			 / \
			1   6
			   / \
			  4   7
			 / \
			3   5
		*/
		f := newFixture(1, 2, 3, 4, 5, 6, 7)
		f.link(4, 3, 5)
		f.link(6, 4, 7)
		f.link(2, 1, 6)
		f.finish(2)

		/*
			    4
			   / \
			  2   6
			 / \ / \
			1  3 5  7
		*/
		got := f.set.rotateBigLeft(f.nodes[2])
		require.Equal(t, f.nodes[4], got)
		require.Equal(t, "4(2(1,3),6(5,7))", describe(f.set, f.set.root))
		require.Equal(t, 3, f.set.Height())
		require.NoError(t, f.set.Verify())
	})
}

func TestRotateBigRight(t *testing.T) {
	/*
		  3
		 /
		1
		 \
		  2
	*/
	f := newFixture(1, 2, 3)
	f.link(1, 0, 2)
	f.link(3, 1, 0)
	f.finish(3)

	got := f.set.rotateBigRight(f.nodes[3])
	require.Equal(t, f.nodes[2], got)
	require.Equal(t, "2(1,3)", describe(f.set, f.set.root))
	require.NoError(t, f.set.Verify())
}

func TestRotateRewiresParent(t *testing.T) {
	/*
		      5
		     / \
		    1   7
		     \ / \
		     2 6  8
		      \
		       3
	*/
	f := newFixture(1, 2, 3, 5, 6, 7, 8)
	f.link(2, 0, 3)
	f.link(1, 0, 2)
	f.link(7, 6, 8)
	f.link(5, 1, 7)
	f.finish(5)

	got := f.set.rotateSmallLeft(f.nodes[1])
	require.Equal(t, f.nodes[2], got)
	require.Equal(t, f.nodes[5], f.set.root)
	require.Equal(t, "5(2(1,3),7(6,8))", describe(f.set, f.set.root))
	require.Equal(t, 3, f.set.Height())
	require.Equal(t, 7, f.set.Size())
	require.NoError(t, f.set.Verify())
}

func TestRebalanceChoosesRotation(t *testing.T) {
	t.Run("right child balanced uses small rotation", func(t *testing.T) {
		/*
			1
			 \
			  3
			 / \
			2   4
		*/
		f := newFixture(1, 2, 3, 4)
		f.link(3, 2, 4)
		f.link(1, 0, 3)
		f.finish(1)
		require.Equal(t, -2, f.set.balance(f.set.root))
		f.set.rebalance(f.set.root)
		require.Equal(t, "3(1(_,2),4)", describe(f.set, f.set.root))
	})

	t.Run("right child left heavy uses big rotation", func(t *testing.T) {
		f := newFixture(1, 2, 3)
		f.link(3, 2, 0)
		f.link(1, 0, 3)
		f.finish(1)
		f.set.rebalance(f.set.root)
		require.Equal(t, "2(1,3)", describe(f.set, f.set.root))
	})

	t.Run("left child right heavy uses big rotation", func(t *testing.T) {
		f := newFixture(1, 2, 3)
		f.link(1, 0, 2)
		f.link(3, 1, 0)
		f.finish(3)
		f.set.rebalance(f.set.root)
		require.Equal(t, "2(1,3)", describe(f.set, f.set.root))
	})

	t.Run("left child left heavy uses small rotation", func(t *testing.T) {
		f := newFixture(1, 2, 3)
		f.link(2, 1, 0)
		f.link(3, 2, 0)
		f.finish(3)
		f.set.rebalance(f.set.root)
		require.Equal(t, "2(1,3)", describe(f.set, f.set.root))
	})
}

func TestInsertAscendingShape(t *testing.T) {
	s := NewOrderedSet[int]()
	for _, v := range []int{10, 20, 30, 40, 50, 60, 70} {
		s.Insert(v)
	}
	require.Equal(t, "40(20(10,30),60(50,70))", describe(s, s.root))
	require.NoError(t, s.Verify())
}

func TestEraseReusesSlots(t *testing.T) {
	s := NewOrderedSet[int]()
	for i := 1; i <= 7; i++ {
		s.Insert(i)
	}
	slots := len(s.nodes)
	s.Erase(4)
	s.Erase(1)
	s.Insert(4)
	s.Insert(1)
	require.Equal(t, slots, len(s.nodes))
	require.NoError(t, s.Verify())

	s.Clear()
	require.Equal(t, none, s.root)
	for i := 1; i <= 7; i++ {
		s.Insert(i)
	}
	require.Equal(t, slots, len(s.nodes))
	require.NoError(t, s.Verify())
}
