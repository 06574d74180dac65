package avl

import (
	"gopkg.in/typ.v4"
)

// Set is an ordered set of unique elements, implemented as an AVL tree
// (Adelson-Velsky and Landis tree) with subtree sizes kept in every node.
// Search, insertion and deletion take O(log n), Size and Begin take O(1).
//
// Two elements a and b are equal when neither less(a, b) nor less(b, a).
// Elements must not be changed in a way affecting the order while they are
// stored in the set.
//
// NOTE: Not thread-safe.
type Set[T any] struct {
	less     func(a, b T) bool
	handler  Handler
	nodes    []node[T] // arena, nodes[none] is the sentinel
	free     nodeIndex // head of released slots list
	root     nodeIndex
	mostLeft nodeIndex // node with minimal element, none if empty
}

////////////////////////////////////////////////////////////////

// NewOrderedSet creates a new set of any ordered type (ints, uints, floats, strings).
func NewOrderedSet[T typ.Ordered]() *Set[T] {
	return NewSet[T](func(a, b T) bool { return typ.Compare(a, b) < 0 })
}

// NewSet creates a new empty set using a strict "less than" function.
func NewSet[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{
		less: less,
	}
}

// NewSetOf creates a new set and inserts given values in order.
func NewSetOf[T any](less func(a, b T) bool, values ...T) *Set[T] {
	s := NewSet[T](less)
	s.Grow(len(values))
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// NewSetFromRange creates a new set holding values from first up to (not including) last.
func NewSetFromRange[T any](less func(a, b T) bool, first, last Iterator[T]) *Set[T] {
	s := NewSet[T](less)
	for it := first; !it.Equal(last); it.Next() {
		s.Insert(it.Value())
	}
	return s
}

// SetHandler sets handler receiving structural events. Nil disables events.
func (s *Set[T]) SetHandler(handler Handler) {
	s.handler = handler
}

// Clone returns an independent copy of the set built by inserting its values.
// Handler is not copied.
func (s *Set[T]) Clone() *Set[T] {
	c := NewSet[T](s.less)
	c.Grow(s.Size())
	for it := s.Begin(); !it.IsEnd(); it.Next() {
		c.Insert(it.Value())
	}
	return c
}

// CopyFrom replaces contents of the set with values of other.
// Iterators of the set are invalidated. Copying the set from itself is a no-op.
func (s *Set[T]) CopyFrom(other *Set[T]) {
	if s == other {
		return
	}
	values := other.Values()
	s.Clear()
	s.less = other.less
	for _, v := range values {
		s.Insert(v)
	}
}

// Clear removes all elements. Every node is released exactly once walking the
// tree iteratively, so degenerate inputs cannot exhaust the stack.
func (s *Set[T]) Clear() {
	v := s.root
	for v != none {
		n := &s.nodes[v]
		switch {
		case n.left != none:
			v = n.left
		case n.right != none:
			v = n.right
		default:
			p := n.parent
			if p != none {
				if s.nodes[p].left == v {
					s.nodes[p].left = none
				} else {
					s.nodes[p].right = none
				}
			}
			s.release(v)
			v = p
		}
	}
	s.root = none
	s.mostLeft = none
}

////////////////////////////////////////////////////////////////

// Size returns the amount of elements in the set.
func (s *Set[T]) Size() int {
	if s.root == none {
		return 0
	}
	return s.nodes[s.root].size
}

// Empty checks if the set has no elements.
func (s *Set[T]) Empty() bool {
	return s.root == none
}

// Height returns height of the tree, 0 for the empty set.
func (s *Set[T]) Height() int {
	if s.root == none {
		return 0
	}
	return s.nodes[s.root].height
}

// Contains checks if an element equal to value is in the set.
func (s *Set[T]) Contains(value T) bool {
	match, _ := s.locate(value)
	return match != none
}

// Find returns iterator to the element equal to value or End.
func (s *Set[T]) Find(value T) Iterator[T] {
	match, _ := s.locate(value)
	return s.iterator(match)
}

// LowerBound returns iterator to the first element not less than value or End.
func (s *Set[T]) LowerBound(value T) Iterator[T] {
	match, parent := s.locate(value)
	if match != none {
		return s.iterator(match)
	}
	if parent == none {
		return s.End()
	}
	if s.less(value, s.nodes[parent].value) {
		return s.iterator(parent)
	}
	return s.iterator(s.next(parent))
}

// At returns iterator to the k-th smallest element (counting from 0) or End
// if k is out of range.
func (s *Set[T]) At(k int) Iterator[T] {
	if k < 0 || k >= s.Size() {
		return s.End()
	}
	v := s.root
	for v != none {
		n := &s.nodes[v]
		leftSize := s.nodes[n.left].size
		switch {
		case k < leftSize:
			v = n.left
		case k > leftSize:
			k -= leftSize + 1
			v = n.right
		default:
			return s.iterator(v)
		}
	}
	return s.End()
}

// Rank returns the amount of elements strictly less than value.
func (s *Set[T]) Rank(value T) int {
	rank := 0
	v := s.root
	for v != none {
		n := &s.nodes[v]
		switch {
		case s.less(value, n.value):
			v = n.left
		case s.less(n.value, value):
			rank += s.nodes[n.left].size + 1
			v = n.right
		default:
			return rank + s.nodes[n.left].size
		}
	}
	return rank
}

// Ascend calls f for every element in ascending order until f returns false.
func (s *Set[T]) Ascend(f func(value T) bool) {
	for v := s.mostLeft; v != none; v = s.next(v) {
		if !f(s.nodes[v].value) {
			return
		}
	}
}

// Values returns all elements in ascending order.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.Size())
	s.Ascend(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

////////////////////////////////////////////////////////////////

// Insert adds value to the set. Nothing happens if an equal element is
// already stored. Returns true if the value was added.
func (s *Set[T]) Insert(value T) bool {
	if s.root == none {
		v := s.alloc(value)
		s.root = v
		s.mostLeft = v
		s.notifyInsert()
		return true
	}
	match, p := s.locate(value)
	if match != none {
		return false
	}
	v := s.alloc(value)
	s.nodes[v].parent = p
	if s.less(value, s.nodes[p].value) {
		s.nodes[p].left = v
	} else {
		s.nodes[p].right = v
	}
	if s.less(value, s.nodes[s.mostLeft].value) {
		s.mostLeft = v
	}
	s.recalc(p)

	// Height of some subtree of p has grown by one. Balance 0 means the
	// shorter side caught up and the height of p did not change, +-1 means
	// it was 0 before and p has grown too, +-2 needs a rotation.
	for p != none {
		switch s.balance(p) {
		case 0:
			s.fixSizes(p)
			s.notifyInsert()
			return true
		case 1, -1:
			s.recalc(p)
			p = s.nodes[p].parent
		default:
			p = s.rebalance(p)
		}
	}
	s.notifyInsert()
	return true
}

// Erase removes element equal to value from the set. Nothing happens if
// there is no such element. Returns true if an element was removed.
//
// An element with children is not unlinked itself: its value is swapped
// with the adjacent one down to a leaf and the leaf is removed. Iterators
// pointing to that node stay valid and observe the adjacent value.
func (s *Set[T]) Erase(value T) bool {
	v, _ := s.locate(value)
	if v == none {
		return false
	}
	s.erase(v)
	s.notifyErase()
	return true
}

func (s *Set[T]) erase(v nodeIndex) {
	// Move the value down until it sits in a leaf. Taking the neighbour from
	// the taller side keeps the replacement at most one level above a leaf.
	for !s.leaf(v) {
		var u nodeIndex
		if s.balance(v) >= 0 {
			u = s.prev(v)
		} else {
			u = s.next(v)
		}
		s.nodes[u].value, s.nodes[v].value = s.nodes[v].value, s.nodes[u].value
		v = u
	}

	if v == s.mostLeft {
		s.mostLeft = s.next(v)
	}
	p := s.nodes[v].parent
	if p == none {
		s.release(v)
		s.root = none
		s.mostLeft = none
		return
	}
	if s.nodes[p].left == v {
		s.nodes[p].left = none
	} else {
		s.nodes[p].right = none
	}
	s.release(v)
	s.recalc(p)

	// Height of some subtree of p has shrunk by one. Balance +-1 means it
	// was 0 before and the height of p did not change, 0 means p has shrunk
	// too, +-2 needs a rotation.
	for p != none {
		switch s.balance(p) {
		case 1, -1:
			s.fixSizes(p)
			return
		case 0:
			s.recalc(p)
			p = s.nodes[p].parent
		default:
			p = s.rebalance(p)
		}
	}
}

// fixSizes recalculates nodes from v up to the root. Heights there are
// already correct, sizes are not.
func (s *Set[T]) fixSizes(v nodeIndex) {
	for v != none {
		s.recalc(v)
		v = s.nodes[v].parent
	}
}

func (s *Set[T]) notifyInsert() {
	if s.handler != nil {
		s.handler.OnInsert(s.Size())
	}
}

func (s *Set[T]) notifyErase() {
	if s.handler != nil {
		s.handler.OnErase(s.Size())
	}
}
