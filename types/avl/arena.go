package avl

// Nodes are kept in a slice owned by the set and linked by indices. Released
// slots are chained through their parent field and reused by later inserts.

// alloc takes a free slot (or appends a new one) and initializes it as a leaf.
// Pointers into s.nodes obtained before alloc must not be used after it.
func (s *Set[T]) alloc(value T) nodeIndex {
	if s.nodes == nil {
		s.nodes = make([]node[T], 1, defaultReservedNodeSlots)
	}
	v := s.free
	if v != none {
		s.free = s.nodes[v].parent
	} else {
		s.nodes = append(s.nodes, node[T]{})
		v = nodeIndex(len(s.nodes) - 1)
	}
	n := &s.nodes[v]
	n.value = value
	n.left, n.right, n.parent = none, none, none
	n.height, n.size = 1, 1
	return v
}

// release returns the slot to the free list. The generation is bumped so
// iterators still holding the slot can tell it was released.
func (s *Set[T]) release(v nodeIndex) {
	n := &s.nodes[v]
	// Clean up the value to avoid holding references from the free slot
	var zero T
	n.value = zero
	n.left, n.right = none, none
	n.height, n.size = 0, 0
	n.gen++
	n.parent = s.free
	s.free = v
}

// Grow reserves arena capacity for at least n more elements.
func (s *Set[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	if s.nodes == nil {
		s.nodes = make([]node[T], 1, max(n+1, defaultReservedNodeSlots))
		return
	}
	if cap(s.nodes)-len(s.nodes) >= n {
		return
	}
	grown := make([]node[T], len(s.nodes), len(s.nodes)+n)
	copy(grown, s.nodes)
	s.nodes = grown
}
