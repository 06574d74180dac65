package avl

// Iterator is a cursor over a live set. It moves in order by following
// parent and child links and never modifies the set.
//
// An iterator stays usable while the node it points to is in the set,
// rotations do not affect it. Once the node is released (its element is
// erased or the set is cleared) Valid returns false and Value, Next and Prev
// panic. Note that Erase of an element having children releases the node of
// the adjacent element instead, see Set.Erase.
type Iterator[T any] struct {
	set  *Set[T]
	node nodeIndex
	gen  uint32
}

func (s *Set[T]) iterator(v nodeIndex) Iterator[T] {
	if v == none {
		return s.End()
	}
	return Iterator[T]{set: s, node: v, gen: s.nodes[v].gen}
}

// Begin returns iterator to the smallest element or End if the set is empty.
func (s *Set[T]) Begin() Iterator[T] {
	return s.iterator(s.mostLeft)
}

// End returns iterator pointing past the largest element.
func (s *Set[T]) End() Iterator[T] {
	return Iterator[T]{set: s}
}

// Last returns iterator to the largest element or End if the set is empty.
func (s *Set[T]) Last() Iterator[T] {
	return s.iterator(s.mostRightOf(s.root))
}

// Root returns iterator to the element stored in the tree root or End if the set is empty.
func (s *Set[T]) Root() Iterator[T] {
	return s.iterator(s.root)
}

// IsEnd checks if the iterator points past the largest element.
func (it Iterator[T]) IsEnd() bool {
	return it.node == none
}

// Valid checks if the iterator points to an element still stored in the set.
func (it Iterator[T]) Valid() bool {
	return it.node != none && it.set.nodes[it.node].gen == it.gen
}

// Equal checks if both iterators point to the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.set == other.set && it.node == other.node
}

// Value returns the element the iterator points to.
func (it Iterator[T]) Value() T {
	if it.node == none {
		panic(ErrorIteratorEnd)
	}
	it.check()
	return it.set.nodes[it.node].value
}

// Next moves the iterator to the next larger element or to End.
// Next of End is End.
func (it *Iterator[T]) Next() {
	if it.node == none {
		return
	}
	it.check()
	it.move(it.set.next(it.node))
}

// Prev moves the iterator to the next smaller element. Prev of End moves to
// the largest element, Prev of the smallest element moves to End.
func (it *Iterator[T]) Prev() {
	if it.node == none {
		it.move(it.set.mostRightOf(it.set.root))
		return
	}
	it.check()
	it.move(it.set.prev(it.node))
}

func (it *Iterator[T]) move(v nodeIndex) {
	it.node, it.gen = v, 0
	if v != none {
		it.gen = it.set.nodes[v].gen
	}
}

func (it Iterator[T]) check() {
	if it.set.nodes[it.node].gen != it.gen {
		panic(ErrorIteratorInvalidated)
	}
}
