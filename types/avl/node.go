package avl

// nodeIndex addresses a node slot inside the set arena.
type nodeIndex int32

// none is the reserved sentinel slot. It is never written, so its height and
// size stay zero and absent children can be read like any other node.
const none nodeIndex = 0

type node[T any] struct {
	value  T
	left   nodeIndex
	right  nodeIndex
	parent nodeIndex // free list link while the slot is released
	height int
	size   int
	gen    uint32
}

func (s *Set[T]) leaf(v nodeIndex) bool {
	n := &s.nodes[v]
	return n.left == none && n.right == none
}

// balance returns height(left) - height(right) of the node.
func (s *Set[T]) balance(v nodeIndex) int {
	n := &s.nodes[v]
	return s.nodes[n.left].height - s.nodes[n.right].height
}

// recalc restores height and size of the node from its children.
func (s *Set[T]) recalc(v nodeIndex) {
	if v == none {
		return
	}
	n := &s.nodes[v]
	left, right := &s.nodes[n.left], &s.nodes[n.right]
	n.height = 1 + max(left.height, right.height)
	n.size = 1 + left.size + right.size
}

func (s *Set[T]) mostLeftOf(v nodeIndex) nodeIndex {
	if v == none {
		return none
	}
	for s.nodes[v].left != none {
		v = s.nodes[v].left
	}
	return v
}

func (s *Set[T]) mostRightOf(v nodeIndex) nodeIndex {
	if v == none {
		return none
	}
	for s.nodes[v].right != none {
		v = s.nodes[v].right
	}
	return v
}

// next returns in-order successor of the node or none.
func (s *Set[T]) next(v nodeIndex) nodeIndex {
	if v == none {
		return none
	}
	if s.nodes[v].right != none {
		return s.mostLeftOf(s.nodes[v].right)
	}
	for {
		p := s.nodes[v].parent
		if p == none || s.nodes[p].right != v {
			return p
		}
		v = p
	}
}

// prev returns in-order predecessor of the node or none.
func (s *Set[T]) prev(v nodeIndex) nodeIndex {
	if v == none {
		return none
	}
	if s.nodes[v].left != none {
		return s.mostRightOf(s.nodes[v].left)
	}
	for {
		p := s.nodes[v].parent
		if p == none || s.nodes[p].left != v {
			return p
		}
		v = p
	}
}

// locate walks down from the root. It returns the node holding the value (or
// none) and the last node visited before it, which is the parent a new node
// holding the value would be attached to.
func (s *Set[T]) locate(value T) (match, parent nodeIndex) {
	current := s.root
	for current != none {
		n := &s.nodes[current]
		switch {
		case s.less(value, n.value):
			parent, current = current, n.left
		case s.less(n.value, value):
			parent, current = current, n.right
		default:
			return current, parent
		}
	}
	return none, parent
}
