package avl

import (
	"fmt"
)

// Verify checks structural consistency of the tree: element order, AVL
// balance, node heights and sizes, parent links and the cached most left
// node. Returns nil if everything holds.
func (s *Set[T]) Verify() error {
	if s.root != none && s.nodes[s.root].parent != none {
		return fmt.Errorf("%w: root has a parent", ErrorParentLink)
	}
	if err := s.verify(s.root, none); err != nil {
		return err
	}
	if want := s.mostLeftOf(s.root); s.mostLeft != want {
		return fmt.Errorf("%w: cached %d, actual %d", ErrorMostLeft, s.mostLeft, want)
	}
	// In-order walk must be strictly increasing
	prev := none
	for v := s.mostLeft; v != none; v = s.next(v) {
		if prev != none && !s.less(s.nodes[prev].value, s.nodes[v].value) {
			return fmt.Errorf("%w: %v is followed by %v", ErrorOrderViolated, s.nodes[prev].value, s.nodes[v].value)
		}
		prev = v
	}
	return nil
}

// internal: recursive checker, depth is bounded by the tree height
func (s *Set[T]) verify(v, up nodeIndex) error {
	if v == none {
		return nil
	}
	n := &s.nodes[v]
	if n.parent != up {
		return fmt.Errorf("%w: node %v has parent %d, expected %d", ErrorParentLink, n.value, n.parent, up)
	}
	if n.left != none && !s.less(s.nodes[n.left].value, n.value) {
		return fmt.Errorf("%w: left child %v of %v", ErrorOrderViolated, s.nodes[n.left].value, n.value)
	}
	if n.right != none && !s.less(n.value, s.nodes[n.right].value) {
		return fmt.Errorf("%w: right child %v of %v", ErrorOrderViolated, s.nodes[n.right].value, n.value)
	}
	if err := s.verify(n.left, v); err != nil {
		return err
	}
	if err := s.verify(n.right, v); err != nil {
		return err
	}
	left, right := &s.nodes[n.left], &s.nodes[n.right]
	if n.height != 1+max(left.height, right.height) || n.size != 1+left.size+right.size {
		return fmt.Errorf("%w: node %v has height %d and size %d", ErrorAugmentation, n.value, n.height, n.size)
	}
	if b := left.height - right.height; b > 1 || b < -1 {
		return fmt.Errorf("%w: node %v has balance %d", ErrorUnbalanced, n.value, b)
	}
	return nil
}
