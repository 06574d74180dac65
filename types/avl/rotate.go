package avl

// replaceChild makes parent p point to u instead of v. Empty p means v was the root.
func (s *Set[T]) replaceChild(p, v, u nodeIndex) {
	switch {
	case p == none:
		s.root = u
	case s.nodes[p].left == v:
		s.nodes[p].left = u
	default:
		s.nodes[p].right = u
	}
}

func (s *Set[T]) setParent(v, p nodeIndex) {
	if v != none {
		s.nodes[v].parent = p
	}
}

/*
	  v              u
	 / \            / \
	a   u    =>    v   c
	   / \        / \
	  b   c      a   b
*/
func (s *Set[T]) rotateSmallLeft(v nodeIndex) nodeIndex {
	u := s.nodes[v].right
	p := s.nodes[v].parent
	s.nodes[u].parent = p
	s.replaceChild(p, v, u)
	b := s.nodes[u].left
	s.nodes[v].right = b
	s.setParent(b, v)
	s.nodes[u].left = v
	s.nodes[v].parent = u
	s.recalc(v)
	s.recalc(u)
	s.recalc(p)
	s.notifyRotation(RotationSmallLeft)
	return u
}

/*
	    v          u
	   / \        / \
	  u   c  =>  a   v
	 / \            / \
	a   b          b   c
*/
func (s *Set[T]) rotateSmallRight(v nodeIndex) nodeIndex {
	u := s.nodes[v].left
	p := s.nodes[v].parent
	s.nodes[u].parent = p
	s.replaceChild(p, v, u)
	b := s.nodes[u].right
	s.nodes[v].left = b
	s.setParent(b, v)
	s.nodes[u].right = v
	s.nodes[v].parent = u
	s.recalc(v)
	s.recalc(u)
	s.recalc(p)
	s.notifyRotation(RotationSmallRight)
	return u
}

/*
	  v                w
	 / \             /   \
	a   u           v     u
	   / \    =>   / \   / \
	  w   d       a   b c   d
	 / \
	b   c
*/
func (s *Set[T]) rotateBigLeft(v nodeIndex) nodeIndex {
	u := s.nodes[v].right
	w := s.nodes[u].left
	p := s.nodes[v].parent
	s.nodes[w].parent = p
	s.replaceChild(p, v, w)
	b, c := s.nodes[w].left, s.nodes[w].right
	s.nodes[v].right = b
	s.setParent(b, v)
	s.nodes[u].left = c
	s.setParent(c, u)
	s.nodes[u].parent = w
	s.nodes[v].parent = w
	s.nodes[w].left = v
	s.nodes[w].right = u
	s.recalc(u)
	s.recalc(v)
	s.recalc(w)
	s.recalc(p)
	s.notifyRotation(RotationBigLeft)
	return w
}

/*
	      v            w
	     / \         /   \
	    u   d       u     v
	   / \     =>  / \   / \
	  a   w       a   b c   d
	     / \
	    b   c
*/
func (s *Set[T]) rotateBigRight(v nodeIndex) nodeIndex {
	u := s.nodes[v].left
	w := s.nodes[u].right
	p := s.nodes[v].parent
	s.nodes[w].parent = p
	s.replaceChild(p, v, w)
	b, c := s.nodes[w].left, s.nodes[w].right
	s.nodes[u].right = b
	s.setParent(b, u)
	s.nodes[v].left = c
	s.setParent(c, v)
	s.nodes[u].parent = w
	s.nodes[v].parent = w
	s.nodes[w].left = u
	s.nodes[w].right = v
	s.recalc(u)
	s.recalc(v)
	s.recalc(w)
	s.recalc(p)
	s.notifyRotation(RotationBigRight)
	return w
}

// rebalance repairs a node with balance factor of +2 or -2 and returns the
// new root of its subtree.
func (s *Set[T]) rebalance(v nodeIndex) nodeIndex {
	if s.balance(v) < 0 {
		// Right subtree is taller
		if s.balance(s.nodes[v].right) <= 0 {
			return s.rotateSmallLeft(v)
		}
		return s.rotateBigLeft(v)
	}
	if s.balance(s.nodes[v].left) >= 0 {
		return s.rotateSmallRight(v)
	}
	return s.rotateBigRight(v)
}

func (s *Set[T]) notifyRotation(kind Rotation) {
	if s.handler != nil {
		s.handler.OnRotation(kind)
	}
}
