package avl

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// WriteDot writes the tree as a Graphviz digraph to w. Node labels carry the
// element formatted by format, node height and subtree size.
func (s *Set[T]) WriteDot(w io.Writer, format func(T) string) error {
	graph := dot.NewGraph(dot.Directed)
	var traverse func(v nodeIndex) dot.Node
	traverse = func(v nodeIndex) dot.Node {
		n := &s.nodes[v]
		node := graph.Node(fmt.Sprintf("n%d", v)).
			Label(fmt.Sprintf("%s\nh=%d n=%d", format(n.value), n.height, n.size))
		if n.left != none {
			node.Edge(traverse(n.left), "l")
		}
		if n.right != none {
			node.Edge(traverse(n.right), "r")
		}
		return node
	}
	if s.root != none {
		traverse(s.root)
	}
	_, err := io.WriteString(w, graph.String())
	return err
}
