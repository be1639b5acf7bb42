package outline

// PolyNode is a node of the clipping result tree. Children of a polygon are
// the holes inside it, and children of a hole are the polygons inside that.
type PolyNode struct {
	Contour []IntPoint
	Index   int // Idx of the outline that produced the node, -1 for the root
	IsHole  bool
	IsOpen  bool

	Parent   *PolyNode
	Children []*PolyNode
}

func newRoot() *PolyNode { return &PolyNode{Index: -1} }

// AddChild appends child and sets its parent.
func (n *PolyNode) AddChild(child *PolyNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// IsRoot reports whether n is the top of a tree.
func (n *PolyNode) IsRoot() bool { return n.Parent == nil }

// Depth is the number of ancestors below the root.
func (n *PolyNode) Depth() int {
	d := 0
	for p := n.Parent; p != nil && !p.IsRoot(); p = p.Parent {
		d++
	}
	return d
}

// Total counts the nodes below n.
func (n *PolyNode) Total() int {
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Total()
	}
	return total
}

// Walk visits the nodes below n depth-first in insertion order. Returning
// false from fn skips that node's children.
func (n *PolyNode) Walk(fn func(node *PolyNode) bool) {
	for _, c := range n.Children {
		if fn(c) {
			c.Walk(fn)
		}
	}
}
