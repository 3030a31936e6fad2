package rstar

import "sort"

// node is either a leaf (holds entries) or a branch (holds child nodes),
// never both. Its box is always the MBR of its children when non-empty.
//
// There is no parent pointer: every descent starts at the root and records
// the path it walks, so ancestors are recovered from that path rather than
// from a stored back-reference (see Design Notes in SPEC_FULL.md).
type node struct {
	id       uint64
	leaf     bool
	entries  []Entry
	children []*node
	box      Rect
}

func newLeaf(id uint64) *node {
	return &node{id: id, leaf: true, box: emptyRect}
}

func newBranch(id uint64) *node {
	return &node{id: id, leaf: false, box: emptyRect}
}

// size returns the number of direct children (entries for a leaf, nodes for
// a branch).
func (n *node) size() int {
	if n.leaf {
		return len(n.entries)
	}
	return len(n.children)
}

// boxes returns the bounding boxes of this node's direct children, used to
// recompute n.box after a mutation.
func (n *node) boxes() []Rect {
	if n.leaf {
		boxes := make([]Rect, len(n.entries))
		for i, e := range n.entries {
			boxes[i] = e.Box
		}
		return boxes
	}
	boxes := make([]Rect, len(n.children))
	for i, c := range n.children {
		boxes[i] = c.box
	}
	return boxes
}

// recalc recomputes n.box as the MBR of its current children.
func (n *node) recalc() {
	n.box = MBR(n.boxes())
}

// splitAxis selects the sort key used by one of the four (axis, edge)
// candidates evaluated during split selection (§4.4 phase 1).
type splitAxis int

const (
	lowX splitAxis = iota
	highX
	lowY
	highY
)

var splitAxes = [4]splitAxis{lowX, highX, lowY, highY}

// key extracts the sort value for a box under this axis/edge choice.
func (a splitAxis) key(b Rect) float32 {
	switch a {
	case lowX:
		return b.X
	case highX:
		return b.Right()
	case lowY:
		return b.Y
	default: // highY
		return b.Bottom()
	}
}

// sortChildren orders a node's entries or children ascending by the given
// axis key.
func (n *node) sortChildren(axis splitAxis) {
	if n.leaf {
		sort.Slice(n.entries, func(i, j int) bool {
			return axis.key(n.entries[i].Box) < axis.key(n.entries[j].Box)
		})
	} else {
		sort.Slice(n.children, func(i, j int) bool {
			return axis.key(n.children[i].box) < axis.key(n.children[j].box)
		})
	}
}
