package rstar

// Search appends every stored entry whose box intersects s to out, using a
// BFS-style traversal seeded with the root. Order is traversal-dependent and
// not contractually sorted (§4.6).
func (t *Tree) Search(s Rect, out []Entry) []Entry {
	if t.root == nil {
		return out
	}
	queue := []*node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.leaf {
			for _, e := range n.entries {
				if e.Box.Intersects(s) {
					out = append(out, e)
				}
			}
			continue
		}
		for _, c := range n.children {
			if c.box.Intersects(s) {
				queue = append(queue, c)
			}
		}
	}
	return out
}

// Select appends every stored entry whose box contains the point (x, y),
// half-open on both axes, to out.
func (t *Tree) Select(x, y float32, out []Entry) []Entry {
	if t.root == nil {
		return out
	}
	queue := []*node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.leaf {
			for _, e := range n.entries {
				if e.Box.PointInside(x, y) {
					out = append(out, e)
				}
			}
			continue
		}
		for _, c := range n.children {
			if c.box.PointInside(x, y) {
				queue = append(queue, c)
			}
		}
	}
	return out
}

// Range appends every stored entry whose box intersects the circle to out.
func (t *Tree) Range(c Circle, out []Entry) []Entry {
	if t.root == nil {
		return out
	}
	queue := []*node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.leaf {
			for _, e := range n.entries {
				if e.Box.CircleIntersects(c.X, c.Y, c.R) {
					out = append(out, e)
				}
			}
			continue
		}
		for _, ch := range n.children {
			if ch.box.CircleIntersects(c.X, c.Y, c.R) {
				queue = append(queue, ch)
			}
		}
	}
	return out
}
