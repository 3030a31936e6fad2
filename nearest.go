package rstar

// NearestQuery selects the subject of a Tree.Nearest call: either a live
// entry id (its own box, excluded from its own result) or an arbitrary
// rectangle.
type NearestQuery struct {
	hasID bool
	id    uint64
	box   Rect
}

// NearestByID queries for the entry nearest to an already-stored entry.
func NearestByID(id uint64) NearestQuery {
	return NearestQuery{hasID: true, id: id}
}

// NearestByBox queries for the entry nearest to an arbitrary rectangle.
func NearestByBox(box Rect) NearestQuery {
	return NearestQuery{box: box}
}

// Nearest returns the stored entry closest to the query, or ok=false when
// the tree holds fewer than two entries (§4.6).
func (t *Tree) Nearest(query NearestQuery) (Entry, bool) {
	if t.Len() < 2 {
		return Entry{}, false
	}

	var box Rect
	var seedLeaf *node
	if query.hasID {
		leaf, ok := t.entries[query.id]
		if !ok {
			return Entry{}, false
		}
		seedLeaf = leaf
		for _, e := range leaf.entries {
			if e.ID == query.id {
				box = e.Box
				break
			}
		}
	} else {
		box = query.box
		seedLeaf = pickBestLeaf(t.seedLeaves(box), box)
	}

	var best Entry
	var bestDist float32
	found := false
	consider := func(e Entry) {
		if query.hasID && e.ID == query.id {
			return
		}
		d := rectDistance(box, e.Box, true)
		if !found || d < bestDist {
			best, bestDist, found = e, d, true
		}
	}

	for _, e := range seedLeaf.entries {
		consider(e)
	}

	switch {
	case found && bestDist == 0:
		return best, true
	case found:
		inflated := NewRect(box.X-bestDist, box.Y-bestDist, box.W+2*bestDist, box.H+2*bestDist)
		var verify []Entry
		for _, e := range t.Search(inflated, verify) {
			consider(e)
		}
	default:
		// Local scan yielded nothing usable (e.g. the seed leaf held only
		// the query's own entry); fall back to a full-tree scan.
		var verify []Entry
		for _, e := range t.Search(t.root.box, verify) {
			consider(e)
		}
	}

	return best, found
}

// seedLeaves descends from the root toward a leaf (or set of leaves) that
// are likely to hold the query's nearest neighbor: at each level it follows
// every child whose box intersects the query, widening to a breadth-first
// set of candidates; if none intersect at a level, it falls back to the
// single child whose center is closest to the query's center (§4.6 step 1).
func (t *Tree) seedLeaves(box Rect) []*node {
	level := []*node{t.root}
	for !level[0].leaf {
		var next []*node
		for _, n := range level {
			for _, c := range n.children {
				if c.box.Intersects(box) {
					next = append(next, c)
				}
			}
		}
		if len(next) == 0 {
			qx, qy := box.Center()
			var best *node
			var bestDist float32
			for _, n := range level {
				for _, c := range n.children {
					cx, cy := c.box.Center()
					d := sqDist(cx, cy, qx, qy)
					if best == nil || d < bestDist {
						best, bestDist = c, d
					}
				}
			}
			next = []*node{best}
		}
		level = next
	}
	return level
}

// pickBestLeaf chooses, among candidate leaves surviving seedLeaves, the one
// with maximum overlap area against the query rectangle.
func pickBestLeaf(leaves []*node, box Rect) *node {
	best := leaves[0]
	bestOverlap := best.box.OverlapArea(box)
	for _, n := range leaves[1:] {
		o := n.box.OverlapArea(box)
		if o > bestOverlap {
			best, bestOverlap = n, o
		}
	}
	return best
}
