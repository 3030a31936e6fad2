package rstar

import "sort"

// choosePath descends from the root, building the list of nodes visited
// (root first), and stops once it reaches a node at exactly the requested
// level. insertBox is the bounding box of the item being inserted; it drives
// both the leaf and branch choose-subtree heuristics (§4.1).
func (t *Tree) choosePath(insertBox Rect, level int) []*node {
	path := make([]*node, 0, t.height-level)
	cur := t.root
	curLevel := t.height - 1
	for {
		path = append(path, cur)
		if curLevel == level {
			return path
		}
		if childrenAreLeaves(cur) {
			cur = chooseLeafCandidate(cur, insertBox, t.config.ChoiceP)
		} else {
			cur = chooseBranchCandidate(cur, insertBox)
		}
		curLevel--
	}
}

func childrenAreLeaves(n *node) bool {
	return !n.leaf && len(n.children) > 0 && n.children[0].leaf
}

// chooseBranchCandidate implements the least-enlargement heuristic used when
// a branch's children are themselves branches.
func chooseBranchCandidate(n *node, box Rect) *node {
	var best *node
	bestEnlargement := float32(0)
	bestArea := float32(0)
	for i, c := range n.children {
		enlargement := Union(c.box, box).Area() - c.box.Area()
		area := c.box.Area()
		if i == 0 || enlargement < bestEnlargement ||
			(enlargement == bestEnlargement && area < bestArea) {
			best, bestEnlargement, bestArea = c, enlargement, area
		}
	}
	return best
}

// chooseLeafCandidate implements the quadratic-in-p overlap-enlargement
// heuristic used when a branch's children are leaves: the top choiceP
// enlargement candidates are re-ranked by the overlap they would add to
// their siblings, and the minimum wins.
func chooseLeafCandidate(n *node, box Rect, choiceP int) *node {
	children := n.children
	order := make([]int, len(children))
	enlargement := make([]float32, len(children))
	for i, c := range children {
		order[i] = i
		enlargement[i] = Union(c.box, box).Area() - c.box.Area()
	}
	sort.SliceStable(order, func(i, j int) bool {
		return enlargement[order[i]] < enlargement[order[j]]
	})

	p := choiceP
	if p > len(order) {
		p = len(order)
	}

	best := children[order[0]]
	bestDelta := float32(0)
	for rank := 0; rank < p; rank++ {
		c := children[order[rank]]
		enlarged := Union(c.box, box)
		var delta float32
		for _, other := range children {
			if other == c {
				continue
			}
			delta += enlarged.OverlapArea(other.box) - c.box.OverlapArea(other.box)
		}
		if rank == 0 || delta < bestDelta {
			best, bestDelta = c, delta
		}
	}
	return best
}

// insertEntry attaches e to a leaf reached by descending to the given level
// (always 0 for entries) and repairs ancestor boxes/overflow up to the root.
func (t *Tree) insertEntry(e Entry, level int) {
	t.insertCommon(level, e.Box, func(target *node) {
		target.entries = append(target.entries, e)
		target.recalc()
		t.entries[e.ID] = target
	})
}

// insertNode attaches sub as a direct child of the node reached by
// descending to the given level, then repairs ancestor boxes/overflow up to
// the root. Used when reinserting orphaned or forcibly-evicted subtrees.
func (t *Tree) insertNode(sub *node, level int) {
	t.insertCommon(level, sub.box, func(target *node) {
		target.children = append(target.children, sub)
		target.recalc()
	})
}

func (t *Tree) insertCommon(level int, box Rect, attach func(target *node)) {
	path := t.choosePath(box, level)
	target := path[len(path)-1]
	attach(target)

	cur := target
	curLevel := level
	for i := len(path) - 2; i >= 0; i-- {
		parent := path[i]
		if cur.size() > t.config.M {
			if sibling := t.overflow(cur, curLevel); sibling != nil {
				parent.children = append(parent.children, sibling)
			}
		}
		parent.recalc()
		cur = parent
		curLevel++
	}

	if t.root.size() > t.config.M {
		if sibling := t.overflow(t.root, t.height-1); sibling != nil {
			t.growRoot(sibling)
		}
	}
}

// growRoot wraps the current root and sibling in a fresh branch root,
// increasing the tree's height by one.
func (t *Tree) growRoot(sibling *node) {
	newRoot := newBranch(t.newNodeID())
	newRoot.children = []*node{t.root, sibling}
	newRoot.recalc()
	t.root = newRoot
	t.height++
	t.logRootGrow(t.height)
}

// overflow resolves an overfull node at the given level: split on the root
// level or on a level that already reinserted once this top-level Insert,
// otherwise perform forced reinsertion (§4.3).
func (t *Tree) overflow(n *node, level int) *node {
	if level == t.height-1 || t.overflowMem[level] {
		sibling := t.split(n, level)
		t.logSplit(level, n.id, n.size())
		return sibling
	}
	t.overflowMem[level] = true
	t.forcedReinsert(n, level)
	return nil
}
