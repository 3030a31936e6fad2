package rstar

// orphan is a node detached during condensation, recorded together with its
// distance from the leaf the deletion started at (0 = the leaf itself).
type orphan struct {
	level int
	n     *node
}

// Delete removes the entry with the given id, returning its box and true,
// or (zero, false) if no such entry is live (§4.5).
func (t *Tree) Delete(id uint64) (Rect, bool) {
	leaf, ok := t.entries[id]
	if !ok {
		return Rect{}, false
	}

	// Locate the path using the leaf's box as it stands before the entry is
	// removed: every ancestor (and the leaf itself) still contains it here.
	// Finding the path after leaf.recalc() would gate descent into the leaf
	// on its post-removal box, which can have shrunk away from the removed
	// entry's position entirely (e.g. the entry defined the leaf's edge).
	path := t.pathTo(leaf, leaf.box)

	var removedBox Rect
	for i, e := range leaf.entries {
		if e.ID == id {
			removedBox = e.Box
			leaf.entries = append(leaf.entries[:i], leaf.entries[i+1:]...)
			break
		}
	}
	delete(t.entries, id)
	leaf.recalc()

	var orphans []orphan
	for i := len(path) - 1; i >= 1; i-- {
		n := path[i]
		p := path[i-1]
		level := len(path) - 1 - i
		if n.size() < t.config.MMin {
			removeChild(p, n)
			orphans = append(orphans, orphan{level: level, n: n})
			t.logCondense(level, p.id, n.size())
		}
		p.recalc()
	}

	// Drain from the top: highest level (closest to root) first, so that
	// reinserted subtrees never land below their own orphaned descendants.
	for i := len(orphans) - 1; i >= 0; i-- {
		o := orphans[i]
		if o.n.leaf {
			for _, e := range o.n.entries {
				t.insertEntry(e, 0)
			}
		} else {
			for _, c := range o.n.children {
				t.insertNode(c, o.level)
			}
		}
	}
	clear(t.overflowMem)

	for t.root != nil && !t.root.leaf && len(t.root.children) == 1 {
		t.root = t.root.children[0]
		t.height--
		t.logRootCollapse(t.height)
	}
	if t.root != nil && t.root.leaf && len(t.root.entries) == 0 {
		t.root = nil
		t.height = 0
	}

	return removedBox, true
}

// pathTo returns the root-to-target node list for a node reached by
// descending through children whose box intersects guideBox. guideBox must
// be a box the target is still known to contain (typically the target's own
// box captured before any mutation), since every ancestor's box is a
// superset of its descendants' boxes only up to the point of mutation.
func (t *Tree) pathTo(target *node, guideBox Rect) []*node {
	path := make([]*node, 0, t.height)
	if t.root != nil && findPath(t.root, target, guideBox, &path) {
		return path
	}
	return nil
}

func findPath(n, target *node, guideBox Rect, path *[]*node) bool {
	*path = append(*path, n)
	if n == target {
		return true
	}
	if !n.leaf {
		for _, c := range n.children {
			if !c.box.Intersects(guideBox) {
				continue
			}
			if findPath(c, target, guideBox, path) {
				return true
			}
		}
	}
	*path = (*path)[:len(*path)-1]
	return false
}

func removeChild(p, n *node) {
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}
