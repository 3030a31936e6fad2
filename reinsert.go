package rstar

import (
	"math/rand"
	"sort"
)

// byDistanceDesc adapts a slice of entries or child nodes into a
// sort.Interface ordered so that Less reports "farther from the reference
// point comes first" — i.e. quickselecting its nth position partitions the
// p farthest elements into the front of the slice.
type byDistanceDesc struct {
	n    int
	less func(i, j int) bool
	swap func(i, j int)
}

func (d byDistanceDesc) Len() int           { return d.n }
func (d byDistanceDesc) Less(i, j int) bool { return d.less(i, j) }
func (d byDistanceDesc) Swap(i, j int)      { d.swap(i, j) }

// quickselect performs a partial sort, ensuring that all elements before 'n'
// sort before it (by a.Less) and all elements after 'n' sort after it.
//
// Adapted from the teacher's naive partition scheme, which it found to
// outperform published alternatives for this access pattern.
func quickselect(a sort.Interface, n int) {
	first := 0
	last := a.Len() - 1
	for {
		guess := rand.Intn(last-first+1) + first
		pivotIndex := partition(a, first, last, guess)
		if n == pivotIndex {
			return
		} else if n < pivotIndex {
			last = pivotIndex - 1
		} else {
			first = pivotIndex + 1
		}
	}
}

func partition(a sort.Interface, firstIdx, lastIdx, pivotIdx int) int {
	a.Swap(firstIdx, pivotIdx)
	pivotIdx = firstIdx

	left, right := firstIdx+1, lastIdx
	for left <= right {
		for left <= lastIdx && a.Less(left, pivotIdx) {
			left++
		}
		for right >= pivotIdx && a.Less(pivotIdx, right) {
			right--
		}
		if left <= right {
			a.Swap(left, right)
			left++
			right--
		}
	}
	a.Swap(pivotIdx, right)
	return right
}

// referenceCenter returns the point forced reinsertion measures distances
// from: n's own center, or the center of mass of its children (§4.3).
func referenceCenter(n *node, method ReinsertMethod) (float32, float32) {
	if method == ReinsertCenter {
		return n.box.Center()
	}
	var sx, sy float32
	boxes := n.boxes()
	for _, b := range boxes {
		cx, cy := b.Center()
		sx += cx
		sy += cy
	}
	count := float32(len(boxes))
	return sx / count, sy / count
}

func sqDist(x1, y1, x2, y2 float32) float32 {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

// forcedReinsert evicts the ReinsertP children of n farthest from the
// reinsertion reference point, shrinks n to its remaining children, and
// reinserts the evicted ones individually at n's own level (§4.3).
func (t *Tree) forcedReinsert(n *node, level int) {
	refX, refY := referenceCenter(n, t.config.ReinsertMethod)
	p := t.config.ReinsertP
	if p >= n.size() {
		p = n.size() - 1
	}
	if p < 1 {
		return
	}

	if n.leaf {
		entries := n.entries
		dist := func(i int) float32 {
			cx, cy := entries[i].Box.Center()
			return sqDist(cx, cy, refX, refY)
		}
		order := byDistanceDesc{
			n:    len(entries),
			less: func(i, j int) bool { return dist(i) > dist(j) },
			swap: func(i, j int) { entries[i], entries[j] = entries[j], entries[i] },
		}
		quickselect(order, p-1)
		sort.Slice(entries[:p], func(i, j int) bool { return dist(i) > dist(j) })

		removed := append([]Entry(nil), entries[:p]...)
		n.entries = append([]Entry(nil), entries[p:]...)
		n.recalc()
		t.logReinsert(level, n.id, len(removed))
		for _, e := range removed {
			t.insertEntry(e, 0)
		}
		return
	}

	children := n.children
	dist := func(i int) float32 {
		cx, cy := children[i].box.Center()
		return sqDist(cx, cy, refX, refY)
	}
	order := byDistanceDesc{
		n:    len(children),
		less: func(i, j int) bool { return dist(i) > dist(j) },
		swap: func(i, j int) { children[i], children[j] = children[j], children[i] },
	}
	quickselect(order, p-1)
	sort.Slice(children[:p], func(i, j int) bool { return dist(i) > dist(j) })

	removed := append([]*node(nil), children[:p]...)
	n.children = append([]*node(nil), children[p:]...)
	n.recalc()
	t.logReinsert(level, n.id, len(removed))
	for _, c := range removed {
		t.insertNode(c, level)
	}
}
