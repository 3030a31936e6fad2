package rstar

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func populatedTree(n int, seed int64) (*Tree, map[uint64]Rect) {
	rnd := rand.New(rand.NewSource(seed))
	tree := New(smallConfig())
	boxes := make(map[uint64]Rect, n)
	for i := 0; i < n; i++ {
		box := NewRect(rnd.Float32()*50, rnd.Float32()*50, rnd.Float32()*3, rnd.Float32()*3)
		id := tree.Insert(box)
		boxes[id] = box
	}
	return tree, boxes
}

func TestSearchMatchesBruteForce(t *testing.T) {
	tree, boxes := populatedTree(300, 2)
	window := NewRect(10, 10, 20, 20)

	got := tree.Search(window, nil)
	gotIDs := idSet(got)

	var want []uint64
	for id, b := range boxes {
		if b.Intersects(window) {
			want = append(want, id)
		}
	}
	assert.ElementsMatch(t, want, gotIDs)
}

func TestSelectMatchesBruteForce(t *testing.T) {
	tree, boxes := populatedTree(300, 3)
	x, y := float32(25), float32(25)

	got := tree.Select(x, y, nil)
	gotIDs := idSet(got)

	var want []uint64
	for id, b := range boxes {
		if b.PointInside(x, y) {
			want = append(want, id)
		}
	}
	assert.ElementsMatch(t, want, gotIDs)
}

func TestRangeMatchesBruteForce(t *testing.T) {
	tree, boxes := populatedTree(300, 4)
	c := Circle{X: 25, Y: 25, R: 8}

	got := tree.Range(c, nil)
	gotIDs := idSet(got)

	var want []uint64
	for id, b := range boxes {
		if b.CircleIntersects(c.X, c.Y, c.R) {
			want = append(want, id)
		}
	}
	assert.ElementsMatch(t, want, gotIDs)
}

func TestSearchAppendsIntoOut(t *testing.T) {
	tree, _ := populatedTree(10, 5)
	seed := []Entry{{ID: 999999, Box: NewRect(0, 0, 1, 1)}}
	got := tree.Search(NewRect(0, 0, 50, 50), seed)
	assert.Equal(t, seed[0], got[0])
	assert.Greater(t, len(got), 1)
}

func idSet(entries []Entry) []uint64 {
	ids := make([]uint64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
