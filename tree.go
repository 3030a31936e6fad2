package rstar

// Tree is a dynamic in-memory R*-tree index over 2D axis-aligned rectangles.
// A Tree is not safe for concurrent use: callers sharing one across
// goroutines must provide their own exclusion (§5).
type Tree struct {
	root   *node
	height int

	// entries maps a live entry id to the leaf node holding it. It is the
	// single source of truth for "is this handle live" (§3).
	entries map[uint64]*node

	nextEntryID uint64
	nextNodeID  uint64

	// overflowMem records, for the duration of a single top-level Insert,
	// which levels have already triggered forced reinsertion (§4.3). It is
	// cleared before returning from Insert.
	overflowMem map[int]bool

	config Config
}

// New creates an empty Tree. Invalid Config values are silently clamped to
// the nearest legal value (§7); there is no error return.
func New(config Config) *Tree {
	return &Tree{
		entries:     make(map[uint64]*node),
		overflowMem: make(map[int]bool),
		config:      config.sanitize(),
	}
}

// Len returns the number of live entries in the tree.
func (t *Tree) Len() int {
	return len(t.entries)
}

// Height returns the number of node levels; 0 when the tree is empty.
func (t *Tree) Height() int {
	return t.height
}

func (t *Tree) newNodeID() uint64 {
	id := t.nextNodeID
	t.nextNodeID++
	return id
}

func (t *Tree) newEntryID() uint64 {
	id := t.nextEntryID
	t.nextEntryID++
	return id
}

// Insert adds box to the tree and returns its newly minted entry id.
// Negative extents are clamped to zero before the box is stored.
func (t *Tree) Insert(box Rect) uint64 {
	id := t.newEntryID()
	entry := Entry{ID: id, Box: NewRect(box.X, box.Y, box.W, box.H)}

	if t.root == nil {
		leaf := newLeaf(t.newNodeID())
		leaf.entries = append(leaf.entries, entry)
		leaf.recalc()
		t.root = leaf
		t.height = 1
		t.entries[id] = leaf
		return id
	}

	t.insertEntry(entry, 0)
	clear(t.overflowMem)
	return id
}

func (t *Tree) logSplit(level int, nodeID uint64, children int) {
	t.config.Logger.V(1).Info("split", "level", level, "node", nodeID, "children", children)
}

func (t *Tree) logReinsert(level int, nodeID uint64, count int) {
	t.config.Logger.V(1).Info("forced-reinsert", "level", level, "node", nodeID, "count", count)
}

func (t *Tree) logCondense(level int, nodeID uint64, orphanedChildren int) {
	t.config.Logger.V(1).Info("condense", "level", level, "node", nodeID, "orphaned-children", orphanedChildren)
}

func (t *Tree) logRootCollapse(newHeight int) {
	t.config.Logger.V(1).Info("root-collapse", "new-height", newHeight)
}

func (t *Tree) logRootGrow(newHeight int) {
	t.config.Logger.V(1).Info("root-grow", "new-height", newHeight)
}
