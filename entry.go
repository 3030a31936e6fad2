package rstar

// Entry is a stored rectangle paired with its tree-unique, monotonically
// assigned handle.
type Entry struct {
	ID  uint64
	Box Rect
}
