package rstar

import "github.com/go-logr/logr"

// ReinsertMethod selects the reference point used to order children by
// distance during forced reinsertion (§4.3).
type ReinsertMethod int

const (
	// ReinsertCenter orders children by distance from the overflowing
	// node's own center (the default).
	ReinsertCenter ReinsertMethod = iota
	// ReinsertWeighted orders children by distance from the arithmetic
	// mean of all children centers (center of mass).
	ReinsertWeighted
)

const (
	defaultM         = 20
	defaultMMin      = 8
	defaultReinsertP = 6
)

// Config holds the tuning parameters for a Tree. It is immutable once
// passed to New; invalid values are clamped to the nearest legal value
// rather than rejected (§7).
type Config struct {
	// M is the maximum number of children per node. Clamped to >= 4.
	M int
	// MMin is the minimum number of children per node. Clamped to
	// [2, M/2].
	MMin int
	// ReinsertP is the number of children forcibly reinserted on a
	// node's first overflow at a given level. Clamped to [1, M-1].
	ReinsertP int
	// ReinsertMethod selects the reinsertion distance reference.
	ReinsertMethod ReinsertMethod
	// ChoiceP is the number of top-enlargement candidates re-ranked by
	// overlap cost in choose-subtree at the leaf level. Clamped to
	// [1, M]. Zero means "use M".
	ChoiceP int
	// Logger receives structural diagnostics (split, forced reinsert,
	// condense, root collapse). The zero value is replaced with a
	// discarding logger, so Tree never requires a logging backend.
	Logger logr.Logger
}

// sanitize returns a copy of cfg with every field clamped into its legal
// range, substituting defaults for zero values.
func (cfg Config) sanitize() Config {
	out := cfg

	if out.M <= 0 {
		out.M = defaultM
	}
	if out.M < 4 {
		out.M = 4
	}

	if out.MMin <= 0 {
		out.MMin = defaultMMin
	}
	if out.MMin < 2 {
		out.MMin = 2
	}
	if maxMin := out.M / 2; out.MMin > maxMin {
		out.MMin = maxMin
	}

	if out.ReinsertP <= 0 {
		out.ReinsertP = defaultReinsertP
	}
	if out.ReinsertP > out.M-1 {
		out.ReinsertP = out.M - 1
	}
	if out.ReinsertP < 1 {
		out.ReinsertP = 1
	}

	if out.ChoiceP <= 0 {
		out.ChoiceP = out.M
	}
	if out.ChoiceP > out.M {
		out.ChoiceP = out.M
	}
	if out.ChoiceP < 1 {
		out.ChoiceP = 1
	}

	if out.Logger.GetSink() == nil {
		out.Logger = logr.Discard()
	}

	return out
}
