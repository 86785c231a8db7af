package molecule

import "errors"

// Graph rewriting failures. A grammatical name can still describe a
// structure that cannot exist, so these are returned rather than panicked.
var (
	ErrNoPosition    = errors.New("molecule: no such position")
	ErrNoHydrogen    = errors.New("molecule: no hydrogen to remove")
	ErrNoNeighbor    = errors.New("molecule: attachment atom has no neighbor")
	ErrNoFreeValence = errors.New("molecule: no free valence")
	ErrValence       = errors.New("molecule: standard bonding number exceeded")
	ErrBadBond       = errors.New("molecule: bond references unknown atom")
)
