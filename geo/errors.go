package geo

import "errors"

// Sentinel errors returned by the core geometry operations (spec §7). The
// scene walker annotates these with the entity/brush indices active when
// they occurred (see package diag) and logs them.
var (
	ErrIncompleteCycle     = errors.New("geo: edge pool does not close into a cycle")
	ErrDegenerateCutCycle  = errors.New("geo: cycle lies entirely on the cut plane")
	ErrOddCutCount         = errors.New("geo: odd number of plane vertices on one side of a cut")
	ErrOrphanInnerCycle    = errors.New("geo: inner cycle is not contained by any outer cycle")
	ErrOrphanFace          = errors.New("geo: reconstructed solid contains a face with no reverse partner")
	ErrTesselationDeadlock = errors.New("geo: ear clipping made no progress around the polygon")
)
