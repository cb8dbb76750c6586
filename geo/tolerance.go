package geo

import "math"

// Tolerance is the process-wide epsilon used by every floating point
// comparison in this package. It is threaded explicitly as the receiver of
// the package's predicates and transformations rather than held as a
// package global, per the scene walker's ownership of diagnostic state.
type Tolerance float64

// DefaultEpsilon is the default tolerance before any user scale factor.
const DefaultEpsilon Tolerance = 0.004

// Equal reports whether a and b are equal within this tolerance. Every
// floating point equality test in this package funnels through this single
// primitive so that the transitivity assumptions the rest of the engine
// relies on hold in one place.
func (t Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) <= float64(t)
}

// VectorEqual reports whether a and b are equal component-wise within this
// tolerance.
func (t Tolerance) VectorEqual(a, b Vector) bool {
	return t.Equal(a.X, b.X) && t.Equal(a.Y, b.Y) && t.Equal(a.Z, b.Z)
}

// snapTolerance is the fixed, non-epsilon tolerance used by vertex
// snapping (spec §4.11): sub-epsilon coordinate drift between editor
// vertices that should be identical is healed independently of the
// user-scaled comparison epsilon.
const snapTolerance = 0.1
