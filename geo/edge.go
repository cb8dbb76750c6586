package geo

// Edge is a directed edge between two vertices, plus an opaque index used
// only for debug correlation with the source scene file.
type Edge struct {
	V1, V2 Vector
	Index  int
}

// NewEdge builds an edge from two endpoints.
func NewEdge(v1, v2 Vector) Edge {
	return Edge{V1: v1, V2: v2}
}

// Vec returns the edge's direction vector, v2 - v1.
func (e Edge) Vec() Vector {
	return e.V2.Sub(e.V1)
}

// RVec returns the reverse direction vector, v1 - v2.
func (e Edge) RVec() Vector {
	return e.V1.Sub(e.V2)
}

// EdgeEqual reports whether e and other have matching endpoints, in order,
// within tolerance.
func (t Tolerance) EdgeEqual(e, other Edge) bool {
	return t.VectorEqual(e.V1, other.V1) && t.VectorEqual(e.V2, other.V2)
}

// IsReverse reports whether e's endpoints match other's, reversed.
func (t Tolerance) IsReverse(e, other Edge) bool {
	return t.VectorEqual(e.V1, other.V2) && t.VectorEqual(e.V2, other.V1)
}

// VectorIsOnEdge reports whether v is collinear with e and lies within its
// bounding segment (inclusive of endpoints).
func (t Tolerance) VectorIsOnEdge(v Vector, e Edge) bool {
	if !t.VectorIsCollinear(v, e) {
		return false
	}
	inRange := func(p, a, b float64) bool {
		if a <= b {
			return p >= a-float64(t) && p <= b+float64(t)
		}
		return p >= b-float64(t) && p <= a+float64(t)
	}
	return inRange(v.X, e.V1.X, e.V2.X) && inRange(v.Y, e.V1.Y, e.V2.Y) && inRange(v.Z, e.V1.Z, e.V2.Z)
}

// VectorIsCollinear reports whether v lies on the infinite line through e.
func (t Tolerance) VectorIsCollinear(v Vector, e Edge) bool {
	if t.VectorEqual(v, e.V1) {
		return true
	}
	return e.Vec().IsParallel(v.Sub(e.V1))
}

// EdgesCollinear reports whether both endpoints of other lie on the
// infinite line of e (spec §3).
func (t Tolerance) EdgesCollinear(e, other Edge) bool {
	return t.VectorIsCollinear(other.V1, e) && t.VectorIsCollinear(other.V2, e)
}

// VectorInTriangle reports whether v lies strictly inside the triangle
// (e1.V1, e1.V2, e2.V2), used by the ear-clipping containment test (spec
// §4.9). Only v1-style endpoints are tested by callers that rely on the
// invariant that every polygon vertex appears as some edge's V1 — see
// SPEC_FULL.md §9 for the Open-Question decision this preserves.
func (t Tolerance) VectorInTriangle(v Vector, e1, e2 Edge) bool {
	n := e2.Vec().Cross(e1.RVec())
	inside := func(edgeVec, from Vector) bool {
		return edgeVec.Cross(v.Sub(from)).Dot(n) > 0
	}
	return inside(e1.Vec(), e1.V1) &&
		inside(e2.Vec(), e2.V1) &&
		inside(e1.V1.Sub(e2.V2), e2.V2)
}
