package geo

// Plane is a directed plane n.p + d = 0 with n unit length. The front
// half-space is where n.p + d > 0, the side the normal points to. (n, d) and (-n, -d) are different
// directed planes — their front half-spaces differ — except where this
// package deliberately canonicalizes them (see PlaneKey).
type Plane struct {
	Norm Vector
	D    float64
}

// NewPlane builds a plane from a unit normal and constant.
func NewPlane(norm Vector, d float64) Plane {
	return Plane{Norm: norm, D: d}
}

// PlaneFromNormalAndPoint builds a plane from an (unnormalized) normal and a
// point known to lie on the plane.
func PlaneFromNormalAndPoint(norm, point Vector) Plane {
	n := norm.Normalize()
	return Plane{Norm: n, D: -n.Dot(point)}
}

// PlaneFromPoints builds a plane from three points on it, in the winding
// order that defines the outward normal: norm = (v3-v2) x (v1-v2).
func PlaneFromPoints(v1, v2, v3 Vector) Plane {
	norm := v3.Sub(v2).Cross(v1.Sub(v2))
	return PlaneFromNormalAndPoint(norm, v2)
}

// Negate returns the oppositely directed plane describing the same
// geometric surface.
func (p Plane) Negate() Plane {
	return Plane{Norm: p.Norm.Negate(), D: -p.D}
}

// PlaneKey canonicalizes a plane for the decomposer's orientation-
// insensitive reflex-count accumulation (spec §3, §9): flip the plane whose
// normal components sum negative, so that both directed planes of the same
// geometric surface map to the same key. This canonicalization never
// touches the oriented plane actually used to perform a cut.
func PlaneKey(p Plane) Plane {
	if p.Norm.X+p.Norm.Y+p.Norm.Z < 0 {
		return p.Negate()
	}
	return p
}

// PlaneKeyEqual reports whether a and b describe the same geometric plane,
// ignoring orientation, within tol.
func (t Tolerance) PlaneKeyEqual(a, b Plane) bool {
	ka, kb := PlaneKey(a), PlaneKey(b)
	return t.VectorEqual(ka.Norm, kb.Norm) && t.Equal(ka.D, kb.D)
}

// Side is the classification of a point against a directed plane.
type Side int

const (
	SideBack Side = -1
	SideIn   Side = 0
	SideFront Side = 1
)

// SideOf classifies v against plane: IN if within tolerance of the plane,
// FRONT if in the plane's front half-space (n.v + d > 0), BACK otherwise.
func (t Tolerance) SideOf(v Vector, plane Plane) Side {
	s := -v.Dot(plane.Norm)
	switch {
	case t.Equal(s, plane.D):
		return SideIn
	case s < plane.D:
		return SideFront
	default:
		return SideBack
	}
}

// VectorIsIn reports whether v lies on plane within tolerance.
func (t Tolerance) VectorIsIn(v Vector, plane Plane) bool {
	return t.Equal(v.Dot(plane.Norm), -plane.D)
}
