package geo

// Intersect returns the point where e crosses plane, parametrically:
// t = -(n.v1 + d) / (n.(v2-v1)), result = v1 + t*(v2-v1). Only meaningful
// when e actually crosses or touches the plane (spec §4.1).
func (t Tolerance) Intersect(e Edge, plane Plane) Vector {
	v := e.Vec()
	denom := plane.Norm.Dot(v)
	param := -(plane.Norm.Dot(e.V1) + plane.D) / denom
	return e.V1.Add(v.MultiplyScalar(param))
}

// PointInCycle implements the winding-number containment test of spec
// §4.1: two auxiliary planes through p, with normals norm x edges[0].Vec()
// and norm x plane1.Norm, count crossings of the cycle through plane1 that
// also land in the positive half-space of plane2. The boundary is not
// considered inside.
func (t Tolerance) PointInCycle(p Vector, edges []Edge, norm Vector) bool {
	if len(edges) == 0 {
		return false
	}
	plane1 := PlaneFromNormalAndPoint(norm.Cross(edges[0].Vec()), p)
	plane2 := PlaneFromNormalAndPoint(norm.Cross(plane1.Norm), p)

	count := 0
	for _, e := range edges {
		s1 := t.SideOf(e.V1, plane1)
		s2 := t.SideOf(e.V2, plane1)
		if s1 == s2 {
			continue
		}
		// crossing plane1: determine sense via the sign change of the
		// (unclamped) signed distance, not the tolerance-quantized side.
		d1 := -e.V1.Dot(plane1.Norm) - plane1.D
		d2 := -e.V2.Dot(plane1.Norm) - plane1.D
		if d1 == d2 {
			continue
		}
		crossPoint := t.Intersect(e, plane1)
		if t.SideOf(crossPoint, plane2) != SideFront {
			continue
		}
		if d1 < d2 {
			count++
		} else {
			count--
		}
	}
	return count != 0
}

// PointInFace reports whether p is inside f's outer cycle and outside (and
// not on) every inner cycle (spec §4.1).
func (t Tolerance) PointInFace(p Vector, f Face) bool {
	norm := f.Normal()
	if !t.PointInCycle(p, f.Outer, norm) {
		return false
	}
	for _, inner := range f.Inners {
		if t.PointInCycle(p, inner, norm) {
			return false
		}
	}
	return true
}

// FaceContainsAnyVertex reports whether outerCycle is a valid nesting
// container for cycle: at least one vertex of cycle is either inside
// outerCycle or on its boundary.
func (t Tolerance) FaceContainsAnyVertex(outerCycle []Edge, norm Vector, cycle []Edge) bool {
	for _, e := range cycle {
		if t.PointInCycle(e.V1, outerCycle, norm) {
			return true
		}
		for _, boundary := range outerCycle {
			if t.VectorIsOnEdge(e.V1, boundary) {
				return true
			}
		}
	}
	return false
}
