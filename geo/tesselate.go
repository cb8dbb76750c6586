package geo

// TesselateFace ear-clips a non-planar face's outer cycle in its own
// computed normal plane (spec §4.9). If reverseFace is non-nil, the two
// faces are clipped in lockstep so a shared, non-planar surface stays
// watertight: each ear removed from face is mirrored by an ear removed
// from reverseFace's matching (reverse) edge.
//
// Per corner (the shared endpoint of the current edge e1 and the next
// edge e2): the corner is convex iff (e2.Vec() x e1.RVec()).normal > 0; it
// is empty iff no other outer vertex's V1 lies strictly inside the
// triangle (e1.V1, e1.V2, e2.V2) (VectorInTriangle, tested only against
// each edge's V1, which suffices because every polygon vertex is the V1 of
// some edge of the cycle). A convex,
// empty corner is clipped into an ear face inheriting face's texture,
// splicing e1.V2 := e2.V2 and removing e2. If a full lap finds no ear,
// ErrTesselationDeadlock.
//
// Mutates face and reverseFace's Outer in place. Returns the ears clipped
// from face and, when reverseFace is non-nil, the ears clipped from it in
// lockstep — the caller appends each to its own owning solid.
func (t Tolerance) TesselateFace(face *Face, reverseFace *Face) (ears []Face, reverseEars []Face, err error) {
	normal := face.Normal()

	outer := append([]Edge(nil), face.Outer...)

	var rOuter []Edge
	ir1 := -1
	if reverseFace != nil {
		rOuter = append([]Edge(nil), reverseFace.Outer...)
		for j := len(rOuter) - 1; j >= 0; j-- {
			if t.IsReverse(rOuter[j], outer[0]) {
				ir1 = j
				break
			}
		}
	}

	ie1 := 0
	ieFirst := 0

	for len(outer) > 3 {
		n := len(outer)
		ie2 := (ie1 + 1) % n

		e1, e2 := outer[ie1], outer[ie2]
		convex := e2.Vec().Cross(e1.RVec()).Dot(normal) > 0

		empty := true
		if convex {
			for _, je := range outer {
				if t.VectorInTriangle(je.V1, e1, e2) {
					empty = false
					break
				}
			}
		}

		if convex && empty {
			ear := Face{
				Tex: face.Tex,
				Outer: []Edge{
					e1,
					e2,
					NewEdge(e2.V2, e1.V1),
				},
			}
			ears = append(ears, ear)

			outer[ie1].V2 = e2.V2
			outer = removeEdgeAt(outer, ie2)
			if ie2 < ie1 {
				ie1--
			}
			ieFirst = ie1

			if reverseFace != nil && ir1 >= 0 {
				rn := len(rOuter)
				ir2 := ir1 - 1
				if ir2 < 0 {
					ir2 = rn - 1
				}
				re1, re2 := rOuter[ir1], rOuter[ir2]

				rear := Face{
					Tex: reverseFace.Tex,
					Outer: []Edge{
						NewEdge(re1.V2, re2.V1),
						re2,
						re1,
					},
				}
				reverseEars = append(reverseEars, rear)

				rOuter[ir2].V2 = re1.V2
				rOuter = removeEdgeAt(rOuter, ir1)
				if ir1 < ir2 {
					ir2--
				}
				ir1 = ir2
			}
			continue
		}

		ie1 = (ie1 + 1) % n
		if ie1 == ieFirst {
			return nil, nil, ErrTesselationDeadlock
		}
		if reverseFace != nil && ir1 >= 0 {
			ir1--
			if ir1 < 0 {
				ir1 = len(rOuter) - 1
			}
		}
	}

	face.Outer = outer
	if reverseFace != nil {
		reverseFace.Outer = rOuter
	}
	return ears, reverseEars, nil
}

// removeEdgeAt removes the edge at idx from cycle, preserving order.
func removeEdgeAt(cycle []Edge, idx int) []Edge {
	out := make([]Edge, 0, len(cycle)-1)
	out = append(out, cycle[:idx]...)
	out = append(out, cycle[idx+1:]...)
	return out
}
