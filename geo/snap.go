package geo

// SnapVertices merges vertices that drifted apart by less than the fixed
// 0.1-unit snap tolerance, independent of the working epsilon (spec
// §4.11). Faces built from independently-cut edges can end up with
// endpoints that should coincide but differ in the last bit or two of
// precision; snapping replaces every vertex with the first
// previously-seen vertex within tolerance, so that later adjacency and
// partitioning (which require exact-within-epsilon matches) see a single
// shared vertex. It returns a new slice; solids is not modified in place.
func SnapVertices(solids []Solid) []Solid {
	snap := Tolerance(snapTolerance)
	var reps []Vector

	canonical := func(v Vector) Vector {
		for _, r := range reps {
			if snap.VectorEqual(r, v) {
				return r
			}
		}
		reps = append(reps, v)
		return v
	}

	snapCycle := func(cycle []Edge) []Edge {
		out := make([]Edge, len(cycle))
		for i, e := range cycle {
			out[i] = Edge{V1: canonical(e.V1), V2: canonical(e.V2), Index: e.Index}
		}
		return out
	}

	out := make([]Solid, len(solids))
	for si, solid := range solids {
		faces := make([]Face, len(solid.Faces))
		for fi, face := range solid.Faces {
			inners := make([][]Edge, len(face.Inners))
			for ii, inner := range face.Inners {
				inners[ii] = snapCycle(inner)
			}
			faces[fi] = Face{
				Outer:  snapCycle(face.Outer),
				Inners: inners,
				Tex:    face.Tex,
				Index:  face.Index,
			}
		}
		out[si] = Solid{Faces: faces, Visgroup: solid.Visgroup, Index: solid.Index}
	}
	return out
}
