package geo

import "sort"

// CutEdges is the four edge lists produced by splitting one face against a
// plane (spec §4.5): the edges that remain on each side of the cut, plus
// the new edges running along the cut line itself, oriented for use as
// part of a front-side face and a back-side cap, respectively.
type CutEdges struct {
	FrontEdges      []Edge
	BackEdges       []Edge
	FrontPlaneEdges []Edge
	BackPlaneEdges  []Edge
}

// SplitFaceByPlane splits a single face by plane into front and back edge
// lists, plus the oriented edges lying on the plane itself (spec §4.5).
//
// Each cycle (outer, then every inner) is walked once starting from an
// edge not entirely in the plane (ErrDegenerateCutCycle if none exists).
// Each edge is classified by the plane side of its two endpoints: same
// side appends the whole edge to that side; a strict crossing splits the
// edge at the intersection and appends a plane vertex to both sides; one
// endpoint on the plane appends the whole edge to the non-IN side and
// records that endpoint as a plane vertex on that side only; both IN are
// dropped.
//
// The plane vertices collected on each side are then sorted along the
// cut/face intersection line (cutplane.Norm x face.Norm) and paired
// consecutively into new cut-line edges. A side's vertex count must be
// even (ErrOddCutCount otherwise). Front pairs run low-to-high along the
// sort order and are appended to FrontEdges; their reverse is appended to
// FrontPlaneEdges. Back pairs run high-to-low and are appended to
// BackEdges; their reverse (low-to-high) is appended to BackPlaneEdges.
// Zero-length pairs (coincident plane vertices from touching edges) are
// discarded.
func (t Tolerance) SplitFaceByPlane(f Face, cutplane Plane) (CutEdges, error) {
	var out CutEdges
	lineNorm := cutplane.Norm.Cross(f.Normal())

	var frontVerts, backVerts []Vector

	walk := func(cycle []Edge) error {
		start := -1
		for i, e := range cycle {
			if !e.IsIn(t, cutplane) {
				start = i
				break
			}
		}
		if start == -1 {
			return ErrDegenerateCutCycle
		}

		n := len(cycle)
		for k := 0; k < n; k++ {
			e := cycle[(start+k)%n]
			s1 := t.SideOf(e.V1, cutplane)
			s2 := t.SideOf(e.V2, cutplane)

			switch {
			case s1 == SideBack && s2 == SideBack:
				out.BackEdges = append(out.BackEdges, e)
			case s1 == SideFront && s2 == SideFront:
				out.FrontEdges = append(out.FrontEdges, e)
			case s1 == SideBack && s2 == SideFront:
				v := t.Intersect(e, cutplane)
				out.BackEdges = append(out.BackEdges, NewEdge(e.V1, v))
				out.FrontEdges = append(out.FrontEdges, NewEdge(v, e.V2))
				backVerts = append(backVerts, v)
				frontVerts = append(frontVerts, v)
			case s1 == SideFront && s2 == SideBack:
				v := t.Intersect(e, cutplane)
				out.FrontEdges = append(out.FrontEdges, NewEdge(e.V1, v))
				out.BackEdges = append(out.BackEdges, NewEdge(v, e.V2))
				frontVerts = append(frontVerts, v)
				backVerts = append(backVerts, v)
			case s1 == SideBack && s2 == SideIn:
				out.BackEdges = append(out.BackEdges, e)
				backVerts = append(backVerts, e.V2)
			case s1 == SideFront && s2 == SideIn:
				out.FrontEdges = append(out.FrontEdges, e)
				frontVerts = append(frontVerts, e.V2)
			case s1 == SideIn && s2 == SideFront:
				out.FrontEdges = append(out.FrontEdges, e)
				frontVerts = append(frontVerts, e.V1)
			case s1 == SideIn && s2 == SideBack:
				out.BackEdges = append(out.BackEdges, e)
				backVerts = append(backVerts, e.V1)
			case s1 == SideIn && s2 == SideIn:
				// dropped: rebuilt as part of the cap
			}
		}
		return nil
	}

	for _, cycle := range f.Cycles() {
		if err := walk(cycle); err != nil {
			return CutEdges{}, err
		}
	}

	sortAlong := func(verts []Vector) {
		sort.SliceStable(verts, func(i, j int) bool {
			return verts[i].Dot(lineNorm) < verts[j].Dot(lineNorm)
		})
	}
	sortAlong(frontVerts)
	sortAlong(backVerts)

	if len(frontVerts)%2 != 0 {
		return CutEdges{}, ErrOddCutCount
	}
	if len(backVerts)%2 != 0 {
		return CutEdges{}, ErrOddCutCount
	}

	for i := 0; i+1 < len(frontVerts); i += 2 {
		v1, v2 := frontVerts[i], frontVerts[i+1]
		if t.VectorEqual(v1, v2) {
			continue
		}
		out.FrontEdges = append(out.FrontEdges, NewEdge(v1, v2))
		out.FrontPlaneEdges = append(out.FrontPlaneEdges, NewEdge(v2, v1))
	}
	for i := 0; i+1 < len(backVerts); i += 2 {
		v2, v1 := backVerts[i], backVerts[i+1]
		if t.VectorEqual(v1, v2) {
			continue
		}
		out.BackEdges = append(out.BackEdges, NewEdge(v1, v2))
		out.BackPlaneEdges = append(out.BackPlaneEdges, NewEdge(v2, v1))
	}

	return out, nil
}

// IsIn reports whether both endpoints of e lie on plane within tolerance.
func (e Edge) IsIn(t Tolerance, plane Plane) bool {
	return t.VectorIsIn(e.V1, plane) && t.VectorIsIn(e.V2, plane)
}
