package geo

import "github.com/brushfix/brushfix/internal/logger"

// SplitSolidByPlane cuts solid by cutplane and returns the resulting
// pieces (spec §4.6): one or more solids on the front side, one or more on
// the back. Faces that already lie entirely on the cut plane are set
// aside as texture donors for the synthesized cap rather than being cut.
// Every other face is split with SplitFaceByPlane; each side's edges are
// rebuilt into faces with GenerateFaces (source texture preserved per
// face), and the cut-line edge pools become cap faces on the cut plane
// (oriented -cutplane.Norm for the front side, +cutplane.Norm for the
// back), textured from whichever donor face contains them (findTexture)
// or, failing that, the default NULL projection (CapDefaultTexture).
// Finally PartitionFacesIntoSolids reassembles each side's faces into
// closed solids.
func (t Tolerance) SplitSolidByPlane(solid Solid, cutplane Plane) ([]Solid, error) {
	var oldCutFront, oldCutBack []Face
	var facesFront, facesBack []Face
	var frontPlaneEdges, backPlaneEdges []Edge

	for _, face := range solid.Faces {
		if face.allEdgesIn(t, cutplane) {
			if face.Normal().Dot(cutplane.Norm) > 0 {
				oldCutBack = append(oldCutBack, face)
			} else {
				oldCutFront = append(oldCutFront, face)
			}
			continue
		}

		cut, err := t.SplitFaceByPlane(face, cutplane)
		if err != nil {
			return nil, err
		}

		if len(cut.FrontEdges) > 0 {
			fronts, err := t.GenerateFaces(cut.FrontEdges, face.Normal(), face.Tex)
			if err != nil {
				return nil, err
			}
			facesFront = append(facesFront, fronts...)
		}
		if len(cut.BackEdges) > 0 {
			backs, err := t.GenerateFaces(cut.BackEdges, face.Normal(), face.Tex)
			if err != nil {
				return nil, err
			}
			facesBack = append(facesBack, backs...)
		}

		frontPlaneEdges = append(frontPlaneEdges, cut.FrontPlaneEdges...)
		backPlaneEdges = append(backPlaneEdges, cut.BackPlaneEdges...)
	}

	capTex := CapDefaultTexture(firstOrZero(frontPlaneEdges), cutplane.Norm)

	if len(frontPlaneEdges) > 0 {
		capsFront, err := t.GenerateFaces(frontPlaneEdges, cutplane.Norm.Negate(), capTex)
		if err != nil {
			return nil, err
		}
		for i := range capsFront {
			if t.findTexture(&capsFront[i], oldCutFront) {
				logger.Warn("cap face donors carry different textures; keeping the first")
			}
		}
		facesFront = append(facesFront, capsFront...)
	}

	if len(backPlaneEdges) > 0 {
		capsBack, err := t.GenerateFaces(backPlaneEdges, cutplane.Norm, capTex)
		if err != nil {
			return nil, err
		}
		for i := range capsBack {
			if t.findTexture(&capsBack[i], oldCutBack) {
				logger.Warn("cap face donors carry different textures; keeping the first")
			}
		}
		facesBack = append(facesBack, capsBack...)
	}

	var out []Solid
	frontSolids, err := t.PartitionFacesIntoSolids(facesFront)
	if err != nil {
		return nil, err
	}
	backSolids, err := t.PartitionFacesIntoSolids(facesBack)
	if err != nil {
		return nil, err
	}
	for _, faces := range frontSolids {
		out = append(out, Solid{Faces: faces, Visgroup: solid.Visgroup, Index: solid.Index})
	}
	for _, faces := range backSolids {
		out = append(out, Solid{Faces: faces, Visgroup: solid.Visgroup, Index: solid.Index})
	}
	return out, nil
}

func firstOrZero(edges []Edge) Edge {
	if len(edges) == 0 {
		return Edge{}
	}
	return edges[0]
}

// allEdgesIn reports whether every outer vertex of f lies on plane — the
// whole-face-in-plane case that diverts a face to the cap's donor list
// instead of being cut (spec §4.6).
func (f Face) allEdgesIn(t Tolerance, plane Plane) bool {
	for _, e := range f.Outer {
		if !t.VectorIsIn(e.V1, plane) {
			return false
		}
	}
	return true
}

// findTexture assigns cap's texture from the first donor in donors that
// contains it: every vertex of donor on the boundary of cap, or any vertex
// of donor strictly inside cap (spec §4.6). When multiple donors disagree
// the first match still wins and conflict is true; SplitSolidByPlane logs a
// warning for it.
func (t Tolerance) findTexture(face *Face, donors []Face) (conflict bool) {
	matched := 0
	for _, donor := range donors {
		allOnBoundary := true
		for _, de := range donor.Outer {
			onBoundary := false
			for _, ce := range face.Outer {
				if t.VectorIsOnEdge(de.V1, ce) {
					onBoundary = true
					break
				}
			}
			if !onBoundary {
				allOnBoundary = false
				break
			}
		}

		anyInside := false
		if !allOnBoundary {
			for _, de := range donor.Outer {
				if t.PointInFace(de.V1, *face) {
					anyInside = true
					break
				}
			}
		}

		if allOnBoundary || anyInside {
			if matched == 0 {
				face.Tex = donor.Tex
			} else if face.Tex != donor.Tex {
				conflict = true
			}
			matched++
		}
	}
	return conflict
}
