package geo

// FindAdjacentFace searches faces for the face lying immediately across
// edge from self (spec §4.7): among every face carrying an edge that is
// the reverse of edge, it picks the one minimizing
// InternalAngle(selfNormal, -candidateNormal, edge.Vec()) — the face that
// lies on the outward side of the solid across that edge, which matters
// when more than two faces meet along a line. ok is false if no face
// carries a reverse partner.
func (t Tolerance) FindAdjacentFace(faces []Face, selfNormal Vector, edge Edge) (face Face, matched Edge, ok bool) {
	var bestAngle float64

	for _, jface := range faces {
		for _, cycle := range jface.Cycles() {
			for _, je := range cycle {
				if !t.IsReverse(je, edge) {
					continue
				}
				angle := InternalAngle(selfNormal, jface.Normal().Negate(), edge.Vec())
				if !ok || angle < bestAngle {
					bestAngle = angle
					face = jface
					matched = je
					ok = true
				}
				break
			}
		}
	}
	return face, matched, ok
}

// PartitionFacesIntoSolids groups a flat pool of faces into connected
// solids under the adjacency relation "shares a pair of reverse edges"
// (spec §4.7). Starting from an arbitrary unplaced face, it walks every
// edge to the adjacent face (FindAdjacentFace) and recruits it into the
// same solid, repeating until the component is exhausted, then starts a
// new component with whatever faces remain.
//
// After partitioning, every edge of every face in a solid must find a
// reverse partner within that same solid; ErrOrphanFace otherwise.
func (t Tolerance) PartitionFacesIntoSolids(faces []Face) ([][]Face, error) {
	remaining := append([]Face(nil), faces...)
	var solids [][]Face

	for len(remaining) > 0 {
		inSolid := make(map[int]bool)
		queue := []int{0}
		inSolid[0] = true

		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			f := remaining[i]
			for _, cycle := range f.Cycles() {
				for _, e := range cycle {
					_, matched, ok := t.FindAdjacentFace(remaining, f.Normal(), e)
					if !ok {
						continue
					}
					for j, other := range remaining {
						if inSolid[j] {
							continue
						}
						if t.sameFaceOuter(other, matched) {
							inSolid[j] = true
							queue = append(queue, j)
						}
					}
				}
			}
		}

		var solidFaces []Face
		var rest []Face
		for i, f := range remaining {
			if inSolid[i] {
				solidFaces = append(solidFaces, f)
			} else {
				rest = append(rest, f)
			}
		}

		for _, f := range solidFaces {
			for _, cycle := range f.Cycles() {
				for _, e := range cycle {
					found := false
					for _, other := range solidFaces {
						for _, oc := range other.Cycles() {
							for _, oe := range oc {
								if t.IsReverse(e, oe) {
									found = true
								}
							}
						}
					}
					if !found {
						return nil, ErrOrphanFace
					}
				}
			}
		}

		solids = append(solids, solidFaces)
		remaining = rest
	}

	return solids, nil
}

// sameFaceOuter reports whether any cycle of candidate (outer or inner)
// contains an edge identical to e — used to identify which face in the remaining pool
// FindAdjacentFace's matched edge belongs to.
func (t Tolerance) sameFaceOuter(candidate Face, e Edge) bool {
	for _, cycle := range candidate.Cycles() {
		for _, ce := range cycle {
			if t.EdgeEqual(ce, e) {
				return true
			}
		}
	}
	return false
}
