package geo

// ReflexEdges counts the reflex edges of face within solid (spec §4.8): an
// edge is reflex iff, letting g be its adjacent face across that edge,
// (face.Normal() x g.Normal()).edge.Vec() < 0.
func (t Tolerance) ReflexEdges(solid Solid, face Face) (int, error) {
	ni := face.Normal()
	count := 0
	for _, cycle := range face.Cycles() {
		for _, e := range cycle {
			g, _, ok := t.FindAdjacentFace(solid.Faces, ni, e)
			if !ok {
				return 0, ErrOrphanFace
			}
			if ni.Cross(g.Normal()).Dot(e.Vec()) < 0 {
				count++
			}
		}
	}
	return count, nil
}

// planeReflexCount pairs a canonicalized plane key with its accumulated
// reflex-edge total.
type planeReflexCount struct {
	plane Plane
	count int
	face  Face
}

// DecomposeIntoConvex repeatedly cuts non-convex solids until every
// resulting solid is convex (spec §4.8). For each solid, it counts reflex
// edges per face and accumulates the totals per plane (orientation-
// insensitive, so a face and its coplanar twin contribute to the same
// entry). It cuts along the plane with the greatest total using the
// cutting face's own oriented plane, replaces the solid with the pieces
// SplitSolidByPlane produces, and processes those pieces in turn — so
// further necessary cuts happen naturally as the work list grows.
func (t Tolerance) DecomposeIntoConvex(solids []Solid) ([]Solid, error) {
	work := append([]Solid(nil), solids...)

	for i := 0; i < len(work); i++ {
		solid := work[i]

		var counts []planeReflexCount
		rmax := 0
		var cutFace Face
		haveCut := false

		for _, face := range solid.Faces {
			plane := face.Plane()
			r, err := t.ReflexEdges(solid, face)
			if err != nil {
				return nil, err
			}

			found := false
			for ci := range counts {
				if t.PlaneKeyEqual(counts[ci].plane, plane) {
					counts[ci].count += r
					r = counts[ci].count
					found = true
					break
				}
			}
			if !found {
				counts = append(counts, planeReflexCount{plane: plane, count: r, face: face})
			}

			if r > rmax {
				rmax = r
				cutFace = face
				haveCut = true
			}
		}

		if !haveCut || rmax == 0 {
			continue
		}

		pieces, err := t.SplitSolidByPlane(solid, cutFace.Plane())
		if err != nil {
			return nil, err
		}
		if len(pieces) == 0 {
			continue
		}
		work[i] = pieces[0]
		work = append(work, pieces[1:]...)
		i--
	}

	return work, nil
}
