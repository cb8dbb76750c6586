package geo

// UniteCoplanarFaces merges every group of coplanar, identically-oriented
// faces in solid into a single face per plane (spec §4.10; convex solids
// only). For each plane found, the donor faces' edges are pooled, any
// reverse-edge pair in the pool is cancelled (the shared interior edge
// between two faces being merged), and the remainder is rebuilt into one
// or more faces with GenerateFaces using the first face's texture.
// Consecutive collinear edges left over from the merge (an edge that used
// to end at a now-interior vertex) are then coalesced. conflict reports
// whether any merged group mixed textures; callers log a warning for it
// (see scene.Walker) rather than treating it as an error.
func (t Tolerance) UniteCoplanarFaces(solid Solid) (result Solid, conflict bool, err error) {
	faces := append([]Face(nil), solid.Faces...)
	var newFaces []Face

	i := 0
	for i < len(faces) {
		iface := faces[i]
		plane := iface.Plane()

		var pool []Edge
		rebuild := false

		for j := i + 1; j < len(faces); j++ {
			jface := faces[j]
			if jface.allEdgesIn(t, plane) && jface.Normal().Dot(plane.Norm) > 0 {
				pool = append(pool, jface.Outer...)
				for _, inner := range jface.Inners {
					pool = append(pool, inner...)
				}
				rebuild = true
				if jface.Tex != iface.Tex {
					conflict = true
				}
			}
		}

		if !rebuild {
			i++
			continue
		}

		pool = append(pool, iface.Outer...)
		for _, inner := range iface.Inners {
			pool = append(pool, inner...)
		}
		pool = removeReversePairs(t, pool)

		united, genErr := t.GenerateFaces(pool, plane.Norm, iface.Tex)
		if genErr != nil {
			return Solid{}, false, genErr
		}
		for k := range united {
			mergeCollinearEdges(t, &united[k])
		}
		newFaces = append(newFaces, united...)

		kept := faces[:0:0]
		for _, f := range faces {
			if !f.allEdgesIn(t, plane) {
				kept = append(kept, f)
			}
		}
		faces = kept
		i = 0
	}

	return Solid{
		Faces:    append(faces, newFaces...),
		Visgroup: solid.Visgroup,
		Index:    solid.Index,
	}, conflict, nil
}

// removeReversePairs repeatedly cancels any reverse-edge pair found
// anywhere in edges until none remain.
func removeReversePairs(t Tolerance, edges []Edge) []Edge {
	for i := 0; i < len(edges); {
		removed := false
		for j := i + 1; j < len(edges); j++ {
			if t.IsReverse(edges[i], edges[j]) {
				edges = append(edges[:j], edges[j+1:]...)
				edges = append(edges[:i], edges[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			i++
		}
	}
	return edges
}

// mergeCollinearEdges coalesces consecutive collinear edges in every cycle
// of f, in place.
func mergeCollinearEdges(t Tolerance, f *Face) {
	f.Outer = mergeCollinearCycle(t, f.Outer)
	for i := range f.Inners {
		f.Inners[i] = mergeCollinearCycle(t, f.Inners[i])
	}
}

func mergeCollinearCycle(t Tolerance, cycle []Edge) []Edge {
	for {
		merged := false
		for i := 0; i < len(cycle); i++ {
			j := (i + 1) % len(cycle)
			if i == j {
				break
			}
			if t.EdgesCollinear(cycle[i], cycle[j]) {
				cycle[i].V2 = cycle[j].V2
				cycle = removeEdgeAt(cycle, j)
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}
	return cycle
}
