package geo

// GenerateFaces consumes an edge pool known to form one or more closed
// cycles oriented around norm, builds faces from it, and nests inner
// cycles (holes) inside their containing outer cycle (spec §4.4).
//
// Cycles assembled with fewer than three edges are discarded as
// degenerate. A cycle whose own Newell normal agrees with norm becomes an
// outer cycle (a new face); one whose normal opposes norm becomes an inner
// cycle, attached to the first outer cycle containing any one of its
// vertices. Fails with ErrOrphanInnerCycle if no outer cycle contains it.
func (t Tolerance) GenerateFaces(pool []Edge, norm Vector, tex Texture) ([]Face, error) {
	var outers []Face
	var inners [][]Edge

	remaining := pool
	for len(remaining) > 0 {
		cycle, rest, err := t.AssembleCycle(remaining, norm)
		if err != nil {
			return nil, err
		}
		remaining = rest
		if len(cycle) < 3 {
			continue
		}
		cn := NewellNormal(outerVertices(cycle))
		if cn.Dot(norm) > 0 {
			outers = append(outers, Face{Outer: cycle, Tex: tex})
		} else {
			inners = append(inners, cycle)
		}
	}

	for _, inner := range inners {
		placed := false
		for i := range outers {
			if t.FaceContainsAnyVertex(outers[i].Outer, norm, inner) {
				outers[i].Inners = append(outers[i].Inners, inner)
				placed = true
				break
			}
		}
		if !placed {
			return nil, ErrOrphanInnerCycle
		}
	}

	return outers, nil
}
