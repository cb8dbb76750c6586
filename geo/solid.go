package geo

// Solid is an unordered collection of faces forming a closed polyhedron.
type Solid struct {
	Faces    []Face
	Visgroup int
	Index    int
}

// FindReverse searches every face of s for an edge that is the reverse of
// e, other than e itself (identified by face/cycle/position). It is the
// "search the containing solid" primitive the rest of the engine uses
// instead of back-pointers (spec §9).
func (t Tolerance) FindReverse(s *Solid, faceIdx, cycleIdx, edgeIdx int) (Edge, bool) {
	e := cycleAt(s.Faces[faceIdx], cycleIdx)[edgeIdx]
	for fi := range s.Faces {
		for ci, cycle := range s.Faces[fi].Cycles() {
			for ei, cand := range cycle {
				if fi == faceIdx && ci == cycleIdx && ei == edgeIdx {
					continue
				}
				if t.IsReverse(e, cand) {
					return cand, true
				}
			}
		}
	}
	return Edge{}, false
}

func cycleAt(f Face, idx int) []Edge {
	if idx == 0 {
		return f.Outer
	}
	return f.Inners[idx-1]
}

// IsWellFormed reports whether every directed edge of every face of s has
// exactly one reverse partner elsewhere in s (spec §3, §8): the closed,
// consistently-oriented-outward invariant checked after every
// transformation that rebuilds a solid.
func (t Tolerance) IsWellFormed(s Solid) bool {
	type key struct{ fi, ci, ei int }
	var all []key
	for fi, f := range s.Faces {
		for ci, cycle := range f.Cycles() {
			for ei := range cycle {
				all = append(all, key{fi, ci, ei})
			}
		}
	}
	edgeAt := func(k key) Edge {
		return cycleAt(s.Faces[k.fi], k.ci)[k.ei]
	}
	for _, k := range all {
		e := edgeAt(k)
		count := 0
		for _, other := range all {
			if other == k {
				continue
			}
			if t.IsReverse(e, edgeAt(other)) {
				count++
			}
		}
		if count != 1 {
			return false
		}
	}
	return true
}
