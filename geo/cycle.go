package geo

// AssembleCycle pulls one closed cycle out of the unordered edge pool,
// oriented consistently with norm (spec §4.3). It picks an arbitrary start
// edge, then repeatedly extends the cycle with the pool edge whose V1
// matches the current head and which makes the smallest left-turning
// interior angle with the edge just placed, removing chosen edges from the
// pool. It returns the assembled cycle and the remaining pool.
//
// Fails with ErrIncompleteCycle if at any step no edge in the pool
// continues the cycle.
func (t Tolerance) AssembleCycle(pool []Edge, norm Vector) (cycle []Edge, remaining []Edge, err error) {
	if len(pool) == 0 {
		return nil, pool, ErrIncompleteCycle
	}

	remaining = append([]Edge(nil), pool...)
	start := remaining[0]
	remaining = remaining[1:]
	cycle = append(cycle, start)
	head := start.V2
	startV1 := start.V1

	for {
		if t.VectorEqual(head, startV1) {
			return cycle, remaining, nil
		}

		best := -1
		var bestAngle float64
		current := cycle[len(cycle)-1]
		for i, cand := range remaining {
			if !t.VectorEqual(cand.V1, head) {
				continue
			}
			angle := InternalAngle(cand.Vec(), current.RVec(), norm)
			if best == -1 || angle < bestAngle {
				best = i
				bestAngle = angle
			}
		}
		if best == -1 {
			return nil, pool, ErrIncompleteCycle
		}

		next := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		cycle = append(cycle, next)
		head = next.V2
	}
}
