package geo

import "math"

// Face is a planar polygon: an outer edge cycle plus zero or more inner
// cycles (holes), carrying one texture projection.
type Face struct {
	Outer  []Edge
	Inners [][]Edge
	Tex    Texture
	Index  int
}

// NewFace builds a face from an outer cycle and texture.
func NewFace(outer []Edge, tex Texture) Face {
	return Face{Outer: outer, Tex: tex}
}

// Normal computes the face's normal via Newell's formula over the outer
// cycle's vertices, in edge order.
func (f Face) Normal() Vector {
	return NewellNormal(outerVertices(f.Outer))
}

func outerVertices(cycle []Edge) []Vector {
	verts := make([]Vector, len(cycle))
	for i, e := range cycle {
		verts[i] = e.V1
	}
	return verts
}

// Plane computes the face's best-fit supporting plane: the normal from
// Newell's formula, and a constant at the midpoint between the nearest and
// farthest outer vertex along that normal. Using the midpoint of extremes
// (rather than, say, the first vertex) keeps the plane centered even when
// the face is slightly non-planar, which matters because face_is_planar
// and the cutter both test every vertex against this same plane.
func (f Face) Plane() Plane {
	n := f.Normal()
	dmin, dmax := math.MaxFloat64, -math.MaxFloat64
	for _, e := range f.Outer {
		d := -n.Dot(e.V1)
		if d > dmax {
			dmax = d
		}
		if d < dmin {
			dmin = d
		}
	}
	return Plane{Norm: n, D: (dmin + dmax) / 2}
}

// IsPlanar reports whether every outer vertex lies on the face's own plane
// within tolerance (spec §3, §4.1).
func (t Tolerance) IsPlanar(f Face) bool {
	p := f.Plane()
	for _, e := range f.Outer {
		if !t.VectorIsIn(e.V1, p) {
			return false
		}
	}
	return true
}

// IsReverseOf reports whether a's outer cycle is element-for-element the
// reverse of b's outer cycle (spec §4.1): find the edge of b that reverses
// a's first edge (scanning b backward from its end), then walk a forward
// and b backward from there, confirming every edge of a reverses the
// matching edge of b.
func (t Tolerance) IsReverseOf(a, b Face) bool {
	if len(a.Outer) == 0 || len(a.Outer) != len(b.Outer) {
		return false
	}
	n := len(a.Outer)

	start := -1
	for i := 0; i < n; i++ {
		if t.IsReverse(a.Outer[0], b.Outer[n-1-i]) {
			start = n - 1 - i
			break
		}
	}
	if start == -1 {
		return false
	}

	rje := start
	for i := 0; i < n; i++ {
		if !t.IsReverse(a.Outer[i], b.Outer[rje]) {
			return false
		}
		rje--
		if rje < 0 {
			rje = n - 1
		}
	}
	return true
}

// Cycles returns the outer cycle followed by every inner cycle.
func (f Face) Cycles() [][]Edge {
	all := make([][]Edge, 0, 1+len(f.Inners))
	all = append(all, f.Outer)
	all = append(all, f.Inners...)
	return all
}
