package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lShapeSolid builds an L-shaped prism (spec §8 scenario 2): a hexagonal
// footprint with one reflex corner, extruded from z=0 to z=1. It has
// exactly one concave vertical edge, at the reflex corner (1,1).
func lShapeSolid() Solid {
	footprint := []Vector{
		NewVector(0, 0, 0),
		NewVector(2, 0, 0),
		NewVector(2, 1, 0),
		NewVector(1, 1, 0),
		NewVector(1, 2, 0),
		NewVector(0, 2, 0),
	}
	n := len(footprint)

	at := func(v Vector, z float64) Vector { return NewVector(v.X, v.Y, z) }

	var top, bottom []Vector
	for _, p := range footprint {
		top = append(top, at(p, 1))
	}
	for i := n - 1; i >= 0; i-- {
		bottom = append(bottom, at(footprint[i], 0))
	}

	quad := func(vs ...Vector) Face {
		var edges []Edge
		for i := range vs {
			edges = append(edges, NewEdge(vs[i], vs[(i+1)%len(vs)]))
		}
		return Face{Outer: edges, Tex: Texture{Name: "WALL", UScale: 1, VScale: 1}}
	}

	faces := []Face{quad(top...), quad(bottom...)}
	for i := 0; i < n; i++ {
		p0, p1 := footprint[i], footprint[(i+1)%n]
		faces = append(faces, quad(at(p0, 0), at(p1, 0), at(p1, 1), at(p0, 1)))
	}

	return Solid{Faces: faces}
}

func TestDecomposeIntoConvexSplitsLShape(t *testing.T) {
	tol := DefaultEpsilon
	solid := lShapeSolid()

	totalReflex := 0
	for _, f := range solid.Faces {
		r, err := tol.ReflexEdges(solid, f)
		require.NoError(t, err)
		totalReflex += r
	}
	require.Greater(t, totalReflex, 0, "the L-shape must have at least one reflex edge before decomposing")

	pieces, err := tol.DecomposeIntoConvex([]Solid{solid})
	require.NoError(t, err)
	assert.Len(t, pieces, 2, "a single reflex edge should split the L into two convex pieces")

	for _, piece := range pieces {
		for _, f := range piece.Faces {
			r, err := tol.ReflexEdges(piece, f)
			require.NoError(t, err)
			assert.Zero(t, r, "every piece of a fully decomposed solid must be convex")
		}
	}
}
