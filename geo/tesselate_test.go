package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTesselateNonPlanarQuad covers spec §8 scenario 3: a quad with one
// vertex lifted out of plane splits into two triangles, either diagonal
// acceptable, each planar and together covering the original boundary.
func TestTesselateNonPlanarQuad(t *testing.T) {
	tol := DefaultEpsilon

	a := NewVector(0, 0, 0)
	b := NewVector(1, 0, 0)
	c := NewVector(1, 1, 0.1)
	d := NewVector(0, 1, 0)

	face := Face{
		Outer: []Edge{NewEdge(a, b), NewEdge(b, c), NewEdge(c, d), NewEdge(d, a)},
		Tex:   Texture{Name: "T"},
	}
	require.False(t, tol.IsPlanar(face))

	ears, reverseEars, err := tol.TesselateFace(&face, nil)
	require.NoError(t, err)
	assert.Empty(t, reverseEars)
	require.Len(t, ears, 1)

	// The second triangle is not returned as an ear: it is what remains of
	// face itself once clipping stops at three edges.
	triangles := append(ears, face)
	for _, ear := range triangles {
		assert.Len(t, ear.Outer, 3)
		assert.True(t, tol.IsPlanar(ear))
	}

	boundary := map[Vector]bool{a: true, b: true, c: true, d: true}
	seen := map[Vector]int{}
	for _, ear := range triangles {
		for _, e := range ear.Outer {
			if boundary[e.V1] {
				seen[e.V1]++
			}
		}
	}
	for v := range boundary {
		assert.Positive(t, seen[v], "boundary vertex %v should appear in the ear triangles", v)
	}
}

// TestTesselateDeadlockOnDegenerateFace exercises the non-convergence path:
// a cycle of collinear points has a zero normal, so every corner's
// convexity test evaluates to false and no ear is ever found — surfacing
// ErrTesselationDeadlock rather than looping forever.
func TestTesselateDeadlockOnDegenerateFace(t *testing.T) {
	tol := DefaultEpsilon
	v := func(x float64) Vector { return NewVector(x, 0, 0) }
	face := Face{Outer: []Edge{
		NewEdge(v(0), v(1)),
		NewEdge(v(1), v(2)),
		NewEdge(v(2), v(3)),
		NewEdge(v(3), v(0)),
	}}
	_, _, err := tol.TesselateFace(&face, nil)
	assert.ErrorIs(t, err, ErrTesselationDeadlock)
}
