package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniteCoplanarFacesMergesSharedEdge covers spec §8 scenario 4: a top
// face represented as two adjacent rectangles sharing an edge, both
// textured "T", unites into a single quad and the shared edge (and its
// reverse) are gone.
func TestUniteCoplanarFacesMergesSharedEdge(t *testing.T) {
	tol := DefaultEpsilon
	tex := Texture{Name: "T"}

	v := func(x, y float64) Vector { return NewVector(x, y, 1) }

	// Left rectangle: (0,0)-(1,0)-(1,1)-(0,1); right rectangle shares the
	// edge (1,0)-(1,1) in reverse: (1,0)-(2,0)-(2,1)-(1,1).
	left := Face{Outer: []Edge{
		NewEdge(v(0, 0), v(1, 0)),
		NewEdge(v(1, 0), v(1, 1)),
		NewEdge(v(1, 1), v(0, 1)),
		NewEdge(v(0, 1), v(0, 0)),
	}, Tex: tex}
	right := Face{Outer: []Edge{
		NewEdge(v(1, 1), v(1, 0)),
		NewEdge(v(1, 0), v(2, 0)),
		NewEdge(v(2, 0), v(2, 1)),
		NewEdge(v(2, 1), v(1, 1)),
	}, Tex: tex}

	solid := Solid{Faces: []Face{left, right}}

	united, conflict, err := tol.UniteCoplanarFaces(solid)
	require.NoError(t, err)
	assert.False(t, conflict)
	require.Len(t, united.Faces, 1)

	merged := united.Faces[0]
	assert.Equal(t, "T", merged.Tex.Name)
	assert.Len(t, merged.Outer, 4)

	for _, e := range merged.Outer {
		assert.NotEqual(t, v(1, 0), e.V1)
		assert.NotEqual(t, v(1, 1), e.V2)
	}
}

// TestUniteCoplanarFacesIdempotent covers spec §8's coplanar union
// idempotence property: running unite twice gives the same faces as once.
func TestUniteCoplanarFacesIdempotent(t *testing.T) {
	tol := DefaultEpsilon
	solid := unitCubeSolid()

	once, _, err := tol.UniteCoplanarFaces(solid)
	require.NoError(t, err)

	twice, _, err := tol.UniteCoplanarFaces(once)
	require.NoError(t, err)

	assert.Len(t, twice.Faces, len(once.Faces))
}
