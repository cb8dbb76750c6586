package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapVerticesAcrossSolids covers spec §8 scenario 6: two adjacent
// solids share a vertex that drifted by (0.01, 0, 0) between them.
// Snapping must make both solids reference the identical coordinate, even
// though they're different Solid values (cross-solid, not just
// within-one-solid, snapping).
func TestSnapVerticesAcrossSolids(t *testing.T) {
	a := NewVector(1, 1, 1)
	drifted := a.Add(NewVector(0.01, 0, 0))

	face1 := Face{Outer: []Edge{
		NewEdge(NewVector(0, 0, 0), NewVector(1, 0, 0)),
		NewEdge(NewVector(1, 0, 0), a),
		NewEdge(a, NewVector(0, 1, 0)),
		NewEdge(NewVector(0, 1, 0), NewVector(0, 0, 0)),
	}}
	face2 := Face{Outer: []Edge{
		NewEdge(NewVector(1, 0, 0), NewVector(2, 0, 0)),
		NewEdge(NewVector(2, 0, 0), drifted),
		NewEdge(drifted, NewVector(1, 1, 0)),
		NewEdge(NewVector(1, 1, 0), NewVector(1, 0, 0)),
	}}

	solids := []Solid{{Faces: []Face{face1}}, {Faces: []Face{face2}}}

	snapped := SnapVertices(solids)
	require.Len(t, snapped, 2)

	got1 := snapped[0].Faces[0].Outer[1].V2
	got2 := snapped[1].Faces[0].Outer[1].V2
	assert.Equal(t, got1, got2, "drifted vertex should snap to the same coordinate across solids")
}
