package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitFaceByPlaneTouchingVertexAvoidsOddCount covers spec §8 scenario
// 5: a face whose vertex lies exactly on the cut plane contributes to
// exactly one side per adjacent edge, so both sides end up with an even
// count of plane vertices and the cut completes without ErrOddCutCount.
func TestSplitFaceByPlaneTouchingVertexAvoidsOddCount(t *testing.T) {
	tol := DefaultEpsilon

	a := NewVector(0, 0, 0) // strictly behind the cut plane
	b := NewVector(2, 0, 0) // strictly in front
	c := NewVector(1, 2, 0) // exactly on the cut plane

	face := Face{Outer: []Edge{NewEdge(a, b), NewEdge(b, c), NewEdge(c, a)}}
	cutplane := NewPlane(NewVector(1, 0, 0), -1)

	cut, err := tol.SplitFaceByPlane(face, cutplane)
	require.NoError(t, err)
	assert.NotEmpty(t, cut.FrontEdges)
	assert.NotEmpty(t, cut.BackEdges)
}

func TestSplitFaceByPlaneDegenerateCycleOnPlane(t *testing.T) {
	tol := DefaultEpsilon
	a, b, c := NewVector(1, 0, 0), NewVector(1, 1, 0), NewVector(1, 0, 1)
	face := Face{Outer: []Edge{NewEdge(a, b), NewEdge(b, c), NewEdge(c, a)}}
	cutplane := NewPlane(NewVector(1, 0, 0), -1)

	_, err := tol.SplitFaceByPlane(face, cutplane)
	assert.ErrorIs(t, err, ErrDegenerateCutCycle)
}
