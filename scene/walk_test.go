package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushfix/brushfix/geo"
)

func unitCubeSolidForWalkTest() geo.Solid {
	tex := geo.Texture{Name: "A"}
	quad := func(v0, v1, v2, v3 geo.Vector) geo.Face {
		return geo.Face{Outer: []geo.Edge{
			geo.NewEdge(v0, v1), geo.NewEdge(v1, v2), geo.NewEdge(v2, v3), geo.NewEdge(v3, v0),
		}, Tex: tex}
	}
	v := func(x, y, z float64) geo.Vector { return geo.NewVector(x, y, z) }
	return geo.Solid{Faces: []geo.Face{
		quad(v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)),
		quad(v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)),
		quad(v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)),
		quad(v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0)),
		quad(v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)),
		quad(v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)),
	}}
}

// TestWalkerFullPipelineLeavesUnitCubeUnchanged covers spec §8 scenario 1
// end to end through Walker.Walk rather than calling the geo package
// directly.
func TestWalkerFullPipelineLeavesUnitCubeUnchanged(t *testing.T) {
	sc := &Scene{Root: Group{Solids: []geo.Solid{unitCubeSolidForWalkTest()}}}

	w := NewWalker(Options{
		Tesselate: true,
		Decompose: true,
		Unite:     true,
		Tolerance: geo.DefaultEpsilon,
	}, nil)
	w.Walk(sc)

	require.Len(t, sc.Root.Solids, 1)
	assert.Len(t, sc.Root.Solids[0].Faces, 6)
	for _, f := range sc.Root.Solids[0].Faces {
		assert.Equal(t, "A", f.Tex.Name)
	}
}

func TestWalkerRegeneratesMissingTextures(t *testing.T) {
	solid := unitCubeSolidForWalkTest()
	solid.Faces[0].Tex.Name = ""
	sc := &Scene{Root: Group{Solids: []geo.Solid{solid}}}

	w := NewWalker(Options{Tolerance: geo.DefaultEpsilon}, nil)
	w.Walk(sc)

	assert.Equal(t, "trigger", sc.Root.Solids[0].Faces[0].Tex.Name)
}
