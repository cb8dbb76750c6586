package mapfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/scene"
)

func oneQuadScene(tex geo.Texture) *scene.Scene {
	face := geo.Face{
		Outer: []geo.Edge{
			geo.NewEdge(geo.NewVector(0, 0, 0), geo.NewVector(0, 1, 0)),
			geo.NewEdge(geo.NewVector(0, 1, 0), geo.NewVector(1, 1, 0)),
			geo.NewEdge(geo.NewVector(1, 1, 0), geo.NewVector(1, 0, 0)),
			geo.NewEdge(geo.NewVector(1, 0, 0), geo.NewVector(0, 0, 0)),
		},
		Tex: tex,
	}
	return &scene.Scene{
		Root: scene.Group{Solids: []geo.Solid{{Faces: []geo.Face{face}}}},
	}
}

func TestWrite220FormUsesBracketedAxes(t *testing.T) {
	tex := geo.Texture{Name: "FLOOR", UAxis: geo.NewVector(1, 0, 0), VAxis: geo.NewVector(0, 1, 0), UScale: 1, VScale: 1}
	sc := oneQuadScene(tex)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sc, 220, geo.DefaultEpsilon))

	out := buf.String()
	assert.Contains(t, out, "\"mapversion\" \"220\"")
	assert.Contains(t, out, "FLOOR")
	assert.Contains(t, out, "[ 1 0 0 0 ]")
}

func TestWrite100FormRejectsNonAxisAlignedProjection(t *testing.T) {
	tex := geo.Texture{Name: "FLOOR", UAxis: geo.NewVector(0.7, 0.7, 0), VAxis: geo.NewVector(0, 0, -1), UScale: 1, VScale: 1}
	sc := oneQuadScene(tex)

	var buf bytes.Buffer
	err := Write(&buf, sc, 100, geo.DefaultEpsilon)
	assert.ErrorIs(t, err, ErrUnsupportedTextureForLegacyMap)
}

func TestWrite100FormAcceptsAxisAlignedProjection(t *testing.T) {
	// Z is this face's dominant normal component, so the legacy table's
	// axis-aligned pair for it is (1,0,0)/(0,-1,0) regardless of sign.
	tex := geo.Texture{Name: "FLOOR", UAxis: geo.NewVector(1, 0, 0), VAxis: geo.NewVector(0, -1, 0), UScale: 1, VScale: 1}
	sc := oneQuadScene(tex)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sc, 100, geo.DefaultEpsilon))
	assert.True(t, strings.Contains(buf.String(), "FLOOR"))
}

func TestWrapLegacyShiftKeepsValueWithinTolerance(t *testing.T) {
	assert.Equal(t, 0.0, wrapLegacyShift(0))
	assert.InDelta(t, -15.0, wrapLegacyShift(17), 1e-9)
	assert.InDelta(t, 15.0, wrapLegacyShift(-17), 1e-9)
	assert.InDelta(t, 8.0, wrapLegacyShift(8), 1e-9)
}
