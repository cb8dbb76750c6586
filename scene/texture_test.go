package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brushfix/brushfix/geo"
)

func TestRegenerateTextureFillsOnlyMissingNames(t *testing.T) {
	kept := geo.Texture{Name: "WALL1"}

	solid := geo.Solid{Faces: []geo.Face{
		{
			Outer: []geo.Edge{
				geo.NewEdge(geo.NewVector(0, 0, 0), geo.NewVector(1, 0, 0)),
				geo.NewEdge(geo.NewVector(1, 0, 0), geo.NewVector(1, 1, 0)),
				geo.NewEdge(geo.NewVector(1, 1, 0), geo.NewVector(0, 0, 0)),
			},
			Tex: kept,
		},
		{
			Outer: []geo.Edge{
				geo.NewEdge(geo.NewVector(0, 0, 1), geo.NewVector(1, 0, 1)),
				geo.NewEdge(geo.NewVector(1, 0, 1), geo.NewVector(1, 1, 1)),
				geo.NewEdge(geo.NewVector(1, 1, 1), geo.NewVector(0, 0, 1)),
			},
			Tex: geo.Texture{Name: geo.NullTextureName},
		},
	}}

	regen := RegenerateTexture(solid)
	assert.Equal(t, "WALL1", regen.Faces[0].Tex.Name, "an already-textured face is left alone")
	assert.Equal(t, "trigger", regen.Faces[1].Tex.Name, "a NULL-textured face gets the default")
}
