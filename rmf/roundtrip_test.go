package rmf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/scene"
)

// buildTestScene constructs a small scene exercising visgroups, a nested
// group, an entity with solids, and a worldspawn solid, for the round-trip
// property in spec §8: "loading then saving... reproduces the scene's
// semantic content".
func buildTestScene() *scene.Scene {
	tex := geo.Texture{Name: "WALL1", UAxis: geo.NewVector(1, 0, 0), VAxis: geo.NewVector(0, 1, 0), UScale: 1, VScale: 1}
	face := func(v0, v1, v2 geo.Vector) geo.Face {
		return geo.Face{Outer: []geo.Edge{
			geo.NewEdge(v0, v1), geo.NewEdge(v1, v2), geo.NewEdge(v2, v0),
		}, Tex: tex}
	}
	worldSolid := geo.Solid{
		Index: 1,
		Faces: []geo.Face{
			face(geo.NewVector(0, 0, 0), geo.NewVector(1, 0, 0), geo.NewVector(0, 1, 0)),
		},
	}

	entity := scene.Entity{
		Classname: "light",
		Index:     5,
		Visgroup:  1,
		Solids:    []geo.Solid{worldSolid},
	}
	entity.SetValue("origin", "4 5 6")

	nested := scene.Group{
		Index:  2,
		Solids: []geo.Solid{worldSolid},
	}

	sc := &scene.Scene{
		VisGroups: []scene.VisGroup{{Index: 1, Name: "lights", Color: [3]byte{255, 0, 0}, Visible: true}},
		Classname: "worldspawn",
		Root: scene.Group{
			Solids:   []geo.Solid{worldSolid},
			Entities: []scene.Entity{entity},
			Groups:   []scene.Group{nested},
		},
	}
	sc.SetValue("wad", "wad1.wad;wad2.wad")
	return sc
}

func TestRoundTripPreservesSemanticContent(t *testing.T) {
	sc := buildTestScene()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sc))

	got, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, sc.Classname, got.Classname)
	assert.Equal(t, sc.Value("wad"), got.Value("wad"))
	require.Len(t, got.VisGroups, 1)
	assert.Equal(t, sc.VisGroups[0].Name, got.VisGroups[0].Name)
	assert.Equal(t, sc.VisGroups[0].Visible, got.VisGroups[0].Visible)

	require.Len(t, got.Root.Solids, 1)
	assert.Equal(t, sc.Root.Solids[0].Index, got.Root.Solids[0].Index)
	require.Len(t, got.Root.Solids[0].Faces, 1)
	assert.Equal(t, "WALL1", got.Root.Solids[0].Faces[0].Tex.Name)

	require.Len(t, got.Root.Entities, 1)
	assert.Equal(t, "light", got.Root.Entities[0].Classname)
	assert.Equal(t, "4 5 6", got.Root.Entities[0].Value("origin"))
	require.Len(t, got.Root.Entities[0].Solids, 1)

	require.Len(t, got.Root.Groups, 1)
	assert.Equal(t, 2, got.Root.Groups[0].Index)
	require.Len(t, got.Root.Groups[0].Solids, 1)
}

func TestReadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 4))
	buf.WriteString("XXX")
	_, err := Read(&buf)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestReadRejectsTruncatedInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, buildTestScene()))
	truncated := buf.Bytes()[:buf.Len()/2]
	_, err := Read(bytes.NewReader(truncated))
	assert.Error(t, err)
}
