package rmf

import (
	"io"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/scene"
)

// Write serialises sc as a binary scene file (spec §6.1), the exact
// inverse of Read.
func Write(w io.Writer, sc *scene.Scene) error {
	if err := padding(w, 4); err != nil {
		return err
	}
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}

	if err := writeInt32(w, int32(len(sc.VisGroups))); err != nil {
		return err
	}
	for _, vg := range sc.VisGroups {
		if err := writeVisGroup(w, vg); err != nil {
			return err
		}
	}

	if err := writeString1(w, discWorld); err != nil {
		return err
	}
	return writeWorld(w, sc)
}

func writeVisGroup(w io.Writer, vg scene.VisGroup) error {
	if err := writeStringFixed(w, vg.Name, visGroupNameLen); err != nil {
		return err
	}
	if err := writeColor(w, vg.Color); err != nil {
		return err
	}
	if err := padding(w, 1); err != nil {
		return err
	}
	visible := byte(0)
	if vg.Visible {
		visible = 1
	}
	if _, err := w.Write([]byte{visible}); err != nil {
		return err
	}
	if err := padding(w, 3); err != nil {
		return err
	}
	return writeInt32(w, int32(vg.Index))
}

func writeKeyValues(w io.Writer, kvs []scene.KeyValue) error {
	if err := writeInt32(w, int32(len(kvs))); err != nil {
		return err
	}
	for _, kv := range kvs {
		if err := writeString1(w, kv.Key); err != nil {
			return err
		}
		if err := writeString1(w, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeWorld(w io.Writer, sc *scene.Scene) error {
	if err := writeString1(w, sc.Classname); err != nil {
		return err
	}
	if err := writeKeyValues(w, sc.KeyValues); err != nil {
		return err
	}
	if err := padding(w, 12); err != nil {
		return err
	}
	return writeChildren(w, &sc.Root)
}

func childCount(g *scene.Group) int32 {
	return int32(len(g.Solids) + len(g.Entities) + len(g.Groups))
}

func writeChildren(w io.Writer, g *scene.Group) error {
	if err := writeInt32(w, childCount(g)); err != nil {
		return err
	}
	for _, s := range g.Solids {
		if err := writeString1(w, discSolid); err != nil {
			return err
		}
		if err := writeSolid(w, s); err != nil {
			return err
		}
	}
	for _, e := range g.Entities {
		if err := writeString1(w, discEntity); err != nil {
			return err
		}
		if err := writeEntity(w, e); err != nil {
			return err
		}
	}
	for i := range g.Groups {
		if err := writeString1(w, discGroup); err != nil {
			return err
		}
		if err := writeGroup(w, &g.Groups[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeGroup(w io.Writer, g *scene.Group) error {
	if err := writeInt32(w, int32(g.Visgroup)); err != nil {
		return err
	}
	if err := writeInt32(w, int32(g.Index)); err != nil {
		return err
	}
	return writeChildren(w, g)
}

func writeEntity(w io.Writer, e scene.Entity) error {
	if err := writeString1(w, e.Classname); err != nil {
		return err
	}
	if err := writeKeyValues(w, e.KeyValues); err != nil {
		return err
	}
	if err := padding(w, 14); err != nil {
		return err
	}
	loc := parseOrigin(e.Value("origin"))
	if err := writeVec3(w, loc); err != nil {
		return err
	}
	if err := padding(w, 4); err != nil {
		return err
	}
	if err := writeInt32(w, int32(e.Visgroup)); err != nil {
		return err
	}
	if err := writeInt32(w, int32(e.Index)); err != nil {
		return err
	}
	if err := writeInt32(w, int32(len(e.Solids))); err != nil {
		return err
	}
	for _, s := range e.Solids {
		if err := writeString1(w, discSolid); err != nil {
			return err
		}
		if err := writeSolid(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeSolid(w io.Writer, s geo.Solid) error {
	if err := writeInt32(w, int32(s.Visgroup)); err != nil {
		return err
	}
	if err := writeInt32(w, int32(s.Index)); err != nil {
		return err
	}
	if err := writeInt32(w, int32(len(s.Faces))); err != nil {
		return err
	}
	for _, f := range s.Faces {
		if err := writeFace(w, f); err != nil {
			return err
		}
	}
	return nil
}

func writeFace(w io.Writer, f geo.Face) error {
	if err := writeStringFixed(w, f.Tex.Name, textureNameLen); err != nil {
		return err
	}
	if err := writeVec3(w, f.Tex.UAxis); err != nil {
		return err
	}
	if err := writeFloat32(w, f.Tex.UShift); err != nil {
		return err
	}
	if err := writeVec3(w, f.Tex.VAxis); err != nil {
		return err
	}
	if err := writeFloat32(w, f.Tex.VShift); err != nil {
		return err
	}
	if err := writeFloat32(w, f.Tex.Rotation); err != nil {
		return err
	}
	if err := writeFloat32(w, f.Tex.UScale); err != nil {
		return err
	}
	if err := writeFloat32(w, f.Tex.VScale); err != nil {
		return err
	}

	count := len(f.Outer)
	stored := make([]geo.Vector, count)
	for i, e := range f.Outer {
		stored[count-1-i] = e.V1
	}

	if err := writeInt32(w, int32(count)); err != nil {
		return err
	}
	for _, v := range stored {
		if err := writeVec3(w, v); err != nil {
			return err
		}
	}
	for i := 0; i < 3; i++ {
		v := geo.Vector{}
		if i < count {
			v = stored[i]
		}
		if err := writeVec3(w, v); err != nil {
			return err
		}
	}
	return nil
}
