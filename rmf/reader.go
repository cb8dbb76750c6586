package rmf

import (
	"fmt"
	"io"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/scene"
)

// Read parses a binary scene file from r (spec §6.1). Worldspawn's
// classname must be "worldspawn"; any other discriminator mismatch fails
// with ErrInvalidHeader. Truncated input fails with ErrPrematureInput.
func Read(r io.Reader) (*scene.Scene, error) {
	if err := skip(r, 4); err != nil {
		return nil, err
	}
	var m [3]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, ErrPrematureInput
	}
	if string(m[:]) != magic {
		return nil, ErrInvalidHeader
	}

	visCount, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	sc := &scene.Scene{}
	for i := int32(0); i < visCount; i++ {
		vg, err := readVisGroup(r)
		if err != nil {
			return nil, err
		}
		sc.VisGroups = append(sc.VisGroups, vg)
	}

	disc, err := readString1(r)
	if err != nil {
		return nil, err
	}
	if disc != discWorld {
		return nil, ErrInvalidHeader
	}

	classname, kvs, root, err := readWorld(r)
	if err != nil {
		return nil, err
	}
	if classname != "worldspawn" {
		return nil, ErrInvalidHeader
	}
	sc.Classname = classname
	sc.KeyValues = kvs
	sc.Root = root
	return sc, nil
}

func readVisGroup(r io.Reader) (scene.VisGroup, error) {
	name, err := readStringFixed(r, visGroupNameLen)
	if err != nil {
		return scene.VisGroup{}, err
	}
	color, err := readColor(r)
	if err != nil {
		return scene.VisGroup{}, err
	}
	if err := skip(r, 1); err != nil {
		return scene.VisGroup{}, err
	}
	var visible [1]byte
	if _, err := io.ReadFull(r, visible[:]); err != nil {
		return scene.VisGroup{}, ErrPrematureInput
	}
	if err := skip(r, 3); err != nil {
		return scene.VisGroup{}, err
	}
	index, err := readInt32(r)
	if err != nil {
		return scene.VisGroup{}, err
	}
	return scene.VisGroup{Index: int(index), Name: name, Color: color, Visible: visible[0] != 0}, nil
}

func readKeyValues(r io.Reader) ([]scene.KeyValue, error) {
	n, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	kvs := make([]scene.KeyValue, 0, n)
	for i := int32(0); i < n; i++ {
		k, err := readString1(r)
		if err != nil {
			return nil, err
		}
		v, err := readString1(r)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, scene.KeyValue{Key: k, Value: v})
	}
	return kvs, nil
}

// readWorld reads worldspawn's own entity definition (padded 12 bytes per
// spec) followed by its direct children.
func readWorld(r io.Reader) (classname string, kvs []scene.KeyValue, root scene.Group, err error) {
	classname, err = readString1(r)
	if err != nil {
		return "", nil, scene.Group{}, err
	}
	kvs, err = readKeyValues(r)
	if err != nil {
		return "", nil, scene.Group{}, err
	}
	if err = skip(r, 12); err != nil {
		return "", nil, scene.Group{}, err
	}
	childCount, err := readInt32(r)
	if err != nil {
		return "", nil, scene.Group{}, err
	}
	root, err = readChildren(r, childCount)
	Log.Debug("worldspawn %q: %d direct children", classname, childCount)
	return classname, kvs, root, err
}

func readChildren(r io.Reader, n int32) (scene.Group, error) {
	var g scene.Group
	for i := int32(0); i < n; i++ {
		disc, err := readString1(r)
		if err != nil {
			return scene.Group{}, err
		}
		switch disc {
		case discSolid:
			s, err := readSolid(r)
			if err != nil {
				return scene.Group{}, err
			}
			g.Solids = append(g.Solids, s)
		case discEntity:
			e, err := readEntity(r)
			if err != nil {
				return scene.Group{}, err
			}
			g.Entities = append(g.Entities, e)
		case discGroup:
			child, err := readGroup(r)
			if err != nil {
				return scene.Group{}, err
			}
			g.Groups = append(g.Groups, child)
		default:
			return scene.Group{}, ErrInvalidHeader
		}
	}
	return g, nil
}

func readGroup(r io.Reader) (scene.Group, error) {
	visgroup, err := readInt32(r)
	if err != nil {
		return scene.Group{}, err
	}
	index, err := readInt32(r)
	if err != nil {
		return scene.Group{}, err
	}
	childCount, err := readInt32(r)
	if err != nil {
		return scene.Group{}, err
	}
	g, err := readChildren(r, childCount)
	if err != nil {
		return scene.Group{}, err
	}
	g.Visgroup = int(visgroup)
	g.Index = int(index)
	return g, nil
}

func readEntity(r io.Reader) (scene.Entity, error) {
	classname, err := readString1(r)
	if err != nil {
		return scene.Entity{}, err
	}
	kvs, err := readKeyValues(r)
	if err != nil {
		return scene.Entity{}, err
	}
	if err := skip(r, 14); err != nil {
		return scene.Entity{}, err
	}
	loc, err := readVec3(r)
	if err != nil {
		return scene.Entity{}, err
	}
	if err := skip(r, 4); err != nil {
		return scene.Entity{}, err
	}
	visgroup, err := readInt32(r)
	if err != nil {
		return scene.Entity{}, err
	}
	index, err := readInt32(r)
	if err != nil {
		return scene.Entity{}, err
	}
	solidCount, err := readInt32(r)
	if err != nil {
		return scene.Entity{}, err
	}

	var solids []geo.Solid
	for i := int32(0); i < solidCount; i++ {
		disc, err := readString1(r)
		if err != nil {
			return scene.Entity{}, err
		}
		if disc != discSolid {
			return scene.Entity{}, ErrInvalidHeader
		}
		s, err := readSolid(r)
		if err != nil {
			return scene.Entity{}, err
		}
		solids = append(solids, s)
	}

	e := scene.Entity{Classname: classname, KeyValues: kvs, Solids: solids, Visgroup: int(visgroup), Index: int(index)}
	e.SetValue("origin", fmt.Sprintf("%g %g %g", loc.X, loc.Y, loc.Z))
	Log.Debug("entity %d %q: %d solids", index, classname, solidCount)
	return e, nil
}

func readSolid(r io.Reader) (geo.Solid, error) {
	visgroup, err := readInt32(r)
	if err != nil {
		return geo.Solid{}, err
	}
	index, err := readInt32(r)
	if err != nil {
		return geo.Solid{}, err
	}
	faceCount, err := readInt32(r)
	if err != nil {
		return geo.Solid{}, err
	}
	faces := make([]geo.Face, 0, faceCount)
	for i := int32(0); i < faceCount; i++ {
		f, err := readFace(r)
		if err != nil {
			return geo.Solid{}, err
		}
		faces = append(faces, f)
	}
	Log.Debug("solid %d: %d faces", index, faceCount)
	return geo.Solid{Faces: faces, Visgroup: int(visgroup), Index: int(index)}, nil
}

// readFace reads one face: texture, projection, then its vertices stored
// in reverse order relative to the in-memory edge cycle, followed by three
// padding vertices reproducing the first three stored vertices (spec §6.1).
func readFace(r io.Reader) (geo.Face, error) {
	texName, err := readStringFixed(r, textureNameLen)
	if err != nil {
		return geo.Face{}, err
	}
	uaxis, err := readVec3(r)
	if err != nil {
		return geo.Face{}, err
	}
	ushift, err := readFloat32(r)
	if err != nil {
		return geo.Face{}, err
	}
	vaxis, err := readVec3(r)
	if err != nil {
		return geo.Face{}, err
	}
	vshift, err := readFloat32(r)
	if err != nil {
		return geo.Face{}, err
	}
	rotation, err := readFloat32(r)
	if err != nil {
		return geo.Face{}, err
	}
	uscale, err := readFloat32(r)
	if err != nil {
		return geo.Face{}, err
	}
	vscale, err := readFloat32(r)
	if err != nil {
		return geo.Face{}, err
	}

	n, err := readInt32(r)
	if err != nil {
		return geo.Face{}, err
	}
	stored := make([]geo.Vector, n)
	for i := range stored {
		if stored[i], err = readVec3(r); err != nil {
			return geo.Face{}, err
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := readVec3(r); err != nil {
			return geo.Face{}, err
		}
	}

	count := int(n)
	inMemory := make([]geo.Vector, count)
	for i := 0; i < count; i++ {
		inMemory[i] = stored[count-1-i]
	}
	outer := make([]geo.Edge, count)
	for i := 0; i < count; i++ {
		outer[i] = geo.NewEdge(inMemory[i], inMemory[(i+1)%count])
	}

	tex := geo.Texture{
		Name:     texName,
		UAxis:    uaxis,
		VAxis:    vaxis,
		UShift:   ushift,
		VShift:   vshift,
		UScale:   uscale,
		VScale:   vscale,
		Rotation: rotation,
	}
	return geo.Face{Outer: outer, Tex: tex}, nil
}
