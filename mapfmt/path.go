package mapfmt

import (
	"fmt"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/scene"
)

// PathStyle selects how ExpandPath chains corner entities together. This
// is a feature original_source/map.cpp's MAPWritePath/MAPWriteCorner
// implement that spec.md's distillation compressed into one sentence
// (SPEC_FULL.md §6.2).
type PathStyle int

const (
	PathOneWay PathStyle = iota
	PathCircular
	PathPingPong
)

// PathCorner is one waypoint of a path entity before expansion: its
// position plus whatever extra key/values (wait time, speed) the source
// entity carried for that corner.
type PathCorner struct {
	Origin    geo.Vector
	KeyValues []scene.KeyValue
}

// ExpandPath turns an ordered list of corners into individual path_corner
// entities named "<baseName>_<n>", linked by target/targetname chains
// according to style:
//
//   - PathOneWay: corner i targets corner i+1; the last corner has no target.
//   - PathCircular: corner i targets corner (i+1) mod n, closing the loop.
//   - PathPingPong: a forward chain to the last corner, then a second,
//     distinctly-named chain back through the interior corners to the
//     first — the classic func_train back-and-forth, expressed as one
//     continuous closed chain of entities rather than a direction flag.
func ExpandPath(baseName string, style PathStyle, corners []PathCorner) []scene.Entity {
	if len(corners) == 0 {
		return nil
	}
	n := len(corners)

	makeEntity := func(name string, c PathCorner) scene.Entity {
		e := scene.Entity{Classname: "path_corner", KeyValues: append([]scene.KeyValue(nil), c.KeyValues...)}
		e.SetValue("origin", fmt.Sprintf("%g %g %g", c.Origin.X, c.Origin.Y, c.Origin.Z))
		e.SetValue("targetname", name)
		return e
	}

	fwdName := func(i int) string { return fmt.Sprintf("%s_%d", baseName, i+1) }

	switch style {
	case PathCircular:
		entities := make([]scene.Entity, n)
		for i, c := range corners {
			e := makeEntity(fwdName(i), c)
			e.SetValue("target", fwdName((i+1)%n))
			entities[i] = e
		}
		return entities

	case PathPingPong:
		if n < 2 {
			return []scene.Entity{makeEntity(fwdName(0), corners[0])}
		}
		bwdName := func(i int) string { return fmt.Sprintf("%s_b%d", baseName, i) }

		entities := make([]scene.Entity, 0, 2*n-2)
		for i, c := range corners {
			e := makeEntity(fwdName(i), c)
			switch {
			case i+1 < n:
				e.SetValue("target", fwdName(i+1))
			case n > 2:
				e.SetValue("target", bwdName(n-2))
			default:
				e.SetValue("target", fwdName(0))
			}
			entities = append(entities, e)
		}
		for i := n - 2; i >= 1; i-- {
			e := makeEntity(bwdName(i), corners[i])
			if i-1 >= 1 {
				e.SetValue("target", bwdName(i-1))
			} else {
				e.SetValue("target", fwdName(0))
			}
			entities = append(entities, e)
		}
		return entities

	default: // PathOneWay
		entities := make([]scene.Entity, n)
		for i, c := range corners {
			e := makeEntity(fwdName(i), c)
			if i+1 < n {
				e.SetValue("target", fwdName(i+1))
			}
			entities[i] = e
		}
		return entities
	}
}
