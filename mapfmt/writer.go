// Package mapfmt writes the textual ".map" format described in spec.md
// §6.2: a brace-delimited root entity block (mapversion, optional wad,
// worldspawn keys, all solids), followed by one block per other entity.
// Write-only: this format is never read back by this tool.
package mapfmt

import (
	"fmt"
	"io"
	"math"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/scene"
)

// legacyShiftTolerance is the second of the two intentional non-epsilon
// tolerances the engine uses (spec §9): legacy-form shifts wrap into
// [-16, 16] the way the old WAD texture convention assumed a 16-unit tile.
const legacyShiftTolerance = 16.0

// Write emits sc as a ".map" file using the given projection form (100 or
// 220). tol is used only to recognize axis-aligned projections when
// writing the legacy 100 form.
func Write(w io.Writer, sc *scene.Scene, version int, tol geo.Tolerance) error {
	solids, entities := flatten(&sc.Root)

	fmt.Fprintln(w, "{")
	fmt.Fprintf(w, "\"mapversion\" \"%d\"\n", version)
	if wad := sc.Value("wad"); wad != "" {
		fmt.Fprintf(w, "\"wad\" \"%s\"\n", wad)
	}
	for _, kv := range sc.KeyValues {
		if kv.Key == "mapversion" || kv.Key == "wad" {
			continue
		}
		fmt.Fprintf(w, "\"%s\" \"%s\"\n", kv.Key, kv.Value)
	}
	for _, s := range solids {
		if err := writeSolid(w, s, version, tol); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "}")

	for _, e := range entities {
		fmt.Fprintln(w, "{")
		fmt.Fprintf(w, "\"classname\" \"%s\"\n", e.Classname)
		for _, kv := range e.KeyValues {
			fmt.Fprintf(w, "\"%s\" \"%s\"\n", kv.Key, kv.Value)
		}
		for _, s := range e.Solids {
			if err := writeSolid(w, s, version, tol); err != nil {
				return err
			}
		}
		fmt.Fprintln(w, "}")
	}
	return nil
}

// flatten collects every solid and entity reachable from g, including
// those nested in child groups — the map format has no group concept, so
// groups exist only as an editor-side organizing layer that collapses on
// write.
func flatten(g *scene.Group) ([]geo.Solid, []scene.Entity) {
	solids := append([]geo.Solid(nil), g.Solids...)
	entities := append([]scene.Entity(nil), g.Entities...)
	for i := range g.Groups {
		s, e := flatten(&g.Groups[i])
		solids = append(solids, s...)
		entities = append(entities, e...)
	}
	return solids, entities
}

func writeSolid(w io.Writer, s geo.Solid, version int, tol geo.Tolerance) error {
	fmt.Fprintln(w, "{")
	for _, f := range s.Faces {
		if err := writeFace(w, f, version, tol); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "}")
	return nil
}

// facePlanePoints returns the first three vertices of f's reverse
// iteration order — the face's supporting plane in the standard
// three-point convention (spec §6.2).
func facePlanePoints(f geo.Face) [3]geo.Vector {
	n := len(f.Outer)
	stored := make([]geo.Vector, n)
	for i, e := range f.Outer {
		stored[n-1-i] = e.V1
	}
	var pts [3]geo.Vector
	for i := 0; i < 3 && i < n; i++ {
		pts[i] = stored[i]
	}
	return pts
}

func fmtVec(v geo.Vector) string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

func writeFace(w io.Writer, f geo.Face, version int, tol geo.Tolerance) error {
	pts := facePlanePoints(f)
	name := f.Tex.Name
	if name == "" {
		name = geo.NullTextureName
	}
	fmt.Fprintf(w, "( %s ) ( %s ) ( %s ) %s",
		fmtVec(pts[0]), fmtVec(pts[1]), fmtVec(pts[2]), name)

	switch version {
	case 100:
		u, v := standardAxesFor(f.Normal())
		if !tol.VectorEqual(u, f.Tex.UAxis) || !tol.VectorEqual(v, f.Tex.VAxis) {
			return ErrUnsupportedTextureForLegacyMap
		}
		fmt.Fprintf(w, " %g %g 0 %g %g\n",
			wrapLegacyShift(f.Tex.UShift), wrapLegacyShift(f.Tex.VShift), f.Tex.UScale, f.Tex.VScale)
	default:
		fmt.Fprintf(w, " [ %s %g ] [ %s %g ] %g %g %g\n",
			fmtVec(f.Tex.UAxis), f.Tex.UShift, fmtVec(f.Tex.VAxis), f.Tex.VShift,
			f.Tex.Rotation, f.Tex.UScale, f.Tex.VScale)
	}
	return nil
}

// standardAxesFor returns the legacy form's fixed u/v axis pair for the
// dominant component of normal.
func standardAxesFor(normal geo.Vector) (u, v geo.Vector) {
	ax, ay, az := math.Abs(normal.X), math.Abs(normal.Y), math.Abs(normal.Z)
	switch {
	case az >= ax && az >= ay:
		return geo.Vector{X: 1}, geo.Vector{Y: -1}
	case ax >= ay:
		return geo.Vector{Y: 1}, geo.Vector{Z: -1}
	default:
		return geo.Vector{X: 1}, geo.Vector{Z: -1}
	}
}

func wrapLegacyShift(v float64) float64 {
	for v > legacyShiftTolerance {
		v -= 2 * legacyShiftTolerance
	}
	for v < -legacyShiftTolerance {
		v += 2 * legacyShiftTolerance
	}
	return v
}
