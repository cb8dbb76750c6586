package scene

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/brushfix/brushfix/diag"
	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/internal/logger"
)

// Options selects which transformations Walker.Walk applies (spec §6.3's
// -nt/-nd/-nu/-na/-v/-e/-gd flags feed these).
type Options struct {
	Tesselate   bool
	Decompose   bool
	Unite       bool
	VisibleOnly bool
	Tolerance   geo.Tolerance
	GeoDebug    bool
}

// Walker sequences the geo package's transformations over a Scene in the
// fixed order the format requires: prune, snap, tesselate, decompose,
// unite (spec §4.12). A tesselation or union error aborts that solid only;
// a decomposition error leaves every solid of the group or entity being
// decomposed unchanged. Either way the walker logs and continues with the
// rest of the scene (spec §7).
type Walker struct {
	Opts Options
	Log  *logger.Logger
}

// NewWalker builds a Walker; a nil log falls back to logger.Default.
func NewWalker(opts Options, log *logger.Logger) *Walker {
	if log == nil {
		log = logger.Default
	}
	return &Walker{Opts: opts, Log: log}
}

type ownedSolid struct {
	solid *geo.Solid
	ctx   diag.Context
}

func collectOwned(sc *Scene) []ownedSolid {
	var out []ownedSolid
	var walk func(g *Group, ctx diag.Context)
	walk = func(g *Group, ctx diag.Context) {
		for i := range g.Solids {
			out = append(out, ownedSolid{&g.Solids[i], ctx.WithBrush(g.Solids[i].Index)})
		}
		for i := range g.Entities {
			e := &g.Entities[i]
			ectx := ctx.WithEntity(e.Index)
			for j := range e.Solids {
				out = append(out, ownedSolid{&e.Solids[j], ectx.WithBrush(e.Solids[j].Index)})
			}
		}
		for i := range g.Groups {
			walk(&g.Groups[i], ctx)
		}
	}
	walk(&sc.Root, diag.Context{})
	return out
}

// debugDump logs a spew dump of v at DEBUG level when geometry debugging
// is enabled, so a developer investigating a failed cut or union gets the
// offending edge pool or solid structure instead of a %+v.
func (w *Walker) debugDump(label string, v interface{}) {
	if !w.Opts.GeoDebug {
		return
	}
	w.Log.Debug("%s:\n%s", label, spew.Sdump(v))
}

// Walk applies the full pipeline to sc in place.
func (w *Walker) Walk(sc *Scene) {
	if w.Opts.VisibleOnly {
		PruneInvisible(sc)
	}

	w.snap(sc)

	if w.Opts.Tesselate {
		w.tesselate(sc)
	}
	if w.Opts.Decompose {
		w.decompose(sc)
	}
	if w.Opts.Unite {
		w.unite(sc)
	}
	w.regenerateTextures(sc)
}

func (w *Walker) snap(sc *Scene) {
	owned := collectOwned(sc)
	if len(owned) == 0 {
		return
	}
	vals := make([]geo.Solid, len(owned))
	for i, o := range owned {
		vals[i] = *o.solid
	}
	vals = geo.SnapVertices(vals)
	for i, o := range owned {
		*o.solid = vals[i]
	}
}

func (w *Walker) tesselate(sc *Scene) {
	owned := collectOwned(sc)
	tol := w.Opts.Tolerance

	for i := range owned {
		solid := owned[i].solid
		for fi := 0; fi < len(solid.Faces); fi++ {
			face := &solid.Faces[fi]
			if tol.IsPlanar(*face) {
				continue
			}

			var reverse *geo.Face
			for j := range owned {
				if j == i {
					continue
				}
				other := owned[j].solid
				for ofi := range other.Faces {
					if tol.IsReverseOf(other.Faces[ofi], *face) {
						reverse = &other.Faces[ofi]
						break
					}
				}
				if reverse != nil {
					break
				}
			}

			ears, reverseEars, err := tol.TesselateFace(face, reverse)
			if err != nil {
				w.Log.Error("%s", owned[i].ctx.Annotate(err))
				w.debugDump("tesselate failure", *face)
				continue
			}
			solid.Faces = append(solid.Faces, ears...)
			if len(reverseEars) > 0 {
				for j := range owned {
					if owned[j].solid != solid {
						for k := range owned[j].solid.Faces {
							if &owned[j].solid.Faces[k] == reverse {
								owned[j].solid.Faces = append(owned[j].solid.Faces, reverseEars...)
							}
						}
					}
				}
			}
		}
	}
}

func (w *Walker) decompose(sc *Scene) {
	tol := w.Opts.Tolerance
	var walk func(g *Group, ctx diag.Context)
	walk = func(g *Group, ctx diag.Context) {
		if pieces, err := tol.DecomposeIntoConvex(g.Solids); err != nil {
			w.Log.Error("%s", ctx.Annotate(err))
			w.debugDump("decompose failure", g.Solids)
		} else {
			g.Solids = pieces
		}
		for i := range g.Entities {
			e := &g.Entities[i]
			ectx := ctx.WithEntity(e.Index)
			if pieces, err := tol.DecomposeIntoConvex(e.Solids); err != nil {
				w.Log.Error("%s", ectx.Annotate(err))
				w.debugDump("decompose failure", e.Solids)
			} else {
				e.Solids = pieces
			}
		}
		for i := range g.Groups {
			walk(&g.Groups[i], ctx)
		}
	}
	walk(&sc.Root, diag.Context{})
}

func (w *Walker) unite(sc *Scene) {
	tol := w.Opts.Tolerance
	for _, o := range collectOwned(sc) {
		united, conflict, err := tol.UniteCoplanarFaces(*o.solid)
		if err != nil {
			w.Log.Error("%s", o.ctx.Annotate(err))
			w.debugDump("unite failure", *o.solid)
			continue
		}
		if conflict {
			w.Log.Warn("%s", "uniting faces with different texture info")
		}
		*o.solid = united
	}
}

func (w *Walker) regenerateTextures(sc *Scene) {
	for _, o := range collectOwned(sc) {
		*o.solid = RegenerateTexture(*o.solid)
	}
}
