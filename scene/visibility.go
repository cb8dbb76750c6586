package scene

import "github.com/brushfix/brushfix/geo"

// PruneInvisible removes every group, entity, and solid whose visibility
// group is not visible (spec §4.12). Visgroup 0 is always visible. It
// mutates sc in place.
func PruneInvisible(sc *Scene) {
	sc.Root = pruneGroup(sc, sc.Root)
}

func pruneGroup(sc *Scene, g Group) Group {
	out := Group{Visgroup: g.Visgroup, Index: g.Index}

	for _, solid := range g.Solids {
		if sc.VisGroupVisible(solid.Visgroup) {
			out.Solids = append(out.Solids, solid)
		}
	}
	for _, e := range g.Entities {
		if !sc.VisGroupVisible(e.Visgroup) {
			continue
		}
		var kept []geo.Solid
		for _, solid := range e.Solids {
			if sc.VisGroupVisible(solid.Visgroup) {
				kept = append(kept, solid)
			}
		}
		e.Solids = kept
		out.Entities = append(out.Entities, e)
	}
	for _, child := range g.Groups {
		if !sc.VisGroupVisible(child.Visgroup) {
			continue
		}
		out.Groups = append(out.Groups, pruneGroup(sc, child))
	}

	return out
}
