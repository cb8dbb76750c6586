package scene

import "github.com/brushfix/brushfix/geo"

// RegenerateTexture assigns a default projection to any face of solid
// whose texture was never set by a donor (spec §4.12): a cap or
// synthesized face with an empty or NULL placeholder name gets trigger's
// texture name and the projection that CapDefaultTexture produces from its
// own first edge and normal, so every face leaving the pipeline carries
// usable texture info even when no donor ever matched it. That projection
// follows the face's first edge; it is axis-aligned only when that edge
// and the normal are.
func RegenerateTexture(solid geo.Solid) geo.Solid {
	faces := make([]geo.Face, len(solid.Faces))
	for i, f := range solid.Faces {
		if f.Tex.Name == "" || f.Tex.Name == geo.NullTextureName {
			if len(f.Outer) > 0 {
				f.Tex = geo.CapDefaultTexture(f.Outer[0], f.Normal())
			}
			f.Tex.Name = defaultTextureName
		}
		faces[i] = f
	}
	return geo.Solid{Faces: faces, Visgroup: solid.Visgroup, Index: solid.Index}
}

// defaultTextureName is the placeholder assigned to faces that reach the
// end of the pipeline with no donor-derived texture at all.
const defaultTextureName = "trigger"
