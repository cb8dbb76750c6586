package geo

// Texture is a face's texture projection record: name plus the standard
// Valve-220 axis/shift/scale/rotation projection.
type Texture struct {
	Name     string
	UAxis    Vector
	VAxis    Vector
	UShift   float64
	VShift   float64
	UScale   float64
	VScale   float64
	Rotation float64
}

// NullTextureName is the texture name assigned to a cap face synthesised
// from scratch, before any donor texture is found (spec §4.6).
const NullTextureName = "NULL"

// CapDefaultTexture builds the default projection for a cap face
// synthesised on the cut plane when no donor face covers it: u-axis is the
// first cap edge direction crossed with the cut normal, v-axis completes
// the basis, unit length, zero shift, unit scale, zero rotation.
func CapDefaultTexture(firstEdge Edge, cutNormal Vector) Texture {
	u := firstEdge.Vec().Cross(cutNormal).Normalize()
	v := u.Cross(cutNormal).Normalize()
	return Texture{
		Name:   NullTextureName,
		UAxis:  u,
		VAxis:  v,
		UScale: 1,
		VScale: 1,
	}
}
