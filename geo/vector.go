// Package geo implements the tolerance-aware geometric kernel that repairs
// brush geometry: vectors, directed planes, edges, faces and solids, and
// the predicates and transformations (cycle assembly, face cutting, convex
// decomposition, ear-clipping tesselation, coplanar union, vertex snap)
// built on top of them.
package geo

import "math"

// Vector is a point or direction in 3-space. Unlike a graphics engine's
// vector type this kernel works in float64: the brush-repair predicates
// compare coordinates against an epsilon as small as 0.004, which float32
// cannot carry through a chain of cross and dot products without already
// accumulating more error than the tolerance itself.
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a vector with the given components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Set sets this vector's components and returns it.
func (v *Vector) Set(x, y, z float64) *Vector {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Copy sets this vector to a copy of other and returns it.
func (v *Vector) Copy(other Vector) *Vector {
	*v = other
	return v
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// MultiplyScalar returns v scaled by s.
func (v Vector) MultiplyScalar(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSq returns the squared length of v.
func (v Vector) LengthSq() float64 {
	return v.Dot(v)
}

// Length returns the length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MultiplyScalar(1 / l)
}

// IsParallel reports whether v and other point along the same infinite
// line, in either direction.
func (v Vector) IsParallel(other Vector) bool {
	cross := v.Normalize().Cross(other.Normalize())
	return cross.X == 0 && cross.Y == 0 && cross.Z == 0
}

// IsFinite reports whether every component of v is a finite number.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// NewellNormal computes the outward normal of a (possibly non-planar)
// closed polygon given in order, via Newell's method, then normalizes it.
func NewellNormal(verts []Vector) Vector {
	var n Vector
	count := len(verts)
	for i := 0; i < count; i++ {
		a := verts[i]
		b := verts[(i+1)%count]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Normalize()
}
