//-----------------------------------------------------------------------------
/*

Real Vectors

Real-valued 3D vector arithmetic for mesh vertices, built over gonum's r3
package, plus the axis-aligned Bounds box used throughout the pipeline.

*/
//-----------------------------------------------------------------------------

// Package v3 provides real-valued 3D vector arithmetic for mesh vertices.
package v3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//-----------------------------------------------------------------------------

// Vec is a real-valued 3D vector, used for raw mesh vertices.
type Vec = r3.Vec

// New returns a Vec with the given components.
func New(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Add returns u+v.
func Add(u, v Vec) Vec { return r3.Add(u, v) }

// Sub returns u-v.
func Sub(u, v Vec) Vec { return r3.Sub(u, v) }

// Scale returns s*v.
func Scale(s float64, v Vec) Vec { return r3.Scale(s, v) }

// Dot returns the dot product of u and v.
func Dot(u, v Vec) float64 { return r3.Dot(u, v) }

// Norm returns the L2 norm (length) of v.
func Norm(v Vec) float64 { return r3.Norm(v) }

// Midpoint returns the midpoint of u and v.
func Midpoint(u, v Vec) Vec {
	return Scale(0.5, Add(u, v))
}

// Centroid returns the mean of three points.
func Centroid(a, b, c Vec) Vec {
	return Scale(1.0/3.0, Add(Add(a, b), c))
}

// Finite reports whether every component of v is finite (not NaN/Inf).
func Finite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Shift adds offset to v componentwise. Kept distinct from Add so call
// sites re-origining a bounding box read as translations, not arithmetic.
func Shift(v, offset Vec) Vec {
	return Add(v, offset)
}

// Reflect mirrors v's components across the origin along the given axes
// (x, y, z booleans select which axes are negated).
func Reflect(v Vec, x, y, z bool) Vec {
	out := v
	if x {
		out.X = -out.X
	}
	if y {
		out.Y = -out.Y
	}
	if z {
		out.Z = -out.Z
	}
	return out
}

//-----------------------------------------------------------------------------

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec
}

// Union returns the smallest Bounds containing b and v.
func (b Bounds) Union(v Vec) Bounds {
	return Bounds{
		Min: New(math.Min(b.Min.X, v.X), math.Min(b.Min.Y, v.Y), math.Min(b.Min.Z, v.Z)),
		Max: New(math.Max(b.Max.X, v.X), math.Max(b.Max.Y, v.Y), math.Max(b.Max.Z, v.Z)),
	}
}

// EmptyBounds returns a Bounds ready to be grown by Union, inverted so the
// first Union call establishes both min and max.
func EmptyBounds() Bounds {
	return Bounds{
		Min: New(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: New(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Size returns Max-Min.
func (b Bounds) Size() Vec {
	return Sub(b.Max, b.Min)
}

// Volume returns the product of the box's dimensions. Degenerate (zero-size)
// dimensions do not make the volume negative; callers needing a positive
// density denominator should guard against zero themselves.
func (b Bounds) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}
