//-----------------------------------------------------------------------------
/*

Integer Lattice Vectors

Signed integer coordinates for voxel lattice points, plus the unordered
point Set that the refiner, morphology, and smoother pass between them.

*/
//-----------------------------------------------------------------------------

// Package v3i provides signed integer lattice-coordinate arithmetic.
package v3i

import (
	"fmt"
	"math"

	v3 "github.com/voxelforge/meshblock/vec/v3"
)

//-----------------------------------------------------------------------------

// Vec is a signed integer lattice coordinate. Components are 64-bit so
// morphological offset arithmetic can't overflow even though typical
// lattice dimensions fit comfortably in 32 bits.
type Vec struct {
	X, Y, Z int64
}

// New returns a Vec with the given components.
func New(x, y, z int64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// String implements fmt.Stringer for debug output and test failure messages.
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Add returns u+v.
func (u Vec) Add(v Vec) Vec {
	return Vec{u.X + v.X, u.Y + v.Y, u.Z + v.Z}
}

// Sub returns u-v.
func (u Vec) Sub(v Vec) Vec {
	return Vec{u.X - v.X, u.Y - v.Y, u.Z - v.Z}
}

// Scale returns s*v.
func (v Vec) Scale(s int64) Vec {
	return Vec{s * v.X, s * v.Y, s * v.Z}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of u and v.
func (u Vec) Dot(v Vec) int64 {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

// L1Norm returns the taxicab (Manhattan) norm of v.
func (v Vec) L1Norm() int64 {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Round maps a real-valued point to the nearest lattice point at the given
// resolution: round(p / resolution) componentwise.
func Round(p v3.Vec, resolution float64) Vec {
	return Vec{
		X: int64(math.Round(p.X / resolution)),
		Y: int64(math.Round(p.Y / resolution)),
		Z: int64(math.Round(p.Z / resolution)),
	}
}

// Set is a deduplicated collection of lattice points.
type Set map[Vec]struct{}

// NewSet returns an empty Set, optionally pre-sized.
func NewSet(sizeHint int) Set {
	return make(Set, sizeHint)
}

// Add inserts p into the set.
func (s Set) Add(p Vec) {
	s[p] = struct{}{}
}

// Has reports whether p is in the set.
func (s Set) Has(p Vec) bool {
	_, ok := s[p]
	return ok
}

// Union merges other into s in place.
func (s Set) Union(other Set) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// Slice returns the set's elements as a slice, in unspecified order.
func (s Set) Slice() []Vec {
	out := make([]Vec, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

// Bounds is an axis-aligned integer bounding box, inclusive on both ends.
type Bounds struct {
	Min, Max Vec
}

// BoundsOf computes the tight bounding box of a non-empty set of points.
// The second return is false for an empty set.
func BoundsOf(pts []Vec) (Bounds, bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Z < b.Min.Z {
			b.Min.Z = p.Z
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
		if p.Z > b.Max.Z {
			b.Max.Z = p.Z
		}
	}
	return b, true
}

// Size returns the (L, W, H) cell-count dimensions of the bounding box,
// inclusive of both endpoints.
func (b Bounds) Size() (l, w, h int64) {
	return b.Max.X - b.Min.X + 1, b.Max.Y - b.Min.Y + 1, b.Max.Z - b.Min.Z + 1
}

// UnitDir is one of the six axis-aligned unit vectors.
type UnitDir int

// The six axis-aligned directions.
const (
	PlusX UnitDir = iota
	MinusX
	PlusY
	MinusY
	PlusZ
	MinusZ
)

// AllUnitDirs lists the six unit directions in a fixed order, used anywhere
// a pass must enumerate "every forward direction" deterministically — a
// single smoother pass always walks this exact order.
var AllUnitDirs = [6]UnitDir{PlusX, MinusX, PlusY, MinusY, PlusZ, MinusZ}

// Vec returns the unit lattice vector for d.
func (d UnitDir) Vec() Vec {
	switch d {
	case PlusX:
		return Vec{1, 0, 0}
	case MinusX:
		return Vec{-1, 0, 0}
	case PlusY:
		return Vec{0, 1, 0}
	case MinusY:
		return Vec{0, -1, 0}
	case PlusZ:
		return Vec{0, 0, 1}
	case MinusZ:
		return Vec{0, 0, -1}
	default:
		panic(fmt.Sprintf("v3i: invalid UnitDir %d", int(d)))
	}
}

// Opposite returns -d.
func (d UnitDir) Opposite() UnitDir {
	switch d {
	case PlusX:
		return MinusX
	case MinusX:
		return PlusX
	case PlusY:
		return MinusY
	case MinusY:
		return PlusY
	case PlusZ:
		return MinusZ
	case MinusZ:
		return PlusZ
	default:
		panic(fmt.Sprintf("v3i: invalid UnitDir %d", int(d)))
	}
}

// String implements fmt.Stringer.
func (d UnitDir) String() string {
	switch d {
	case PlusX:
		return "+x"
	case MinusX:
		return "-x"
	case PlusY:
		return "+y"
	case MinusY:
		return "-y"
	case PlusZ:
		return "+z"
	case MinusZ:
		return "-z"
	default:
		return "?"
	}
}

// DirOf returns the UnitDir matching a unit lattice vector, and false if v
// is not one of the six unit vectors.
func DirOf(v Vec) (UnitDir, bool) {
	for _, d := range AllUnitDirs {
		if d.Vec() == v {
			return d, true
		}
	}
	return 0, false
}
