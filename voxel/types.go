//-----------------------------------------------------------------------------
/*

Oriented Blocks

The oriented-block voxel data model, and the single-threaded operations
that build and mutate it: the slope smoother, corner filler, and
flood-hollow pruning pass.

*/
//-----------------------------------------------------------------------------

// Package voxel holds the oriented-block data model and the
// single-threaded operations that build and mutate it: the slope smoother,
// corner filler, and flood-hollow pruning pass.
package voxel

import (
	"github.com/voxelforge/meshblock/vec/v3i"
)

//-----------------------------------------------------------------------------

// Shape tags the kind of block an OrientedBlock describes.
type Shape int

const (
	// ShapeCube is a full, unoriented voxel.
	ShapeCube Shape = iota
	// ShapeSlope is a sloped ramp block; Run/Step are meaningful.
	ShapeSlope
	// ShapeCutCorner is the interior three-face cut primitive.
	ShapeCutCorner
	// ShapeCorner is the convex corner primitive for a slope family;
	// Run/Step are meaningful.
	ShapeCorner
	// shapeUndecided is an internal sentinel for a smoothing conflict that
	// could not be resolved; entries carrying it are dropped at the end of
	// Smooth and never escape this package.
	shapeUndecided
)

// VALIDSlopes is the set of slope lengths (in blocks) the smoother may
// choose between.
var VALIDSlopes = [2]int{1, 2}

// MaxValidSlope is max(VALIDSlopes).
const MaxValidSlope = 2

// SlopeKind is the tagged shape value. Run and Step are meaningful only
// for ShapeSlope and ShapeCorner.
type SlopeKind struct {
	Shape Shape
	Run   int
	Step  int
}

// Cube is the SlopeKind for a full voxel.
var Cube = SlopeKind{Shape: ShapeCube}

// CutCorner is the SlopeKind for the interior three-face cut.
var CutCorner = SlopeKind{Shape: ShapeCutCorner}

// Slope returns the SlopeKind for a run-length slope block, step counted
// from the base.
func Slope(run, step int) SlopeKind {
	return SlopeKind{Shape: ShapeSlope, Run: run, Step: step}
}

// Corner returns the SlopeKind for a convex corner block belonging to a
// slope family of the given run.
func Corner(run, step int) SlopeKind {
	return SlopeKind{Shape: ShapeCorner, Run: run, Step: step}
}

var undecided = SlopeKind{Shape: shapeUndecided}

// Orientation pairs a forward and up direction; forward·up = 0 always holds
// for a block actually committed to a VoxelMap.
type Orientation struct {
	Forward v3i.UnitDir
	Up      v3i.UnitDir
}

// Orthogonal reports whether o's forward and up vectors are perpendicular,
// the invariant every committed oriented block must satisfy.
func (o Orientation) Orthogonal() bool {
	return o.Forward.Vec().Dot(o.Up.Vec()) == 0
}

// OrientedBlock is a (SlopeKind, Orientation) pair; Oriented is false for
// Cube, which carries no orientation.
type OrientedBlock struct {
	Kind     SlopeKind
	Orient   Orientation
	Oriented bool
}

// CubeBlock is the OrientedBlock value for a full unoriented voxel.
var CubeBlock = OrientedBlock{Kind: Cube}

// VoxelMap maps a lattice point to its OrientedBlock. Keys are unique by
// construction (it is a Go map).
type VoxelMap map[v3i.Vec]OrientedBlock

// FromPoints builds a VoxelMap with every point mapped to a Cube, the
// smoother's starting state.
func FromPoints(points v3i.Set) VoxelMap {
	v := make(VoxelMap, len(points))
	for p := range points {
		v[p] = CubeBlock
	}
	return v
}

// IsCube reports whether p holds a Cube in v.
func (v VoxelMap) IsCube(p v3i.Vec) bool {
	b, ok := v[p]
	return ok && b.Kind.Shape == ShapeCube
}

// Occupied reports whether p holds any block (of any shape) in v.
func (v VoxelMap) Occupied(p v3i.Vec) bool {
	_, ok := v[p]
	return ok
}
