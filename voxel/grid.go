//-----------------------------------------------------------------------------
/*

Dense Grid

A flat-array dense voxel grid built from a VoxelMap's bounding box, indexed
x-outer/y-mid/z-inner — the same order the encoder walks for bit-mask
serialization.

*/
//-----------------------------------------------------------------------------

package voxel

import "github.com/voxelforge/meshblock/vec/v3i"

//-----------------------------------------------------------------------------

// Cell is one DenseGrid slot: either empty, or occupied carrying an
// OrientedBlock's metadata.
type Cell struct {
	Occupied bool
	Block    OrientedBlock
}

// DenseGrid is the dense (L, W, H) array built from the final VoxelMap,
// indexed [x][y][z] in row-major (x outer, y mid, z inner) order — the same
// order the encoder walks for bit-mask serialization.
type DenseGrid struct {
	L, W, H int64
	cells   []Cell
}

// NewDenseGrid allocates an empty grid of the given shape.
func NewDenseGrid(l, w, h int64) *DenseGrid {
	return &DenseGrid{L: l, W: w, H: h, cells: make([]Cell, l*w*h)}
}

// index returns the flat offset for local coordinates (x, y, z).
func (g *DenseGrid) index(x, y, z int64) int64 {
	return (x*g.W+y)*g.H + z
}

// InBounds reports whether (x, y, z) is within the grid's extent.
func (g *DenseGrid) InBounds(x, y, z int64) bool {
	return x >= 0 && x < g.L && y >= 0 && y < g.W && z >= 0 && z < g.H
}

// At returns the cell at local coordinates (x, y, z).
func (g *DenseGrid) At(x, y, z int64) Cell {
	return g.cells[g.index(x, y, z)]
}

// Set assigns the cell at local coordinates (x, y, z).
func (g *DenseGrid) Set(x, y, z int64, c Cell) {
	g.cells[g.index(x, y, z)] = c
}

// BuildDenseGrid computes the tight bounding box of v's keys, shifts every
// position by -min, and builds the resulting DenseGrid with each occupied
// cell carrying its OrientedBlock. The returned offset is the shift that
// was applied (i.e. -min), needed by callers that must translate other
// coordinates into grid-local space consistently.
func BuildDenseGrid(v VoxelMap) (grid *DenseGrid, offset v3i.Vec, ok bool) {
	if len(v) == 0 {
		return nil, v3i.Vec{}, false
	}
	points := make([]v3i.Vec, 0, len(v))
	for p := range v {
		points = append(points, p)
	}
	bounds, _ := v3i.BoundsOf(points)
	l, w, h := bounds.Size()

	g := NewDenseGrid(l, w, h)
	shift := bounds.Min.Neg()
	for p, b := range v {
		local := p.Add(shift)
		g.Set(local.X, local.Y, local.Z, Cell{Occupied: true, Block: b})
	}
	return g, shift, true
}
