//-----------------------------------------------------------------------------
/*

Flood Hollow

An exterior flood fill over a DenseGrid, starting from every cell on the
grid's six bounding faces. Occupied cells never reached by the flood are
interior and get cleared, unless a KeepFunc spares them.

*/
//-----------------------------------------------------------------------------

package voxel

import "github.com/voxelforge/meshblock/vec/v3i"

//-----------------------------------------------------------------------------

type visitState uint8

const (
	unvisited visitState = iota
	visitedEmpty
	visitedOccupied
)

// KeepFunc decides whether an interior (never-visited) occupied cell should
// be spared from removal during FloodHollow. The default spares nothing, as
// no sentinel shape currently reaches this stage; a caller wiring in a
// different default may supply its own.
type KeepFunc func(Cell) bool

// DefaultKeep is FloodHollow's default keep-predicate: it spares nothing.
func DefaultKeep(Cell) bool { return false }

type floodFrame struct {
	pos  v3i.Vec
	dirs []v3i.UnitDir
}

// FloodHollow runs an exterior flood fill over g starting from every cell on
// the grid's six bounding faces, using an explicit stack (not recursion) to
// bound stack depth. Interior cells — occupied but never reached by the
// flood — are cleared unless keep reports true for them. keep may be nil,
// in which case DefaultKeep is used.
func FloodHollow(g *DenseGrid, keep KeepFunc) {
	if keep == nil {
		keep = DefaultKeep
	}

	visited := make([]visitState, len(g.cells))
	idx := func(p v3i.Vec) int64 { return g.index(p.X, p.Y, p.Z) }

	push := func(stack []floodFrame, p v3i.Vec) []floodFrame {
		c := g.At(p.X, p.Y, p.Z)
		if c.Occupied {
			visited[idx(p)] = visitedOccupied
			// Occupied cells are marked visited but not recursed through.
			return stack
		}
		visited[idx(p)] = visitedEmpty
		return append(stack, floodFrame{pos: p, dirs: append([]v3i.UnitDir{}, v3i.AllUnitDirs[:]...)})
	}

	var stack []floodFrame
	for _, start := range boundaryFaceCells(g) {
		if visited[idx(start)] != unvisited {
			continue
		}
		stack = push(stack, start)
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.dirs) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			d := top.dirs[0]
			top.dirs = top.dirs[1:]

			next := top.pos.Add(d.Vec())
			if !g.InBounds(next.X, next.Y, next.Z) {
				continue
			}
			if visited[idx(next)] != unvisited {
				continue
			}
			stack = push(stack, next)
		}
	}

	for z := int64(0); z < g.H; z++ {
		for y := int64(0); y < g.W; y++ {
			for x := int64(0); x < g.L; x++ {
				c := g.At(x, y, z)
				if !c.Occupied {
					continue
				}
				if visited[g.index(x, y, z)] == visitedOccupied {
					continue
				}
				if keep(c) {
					continue
				}
				g.Set(x, y, z, Cell{})
			}
		}
	}
}

// boundaryFaceCells enumerates every cell lying on one of the grid's six
// bounding faces, the flood's start set.
func boundaryFaceCells(g *DenseGrid) []v3i.Vec {
	var out []v3i.Vec
	for x := int64(0); x < g.L; x++ {
		for y := int64(0); y < g.W; y++ {
			for z := int64(0); z < g.H; z++ {
				onFace := x == 0 || x == g.L-1 || y == 0 || y == g.W-1 || z == 0 || z == g.H-1
				if onFace {
					out = append(out, v3i.Vec{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return out
}
