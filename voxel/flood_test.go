package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelforge/meshblock/vec/v3i"
)

func hollowBoxPoints(includeCenter bool) v3i.Set {
	s := v3i.NewSet(0)
	for x := int64(0); x <= 2; x++ {
		for y := int64(0); y <= 2; y++ {
			for z := int64(0); z <= 2; z++ {
				if x == 1 && y == 1 && z == 1 && !includeCenter {
					continue
				}
				s.Add(v3i.Vec{x, y, z})
			}
		}
	}
	return s
}

func occupiedCount(g *DenseGrid) int {
	count := 0
	for x := int64(0); x < g.L; x++ {
		for y := int64(0); y < g.W; y++ {
			for z := int64(0); z < g.H; z++ {
				if g.At(x, y, z).Occupied {
					count++
				}
			}
		}
	}
	return count
}

// The 26 surface voxels of a hollow 3x3x3 grid
// survive flood-hollow unchanged; adding the (interior) center voxel and
// re-running removes it.
func TestFloodHollowKeepsShellDropsInterior(t *testing.T) {
	v := FromPoints(hollowBoxPoints(false))
	grid, _, ok := BuildDenseGrid(v)
	assert.True(t, ok)
	FloodHollow(grid, nil)
	assert.Equal(t, 26, occupiedCount(grid))
	assert.False(t, grid.At(1, 1, 1).Occupied)

	v2 := FromPoints(hollowBoxPoints(true))
	grid2, _, ok := BuildDenseGrid(v2)
	assert.True(t, ok)
	FloodHollow(grid2, nil)
	assert.Equal(t, 26, occupiedCount(grid2))
	assert.False(t, grid2.At(1, 1, 1).Occupied)
}

func TestFloodHollowSolidBoxStaysSolid(t *testing.T) {
	points := v3i.NewSet(0)
	for x := int64(0); x <= 1; x++ {
		for y := int64(0); y <= 1; y++ {
			for z := int64(0); z <= 1; z++ {
				points.Add(v3i.Vec{x, y, z})
			}
		}
	}
	v := FromPoints(points)
	grid, _, ok := BuildDenseGrid(v)
	assert.True(t, ok)
	FloodHollow(grid, nil)
	assert.Equal(t, len(points), occupiedCount(grid))
}
