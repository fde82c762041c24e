package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelforge/meshblock/vec/v3i"
)

func TestBuildDenseGridShiftsToOrigin(t *testing.T) {
	points := v3i.NewSet(0)
	points.Add(v3i.Vec{5, 5, 5})
	points.Add(v3i.Vec{7, 6, 6})
	v := FromPoints(points)

	grid, offset, ok := BuildDenseGrid(v)
	assert.True(t, ok)
	assert.Equal(t, int64(3), grid.L)
	assert.Equal(t, int64(2), grid.W)
	assert.Equal(t, int64(2), grid.H)
	assert.Equal(t, v3i.Vec{-5, -5, -5}, offset)

	assert.True(t, grid.At(0, 0, 0).Occupied)
	assert.True(t, grid.At(2, 1, 1).Occupied)
	assert.False(t, grid.At(1, 0, 0).Occupied)
}

func TestBuildDenseGridEmpty(t *testing.T) {
	_, _, ok := BuildDenseGrid(VoxelMap{})
	assert.False(t, ok)
}
