package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelforge/meshblock/vec/v3i"
)

func slopeBlock(forward, up v3i.UnitDir, run, step int) OrientedBlock {
	return OrientedBlock{Kind: Slope(run, step), Orient: Orientation{Forward: forward, Up: up}, Oriented: true}
}

func TestFillCornersCutCorner(t *testing.T) {
	v := VoxelMap{
		{0, 1, 0}: slopeBlock(v3i.PlusX, v3i.PlusZ, 1, 1),
		{1, 0, 0}: slopeBlock(v3i.PlusY, v3i.PlusZ, 1, 1),
	}
	FillCorners(v)

	b, ok := v[v3i.Vec{0, 0, 0}]
	if assert.True(t, ok, "expected a CutCorner placed at origin") {
		assert.Equal(t, ShapeCutCorner, b.Kind.Shape)
	}
}

func TestFillCornersConvexCorner(t *testing.T) {
	v := VoxelMap{
		{0, 0, 0}:  slopeBlock(v3i.PlusX, v3i.PlusZ, 1, 1),
		{-1, 1, 0}: slopeBlock(v3i.PlusY, v3i.PlusZ, 1, 1),
	}
	FillCorners(v)

	b, ok := v[v3i.Vec{0, 1, 0}]
	if assert.True(t, ok, "expected a Corner placed") {
		assert.Equal(t, ShapeCorner, b.Kind.Shape)
		assert.Equal(t, 1, b.Kind.Run)
		assert.Equal(t, 1, b.Kind.Step)
	}
}

func TestFillCornersSkipsOccupiedTarget(t *testing.T) {
	v := VoxelMap{
		{0, 1, 0}: slopeBlock(v3i.PlusX, v3i.PlusZ, 1, 1),
		{1, 0, 0}: slopeBlock(v3i.PlusY, v3i.PlusZ, 1, 1),
		{0, 0, 0}: CubeBlock,
	}
	FillCorners(v)

	b := v[v3i.Vec{0, 0, 0}]
	assert.Equal(t, ShapeCube, b.Kind.Shape)
}

func TestFillCornersRequiresMatchingRun(t *testing.T) {
	v := VoxelMap{
		{0, 1, 0}: slopeBlock(v3i.PlusX, v3i.PlusZ, 1, 1),
		{1, 0, 0}: slopeBlock(v3i.PlusY, v3i.PlusZ, 2, 1),
	}
	FillCorners(v)

	_, ok := v[v3i.Vec{0, 0, 0}]
	assert.False(t, ok)
}
