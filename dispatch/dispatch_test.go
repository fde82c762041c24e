package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelforge/meshblock/geom"
	v3 "github.com/voxelforge/meshblock/vec/v3"
	"github.com/voxelforge/meshblock/vec/v3i"
)

func TestRunSerialEquivalence(t *testing.T) {
	chunks := [][]int{{1, 2, 3}, {4, 5}, {6}}
	work := func(c []int) v3i.Set {
		dst := v3i.NewSet(0)
		for _, n := range c {
			dst.Add(v3i.Vec{X: int64(n)})
		}
		return dst
	}

	serial := Run(context.Background(), chunks, false, work)
	parallel := Run(context.Background(), chunks, true, work)
	assert.Equal(t, len(serial), len(parallel))
	for p := range serial {
		assert.True(t, parallel.Has(p))
	}
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chunks := [][]int{{1}, {2}, {3}}
	work := func(c []int) v3i.Set {
		dst := v3i.NewSet(0)
		for _, n := range c {
			dst.Add(v3i.Vec{X: int64(n)})
		}
		return dst
	}
	result := Run(ctx, chunks, true, work)
	assert.LessOrEqual(t, len(result), 3)
}

func TestWorkersAtLeastOne(t *testing.T) {
	assert.GreaterOrEqual(t, Workers(), 1)
}

func TestTriangleChunkSizeNonZero(t *testing.T) {
	tris := []geom.Triangle{
		geom.New(v3.New(0, 0, 0), v3.New(1, 0, 0), v3.New(0, 1, 0)),
		geom.New(v3.New(1, 1, 1), v3.New(2, 1, 1), v3.New(1, 2, 1)),
	}
	size := TriangleChunkSize(tris, 0.5, 4)
	assert.GreaterOrEqual(t, size, 1)
}

func TestSpatialTriangleChunksCoverAllInput(t *testing.T) {
	var tris []geom.Triangle
	for i := 0; i < 20; i++ {
		f := float64(i)
		tris = append(tris, geom.New(v3.New(f, 0, 0), v3.New(f+1, 0, 0), v3.New(f, 1, 0)))
	}
	chunks := SpatialTriangleChunks(tris, 3)

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	assert.Equal(t, len(tris), total)
}

func TestPointChunksCoverAllInput(t *testing.T) {
	points := make([]v3i.Vec, 0, 10)
	for i := 0; i < 10; i++ {
		points = append(points, v3i.Vec{X: int64(i)})
	}
	chunks := PointChunks(points, 2)
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	assert.Equal(t, len(points), total)
}
