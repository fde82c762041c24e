//-----------------------------------------------------------------------------
/*

Adaptive Refinement

Subdivides triangles to a target spatial resolution and emits a
deduplicated lattice point set: each triangle is hexasected repeatedly
until its longest edge fits the resolution, and every resulting vertex is
rounded onto the integer lattice.

*/
//-----------------------------------------------------------------------------

// Package refine adaptively subdivides triangles to a target spatial
// resolution and emits a deduplicated lattice point set.
package refine

import (
	"context"

	"github.com/voxelforge/meshblock/dispatch"
	"github.com/voxelforge/meshblock/geom"
	v3 "github.com/voxelforge/meshblock/vec/v3"
	"github.com/voxelforge/meshblock/vec/v3i"
)

//-----------------------------------------------------------------------------

// BatchSize is the number of input triangles refined between flatten/union
// rounds, bounding the refiner's working-set memory.
const BatchSize = 100

// Hexasect partitions a triangle into six sub-triangles using the three edge
// midpoints and the centroid, so every sub-triangle shrinks in all
// dimensions per round (as opposed to edge-only bisection).
func Hexasect(t geom.Triangle) [6]geom.Triangle {
	a, b, c := t.V[0], t.V[1], t.V[2]
	mAB := t.Midpoint(0, 1)
	mAC := t.Midpoint(0, 2)
	mBC := t.Midpoint(1, 2)
	g := t.Centroid()
	return [6]geom.Triangle{
		geom.New(a, mAB, g),
		geom.New(mAB, b, g),
		geom.New(a, mAC, g),
		geom.New(mAC, c, g),
		geom.New(b, mBC, g),
		geom.New(mBC, c, g),
	}
}

// Split hexasects t repeatedly until every resulting sub-triangle's longest
// edge is at most resolution, returning the final set of small triangles.
func Split(t geom.Triangle, resolution float64) []geom.Triangle {
	small := make([]geom.Triangle, 0, 8)
	large := []geom.Triangle{t}

	for len(large) > 0 {
		next := make([]geom.Triangle, 0, len(large)*6)
		for _, lt := range large {
			if lt.Degenerate(0) {
				// All three vertices coincide: nothing further to subdivide,
				// keep it as-is so its (rounded) vertices are still emitted.
				small = append(small, lt)
				continue
			}
			for _, sub := range Hexasect(lt) {
				next = append(next, sub)
			}
		}
		large = large[:0]
		for _, st := range next {
			if st.LongestEdge() > resolution {
				large = append(large, st)
			} else {
				small = append(small, st)
			}
		}
	}
	return small
}

// RoundVertex maps a real-valued point to the nearest lattice point at the
// given resolution.
func RoundVertex(p v3.Vec, resolution float64) v3i.Vec {
	return v3i.Round(p, resolution)
}

// Triangles refines a batch of triangles to resolution and unions their
// rounded vertices into dst, batching the flatten/union step every
// BatchSize triangles to bound memory. This is the function dispatch
// workers call on their owned chunk.
func Triangles(tris []geom.Triangle, resolution float64, dst v3i.Set) {
	pending := make([]geom.Triangle, 0, BatchSize*6)
	handled := 0

	flush := func() {
		for _, t := range pending {
			dst.Add(RoundVertex(t.V[0], resolution))
			dst.Add(RoundVertex(t.V[1], resolution))
			dst.Add(RoundVertex(t.V[2], resolution))
		}
		pending = pending[:0]
	}

	for _, t := range tris {
		pending = append(pending, Split(t, resolution)...)
		handled++
		if handled%BatchSize == 0 {
			flush()
		}
	}
	flush()
}

//-----------------------------------------------------------------------------

// Refine is the serial (single-worker) entry point: refine all of tris to
// resolution and return the deduplicated lattice point set.
func Refine(tris []geom.Triangle, resolution float64) v3i.Set {
	dst := v3i.NewSet(len(tris) * 3)
	Triangles(tris, resolution, dst)
	return dst
}

// RefineAll is the dispatcher-backed entry point: it chunks tris spatially,
// runs Triangles over each chunk — in parallel across dispatch.Workers()
// goroutines unless parallel is false — and unions the per-chunk point sets
// into one result. Once ctx is cancelled, chunks not yet merged are skipped.
func RefineAll(ctx context.Context, tris []geom.Triangle, resolution float64, parallel bool) v3i.Set {
	if len(tris) == 0 {
		return v3i.NewSet(0)
	}
	workers := dispatch.Workers()
	chunkSize := dispatch.TriangleChunkSize(tris, resolution, workers)
	chunks := dispatch.SpatialTriangleChunks(tris, chunkSize)
	return dispatch.Run(ctx, chunks, parallel, func(chunk []geom.Triangle) v3i.Set {
		dst := v3i.NewSet(len(chunk) * 3)
		Triangles(chunk, resolution, dst)
		return dst
	})
}
