package refine

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelforge/meshblock/geom"
	v3 "github.com/voxelforge/meshblock/vec/v3"
	"github.com/voxelforge/meshblock/vec/v3i"
)

// A single triangle at coarse resolution must
// include its own (rounded) vertices in the refined set.
func TestRefineSingleTriangleCoarse(t *testing.T) {
	tri := geom.New(v3.New(0, 0, 0), v3.New(1, 0, 0), v3.New(0, 1, 0))
	pts := Refine([]geom.Triangle{tri}, 1.0)

	assert.True(t, pts.Has(v3i.Vec{0, 0, 0}))
	assert.True(t, pts.Has(v3i.Vec{1, 0, 0}))
	assert.True(t, pts.Has(v3i.Vec{0, 1, 0}))
}

// The unit-cube [0,2]^3 surface hull at
// resolution 1.0 refines to all 26 boundary lattice points.
func TestRefineCubeHull(t *testing.T) {
	tris := cubeHull(0, 0, 0, 2, 2, 2)
	pts := Refine(tris, 1.0)

	for x := int64(0); x <= 2; x++ {
		for y := int64(0); y <= 2; y++ {
			for z := int64(0); z <= 2; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				assert.True(t, pts.Has(v3i.Vec{x, y, z}), "missing (%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestHexasectShrinksEdges(t *testing.T) {
	tri := geom.New(v3.New(0, 0, 0), v3.New(2, 0, 0), v3.New(0, 2, 0))
	subs := Hexasect(tri)
	assert.Len(t, subs, 6)
	for _, s := range subs {
		assert.LessOrEqual(t, s.LongestEdge(), tri.LongestEdge())
	}
}

func TestSplitRespectsResolution(t *testing.T) {
	tri := geom.New(v3.New(0, 0, 0), v3.New(10, 0, 0), v3.New(0, 10, 0))
	subs := Split(tri, 1.0)
	for _, s := range subs {
		assert.LessOrEqual(t, s.LongestEdge(), 1.0+1e-9)
	}
}

func TestSplitDegenerateTriangleTerminates(t *testing.T) {
	p := v3.New(1, 1, 1)
	tri := geom.New(p, p, p)
	subs := Split(tri, 0.1)
	assert.Len(t, subs, 1)
}

// Idempotent refinement: union with itself changes
// nothing.
func TestRefineIdempotent(t *testing.T) {
	tri := geom.New(v3.New(0, 0, 0), v3.New(1, 0, 0), v3.New(0, 1, 0))
	pts := Refine([]geom.Triangle{tri}, 0.3)
	before := len(pts)
	pts.Union(pts)
	assert.Equal(t, before, len(pts))
}

// Resolution coverage: every vertex of the input
// triangle has a nearby lattice point within resolution*sqrt(3)/2.
func TestResolutionCoverage(t *testing.T) {
	tri := geom.New(v3.New(0.3, 0.7, 0.1), v3.New(3.1, 0.2, 1.4), v3.New(1.0, 2.9, 0.6))
	resolution := 0.5
	pts := Refine([]geom.Triangle{tri}, resolution).Slice()

	bound := resolution * math.Sqrt(3) / 2
	for _, vertex := range tri.V {
		best := math.Inf(1)
		for _, p := range pts {
			d := v3.Norm(v3.Sub(v3.New(float64(p.X)*resolution, float64(p.Y)*resolution, float64(p.Z)*resolution), vertex))
			if d < best {
				best = d
			}
		}
		assert.LessOrEqual(t, best, bound+1e-9)
	}
}

func TestRefineAllMatchesSerial(t *testing.T) {
	tris := cubeHull(0, 0, 0, 2, 2, 2)
	serial := Refine(tris, 1.0)
	parallel := RefineAll(context.Background(), tris, 1.0, true)
	assert.Equal(t, len(serial), len(parallel))
	for p := range serial {
		assert.True(t, parallel.Has(p))
	}
}

// cubeHull returns the 12 triangles forming the surface of the axis-aligned
// box [x0,x1] x [y0,y1] x [z0,z1].
func cubeHull(x0, y0, z0, x1, y1, z1 float64) []geom.Triangle {
	v := func(x, y, z float64) v3.Vec { return v3.New(x, y, z) }
	corners := [8]v3.Vec{
		v(x0, y0, z0), v(x1, y0, z0), v(x1, y1, z0), v(x0, y1, z0),
		v(x0, y0, z1), v(x1, y0, z1), v(x1, y1, z1), v(x0, y1, z1),
	}
	quad := func(a, b, c, d int) []geom.Triangle {
		return []geom.Triangle{
			geom.New(corners[a], corners[b], corners[c]),
			geom.New(corners[a], corners[c], corners[d]),
		}
	}
	var tris []geom.Triangle
	tris = append(tris, quad(0, 1, 2, 3)...) // bottom
	tris = append(tris, quad(4, 5, 6, 7)...) // top
	tris = append(tris, quad(0, 1, 5, 4)...) // front
	tris = append(tris, quad(2, 3, 7, 6)...) // back
	tris = append(tris, quad(1, 2, 6, 5)...) // right
	tris = append(tris, quad(0, 3, 7, 4)...) // left
	return tris
}
