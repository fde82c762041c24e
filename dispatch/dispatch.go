//-----------------------------------------------------------------------------
/*

Work Dispatch

Partitions triangle-refinement and morphology work across worker goroutines
and merges their results: ordinary goroutines communicating over a bounded
channel, modeled on an evaluation-routine pool (bounded goroutine count,
channel-based unordered merge of partial results). The capability probe
always answers true on a Go runtime; Run's serial path remains available as
a fallback and is used directly when a caller disables multithreading.

*/
//-----------------------------------------------------------------------------

package dispatch

import (
	"context"
	"math"
	"runtime"

	"github.com/dhconnelly/rtreego"
	"github.com/voxelforge/meshblock/geom"
	"github.com/voxelforge/meshblock/vec/v3i"
)

//-----------------------------------------------------------------------------

// TargetPointsPerWorker is the number of deduplicated lattice points a
// single worker's chunk should aim to produce.
const TargetPointsPerWorker = 2000

// MinChunksPerWorker enforces an "at least 3×W chunks" floor so that no
// single worker is starved while others finish early.
const MinChunksPerWorker = 3

// CapabilityProbe reports whether shared-memory worker parallelism is
// available on the host. It is always true for a Go runtime; kept as a
// function value (rather than a constant) so callers and tests can force
// the serial fallback path.
var CapabilityProbe = func() bool { return true }

//-----------------------------------------------------------------------------

// Workers returns the number of workers to use: host CPU count, clamped to
// at least 1.
func Workers() int {
	w := runtime.GOMAXPROCS(0)
	if w < 1 {
		w = 1
	}
	return w
}

// TriangleChunkSize estimates the number of triangles per worker chunk from
// a density heuristic: estimate primitive density ρ over the input's
// bounding volume, derive expected points per primitive π, and size chunks
// so each worker targets TargetPointsPerWorker points, while never
// producing fewer than MinChunksPerWorker*workers chunks.
func TriangleChunkSize(tris []geom.Triangle, resolution float64, workers int) int {
	n := len(tris)
	if n == 0 {
		return 1
	}
	bounds := geom.Bounds(tris)
	volume := bounds.Volume()
	if volume <= 0 {
		volume = 1
	}
	rho := float64(n) / volume
	if rho <= 0 {
		rho = 1
	}
	pi := 1.0 / (resolution * math.Cbrt(rho))
	if pi <= 0 || math.IsInf(pi, 0) || math.IsNaN(pi) {
		pi = 1
	}
	primitivesPerWorker := int(math.Ceil(TargetPointsPerWorker / pi))
	if primitivesPerWorker < 1 {
		primitivesPerWorker = 1
	}

	minChunks := MinChunksPerWorker * workers
	if minChunks < 1 {
		minChunks = 1
	}
	maxChunkSize := (n + minChunks - 1) / minChunks
	if maxChunkSize < 1 {
		maxChunkSize = 1
	}
	if primitivesPerWorker > maxChunkSize {
		primitivesPerWorker = maxChunkSize
	}
	return primitivesPerWorker
}

// SpatialTriangleChunks partitions tris into spatially-coherent groups using
// an R-tree over triangle centroids: triangles whose centroids land in the
// same cell of a coarse grid over the bounding box are grouped together,
// which keeps triangles likely to refine to nearby (or identical) lattice
// points on the same worker and reduces cross-worker duplicate-point
// contention at merge time.
func SpatialTriangleChunks(tris []geom.Triangle, chunkSize int) [][]geom.Triangle {
	n := len(tris)
	if n == 0 {
		return nil
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	if chunkSize >= n {
		return [][]geom.Triangle{tris}
	}

	bounds := geom.Bounds(tris)
	size := bounds.Size()
	if size.X <= 0 {
		size.X = 1
	}
	if size.Y <= 0 {
		size.Y = 1
	}
	if size.Z <= 0 {
		size.Z = 1
	}

	tree := rtreego.NewTree(3, 2, 8)
	for i, t := range tris {
		c := t.Centroid()
		rect, err := rtreego.NewRect(rtreego.Point{c.X, c.Y, c.Z}, []float64{1e-9, 1e-9, 1e-9})
		if err != nil {
			// Only fails on NaN/Inf centroids; Triangle.Valid excludes
			// those upstream. Fall back to one chunk rather than panic.
			return [][]geom.Triangle{tris}
		}
		tree.Insert(&indexedRect{idx: i, rect: rect})
	}

	numChunksPerAxis := int(math.Cbrt(float64((n + chunkSize - 1) / chunkSize)))
	if numChunksPerAxis < 1 {
		numChunksPerAxis = 1
	}

	assigned := make([]bool, n)
	cellX := size.X / float64(numChunksPerAxis)
	cellY := size.Y / float64(numChunksPerAxis)
	cellZ := size.Z / float64(numChunksPerAxis)

	var chunks [][]geom.Triangle
	for ix := 0; ix < numChunksPerAxis; ix++ {
		for iy := 0; iy < numChunksPerAxis; iy++ {
			for iz := 0; iz < numChunksPerAxis; iz++ {
				lo := rtreego.Point{
					bounds.Min.X + float64(ix)*cellX - 1e-6,
					bounds.Min.Y + float64(iy)*cellY - 1e-6,
					bounds.Min.Z + float64(iz)*cellZ - 1e-6,
				}
				lengths := []float64{cellX + 2e-6, cellY + 2e-6, cellZ + 2e-6}
				rect, err := rtreego.NewRect(lo, lengths)
				if err != nil {
					continue
				}
				hits := tree.SearchIntersect(rect)
				var chunk []geom.Triangle
				for _, h := range hits {
					ir := h.(*indexedRect)
					if assigned[ir.idx] {
						continue
					}
					assigned[ir.idx] = true
					chunk = append(chunk, tris[ir.idx])
				}
				if len(chunk) > 0 {
					chunks = append(chunks, chunk)
				}
			}
		}
	}

	var leftover []geom.Triangle
	for i, done := range assigned {
		if !done {
			leftover = append(leftover, tris[i])
		}
	}
	if len(leftover) > 0 {
		chunks = append(chunks, leftover)
	}
	return chunks
}

type indexedRect struct {
	idx  int
	rect rtreego.Rect
}

func (r *indexedRect) Bounds() rtreego.Rect { return r.rect }

// PointChunks splits points into roughly-equal-size chunks sized so there
// are at least MinChunksPerWorker*workers chunks, applied to the
// morphological operators that share this dispatcher.
func PointChunks(points []v3i.Vec, workers int) [][]v3i.Vec {
	n := len(points)
	if n == 0 {
		return nil
	}
	minChunks := MinChunksPerWorker * workers
	if minChunks < 1 {
		minChunks = 1
	}
	size := (n + minChunks - 1) / minChunks
	if size < 1 {
		size = 1
	}
	var chunks [][]v3i.Vec
	for i := 0; i < n; i += size {
		end := i + size
		if end > n {
			end = n
		}
		chunks = append(chunks, points[i:end])
	}
	return chunks
}

//-----------------------------------------------------------------------------

// Run executes work over each chunk in parallel (or serially, if parallel is
// false or the capability probe reports no worker support) and unions every
// chunk's resulting point set into a single deduplicated set. Worker
// interleaving is unordered; only the resulting set is defined. Cancellation
// is cooperative: once ctx is done, workers that have already produced a
// result are merged and the rest are abandoned (their goroutines still run
// to completion but their output is discarded).
func Run[T any](ctx context.Context, chunks [][]T, parallel bool, work func([]T) v3i.Set) v3i.Set {
	result := v3i.NewSet(0)
	if len(chunks) == 0 {
		return result
	}

	if !parallel || !CapabilityProbe() || len(chunks) == 1 {
		for _, c := range chunks {
			if ctx.Err() != nil {
				break
			}
			result.Union(work(c))
		}
		return result
	}

	workers := Workers()
	results := make(chan v3i.Set, len(chunks))
	sem := make(chan struct{}, workers)
	done := ctx.Done()

	idx := 0
	active := 0
	cancelled := false
	for idx < len(chunks) || active > 0 {
		for !cancelled && idx < len(chunks) && active < workers {
			select {
			case <-done:
				cancelled = true
				continue
			default:
			}
			chunk := chunks[idx]
			idx++
			active++
			sem <- struct{}{}
			go func(c []T) {
				defer func() { <-sem }()
				results <- work(c)
			}(chunk)
		}
		if cancelled {
			idx = len(chunks)
		}
		if active > 0 {
			r := <-results
			active--
			if !cancelled {
				select {
				case <-done:
					cancelled = true
				default:
				}
			}
			if !cancelled {
				result.Union(r)
			}
		} else if cancelled {
			break
		}
	}
	return result
}
