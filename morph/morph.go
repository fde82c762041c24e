//-----------------------------------------------------------------------------
/*

Morphology

Integer-ball morphological operators — dilate, erode, and shell-hollow —
over a lattice point set. All three share the dispatch package's worker
pool since each reduces to an independent per-point membership test
against a precomputed structuring element.

*/
//-----------------------------------------------------------------------------

// Package morph implements the integer-ball morphological operators —
// dilate, erode, and shell-hollow — over a lattice point set.
package morph

import (
	"context"
	"sync"

	"github.com/voxelforge/meshblock/dispatch"
	"github.com/voxelforge/meshblock/vec/v3i"
)

//-----------------------------------------------------------------------------

// ball caches structuring elements by radius so callers that dilate/erode/
// hollow at the same radius many times (e.g. across retries) reuse the
// cached slice instead of recomputing it.
var (
	ballMu    sync.Mutex
	ballCache = map[int64][]v3i.Vec{}
)

// Ball returns the set of Vec3i offsets (i, j, k) with i²+j²+k² ≤ r²,
// i, j, k ∈ [-r, r] — the structuring element used by Dilate, Erode, and
// ShellHollow.
func Ball(r int64) []v3i.Vec {
	if r < 0 {
		r = 0
	}
	ballMu.Lock()
	if cached, ok := ballCache[r]; ok {
		ballMu.Unlock()
		return cached
	}
	ballMu.Unlock()

	r2 := r * r
	var offsets []v3i.Vec
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			for k := -r; k <= r; k++ {
				if i*i+j*j+k*k <= r2 {
					offsets = append(offsets, v3i.Vec{X: i, Y: j, Z: k})
				}
			}
		}
	}

	ballMu.Lock()
	ballCache[r] = offsets
	ballMu.Unlock()
	return offsets
}

//-----------------------------------------------------------------------------

// Dilate returns { p + b | p in S, b in ball(r) }. r = 0 is the identity.
func Dilate(ctx context.Context, s v3i.Set, r int64, parallel bool) v3i.Set {
	if r == 0 || len(s) == 0 {
		out := v3i.NewSet(len(s))
		out.Union(s)
		return out
	}
	ball := Ball(r)
	points := s.Slice()
	chunks := dispatch.PointChunks(points, dispatch.Workers())
	return dispatch.Run(ctx, chunks, parallel, func(chunk []v3i.Vec) v3i.Set {
		dst := v3i.NewSet(len(chunk) * len(ball))
		for _, p := range chunk {
			for _, b := range ball {
				dst.Add(p.Add(b))
			}
		}
		return dst
	})
}

// Erode returns { p in S | forall b in ball(r): p+b in S }. r = 0 is the
// identity.
func Erode(ctx context.Context, s v3i.Set, r int64, parallel bool) v3i.Set {
	if r == 0 || len(s) == 0 {
		out := v3i.NewSet(len(s))
		out.Union(s)
		return out
	}
	ball := Ball(r)
	points := s.Slice()
	chunks := dispatch.PointChunks(points, dispatch.Workers())
	return dispatch.Run(ctx, chunks, parallel, func(chunk []v3i.Vec) v3i.Set {
		dst := v3i.NewSet(len(chunk))
		for _, p := range chunk {
			kept := true
			for _, b := range ball {
				if !s.Has(p.Add(b)) {
					kept = false
					break
				}
			}
			if kept {
				dst.Add(p)
			}
		}
		return dst
	})
}

// ShellHollow returns { p in S | exists b in ball(r): p+b not in S } — the
// inverse of Erode's retention rule, keeping only the boundary shell. r = 0
// is the identity.
func ShellHollow(ctx context.Context, s v3i.Set, r int64, parallel bool) v3i.Set {
	if r == 0 || len(s) == 0 {
		out := v3i.NewSet(len(s))
		out.Union(s)
		return out
	}
	ball := Ball(r)
	points := s.Slice()
	chunks := dispatch.PointChunks(points, dispatch.Workers())
	return dispatch.Run(ctx, chunks, parallel, func(chunk []v3i.Vec) v3i.Set {
		dst := v3i.NewSet(len(chunk))
		for _, p := range chunk {
			for _, b := range ball {
				if !s.Has(p.Add(b)) {
					dst.Add(p)
					break
				}
			}
		}
		return dst
	})
}
