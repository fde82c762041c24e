//-----------------------------------------------------------------------------
/*

Pipeline

Orchestrates the geometry/voxel pipeline end to end: triangle list in,
encoded block-grid payload out. Dimension remap/mirror, adaptive
refinement, optional morphology, slope smoothing, optional corner fill,
optional flood-hollow, and encoding, in that order.

*/
//-----------------------------------------------------------------------------

package blueprint

import (
	"context"

	"github.com/voxelforge/meshblock/encode"
	"github.com/voxelforge/meshblock/geom"
	"github.com/voxelforge/meshblock/morph"
	"github.com/voxelforge/meshblock/refine"
	v3 "github.com/voxelforge/meshblock/vec/v3"
	"github.com/voxelforge/meshblock/vec/v3i"
	"github.com/voxelforge/meshblock/voxel"
)

//-----------------------------------------------------------------------------

// Result is everything Build returns on success: the encoded payload, its
// dimensions, and the shift that was applied to reach grid-local
// coordinates.
type Result struct {
	Payload encode.Payload
	Offset  v3i.Vec
}

// Build runs the full pipeline over tris under opts: dimension remap/mirror,
// adaptive refinement, optional morphology, smoothing, optional corner
// fill, optional flood-hollow, and encoding.
//
// An empty tris list is not an error: it yields a well-defined empty
// payload.
func Build(ctx context.Context, tris []geom.Triangle, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if len(tris) == 0 {
		return emptyResult(), nil
	}
	for _, t := range tris {
		if !t.Valid() {
			return Result{}, newError(InvalidGeometry, "triangle carries a non-finite vertex")
		}
	}

	transformed := applyRemapAndMirror(tris, opts)

	points := refine.RefineAll(ctx, transformed, opts.Resolution, opts.Parallel)
	if len(points) == 0 {
		return emptyResult(), nil
	}

	if opts.DilateR > 0 {
		points = morph.Dilate(ctx, points, opts.DilateR, opts.Parallel)
	}
	if opts.ErodeR > 0 {
		points = morph.Erode(ctx, points, opts.ErodeR, opts.Parallel)
	}
	if opts.HollowR > 0 {
		points = morph.ShellHollow(ctx, points, opts.HollowR, opts.Parallel)
	}
	if len(points) == 0 {
		return emptyResult(), nil
	}

	var vmap voxel.VoxelMap
	if opts.DisableSmoothing {
		vmap = voxel.FromPoints(points)
	} else {
		vmap = voxel.Smooth(points, opts.Aggressive)
		if opts.CornerBlocks {
			vmap = voxel.FillCorners(vmap)
		}
	}

	if err := checkInvariants(vmap); err != nil {
		return Result{}, err
	}

	grid, offset, ok := voxel.BuildDenseGrid(vmap)
	if !ok {
		return emptyResult(), nil
	}

	if opts.HollowR > 0 {
		voxel.FloodHollow(grid, nil)
	}

	payload, err := encode.Encode(grid)
	if err != nil {
		return Result{}, wrapError(InternalInvariant, "encoding failed", err)
	}

	return Result{Payload: payload, Offset: offset}, nil
}

func emptyResult() Result {
	return Result{Payload: encode.Payload{Bytes: nil, L: 0, W: 0, H: 0}}
}

// checkInvariants verifies every oriented block's orientation is
// axis-orthogonal, and that every slope's down direction holds a Cube (the
// commit-time cube a slope slopes toward, which nothing ever overwrites).
// CutCorner/Corner placements only require their own target cell be empty
// and never establish a cube at their down neighbor, so the down-cube check
// does not apply to them. A violation indicates an internal bug, not bad
// input.
func checkInvariants(v voxel.VoxelMap) error {
	for p, b := range v {
		if !b.Oriented {
			continue
		}
		if !b.Orient.Orthogonal() {
			return newError(InternalInvariant, "committed block has non-orthogonal forward/up pair")
		}
		if b.Kind.Shape != voxel.ShapeSlope {
			continue
		}
		down := b.Orient.Up.Opposite()
		if !v.IsCube(p.Add(down.Vec())) {
			return newError(InternalInvariant, "committed slope has no Cube at its down neighbor")
		}
	}
	return nil
}

// applyRemapAndMirror permutes each triangle's axes per opts.DimRemap and
// reflects them per opts.Mirror, before refinement consumes them.
func applyRemapAndMirror(tris []geom.Triangle, opts Options) []geom.Triangle {
	if !opts.hasDimRemap() && opts.Mirror == [3]bool{} {
		return tris
	}
	out := make([]geom.Triangle, len(tris))
	for i, t := range tris {
		nt := t
		if opts.hasDimRemap() {
			nt = geom.New(remapVertex(nt.V[0], opts.DimRemap), remapVertex(nt.V[1], opts.DimRemap), remapVertex(nt.V[2], opts.DimRemap))
		}
		nt = nt.Reflect(opts.Mirror[0], opts.Mirror[1], opts.Mirror[2])
		out[i] = nt
	}
	return out
}

func remapVertex(v v3.Vec, remap [3]int) v3.Vec {
	src := [3]float64{v.X, v.Y, v.Z}
	var dst [3]float64
	for axis, from := range remap {
		dst[axis] = src[from-1]
	}
	return v3.New(dst[0], dst[1], dst[2])
}
