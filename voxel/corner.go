//-----------------------------------------------------------------------------
/*

Corner Filling

Deduces corner blocks (CutCorner or Corner) where two compatible slope
entries meet along an edge-of-cube midpoint neighbor, filling the gap a
slope-only smoothing pass leaves at convex and concave corners.

*/
//-----------------------------------------------------------------------------

package voxel

import "github.com/voxelforge/meshblock/vec/v3i"

//-----------------------------------------------------------------------------

// l1TwoOffsets enumerates the 12 distinct integer offsets with L1-norm
// exactly 2 that are not axis-aligned double-steps (every (±1,±1,0)
// permutation): the edge-of-cube midpoint neighbors FillCorners considers.
var l1TwoOffsets = buildL1TwoOffsets()

func buildL1TwoOffsets() []v3i.Vec {
	axes := [3]v3i.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	var out []v3i.Vec
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			for _, si := range [2]int64{1, -1} {
				for _, sj := range [2]int64{1, -1} {
					out = append(out, axes[i].Scale(si).Add(axes[j].Scale(sj)))
				}
			}
		}
	}
	return out
}

//-----------------------------------------------------------------------------

// FillCorners deduces corner blocks where two compatible slope entries
// meet, mutating v in place and returning it.
func FillCorners(v VoxelMap) VoxelMap {
	type entry struct {
		pos   v3i.Vec
		block OrientedBlock
	}
	slopes := make([]entry, 0, len(v))
	for p, b := range v {
		if b.Kind.Shape == ShapeSlope {
			slopes = append(slopes, entry{pos: p, block: b})
		}
	}

	for _, a := range slopes {
		for _, offset := range l1TwoOffsets {
			pPrime := a.pos.Add(offset)
			b, ok := v[pPrime]
			if !ok || b.Kind.Shape != ShapeSlope {
				continue
			}
			considerCornerPair(v, a.pos, a.block, pPrime, b)
		}
	}
	return v
}

func considerCornerPair(v VoxelMap, p v3i.Vec, a OrientedBlock, pPrime v3i.Vec, b OrientedBlock) {
	if a.Kind.Run != b.Kind.Run || a.Kind.Step != b.Kind.Step {
		return
	}
	if a.Orient.Up != b.Orient.Up {
		return
	}
	if a.Orient.Forward.Vec().Dot(b.Orient.Forward.Vec()) != 0 {
		return
	}

	af := a.Orient.Forward.Vec()
	bf := b.Orient.Forward.Vec()

	if p.Add(af) == pPrime.Add(bf) {
		target := p.Sub(bf)
		placeCorner(v, target, CutCorner, a.Orient)
		return
	}
	if p.Sub(af) == pPrime.Sub(bf) {
		target := p.Add(bf)
		placeCorner(v, target, Corner(a.Kind.Run, a.Kind.Step), a.Orient)
	}
}

func placeCorner(v VoxelMap, target v3i.Vec, kind SlopeKind, orient Orientation) {
	if v.Occupied(target) {
		return
	}
	v[target] = OrientedBlock{Kind: kind, Orient: orient, Oriented: true}
}
