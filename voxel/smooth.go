//-----------------------------------------------------------------------------
/*

Slope Smoothing

Replaces stair-stepped silhouettes with sloped ramp blocks: for every
occupied point and every candidate forward direction, checks whether a
supporting Cube exists to slope toward, walks how far the slope can run,
and resolves conflicts between overlapping slope candidates by a fixed
three-way comparison (run length, then forward-direction score, then
up-direction score).

*/
//-----------------------------------------------------------------------------

package voxel

import "github.com/voxelforge/meshblock/vec/v3i"

// dimWeight is the per-axis weight used to score how "far from the origin"
// a direction points at a given lattice position, used to break
// forward/up ties during conflict resolution.
var dimWeight = v3i.Vec{X: 1, Y: 2, Z: 4}

// perpDirs returns every UnitDir perpendicular to f.
func perpDirs(f v3i.UnitDir) []v3i.UnitDir {
	fv := f.Vec()
	out := make([]v3i.UnitDir, 0, 4)
	for _, d := range v3i.AllUnitDirs {
		if fv.Dot(d.Vec()) == 0 {
			out = append(out, d)
		}
	}
	return out
}

func sign(x int64) int64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// directionScore weighs dir by dimWeight at q's sign pattern: sign(q)·W
// dotted with dir, used to break forward/up ties by "points more away
// from origin".
func directionScore(q v3i.Vec, dir v3i.UnitDir) int64 {
	sw := v3i.Vec{X: sign(q.X) * dimWeight.X, Y: sign(q.Y) * dimWeight.Y, Z: sign(q.Z) * dimWeight.Z}
	return sw.Dot(dir.Vec())
}

type ordering int

const (
	lt ordering = iota
	gt
	eq
)

func compareInt(a, b int) ordering {
	switch {
	case a < b:
		return lt
	case a > b:
		return gt
	default:
		return eq
	}
}

func compareInt64(a, b int64) ordering {
	switch {
	case a < b:
		return lt
	case a > b:
		return gt
	default:
		return eq
	}
}

//-----------------------------------------------------------------------------

// adjacencyCandidates returns every unit vector d perpendicular to f such
// that at+d holds a Cube in v. Callers pass at = p+f.
func adjacencyCandidates(v VoxelMap, at v3i.Vec, f v3i.UnitDir) []v3i.UnitDir {
	var out []v3i.UnitDir
	for _, d := range perpDirs(f) {
		if v.IsCube(at.Add(d.Vec())) {
			out = append(out, d)
		}
	}
	return out
}

// viableRun walks k = 1..MaxValidSlope along forward f from p using down
// direction d, returning how many steps are viable.
func viableRun(v VoxelMap, p v3i.Vec, f, d v3i.UnitDir, aggressive bool) int {
	perps := make([]v3i.UnitDir, 0, 3)
	for _, pd := range perpDirs(f) {
		if pd != d {
			perps = append(perps, pd)
		}
	}

	viable := 0
	for k := 1; k <= MaxValidSlope; k++ {
		q := p.Add(f.Vec().Scale(int64(k)))
		if !v.IsCube(q.Add(d.Vec())) {
			viable = k - 1
			break
		}
		if v.IsCube(q) {
			viable = k - 1
			break
		}
		interior := false
		if !aggressive {
			for _, pv := range perps {
				if v.IsCube(q.Add(pv.Vec())) {
					interior = true
					break
				}
			}
		}
		if interior {
			viable = k - 1
			break
		}
		viable = k
	}
	return viable
}

// chosenRun returns the largest entry of VALIDSlopes not exceeding viable,
// or 0 if none qualifies.
func chosenRun(viable int) int {
	best := 0
	for _, s := range VALIDSlopes {
		if s <= viable && s > best {
			best = s
		}
	}
	return best
}

// slopeCheck runs the per-(p, forward) slope check and conflict-resolution
// pass, committing any winning slope directly into v.
func slopeCheck(v VoxelMap, p v3i.Vec, f v3i.UnitDir, aggressive bool) {
	candidates := adjacencyCandidates(v, p.Add(f.Vec()), f)
	if len(candidates) == 0 {
		return
	}
	if len(candidates) > 1 && !aggressive {
		return
	}

	for _, d := range candidates {
		u, ok := v3i.DirOf(d.Vec().Neg())
		if !ok {
			continue
		}
		tryCommitSlope(v, p, f, d, u, aggressive)
		if !aggressive {
			return
		}
	}
}

func tryCommitSlope(v VoxelMap, p v3i.Vec, f, d, u v3i.UnitDir, aggressive bool) {
	viable := viableRun(v, p, f, d, aggressive)
	l := chosenRun(viable)
	if l < 1 {
		return
	}

	for l >= 1 {
		conflict := false
		var markUndecided []v3i.Vec

		for i := 1; i <= l; i++ {
			qi := p.Add(f.Vec().Scale(int64(i)))
			existing, occupied := v[qi]
			if !occupied || existing.Kind.Shape == ShapeCube {
				continue
			}

			winNew, decided := resolveConflict(qi, existing, l, f, u)
			if !decided {
				markUndecided = append(markUndecided, qi)
				conflict = true
				break
			}
			if !winNew {
				conflict = true
				break
			}
		}

		if !conflict {
			for i := 1; i <= l; i++ {
				qi := p.Add(f.Vec().Scale(int64(i)))
				v[qi] = OrientedBlock{Kind: Slope(l, i), Orient: Orientation{Forward: f, Up: u}, Oriented: true}
			}
			return
		}

		for _, qi := range markUndecided {
			v[qi] = OrientedBlock{Kind: undecided}
		}
		l--
	}
}

// resolveConflict decides whether the candidate slope (run l, forward f, up
// u) beats an existing occupant at qi, via three ordered comparisons: run
// length, then forward-direction score, then up-direction score. decided is
// false only when all three compare equal, the "undecided" case.
func resolveConflict(qi v3i.Vec, existing OrientedBlock, l int, f, u v3i.UnitDir) (winNew, decided bool) {
	switch compareInt(existing.Kind.Run, l) {
	case lt:
		return true, true
	case gt:
		return false, true
	}

	switch compareInt64(directionScore(qi, existing.Orient.Forward), directionScore(qi, f)) {
	case lt:
		return true, true
	case gt:
		return false, true
	}

	switch compareInt64(directionScore(qi, existing.Orient.Up), directionScore(qi, u)) {
	case lt:
		return true, true
	case gt:
		return false, true
	}

	return false, false
}

//-----------------------------------------------------------------------------

// Smooth builds a VoxelMap from points (every point starts as a Cube) and
// applies the slope check to every point against every forward direction.
// Entries left "undecided" by unresolved conflicts are dropped before
// returning.
func Smooth(points v3i.Set, aggressive bool) VoxelMap {
	v := FromPoints(points)
	for p := range points {
		for _, f := range v3i.AllUnitDirs {
			slopeCheck(v, p, f, aggressive)
		}
	}
	for p, b := range v {
		if b.Kind.Shape == shapeUndecided {
			delete(v, p)
		}
	}
	return v
}
