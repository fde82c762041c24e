//-----------------------------------------------------------------------------
/*

Pipeline Options

Class is the container class byte the blueprint is produced for; the core
does not interpret it beyond validating membership, since the surrounding
container is spliced by an external collaborator. Options configures a
Build run and validates the fields with a defined error Kind.

*/
//-----------------------------------------------------------------------------

package blueprint

// Class is the container class byte the blueprint is produced for; the
// core does not interpret it beyond validating membership, since the
// surrounding container is spliced by an external collaborator.
type Class byte

// The four defined container classes.
const (
	ClassCV Class = 0x08
	ClassBA Class = 0x02
	ClassHV Class = 0x10
	ClassSV Class = 0x04
)

func (c Class) valid() bool {
	switch c {
	case ClassCV, ClassBA, ClassHV, ClassSV:
		return true
	default:
		return false
	}
}

//-----------------------------------------------------------------------------

// Options configures a Build run.
type Options struct {
	// Resolution is the units-per-lattice-step spacing; must be positive.
	Resolution float64

	// DimRemap permutes mesh axes onto lattice axes before refinement.
	// Values are 1-indexed (1, 2, 3); the zero value ([3]int{0,0,0}) means
	// "no remap" (identity).
	DimRemap [3]int

	// Mirror reflects the corresponding mesh axis before refinement.
	Mirror [3]bool

	// DilateR and ErodeR are morphological structuring-element radii,
	// applied in that order to the refined point set. Zero disables the
	// corresponding step.
	DilateR, ErodeR int64

	// HollowR, when positive, applies morph.ShellHollow at this radius to
	// the post-morphology point set and enables the DenseGrid flood-hollow
	// pass before encoding.
	HollowR int64

	// DisableSmoothing skips the smoother and corner filler, leaving every
	// lattice point a Cube.
	DisableSmoothing bool

	// CornerBlocks enables the corner filler after smoothing.
	CornerBlocks bool

	// Aggressive enables the smoother's aggressive mode: try every
	// adjacency candidate instead of aborting when there is more than one.
	Aggressive bool

	// Class is the target container class; validated but not otherwise
	// interpreted by the core.
	Class Class

	// Parallel enables the worker-pool dispatcher for refinement and
	// morphology; false forces the serial fallback.
	Parallel bool
}

// hasDimRemap reports whether o sets DimRemap to anything other than its
// zero value; an explicit {1, 2, 3} also counts as set.
func (o Options) hasDimRemap() bool {
	return o.DimRemap != [3]int{}
}

// validDimRemap reports whether remap is a permutation of {1, 2, 3}.
func validDimRemap(remap [3]int) bool {
	seen := [4]bool{}
	for _, v := range remap {
		if v < 1 || v > 3 || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// validate checks every field that carries a defined error Kind, returning
// the first violation found.
func (o Options) validate() error {
	if o.Resolution <= 0 {
		return newError(InvalidResolution, "resolution must be positive")
	}
	if o.hasDimRemap() && !validDimRemap(o.DimRemap) {
		return newError(InvalidDimRemap, "dim remap must be a permutation of {1,2,3}")
	}
	if !o.Class.valid() {
		return newError(InvalidClass, "class must be one of CV, BA, HV, SV")
	}
	if o.DilateR < 0 || o.ErodeR < 0 || o.HollowR < 0 {
		return newError(InvalidMorphology, "structuring element radius must be non-negative")
	}
	return nil
}

// ResolutionForTargetVoxels derives a resolution from a target voxel count
// along the mesh's longest bounding-box dimension, a CLI-facing input form.
func ResolutionForTargetVoxels(longestDim float64, targetVoxels int) float64 {
	if targetVoxels < 1 {
		targetVoxels = 1
	}
	return longestDim / float64(targetVoxels)
}
