//-----------------------------------------------------------------------------
/*

Domain Errors

A typed failure Kind the core surfaces to callers, letting them dispatch on
errors.As without string-matching a message.

*/
//-----------------------------------------------------------------------------

package blueprint

import "fmt"

// Kind classifies a blueprint Error.
type Kind int

const (
	// InvalidResolution: resolution <= 0.
	InvalidResolution Kind = iota
	// EmptyMesh: the input triangle list is empty. This is not a failure,
	// and Build never returns it: an empty triangle list yields the
	// well-defined empty payload with a nil error.
	EmptyMesh
	// InvalidDimRemap: the dimension remap is not a permutation of {1,2,3}.
	InvalidDimRemap
	// InvalidClass: the class byte is not one of the four defined values.
	InvalidClass
	// InvalidMorphology: a structuring-element radius is negative.
	InvalidMorphology
	// InvalidGeometry: a triangle carries a non-finite vertex.
	InvalidGeometry
	// InternalInvariant indicates a bug: an internal invariant was violated
	// (e.g. a committed block's forward/up pair is not orthogonal).
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case InvalidResolution:
		return "invalid resolution"
	case EmptyMesh:
		return "empty mesh"
	case InvalidDimRemap:
		return "invalid dimension remap"
	case InvalidClass:
		return "invalid class"
	case InvalidMorphology:
		return "invalid morphology radius"
	case InvalidGeometry:
		return "invalid geometry"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "unknown error"
	}
}

//-----------------------------------------------------------------------------

// Error is the typed failure surfaced by the core. It carries a Kind for
// programmatic dispatch via errors.Is/errors.As and wraps an optional
// underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}
