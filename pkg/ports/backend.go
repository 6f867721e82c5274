package ports

import (
	"errors"

	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/geom"
)

// ErrUnsupportedPrimitive is the conventional sentinel for a backend asked
// to render a primitive kind it does not recognize. Backends wrap it with
// the offending kind.
var ErrUnsupportedPrimitive = errors.New("unsupported primitive")

// Backend consumes a compiled render tree and folds it into an output value
// R. Implementations must treat R as a monoid (Empty is the identity of
// Combine) and must interpret the two scoping rules: a style scope applies
// while rendering its subtree and pops on exit, and the frozen transform of
// a scope applies to both the geometry and the scale-dependent style
// attributes of everything beneath it.
type Backend[R any] interface {
	// Empty returns the identity output.
	Empty() R

	// Combine merges two outputs in stacking order: a renders on top of b.
	Combine(a, b R) R

	// RenderPrim renders a primitive under the given non-frozen transform.
	// Any active frozen transform from an enclosing scope applies in
	// addition.
	RenderPrim(p Primitive, pending geom.Transform) (R, error)

	// ApplyStyle scopes inner with a style and the frozen transform under
	// which scale-dependent attributes are interpreted.
	ApplyStyle(s annot.Style, frozen geom.Transform, inner R) (R, error)

	// Finalize produces the backend's result from the folded output.
	Finalize(r R) (R, error)
}
