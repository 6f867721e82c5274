package espalier

import (
	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/dual"
	"github.com/aretw0/espalier/pkg/geom"
	"github.com/aretw0/espalier/pkg/ports"
)

// Diagram is an immutable scene tree whose query function answers values in
// the monoid M. Every operation returns a new diagram sharing untouched
// subtrees with its inputs, so diagrams built on separate goroutines can be
// combined freely.
type Diagram[M Monoid[M]] struct {
	tree dual.Tree[annot.Down, up[M], leafValue[M]]
}

// leafValue is a diagram leaf: either a wrapped primitive or a delayed
// expansion evaluated at compile time. Exactly one field is set.
type leafValue[M Monoid[M]] struct {
	prim   ports.Primitive
	expand func(annot.Down) *Diagram[M]
}

// EmptyDiagram returns the identity diagram: no primitives, empty envelope
// and trace, no names, constant-empty query.
func EmptyDiagram[M Monoid[M]]() *Diagram[M] {
	return &Diagram[M]{tree: dual.Empty[annot.Down, up[M], leafValue[M]](algebraFor[M]())}
}

// Prim wraps a primitive with its local annotations into a single-leaf
// diagram. Any annotation may be zero.
func Prim[M Monoid[M]](p ports.Primitive, env annot.Envelope, tr annot.Trace, q Query[M]) *Diagram[M] {
	return &Diagram[M]{tree: dual.Leaf(algebraFor[M](), localUp[M](env, tr, q), leafValue[M]{prim: p})}
}

// Delayed returns a diagram whose content is computed from its eventual
// placement context during compilation. The envelope and trace stand in for
// the expansion's extent until then.
//
// The expansion contract: the produced diagram must already incorporate the
// non-frozen portion of the received context's transform in its own
// geometry — the compiler will not re-apply it — and must assume the frozen
// transform and style will still be applied by the surrounding context.
// Expansion functions must be total; they run on every compilation and are
// never memoized.
func Delayed[M Monoid[M]](env annot.Envelope, tr annot.Trace, expand func(annot.Down) *Diagram[M]) *Diagram[M] {
	return &Diagram[M]{tree: dual.Leaf(algebraFor[M](), localUp[M](env, tr, nil), leafValue[M]{expand: expand})}
}

func localUp[M Monoid[M]](env annot.Envelope, tr annot.Trace, q Query[M]) up[M] {
	var u up[M]
	if env != nil {
		u.env = dual.DeletableOf(env)
	}
	if tr != nil {
		u.trace = dual.DeletableOf(tr)
	}
	if q != nil {
		u.query = dual.DeletableOf(q)
	}
	return u
}

// Combine stacks d atop o: in the result d's primitives render on top and
// its names take precedence. Combine and EmptyDiagram form a monoid.
func (d *Diagram[M]) Combine(o *Diagram[M]) *Diagram[M] {
	return &Diagram[M]{tree: d.tree.Concat(o.tree)}
}

// Atop is an alias for Combine.
func (d *Diagram[M]) Atop(o *Diagram[M]) *Diagram[M] {
	return d.Combine(o)
}

// Stack combines diagrams in order: the first renders on top.
func Stack[M Monoid[M]](ds ...*Diagram[M]) *Diagram[M] {
	out := EmptyDiagram[M]()
	for _, d := range ds {
		out = out.Combine(d)
	}
	return out
}

// pushDown inserts context above the whole tree. O(1): the cached aggregate
// is updated through the action, never recomputed from leaves.
func (d *Diagram[M]) pushDown(ctx annot.Down) *Diagram[M] {
	return &Diagram[M]{tree: d.tree.PushDown(ctx)}
}

// Transformed applies an affine transform to the diagram.
func (d *Diagram[M]) Transformed(t geom.Transform) *Diagram[M] {
	return d.pushDown(annot.DownTransform(t))
}

// Translated moves the diagram by v.
func (d *Diagram[M]) Translated(v geom.Vec) *Diagram[M] {
	return d.Transformed(geom.Translate(v))
}

// Scaled scales the diagram uniformly about the origin.
func (d *Diagram[M]) Scaled(s float64) *Diagram[M] {
	return d.Transformed(geom.Scale(s))
}

// Rotated rotates the diagram counterclockwise about the origin.
func (d *Diagram[M]) Rotated(theta float64) *Diagram[M] {
	return d.Transformed(geom.Rotate(theta))
}

// Styled applies a style to the diagram. Attributes already bound deeper in
// the tree keep precedence under the attribute's own merge law.
func (d *Diagram[M]) Styled(s annot.Style) *Diagram[M] {
	return d.pushDown(annot.DownStyle(s))
}

// Freeze marks the transform accumulated so far as a boundary: transforms
// applied to the result affect scale-dependent style attributes as well as
// geometry, while transforms applied before the freeze affect geometry
// only. Geometric placement is never changed by freezing.
func (d *Diagram[M]) Freeze() *Diagram[M] {
	return d.pushDown(annot.DownFreeze())
}

// Qualify prefixes every name bound inside the diagram.
func (d *Diagram[M]) Qualify(prefix annot.Name) *Diagram[M] {
	return d.pushDown(annot.DownPrefix(prefix))
}

// Envelope returns the diagram's aggregate envelope. O(1).
func (d *Diagram[M]) Envelope() annot.Envelope {
	e, _ := dual.DeletableValue(d.tree.Aggregate().env, annot.Envelope.Merge)
	return e
}

// Trace returns the diagram's aggregate trace. O(1).
func (d *Diagram[M]) Trace() annot.Trace {
	tr, _ := dual.DeletableValue(d.tree.Aggregate().trace, annot.Trace.Merge)
	return tr
}

// SubMap returns the diagram's name index. O(1).
func (d *Diagram[M]) SubMap() SubMap[M] {
	m, _ := dual.DeletableValue(d.tree.Aggregate().subs, SubMap[M].Union)
	return m
}

// Query returns the diagram's aggregate query function. O(1).
func (d *Diagram[M]) Query() Query[M] {
	q, _ := dual.DeletableValue(d.tree.Aggregate().query, mergeQuery[M])
	return q
}

// Sample evaluates the diagram's query at p.
func (d *Diagram[M]) Sample(p geom.Point) M {
	return d.Query().Sample(p)
}

// WithEnvelope replaces the diagram's envelope. O(1): the previous
// contribution is cancelled, not recomputed away.
func (d *Diagram[M]) WithEnvelope(e annot.Envelope) *Diagram[M] {
	return &Diagram[M]{tree: d.tree.
		PushDownPre(up[M]{env: dual.DeleteOpen[annot.Envelope]()}).
		PushDownPost(up[M]{env: dual.DeleteClose[annot.Envelope]()}).
		PushDownPost(up[M]{env: dual.DeletableOf(e)})}
}

// WithTrace replaces the diagram's trace. O(1).
func (d *Diagram[M]) WithTrace(tr annot.Trace) *Diagram[M] {
	return &Diagram[M]{tree: d.tree.
		PushDownPre(up[M]{trace: dual.DeleteOpen[annot.Trace]()}).
		PushDownPost(up[M]{trace: dual.DeleteClose[annot.Trace]()}).
		PushDownPost(up[M]{trace: dual.DeletableOf(tr)})}
}

// WithQuery replaces the diagram's query function. O(1).
func (d *Diagram[M]) WithQuery(q Query[M]) *Diagram[M] {
	return &Diagram[M]{tree: d.tree.
		PushDownPre(up[M]{query: dual.DeleteOpen[Query[M]]()}).
		PushDownPost(up[M]{query: dual.DeleteClose[Query[M]]()}).
		PushDownPost(up[M]{query: dual.DeletableOf(q)})}
}

// withSubMap replaces the diagram's name index. O(1).
func (d *Diagram[M]) withSubMap(m SubMap[M]) *Diagram[M] {
	return &Diagram[M]{tree: d.tree.
		PushDownPre(up[M]{subs: dual.DeleteOpen[SubMap[M]]()}).
		PushDownPost(up[M]{subs: dual.DeleteClose[SubMap[M]]()}).
		PushDownPost(up[M]{subs: dual.DeletableOf(m)})}
}

// Localize hides every name from outward visibility, leaving envelope,
// trace, query, and primitives untouched. O(1).
func (d *Diagram[M]) Localize() *Diagram[M] {
	return &Diagram[M]{tree: d.tree.
		PushDownPre(up[M]{subs: dual.DeleteOpen[SubMap[M]]()}).
		PushDownPost(up[M]{subs: dual.DeleteClose[SubMap[M]]()})}
}

// IsEmpty reports whether the diagram has no leaves at all.
func (d *Diagram[M]) IsEmpty() bool {
	return d.tree.IsEmpty()
}

// flatten exposes the ordered (leaf, context) sequence for compilation and
// structural tests.
func (d *Diagram[M]) flatten() []dual.Flat[annot.Down, leafValue[M]] {
	return d.tree.Flatten()
}
