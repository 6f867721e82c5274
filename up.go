package espalier

import (
	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/dual"
	"github.com/aretw0/espalier/pkg/geom"
)

// up is the bottom-up annotation bundle cached at every tree node. Each
// field is independently overridable: the Deletable wrapping lets a field's
// accumulated value be cancelled and replaced without rebuilding the tree.
type up[M Monoid[M]] struct {
	env   dual.Deletable[annot.Envelope]
	trace dual.Deletable[annot.Trace]
	subs  dual.Deletable[SubMap[M]]
	query dual.Deletable[Query[M]]
}

func combineUp[M Monoid[M]](a, b up[M]) up[M] {
	return up[M]{
		env:   dual.MergeDeletable(a.env, b.env, annot.Envelope.Merge),
		trace: dual.MergeDeletable(a.trace, b.trace, annot.Trace.Merge),
		subs:  dual.MergeDeletable(a.subs, b.subs, SubMap[M].Union),
		query: dual.MergeDeletable(a.query, b.query, mergeQuery[M]),
	}
}

// The action table: how each Down component transforms each Up field when
// context is inserted above a subtree. Every (down, up) pair is listed;
// pairs with no interaction use actIdentity explicitly so a missing case is
// a visible decision, not a silent no-op.
//
//	               envelope          trace             submap              query
//	transform      geometric         geometric         captured context    inverse image
//	style          actIdentity       actIdentity       captured context    actIdentity
//	qualifier      actIdentity       actIdentity       key prefix          actIdentity
//
// The submap column applies the whole Down value at once: keys gain the
// qualifier prefix and every captured context is extended rootward, which
// covers both the transform and style rows.
func actDown[M Monoid[M]](d annot.Down, u up[M]) up[M] {
	t := d.Total()
	envFn := actIdentity[annot.Envelope]
	traceFn := actIdentity[annot.Trace]
	queryFn := actIdentity[Query[M]]
	if !t.IsIdentity() {
		envFn = actTransformEnvelope(t)
		traceFn = actTransformTrace(t)
		queryFn = actTransformQuery[M](t)
	}
	return up[M]{
		env:   dual.MapDeletable(u.env, envFn),
		trace: dual.MapDeletable(u.trace, traceFn),
		subs:  dual.MapDeletable(u.subs, actContextSubMap[M](d)),
		query: dual.MapDeletable(u.query, queryFn),
	}
}

// actIdentity is the explicit default action for non-interacting pairs.
func actIdentity[T any](v T) T { return v }

func actTransformEnvelope(t geom.Transform) func(annot.Envelope) annot.Envelope {
	return func(e annot.Envelope) annot.Envelope {
		return e.ApplyTransform(t)
	}
}

func actTransformTrace(t geom.Transform) func(annot.Trace) annot.Trace {
	return func(tr annot.Trace) annot.Trace {
		return tr.ApplyTransform(t)
	}
}

// actTransformQuery answers queries in the outer frame by pulling sample
// points back through the inverse transform.
func actTransformQuery[M Monoid[M]](t geom.Transform) func(Query[M]) Query[M] {
	inv := t.Inverse()
	return func(q Query[M]) Query[M] {
		if q == nil {
			return nil
		}
		return func(p geom.Point) M {
			return q(inv.Apply(p))
		}
	}
}

func actContextSubMap[M Monoid[M]](d annot.Down) func(SubMap[M]) SubMap[M] {
	return func(m SubMap[M]) SubMap[M] {
		return m.applyDown(d)
	}
}

func algebraFor[M Monoid[M]]() *dual.Algebra[annot.Down, up[M]] {
	return &dual.Algebra[annot.Down, up[M]]{
		EmptyUp:     func() up[M] { return up[M]{} },
		CombineUp:   combineUp[M],
		EmptyDown:   annot.EmptyDown,
		ComposeDown: annot.Down.Compose,
		Act:         actDown[M],
	}
}
