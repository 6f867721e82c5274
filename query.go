package espalier

import (
	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/dual"
	"github.com/aretw0/espalier/pkg/geom"
)

// MapQuery rewrites the diagram's query component pointwise through f,
// leaf by leaf; envelope, trace, names, and primitives are untouched. For
// the result to keep the monoid laws, f should be a homomorphism
// (f(zero) == zero and f(a.Merge(b)) == f(a).Merge(f(b))).
func MapQuery[M2 Monoid[M2], M1 Monoid[M1]](d *Diagram[M1], f func(M1) M2) *Diagram[M2] {
	alg := algebraFor[M2]()
	tree := dual.Map(d.tree, alg,
		func(u up[M1], l leafValue[M1]) (up[M2], leafValue[M2]) {
			return remapUp(u, f), remapLeaf(l, f)
		},
		func(u up[M1]) up[M2] {
			return remapUp(u, f)
		},
	)
	return &Diagram[M2]{tree: tree}
}

// Value rewrites a containment diagram so that covered points answer v and
// uncovered points answer the zero of M.
func Value[M Monoid[M]](v M, d *Diagram[Any]) *Diagram[M] {
	return MapQuery(d, func(a Any) M {
		if a {
			return v
		}
		var zero M
		return zero
	})
}

// ResetValue collapses the query back to containment: any point whose value
// differs from the zero of M is considered covered.
func ResetValue[M interface {
	Monoid[M]
	comparable
}](d *Diagram[M]) *Diagram[Any] {
	var zero M
	return MapQuery(d, func(v M) Any {
		return v != zero
	})
}

// ClearValue discards the query entirely, leaving the constant-empty query.
func ClearValue[M Monoid[M]](d *Diagram[M]) *Diagram[Any] {
	return MapQuery(d, func(M) Any { return false })
}

func remapUp[M1 Monoid[M1], M2 Monoid[M2]](u up[M1], f func(M1) M2) up[M2] {
	return up[M2]{
		env:   u.env,
		trace: u.trace,
		subs:  dual.MapDeletable(u.subs, func(m SubMap[M1]) SubMap[M2] { return remapSubMap(m, f) }),
		query: dual.MapDeletable(u.query, func(q Query[M1]) Query[M2] { return remapQueryFn(q, f) }),
	}
}

func remapLeaf[M1 Monoid[M1], M2 Monoid[M2]](l leafValue[M1], f func(M1) M2) leafValue[M2] {
	out := leafValue[M2]{prim: l.prim}
	if l.expand != nil {
		expand := l.expand
		out.expand = func(ctx annot.Down) *Diagram[M2] {
			return MapQuery(expand(ctx), f)
		}
	}
	return out
}

func remapQueryFn[M1 Monoid[M1], M2 Monoid[M2]](q Query[M1], f func(M1) M2) Query[M2] {
	if q == nil {
		return nil
	}
	return func(p geom.Point) M2 {
		return f(q(p))
	}
}

func remapSubMap[M1 Monoid[M1], M2 Monoid[M2]](m SubMap[M1], f func(M1) M2) SubMap[M2] {
	if len(m.entries) == 0 {
		return SubMap[M2]{}
	}
	out := SubMap[M2]{entries: make([]subEntry[M2], len(m.entries))}
	for i, e := range m.entries {
		subs := make([]*Subdiagram[M2], len(e.subs))
		for j, s := range e.subs {
			subs[j] = &Subdiagram[M2]{diagram: MapQuery(s.diagram, f), ctx: s.ctx}
		}
		out.entries[i] = subEntry[M2]{name: e.name, subs: subs}
	}
	return out
}
