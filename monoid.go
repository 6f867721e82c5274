package espalier

import "github.com/aretw0/espalier/pkg/geom"

// Monoid constrains a diagram's query result type. The zero value of M must
// be the identity of Merge, and Merge must be associative.
type Monoid[M any] interface {
	Merge(M) M
}

// Any is the default query monoid: point containment under logical or.
type Any bool

// Merge returns a || b.
func (a Any) Merge(b Any) Any {
	return a || b
}

// Query maps points to a result monoid, sampled per point. A nil Query
// answers the zero value everywhere.
type Query[M Monoid[M]] func(geom.Point) M

// Sample evaluates the query at p.
func (q Query[M]) Sample(p geom.Point) M {
	if q == nil {
		var zero M
		return zero
	}
	return q(p)
}

func mergeQuery[M Monoid[M]](a, b Query[M]) Query[M] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(p geom.Point) M {
		return a(p).Merge(b(p))
	}
}
