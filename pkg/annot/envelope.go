// Package annot defines the annotation value types carried by diagram
// trees: the bottom-up envelope and trace functions, the top-down style
// accumulator, and hierarchical names with their qualification rules.
package annot

import "github.com/aretw0/espalier/pkg/geom"

// Envelope is a directional bounding extent in support-function form: for a
// direction v it answers max over the geometry of v . x. A nil Envelope is
// the empty extent (the identity for Merge).
type Envelope func(v geom.Vec) float64

// EnvelopeOf returns the envelope of a finite point set (the support
// function of its convex hull). With no points it returns the empty
// envelope.
func EnvelopeOf(pts ...geom.Point) Envelope {
	if len(pts) == 0 {
		return nil
	}
	set := append([]geom.Point(nil), pts...)
	return func(v geom.Vec) float64 {
		best := v.Dot(set[0].Vec())
		for _, p := range set[1:] {
			if d := v.Dot(p.Vec()); d > best {
				best = d
			}
		}
		return best
	}
}

// Merge combines two envelopes by pointwise maximum. Merge is associative
// and commutative with nil as identity.
func (e Envelope) Merge(o Envelope) Envelope {
	if e == nil {
		return o
	}
	if o == nil {
		return e
	}
	return func(v geom.Vec) float64 {
		a, b := e(v), o(v)
		if a >= b {
			return a
		}
		return b
	}
}

// ApplyTransform returns the envelope of the transformed geometry. For an
// affine map x -> Ax + b the support function transforms as
// h'(v) = h(Aᵀv) + v.b.
func (e Envelope) ApplyTransform(t geom.Transform) Envelope {
	if e == nil {
		return nil
	}
	off := t.Offset()
	return func(v geom.Vec) float64 {
		return e(t.TransposeVec(v)) + v.Dot(off)
	}
}
