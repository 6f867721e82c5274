package espalier

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/geom"
	"github.com/aretw0/espalier/pkg/ports"
)

// dot is the minimal concrete primitive used across the tests: a named
// point with no extent of its own.
type dot struct {
	name string
	at   geom.Point
}

func (d *dot) Transformed(t geom.Transform) ports.Primitive {
	return &dot{name: d.name, at: t.Apply(d.at)}
}

func (d *dot) TransformedSplit(s geom.Split) ports.Primitive {
	return d.Transformed(s.Total())
}

func (d *dot) Kind() string { return "dot" }

func (d *dot) String() string { return fmt.Sprintf("dot(%s)", d.name) }

// unitEnvelope is the envelope of the square [-1,1] x [-1,1].
func unitEnvelope() annot.Envelope {
	return annot.EnvelopeOf(
		geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: -1},
		geom.Point{X: -1, Y: 1}, geom.Point{X: -1, Y: -1},
	)
}

// unitQuery covers the square [-1,1] x [-1,1].
func unitQuery() Query[Any] {
	return func(p geom.Point) Any {
		return p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1
	}
}

// dotDiagram builds the standard single-primitive test diagram: a named dot
// at the origin with the unit envelope and unit containment query.
func dotDiagram(name string) *Diagram[Any] {
	return Prim[Any](&dot{name: name}, unitEnvelope(), nil, unitQuery())
}

// leafRecord is the comparable shape of one flattened leaf, for structural
// equivalence assertions.
type leafRecord struct {
	Prim    string
	Delayed bool
	Split   geom.Split
	Prefix  string
}

func records[M Monoid[M]](d *Diagram[M]) []leafRecord {
	flat := d.flatten()
	out := make([]leafRecord, len(flat))
	for i, leaf := range flat {
		r := leafRecord{
			Split:  leaf.Context.Split,
			Prefix: leaf.Context.Prefix.String(),
		}
		if leaf.Value.prim != nil {
			r.Prim = fmt.Sprintf("%v", leaf.Value.prim)
		} else {
			r.Delayed = true
		}
		out[i] = r
	}
	return out
}

// widthAttr is a scale-dependent style attribute (stroke width).
type widthAttr float64

func (w widthAttr) MergeAttr(inner annot.Attribute) annot.Attribute { return inner }

func (w widthAttr) Scaled(factor float64) annot.Attribute {
	return widthAttr(float64(w) * factor)
}

func widthStyle(w float64) annot.Style {
	return annot.Style{}.Set("width", widthAttr(w))
}

// drawn is one primitive as observed by the fake backend: its final
// position with every transform applied, and the effective stroke width.
type drawn struct {
	Kind  string
	Name  string
	At    geom.Point
	Width float64
}

// fakeBackend folds a render tree into the list of drawn primitives in
// stacking order, applying frozen transforms to geometry and to the width
// attribute, the way a real backend interprets scopes.
type fakeBackend struct{}

func (fakeBackend) Empty() []drawn { return nil }

func (fakeBackend) Combine(a, b []drawn) []drawn {
	return append(append([]drawn(nil), a...), b...)
}

func (fakeBackend) RenderPrim(p ports.Primitive, pending geom.Transform) ([]drawn, error) {
	d, ok := p.(*dot)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrUnsupportedPrimitive, p.Kind())
	}
	moved := d.Transformed(pending).(*dot)
	return []drawn{{Kind: d.Kind(), Name: d.name, At: moved.at}}, nil
}

func (fakeBackend) ApplyStyle(s annot.Style, frozen geom.Transform, inner []drawn) ([]drawn, error) {
	out := make([]drawn, len(inner))
	for i, it := range inner {
		it.At = frozen.Apply(it.At)
		if it.Width == 0 {
			if a, ok := s.Get("width"); ok {
				scaled := a.(annot.ScalableAttribute).Scaled(frozen.AvgScale())
				it.Width = float64(scaled.(widthAttr))
			}
		} else {
			// Width fixed by a deeper scope still scales geometrically.
			it.Width *= frozen.AvgScale()
		}
		out[i] = it
	}
	return out, nil
}

func (fakeBackend) Finalize(r []drawn) ([]drawn, error) { return r, nil }
