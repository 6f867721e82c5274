package espalier

import (
	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/geom"
)

// Subdiagram embeds a diagram together with the context accumulated above
// it: its position, orientation, and style as seen from an ancestor's
// frame.
type Subdiagram[M Monoid[M]] struct {
	diagram *Diagram[M]
	ctx     annot.Down
}

// MkSubdiagram wraps a diagram with the identity context.
func MkSubdiagram[M Monoid[M]](d *Diagram[M]) *Subdiagram[M] {
	return &Subdiagram[M]{diagram: d, ctx: annot.EmptyDown()}
}

// SubPoint returns a contentless subdiagram whose local origin sits at p.
// This differs from embedding a point diagram at the parent's origin: the
// captured context, not the content, carries the displacement.
func SubPoint[M Monoid[M]](p geom.Point) *Subdiagram[M] {
	return &Subdiagram[M]{
		diagram: EmptyDiagram[M](),
		ctx:     annot.DownTransform(geom.Translate(p.Vec())),
	}
}

// Location returns the captured context's total transform applied to the
// origin.
func (s *Subdiagram[M]) Location() geom.Point {
	return s.ctx.Total().Apply(geom.Origin)
}

// Context returns the captured context.
func (s *Subdiagram[M]) Context() annot.Down {
	return s.ctx
}

// GetSub promotes the subdiagram back to a top-level diagram by re-applying
// its captured context.
func (s *Subdiagram[M]) GetSub() *Diagram[M] {
	return s.diagram.pushDown(s.ctx)
}

// RawSub returns the embedded diagram, discarding the captured context.
func (s *Subdiagram[M]) RawSub() *Diagram[M] {
	return s.diagram
}

func (s *Subdiagram[M]) withDown(d annot.Down) *Subdiagram[M] {
	return &Subdiagram[M]{diagram: s.diagram, ctx: d.Compose(s.ctx)}
}

// SubMap indexes subdiagrams by qualified name. Multiple bindings per name
// are preserved in insertion order, newest appended. The zero SubMap is
// empty.
type SubMap[M Monoid[M]] struct {
	entries []subEntry[M]
}

type subEntry[M Monoid[M]] struct {
	name annot.Name
	subs []*Subdiagram[M]
}

// Add returns the map with s bound to name, appended after any existing
// bindings for name.
func (m SubMap[M]) Add(name annot.Name, s *Subdiagram[M]) SubMap[M] {
	return m.Union(SubMap[M]{entries: []subEntry[M]{{name: name, subs: []*Subdiagram[M]{s}}}})
}

// Union merges two maps. Colliding names concatenate their binding lists;
// nothing is lost.
func (m SubMap[M]) Union(o SubMap[M]) SubMap[M] {
	if len(o.entries) == 0 {
		return m
	}
	if len(m.entries) == 0 {
		return o
	}
	out := SubMap[M]{entries: make([]subEntry[M], len(m.entries), len(m.entries)+len(o.entries))}
	for i, e := range m.entries {
		out.entries[i] = subEntry[M]{name: e.name, subs: append([]*Subdiagram[M](nil), e.subs...)}
	}
outer:
	for _, e := range o.entries {
		for i := range out.entries {
			if out.entries[i].name.Equal(e.name) {
				out.entries[i].subs = append(out.entries[i].subs, e.subs...)
				continue outer
			}
		}
		out.entries = append(out.entries, subEntry[M]{name: e.name, subs: append([]*Subdiagram[M](nil), e.subs...)})
	}
	return out
}

// Qualify prefixes every key in the map.
func (m SubMap[M]) Qualify(prefix annot.Name) SubMap[M] {
	if len(prefix) == 0 || len(m.entries) == 0 {
		return m
	}
	out := SubMap[M]{entries: make([]subEntry[M], len(m.entries))}
	for i, e := range m.entries {
		out.entries[i] = subEntry[M]{name: prefix.Qualify(e.name), subs: e.subs}
	}
	return out
}

// Names returns the stored qualified names in insertion order.
func (m SubMap[M]) Names() []annot.Name {
	out := make([]annot.Name, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.name
	}
	return out
}

// Len returns the number of distinct names.
func (m SubMap[M]) Len() int {
	return len(m.entries)
}

// Lookup finds the bindings for name: an exact match if one exists,
// otherwise every binding whose stored qualified name has name as a
// whole-atom suffix, concatenated in insertion order. Nothing matching is
// an empty result, not an error.
//
// The suffix fallback is a plain tail test on the qualified form, so
// distinct bindings sharing a tail (say "a.x" and "b.x" queried as "x") all
// match. Callers needing an exact hit should query the fully qualified
// name.
func (m SubMap[M]) Lookup(name annot.Name) []*Subdiagram[M] {
	for _, e := range m.entries {
		if e.name.Equal(name) {
			return append([]*Subdiagram[M](nil), e.subs...)
		}
	}
	var out []*Subdiagram[M]
	for _, e := range m.entries {
		if e.name.HasSuffix(name) {
			out = append(out, e.subs...)
		}
	}
	return out
}

// applyDown is the action of a Down context on the map: keys gain the
// context's qualification prefix and every captured context is extended
// rootward.
func (m SubMap[M]) applyDown(d annot.Down) SubMap[M] {
	if len(m.entries) == 0 {
		return m
	}
	out := SubMap[M]{entries: make([]subEntry[M], len(m.entries))}
	for i, e := range m.entries {
		subs := make([]*Subdiagram[M], len(e.subs))
		for j, s := range e.subs {
			subs[j] = s.withDown(d)
		}
		out.entries[i] = subEntry[M]{name: d.Prefix.Qualify(e.name), subs: subs}
	}
	return out
}
