package espalier

import "github.com/aretw0/espalier/pkg/annot"

// NameSub binds a name inside the diagram to the subdiagram selected from
// the final, named result. The binding is a fixed point: looking the name
// up afterwards yields a subdiagram derived from the named diagram, not the
// unnamed one it was built from.
//
// The tie is made without a cyclic reference: the diagram is built first
// with an empty handle spliced into its name index, then the handle is
// filled from the finished result before it is published.
func NameSub[M Monoid[M]](sel func(*Diagram[M]) *Subdiagram[M], name annot.Name, d *Diagram[M]) *Diagram[M] {
	handle := &Subdiagram[M]{}
	named := d.withSubMap(d.SubMap().Add(name, handle))
	*handle = *sel(named)
	return named
}

// Named binds name to the diagram itself.
func (d *Diagram[M]) Named(name string) *Diagram[M] {
	return NameSub(MkSubdiagram[M], annot.ParseName(name), d)
}

// LookupName finds the subdiagrams bound to name: an exact match first,
// then the suffix-qualified fallback described on SubMap.Lookup. A missing
// name yields nil, never an error.
func (d *Diagram[M]) LookupName(name string) []*Subdiagram[M] {
	return d.SubMap().Lookup(annot.ParseName(name))
}

// WithName transforms the diagram through f, parameterized by the first
// binding of name. If the name does not resolve, the diagram is returned
// unchanged.
func (d *Diagram[M]) WithName(name string, f func(*Subdiagram[M], *Diagram[M]) *Diagram[M]) *Diagram[M] {
	subs := d.LookupName(name)
	if len(subs) == 0 {
		return d
	}
	return f(subs[0], d)
}

// WithNameAll is WithName over every binding of name. An unresolved name is
// the identity transformation.
func (d *Diagram[M]) WithNameAll(name string, f func([]*Subdiagram[M], *Diagram[M]) *Diagram[M]) *Diagram[M] {
	subs := d.LookupName(name)
	if len(subs) == 0 {
		return d
	}
	return f(subs, d)
}

// WithNames transforms the diagram through f, parameterized by the first
// binding of each listed name. If any name fails to resolve, the diagram is
// returned unchanged.
func (d *Diagram[M]) WithNames(names []string, f func([]*Subdiagram[M], *Diagram[M]) *Diagram[M]) *Diagram[M] {
	subs := make([]*Subdiagram[M], 0, len(names))
	for _, name := range names {
		found := d.LookupName(name)
		if len(found) == 0 {
			return d
		}
		subs = append(subs, found[0])
	}
	return f(subs, d)
}
