package annot

import "strings"

// Name is a hierarchical identifier: a sequence of atoms, rendered with dot
// separators. Combining diagrams qualifies the names of subdiagrams, so a
// stored name is the concatenation of every prefix inserted above its
// binding.
type Name []string

// NameOf builds a name from atoms.
func NameOf(atoms ...string) Name {
	return Name(atoms)
}

// ParseName splits a dotted string into a name. An empty string is the
// empty name.
func ParseName(s string) Name {
	if s == "" {
		return nil
	}
	return Name(strings.Split(s, "."))
}

// Qualify prepends the receiver to n.
func (n Name) Qualify(suffix Name) Name {
	if len(n) == 0 {
		return suffix
	}
	if len(suffix) == 0 {
		return n
	}
	out := make(Name, 0, len(n)+len(suffix))
	out = append(out, n...)
	return append(out, suffix...)
}

// Equal reports atom-wise equality.
func (n Name) Equal(o Name) bool {
	if len(n) != len(o) {
		return false
	}
	for i, a := range n {
		if a != o[i] {
			return false
		}
	}
	return true
}

// HasSuffix reports whether o is a (whole-atom) tail of n. The suffix
// fallback in name lookup relies on this; note it is a plain tail test on
// the qualified form, so distinct bindings sharing a tail all match.
func (n Name) HasSuffix(o Name) bool {
	if len(o) > len(n) {
		return false
	}
	return n[len(n)-len(o):].Equal(o)
}

// String renders the dotted form.
func (n Name) String() string {
	return strings.Join(n, ".")
}
