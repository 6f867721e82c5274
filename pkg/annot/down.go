package annot

import "github.com/aretw0/espalier/pkg/geom"

// Down is the context accumulated along a root-to-leaf path: the split
// transform, the style accumulator, and the name-qualification prefix.
type Down struct {
	Split  geom.Split
	Style  Style
	Prefix Name
}

// EmptyDown returns the identity context.
func EmptyDown() Down {
	return Down{Split: geom.IdentitySplit()}
}

// DownTransform wraps a plain (pending) transform as a context.
func DownTransform(t geom.Transform) Down {
	return Down{Split: geom.PendingSplit(t)}
}

// DownStyle wraps a style as a context.
func DownStyle(s Style) Down {
	return Down{Split: geom.IdentitySplit(), Style: s}
}

// DownPrefix wraps a qualification prefix as a context.
func DownPrefix(n Name) Down {
	return Down{Split: geom.IdentitySplit(), Prefix: n}
}

// DownFreeze returns the freeze-boundary context.
func DownFreeze() Down {
	return Down{Split: geom.MarkSplit()}
}

// Compose combines the receiver (nearer the root) with a context nearer the
// leaves, componentwise.
func (d Down) Compose(inner Down) Down {
	return Down{
		Split:  d.Split.Compose(inner.Split),
		Style:  d.Style.Compose(inner.Style),
		Prefix: d.Prefix.Qualify(inner.Prefix),
	}
}

// Total returns the full geometric transform of the context.
func (d Down) Total() geom.Transform {
	return d.Split.Total()
}
