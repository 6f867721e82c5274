package ports

import "github.com/aretw0/espalier/pkg/geom"

// Primitive is the capability contract for diagram leaves. Concrete
// primitive kinds (paths, shapes, text) live outside the core; the tree
// stores them uniformly behind this interface and backends recognize kinds
// by type assertion — primitive-kind equality is a backend concern, never
// checked here.
type Primitive interface {
	// Transformed returns the primitive with t applied to its geometry.
	Transformed(t geom.Transform) Primitive

	// TransformedSplit applies a split transform: geometry sees the total
	// transform, while the frozen part is separately visible to any
	// scale-dependent interpretation the primitive carries.
	TransformedSplit(s geom.Split) Primitive

	// Kind names the primitive's kind, for backend dispatch diagnostics.
	Kind() string
}
