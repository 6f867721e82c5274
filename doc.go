/*
Package espalier is the representation and compilation core of a declarative
vector-graphics description language: diagrams are immutable trees of
primitives that aggregate geometric and semantic information as they are
combined, and compile into a flattened, transform-resolved tree a renderer
can consume.

# Concept

Every diagram is a dually-annotated tree. Bottom-up, each node caches an
aggregate of everything beneath it — bounding envelope, ray trace, named
subdiagram index, and a point-query function — so reading any of them at the
root is O(1). Top-down, context accumulates along root-to-leaf paths — a
split transform, a style, a name qualifier — and an algebraic action keeps
the cached aggregates correct when context is inserted, so transforming or
styling an arbitrarily large diagram is also O(1).

The core is renderer-agnostic. Concrete primitives and backends live outside
it, connected through the capability interfaces in pkg/ports; compilation
produces the render tree defined in pkg/render with every non-frozen
transform pushed onto the primitive leaves.

# Usage

Wrap primitives into diagrams, combine them (the first operand renders on
top), then compile:

	top := espalier.Prim[espalier.Any](dot, annot.EnvelopeOf(geom.Origin), nil, nil)
	d := top.Combine(top.Translated(geom.Vec{X: 3}))

	tree := espalier.Compile(d)
	out, err := render.Render(backend, tree)

Diagrams form a monoid under Combine with the empty diagram as identity.
Naming (Named, LookupName, WithName) indexes subdiagrams for later
reference; Freeze marks the boundary past which transforms affect
scale-dependent style attributes; Delayed defers a subtree's construction
until its placement context is known at compile time.

All operations are total: a missing name yields an empty result, never an
error, and the WithName family degrades to the identity transformation.
Diagram values are immutable and safe to share across goroutines.
*/
package espalier
