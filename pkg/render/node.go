// Package render defines the renderer-facing tree produced by compiling a
// diagram, the walker that folds it through a backend, and a debug dump.
//
// A compiled tree satisfies one invariant by construction: every non-frozen
// transform has been folded into the Prim leaf that carries it. The only
// transform appearing above a primitive is the frozen transform of a style
// scope, which backends apply to geometry and scale-dependent attributes
// alike.
package render

import (
	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/geom"
	"github.com/aretw0/espalier/pkg/ports"
)

// Node is one node of a compiled render tree.
type Node interface {
	isNode()
}

// Group is an ordered sequence of children; earlier children render on top.
type Group struct {
	Children []Node
}

// StyleScope applies a style and a frozen transform to its subtree. It also
// serves as the boundary marker emitted around delayed-expansion output.
type StyleScope struct {
	Style  annot.Style
	Frozen geom.Transform
	Child  Node
}

// Prim is a leaf carrying a primitive and its fully resolved non-frozen
// transform. Prim nodes never have children.
type Prim struct {
	Primitive ports.Primitive
	Transform geom.Transform
}

func (*Group) isNode()      {}
func (*StyleScope) isNode() {}
func (*Prim) isNode()       {}
