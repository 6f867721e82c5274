package render

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/ports"
)

// Render folds a compiled tree through a backend and finalizes the result.
func Render[R any](b ports.Backend[R], root Node) (R, error) {
	out, err := walk(b, root)
	if err != nil {
		var zero R
		return zero, err
	}
	return b.Finalize(out)
}

func walk[R any](b ports.Backend[R], n Node) (R, error) {
	switch n := n.(type) {
	case nil:
		return b.Empty(), nil
	case *Group:
		acc := b.Empty()
		for _, child := range n.Children {
			r, err := walk(b, child)
			if err != nil {
				var zero R
				return zero, err
			}
			acc = b.Combine(acc, r)
		}
		return acc, nil
	case *StyleScope:
		inner, err := walk(b, n.Child)
		if err != nil {
			var zero R
			return zero, err
		}
		return b.ApplyStyle(n.Style, n.Frozen, inner)
	case *Prim:
		return b.RenderPrim(n.Primitive, n.Transform)
	default:
		var zero R
		return zero, fmt.Errorf("render: unknown node type %T", n)
	}
}
