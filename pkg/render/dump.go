package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/pkg/geom"
)

// Dump serializes a compiled tree to YAML for debugging and snapshot tests.
// Primitives are rendered by kind only; styles by key and value string.
func Dump(n Node) ([]byte, error) {
	return yaml.Marshal(dumpNode(n))
}

func dumpNode(n Node) any {
	switch n := n.(type) {
	case nil:
		return nil
	case *Group:
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = dumpNode(c)
		}
		return map[string]any{"group": children}
	case *StyleScope:
		scope := map[string]any{"child": dumpNode(n.Child)}
		if !n.Frozen.IsIdentity() {
			scope["frozen"] = dumpTransform(n.Frozen)
		}
		if n.Style.Len() > 0 {
			attrs := map[string]string{}
			for _, k := range n.Style.Keys() {
				a, _ := n.Style.Get(k)
				attrs[k] = fmt.Sprintf("%v", a)
			}
			scope["style"] = attrs
		}
		return map[string]any{"scope": scope}
	case *Prim:
		prim := map[string]any{"kind": n.Primitive.Kind()}
		if !n.Transform.IsIdentity() {
			prim["transform"] = dumpTransform(n.Transform)
		}
		return map[string]any{"prim": prim}
	default:
		return fmt.Sprintf("unknown node %T", n)
	}
}

func dumpTransform(t geom.Transform) []float64 {
	return []float64{t.XX, t.XY, t.YX, t.YY, t.OX, t.OY}
}
