package espalier

import (
	"log/slog"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/aretw0/espalier/pkg/render"
)

// CompileOption configures a compilation pass.
type CompileOption[M Monoid[M]] func(*compileConfig[M])

type compileConfig[M Monoid[M]] struct {
	logger *slog.Logger
	adjust func(*Diagram[M]) *Diagram[M]
}

// WithLogger sets a structured logger for compile diagnostics.
func WithLogger[M Monoid[M]](logger *slog.Logger) CompileOption[M] {
	return func(c *compileConfig[M]) {
		c.logger = logger
	}
}

// WithAdjustment registers a hook invoked once on the diagram before
// compilation, the point where a backend may fit it to a canvas or
// otherwise rewrite it.
func WithAdjustment[M Monoid[M]](adjust func(*Diagram[M]) *Diagram[M]) CompileOption[M] {
	return func(c *compileConfig[M]) {
		c.adjust = adjust
	}
}

type compileStats struct {
	prims      int
	expansions int
}

// Compile lowers a diagram into a render tree in a single traversal. In the
// output every non-frozen transform is folded into the primitive leaf that
// carries it; the only transform remaining above a primitive is the frozen
// transform of a style scope. Delayed leaves are expanded with their
// effective context as they are reached.
func Compile[M Monoid[M]](d *Diagram[M], opts ...CompileOption[M]) render.Node {
	cfg := compileConfig[M]{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.adjust != nil {
		d = cfg.adjust(d)
	}

	var stats compileStats
	root := compileTree(d, annot.EmptyDown(), &stats)
	cfg.logger.Debug("diagram compiled",
		"prims", stats.prims,
		"expansions", stats.expansions,
	)
	return root
}

func compileTree[M Monoid[M]](d *Diagram[M], base annot.Down, stats *compileStats) render.Node {
	flat := d.tree.FlattenUnder(base)
	children := make([]render.Node, 0, len(flat))
	for _, leaf := range flat {
		switch {
		case leaf.Value.prim != nil:
			stats.prims++
			children = append(children, compilePrim(leaf.Value.prim, leaf.Context))
		case leaf.Value.expand != nil:
			stats.expansions++
			children = append(children, compileExpansion(leaf.Value.expand, leaf.Context, stats))
		}
	}
	switch len(children) {
	case 0:
		return &render.Group{}
	case 1:
		return children[0]
	default:
		return &render.Group{Children: children}
	}
}

// compilePrim emits the primitive under its resolved non-frozen transform.
// A freeze boundary or style in context becomes an enclosing scope so the
// backend can interpret scale-dependent attributes under the frozen
// transform.
func compilePrim(p ports.Primitive, ctx annot.Down) render.Node {
	node := &render.Prim{Primitive: p, Transform: ctx.Split.Pending}
	if ctx.Style.Len() == 0 && ctx.Split.Frozen.IsIdentity() {
		return node
	}
	return &render.StyleScope{
		Style:  ctx.Style,
		Frozen: ctx.Split.Frozen,
		Child:  node,
	}
}

// compileExpansion invokes a delayed leaf and recurses into the produced
// diagram. The expansion has already baked the non-frozen transform of ctx
// into its geometry, so the recursion starts from a clean context; the
// frozen transform and style stay committed in the boundary scope emitted
// above it.
func compileExpansion[M Monoid[M]](expand func(annot.Down) *Diagram[M], ctx annot.Down, stats *compileStats) render.Node {
	sub := expand(ctx)
	inner := compileTree(sub, annot.EmptyDown(), stats)
	return &render.StyleScope{
		Style:  ctx.Style,
		Frozen: ctx.Split.Frozen,
		Child:  inner,
	}
}

// RenderWith compiles the diagram and folds the result through a backend.
func RenderWith[R any, M Monoid[M]](b ports.Backend[R], d *Diagram[M], opts ...CompileOption[M]) (R, error) {
	return render.Render(b, Compile(d, opts...))
}
