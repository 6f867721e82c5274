package dual

// Tree is a persistent annotated tree over down-context type D, aggregate
// type U, and leaf payload type L. The zero Tree is invalid; construct with
// Empty or Leaf.
type Tree[D, U, L any] struct {
	alg  *Algebra[D, U]
	root node[D, U, L] // nil when the tree is empty
}

// Flat is one element of a flattened tree: a leaf payload together with the
// fully composed down-context in effect at that leaf.
type Flat[D, L any] struct {
	Value   L
	Context D
}

type node[D, U, L any] interface {
	agg() U
}

type leafNode[D, U, L any] struct {
	up  U
	val L
}

// upNode is an annotation-only leaf: it contributes to the aggregate but has
// no payload and is skipped by Flatten.
type upNode[D, U, L any] struct {
	up U
}

type downNode[D, U, L any] struct {
	d      D
	child  node[D, U, L]
	cached U
}

type concatNode[D, U, L any] struct {
	left, right node[D, U, L]
	cached      U
}

func (n *leafNode[D, U, L]) agg() U   { return n.up }
func (n *upNode[D, U, L]) agg() U     { return n.up }
func (n *downNode[D, U, L]) agg() U   { return n.cached }
func (n *concatNode[D, U, L]) agg() U { return n.cached }

// Empty returns the identity tree for the given algebra.
func Empty[D, U, L any](alg *Algebra[D, U]) Tree[D, U, L] {
	return Tree[D, U, L]{alg: alg}
}

// Leaf returns a single-leaf tree whose cached aggregate is up.
func Leaf[D, U, L any](alg *Algebra[D, U], up U, val L) Tree[D, U, L] {
	return Tree[D, U, L]{alg: alg, root: &leafNode[D, U, L]{up: up, val: val}}
}

// UpLeaf returns a tree holding only an aggregate contribution and no
// payload. This is the splice primitive behind cancel-and-replace.
func UpLeaf[D, U, L any](alg *Algebra[D, U], up U) Tree[D, U, L] {
	return Tree[D, U, L]{alg: alg, root: &upNode[D, U, L]{up: up}}
}

// IsEmpty reports whether the tree has no nodes.
func (t Tree[D, U, L]) IsEmpty() bool {
	return t.root == nil
}

// Aggregate returns the cached aggregate at the root in O(1).
func (t Tree[D, U, L]) Aggregate() U {
	if t.root == nil {
		return t.alg.EmptyUp()
	}
	return t.root.agg()
}

// Concat appends o's leaves after t's. The empty tree is a two-sided
// identity; otherwise a new root is allocated with aggregate
// CombineUp(t, o).
func (t Tree[D, U, L]) Concat(o Tree[D, U, L]) Tree[D, U, L] {
	if t.root == nil {
		return o
	}
	if o.root == nil {
		return t
	}
	return Tree[D, U, L]{
		alg: t.alg,
		root: &concatNode[D, U, L]{
			left:   t.root,
			right:  o.root,
			cached: t.alg.CombineUp(t.root.agg(), o.root.agg()),
		},
	}
}

// PushDown wraps the whole tree under additional down-context d, affecting
// the effective context of every present and future leaf. The new aggregate
// is Act(d, old aggregate); cost is O(1) regardless of leaf count.
func (t Tree[D, U, L]) PushDown(d D) Tree[D, U, L] {
	if t.root == nil {
		return t
	}
	return Tree[D, U, L]{
		alg: t.alg,
		root: &downNode[D, U, L]{
			d:      d,
			child:  t.root,
			cached: t.alg.Act(d, t.root.agg()),
		},
	}
}

// PushDownPre splices up as an extra aggregate contribution before every
// existing leaf, without altering any leaf's down-context.
func (t Tree[D, U, L]) PushDownPre(up U) Tree[D, U, L] {
	return UpLeaf[D, U, L](t.alg, up).Concat(t)
}

// PushDownPost splices up as an extra aggregate contribution after every
// existing leaf, without altering any leaf's down-context.
func (t Tree[D, U, L]) PushDownPost(up U) Tree[D, U, L] {
	return t.Concat(UpLeaf[D, U, L](t.alg, up))
}

// Flatten returns the tree's leaves in left-to-right order, each paired with
// its effective down-context. O(n) in leaf count.
func (t Tree[D, U, L]) Flatten() []Flat[D, L] {
	return t.FlattenUnder(t.alg.EmptyDown())
}

// FlattenUnder flattens as if the whole tree sat below the given base
// context.
func (t Tree[D, U, L]) FlattenUnder(base D) []Flat[D, L] {
	var out []Flat[D, L]
	if t.root != nil {
		flatten(t.alg, t.root, base, &out)
	}
	return out
}

func flatten[D, U, L any](alg *Algebra[D, U], n node[D, U, L], ctx D, out *[]Flat[D, L]) {
	switch n := n.(type) {
	case *leafNode[D, U, L]:
		*out = append(*out, Flat[D, L]{Value: n.val, Context: ctx})
	case *upNode[D, U, L]:
		// annotation only
	case *downNode[D, U, L]:
		flatten(alg, n.child, alg.ComposeDown(ctx, n.d), out)
	case *concatNode[D, U, L]:
		flatten(alg, n.left, ctx, out)
		flatten(alg, n.right, ctx, out)
	}
}

// Map rebuilds t with every value leaf passed through leafFn and every
// up-only leaf through upFn, re-deriving all cached aggregates bottom-up
// under the target algebra. Structure, leaf order, and down annotations are
// preserved. The functions may change aggregate contributions, so this is
// the primitive behind functor-style query remapping.
func Map[D, U1, L1, U2, L2 any](
	t Tree[D, U1, L1],
	alg *Algebra[D, U2],
	leafFn func(U1, L1) (U2, L2),
	upFn func(U1) U2,
) Tree[D, U2, L2] {
	out := Tree[D, U2, L2]{alg: alg}
	if t.root != nil {
		out.root = mapNode(t.root, alg, leafFn, upFn)
	}
	return out
}

func mapNode[D, U1, L1, U2, L2 any](
	n node[D, U1, L1],
	alg *Algebra[D, U2],
	leafFn func(U1, L1) (U2, L2),
	upFn func(U1) U2,
) node[D, U2, L2] {
	switch n := n.(type) {
	case *leafNode[D, U1, L1]:
		up, val := leafFn(n.up, n.val)
		return &leafNode[D, U2, L2]{up: up, val: val}
	case *upNode[D, U1, L1]:
		return &upNode[D, U2, L2]{up: upFn(n.up)}
	case *downNode[D, U1, L1]:
		child := mapNode(n.child, alg, leafFn, upFn)
		return &downNode[D, U2, L2]{
			d:      n.d,
			child:  child,
			cached: alg.Act(n.d, child.agg()),
		}
	case *concatNode[D, U1, L1]:
		left := mapNode(n.left, alg, leafFn, upFn)
		right := mapNode(n.right, alg, leafFn, upFn)
		return &concatNode[D, U2, L2]{
			left:   left,
			right:  right,
			cached: alg.CombineUp(left.agg(), right.agg()),
		}
	default:
		return nil
	}
}

// MapLeaves is Map specialized to a single annotation/payload type.
func (t Tree[D, U, L]) MapLeaves(leafFn func(U, L) (U, L)) Tree[D, U, L] {
	return Map(t, t.alg, leafFn, func(u U) U { return u })
}
