package dual

// Algebra supplies the monoid structure for a Tree's annotations and the
// action linking them. Resolution is explicit rather than implicit: every
// function must be set, and Act must be total for every (down, up) pair,
// answering with the unchanged up value where no interaction exists.
type Algebra[D, U any] struct {
	// EmptyUp returns the identity aggregate.
	EmptyUp func() U

	// CombineUp combines two aggregates in order. It is not assumed to be
	// commutative; order encodes stacking and name precedence.
	CombineUp func(a, b U) U

	// EmptyDown returns the identity context.
	EmptyDown func() D

	// ComposeDown combines a context nearer the root with one nearer the
	// leaves.
	ComposeDown func(outer, inner D) D

	// Act applies a down value to a cached aggregate, producing the
	// aggregate the subtree would have if every leaf were re-annotated.
	Act func(d D, u U) U
}
