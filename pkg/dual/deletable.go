package dual

// Deletable wraps a monoid T so that a past contribution can be cancelled
// without revisiting it. A value is a normalized sequence of tokens: plain
// values, open markers, and close markers. On combination, a close marker
// annihilates everything back to the nearest unmatched open marker
// (markers included), and adjacent plain values fuse through the element
// monoid, so sequences stay short regardless of how many values ever
// contributed.
//
// The zero Deletable is the monoid identity.
type Deletable[T any] struct {
	toks []token[T]
}

type tokenKind int8

const (
	tokenValue tokenKind = iota
	tokenOpen
	tokenClose
)

type token[T any] struct {
	kind tokenKind
	val  T
}

// DeletableOf wraps a single value.
func DeletableOf[T any](v T) Deletable[T] {
	return Deletable[T]{toks: []token[T]{{kind: tokenValue, val: v}}}
}

// DeleteOpen returns the opening cancellation marker.
func DeleteOpen[T any]() Deletable[T] {
	return Deletable[T]{toks: []token[T]{{kind: tokenOpen}}}
}

// DeleteClose returns the closing cancellation marker.
func DeleteClose[T any]() Deletable[T] {
	return Deletable[T]{toks: []token[T]{{kind: tokenClose}}}
}

// IsEmpty reports whether d carries no tokens at all.
func (d Deletable[T]) IsEmpty() bool {
	return len(d.toks) == 0
}

// MergeDeletable combines two deletable values in order, fusing adjacent
// plain values with merge. merge must be associative for cached aggregates
// to be independent of tree shape.
func MergeDeletable[T any](a, b Deletable[T], merge func(T, T) T) Deletable[T] {
	if len(a.toks) == 0 {
		return b
	}
	if len(b.toks) == 0 {
		return a
	}
	out := make([]token[T], 0, len(a.toks)+len(b.toks))
	var opens []int // positions of unmatched open markers in out
	push := func(tok token[T]) {
		switch tok.kind {
		case tokenOpen:
			opens = append(opens, len(out))
			out = append(out, tok)
		case tokenClose:
			if len(opens) > 0 {
				// Annihilate back to the matching open.
				out = out[:opens[len(opens)-1]]
				opens = opens[:len(opens)-1]
				return
			}
			out = append(out, tok)
		default:
			if len(out) > 0 && out[len(out)-1].kind == tokenValue {
				out[len(out)-1] = token[T]{kind: tokenValue, val: merge(out[len(out)-1].val, tok.val)}
				return
			}
			out = append(out, tok)
		}
	}
	for _, tok := range a.toks {
		push(tok)
	}
	for _, tok := range b.toks {
		push(tok)
	}
	return Deletable[T]{toks: out}
}

// DeletableValue folds the surviving plain values with merge, returning
// false when none survive.
func DeletableValue[T any](d Deletable[T], merge func(T, T) T) (T, bool) {
	var acc T
	found := false
	for _, tok := range d.toks {
		if tok.kind != tokenValue {
			continue
		}
		if !found {
			acc = tok.val
			found = true
			continue
		}
		acc = merge(acc, tok.val)
	}
	return acc, found
}

// MapDeletable rewrites every surviving plain value, leaving markers in
// place.
func MapDeletable[A, B any](d Deletable[A], f func(A) B) Deletable[B] {
	if len(d.toks) == 0 {
		return Deletable[B]{}
	}
	out := make([]token[B], len(d.toks))
	for i, tok := range d.toks {
		if tok.kind == tokenValue {
			out[i] = token[B]{kind: tokenValue, val: f(tok.val)}
		} else {
			out[i] = token[B]{kind: tok.kind}
		}
	}
	return Deletable[B]{toks: out}
}
