package geom

// Split is a transform separated at a freeze boundary. Frozen holds the part
// accumulated rootward of the boundary, Pending the part accumulated below
// it. Geometry always sees Total; scale-dependent style attributes see only
// Frozen.
//
// An unmarked Split carries everything in Pending.
type Split struct {
	Frozen  Transform
	Pending Transform
	Marked  bool
}

// IdentitySplit returns the identity split with no boundary.
func IdentitySplit() Split {
	return Split{Frozen: Identity(), Pending: Identity()}
}

// PendingSplit wraps a plain transform as an unmarked split.
func PendingSplit(t Transform) Split {
	return Split{Frozen: Identity(), Pending: t}
}

// MarkSplit returns the identity split carrying a freeze boundary.
func MarkSplit() Split {
	return Split{Frozen: Identity(), Pending: Identity(), Marked: true}
}

// Compose combines an outer (rootward) split with an inner one. Boundaries
// absorb leftward: everything composed outside an inner boundary lands in the
// frozen slot, so repeated freezes collapse into a single boundary.
func (s Split) Compose(inner Split) Split {
	switch {
	case inner.Marked:
		return Split{
			Frozen:  s.Total().Mul(inner.Frozen),
			Pending: inner.Pending,
			Marked:  true,
		}
	case s.Marked:
		return Split{
			Frozen:  s.Frozen,
			Pending: s.Pending.Mul(inner.Pending),
			Marked:  true,
		}
	default:
		return Split{
			Frozen:  Identity(),
			Pending: s.Pending.Mul(inner.Pending),
		}
	}
}

// Total returns the full geometric transform, frozen part applied after the
// pending part. Freeze boundaries never affect geometric placement.
func (s Split) Total() Transform {
	return s.Frozen.Mul(s.Pending)
}
