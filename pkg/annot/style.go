package annot

// Attribute is a single visual attribute value. Attribute definitions live
// with backends; the core only needs to know how bindings at different tree
// depths reconcile.
type Attribute interface {
	// MergeAttr reconciles the receiver with a binding of the same key made
	// closer to the leaves. Simple attributes keep the closer binding by
	// returning inner.
	MergeAttr(inner Attribute) Attribute
}

// ScalableAttribute is implemented by attributes whose magnitude is
// scale-dependent (stroke width is the canonical case). Backends apply the
// frozen transform's average scale factor through Scaled when interpreting
// a style scope.
type ScalableAttribute interface {
	Attribute

	// Scaled returns the attribute with its magnitude multiplied by factor.
	Scaled(factor float64) Attribute
}

// Style is an ordered accumulator of attributes keyed by name. The zero
// Style is empty. Styles are immutable; Set and Compose return new values.
type Style struct {
	keys  []string
	attrs map[string]Attribute
}

// Set returns the style with key bound to attr, replacing any existing
// binding for key.
func (s Style) Set(key string, attr Attribute) Style {
	out := s.clone()
	if _, ok := out.attrs[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.attrs[key] = attr
	return out
}

// Get returns the attribute bound to key, if any.
func (s Style) Get(key string) (Attribute, bool) {
	a, ok := s.attrs[key]
	return a, ok
}

// Len returns the number of bound attributes.
func (s Style) Len() int {
	return len(s.keys)
}

// Keys returns the attribute keys in binding order.
func (s Style) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Compose reconciles the receiver (bound nearer the root) with a style
// bound nearer the leaves. Keys present in both merge through the
// attribute's own law; the default law keeps the closer binding, matching
// the rule that styling an already-styled diagram does not override it.
func (s Style) Compose(inner Style) Style {
	if inner.Len() == 0 {
		return s
	}
	if s.Len() == 0 {
		return inner
	}
	out := s.clone()
	for _, k := range inner.keys {
		in := inner.attrs[k]
		if ex, ok := out.attrs[k]; ok {
			out.attrs[k] = ex.MergeAttr(in)
			continue
		}
		out.keys = append(out.keys, k)
		out.attrs[k] = in
	}
	return out
}

func (s Style) clone() Style {
	out := Style{
		keys:  append([]string(nil), s.keys...),
		attrs: make(map[string]Attribute, len(s.attrs)+1),
	}
	for k, v := range s.attrs {
		out.attrs[k] = v
	}
	return out
}
