package annot

import "github.com/aretw0/espalier/pkg/geom"

// Trace answers ray queries against the diagram's geometry: given a ray
// origin and direction it returns the sorted parameters t at which
// origin + t*dir meets the geometry. A nil Trace never reports a hit.
type Trace func(origin geom.Point, dir geom.Vec) []float64

// Merge combines two traces by merging their sorted hit lists.
func (tr Trace) Merge(o Trace) Trace {
	if tr == nil {
		return o
	}
	if o == nil {
		return tr
	}
	return func(origin geom.Point, dir geom.Vec) []float64 {
		return mergeSorted(tr(origin, dir), o(origin, dir))
	}
}

// ApplyTransform returns the trace of the transformed geometry, obtained by
// pulling the query ray back through the inverse transform. Hit parameters
// are unchanged because the pulled-back ray is parameterized identically.
func (tr Trace) ApplyTransform(t geom.Transform) Trace {
	if tr == nil {
		return nil
	}
	inv := t.Inverse()
	return func(origin geom.Point, dir geom.Vec) []float64 {
		return tr(inv.Apply(origin), inv.ApplyVec(dir))
	}
}

func mergeSorted(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
