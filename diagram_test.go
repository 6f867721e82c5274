package espalier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCombine_MonoidIdentity(t *testing.T) {
	d := dotDiagram("a").Translated(geom.Vec{X: 2})
	e := EmptyDiagram[Any]()

	left := e.Combine(d)
	right := d.Combine(e)

	want := records(d)
	assert.Empty(t, cmp.Diff(want, records(left), approx))
	assert.Empty(t, cmp.Diff(want, records(right), approx))
	assert.InDelta(t, d.Envelope()(geom.Vec{X: 1}), left.Envelope()(geom.Vec{X: 1}), 1e-9)
}

func TestCombine_MonoidAssociativity(t *testing.T) {
	a := dotDiagram("a")
	b := dotDiagram("b").Translated(geom.Vec{X: 3}).Named("b")
	c := dotDiagram("c").Scaled(2)

	ab_c := a.Combine(b).Combine(c)
	a_bc := a.Combine(b.Combine(c))

	// Structural equivalence: same flattened leaf sequence with the same
	// effective contexts.
	assert.Empty(t, cmp.Diff(records(ab_c), records(a_bc), approx))

	// Aggregates agree componentwise.
	for _, v := range []geom.Vec{{X: 1}, {X: -1}, {Y: 1}, {X: 1, Y: 1}} {
		assert.InDelta(t, ab_c.Envelope()(v), a_bc.Envelope()(v), 1e-9)
	}
	for _, p := range []geom.Point{{}, {X: 3}, {X: 5}} {
		assert.Equal(t, ab_c.Sample(p), a_bc.Sample(p))
	}
	assert.Equal(t, len(ab_c.SubMap().Names()), len(a_bc.SubMap().Names()))
}

func TestCombine_StackingOrder(t *testing.T) {
	d1 := dotDiagram("p1").Combine(dotDiagram("p2"))
	d2 := dotDiagram("q1")

	recs := records(d1.Combine(d2))
	require.Len(t, recs, 3)
	assert.Equal(t, "dot(p1)", recs[0].Prim)
	assert.Equal(t, "dot(p2)", recs[1].Prim)
	assert.Equal(t, "dot(q1)", recs[2].Prim)
}

func TestTransformed_ContextAndEnvelope(t *testing.T) {
	// The concrete scenario: A at the origin with unit envelope, B = A
	// translated by (3,0).
	a := dotDiagram("a")
	b := a.Translated(geom.Vec{X: 3})
	d := a.Combine(b)

	recs := records(d)
	require.Len(t, recs, 2)
	assert.True(t, recs[0].Split.Pending.IsIdentity())
	assert.Empty(t, cmp.Diff(geom.Translate(geom.Vec{X: 3}), recs[1].Split.Pending, approx))

	// Aggregate envelope is the union of A's envelope with its translate.
	env := d.Envelope()
	assert.InDelta(t, 4.0, env(geom.Vec{X: 1}), 1e-9)
	assert.InDelta(t, 1.0, env(geom.Vec{X: -1}), 1e-9)
	assert.InDelta(t, 1.0, env(geom.Vec{Y: 1}), 1e-9)
}

func TestTransformed_QueryFollowsGeometry(t *testing.T) {
	d := dotDiagram("a").Translated(geom.Vec{X: 3})

	assert.Equal(t, Any(true), d.Sample(geom.Point{X: 3}))
	assert.Equal(t, Any(false), d.Sample(geom.Point{}))

	scaled := dotDiagram("a").Scaled(2)
	assert.Equal(t, Any(true), scaled.Sample(geom.Point{X: 1.5}))
	assert.Equal(t, Any(false), scaled.Sample(geom.Point{X: 2.5}))
}

func TestWithEnvelope_CancelAndReplace(t *testing.T) {
	d := dotDiagram("a").Combine(dotDiagram("b").Translated(geom.Vec{X: 3}))

	e1 := annot.EnvelopeOf(geom.Point{X: 10})
	e2 := annot.EnvelopeOf(geom.Point{X: 20})

	// get(set(e, d)) == e
	set := d.WithEnvelope(e1)
	assert.InDelta(t, 10.0, set.Envelope()(geom.Vec{X: 1}), 1e-9)

	// Overriding twice equals overriding once with the final value.
	twice := d.WithEnvelope(e1).WithEnvelope(e2)
	once := d.WithEnvelope(e2)
	for _, v := range []geom.Vec{{X: 1}, {X: -1}, {Y: 1}} {
		assert.InDelta(t, once.Envelope()(v), twice.Envelope()(v), 1e-9)
	}

	// The replacement is annotation-only: primitives and contexts are
	// untouched.
	assert.Empty(t, cmp.Diff(records(d), records(set), approx))

	// Other fields are unaffected.
	assert.Equal(t, Any(true), set.Sample(geom.Point{}))
}

func TestWithEnvelope_SurvivesLaterCombine(t *testing.T) {
	// An override participates in later combines like any other envelope.
	a := dotDiagram("a").WithEnvelope(annot.EnvelopeOf(geom.Point{X: 10}))
	b := dotDiagram("b").Translated(geom.Vec{X: -20})

	env := a.Combine(b).Envelope()
	assert.InDelta(t, 10.0, env(geom.Vec{X: 1}), 1e-9)
	assert.InDelta(t, 21.0, env(geom.Vec{X: -1}), 1e-9)
}

func TestWithEnvelope_TransformActsOnOverride(t *testing.T) {
	d := dotDiagram("a").
		WithEnvelope(annot.EnvelopeOf(geom.Point{X: 1})).
		Scaled(3)
	assert.InDelta(t, 3.0, d.Envelope()(geom.Vec{X: 1}), 1e-9)
}

func TestWithTraceAndWithQuery(t *testing.T) {
	wall := func(o geom.Point, dir geom.Vec) []float64 {
		if dir.X == 0 {
			return nil
		}
		return []float64{(5 - o.X) / dir.X}
	}
	d := dotDiagram("a").WithTrace(wall)
	hits := d.Trace()(geom.Origin, geom.Vec{X: 1})
	require.Len(t, hits, 1)
	assert.InDelta(t, 5.0, hits[0], 1e-9)

	q := d.WithQuery(func(p geom.Point) Any { return p.X > 100 })
	assert.Equal(t, Any(false), q.Sample(geom.Point{}))
	assert.Equal(t, Any(true), q.Sample(geom.Point{X: 101}))
}

func TestEmptyDiagram_Fields(t *testing.T) {
	e := EmptyDiagram[Any]()
	assert.True(t, e.IsEmpty())
	assert.Nil(t, e.Envelope())
	assert.Nil(t, e.Trace())
	assert.Equal(t, 0, e.SubMap().Len())
	assert.Equal(t, Any(false), e.Sample(geom.Point{}))
}

func TestStack_FoldsInOrder(t *testing.T) {
	d := Stack(dotDiagram("a"), dotDiagram("b"), dotDiagram("c"))
	recs := records(d)
	require.Len(t, recs, 3)
	assert.Equal(t, "dot(a)", recs[0].Prim)
	assert.Equal(t, "dot(c)", recs[2].Prim)
}
