package espalier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/annot"
	"github.com/aretw0/espalier/pkg/geom"
)

// hits counts overlapping coverage; the zero value is the identity.
type hits int

func (h hits) Merge(o hits) hits { return h + o }

func TestValue_TagsCoveredPoints(t *testing.T) {
	d := Value(hits(3), dotDiagram("a"))

	assert.Equal(t, hits(3), d.Sample(geom.Point{}))
	assert.Equal(t, hits(0), d.Sample(geom.Point{X: 5}))
}

func TestValue_OverlapsMergeInTargetMonoid(t *testing.T) {
	// Remapping is per leaf, so overlapping regions merge their values in
	// the target monoid rather than collapsing first.
	d := Value(hits(3), dotDiagram("a").Combine(dotDiagram("b")))

	assert.Equal(t, hits(6), d.Sample(geom.Point{}))
}

func TestMapQuery_QueryFollowsLaterTransforms(t *testing.T) {
	d := Value(hits(1), dotDiagram("a")).Translated(geom.Vec{X: 10})

	assert.Equal(t, hits(1), d.Sample(geom.Point{X: 10}))
	assert.Equal(t, hits(0), d.Sample(geom.Point{}))
}

func TestResetValue_RoundTrip(t *testing.T) {
	d := ResetValue(Value(hits(3), dotDiagram("a")))

	assert.Equal(t, Any(true), d.Sample(geom.Point{}))
	assert.Equal(t, Any(false), d.Sample(geom.Point{X: 5}))
}

func TestClearValue_EmptiesQueryOnly(t *testing.T) {
	d := ClearValue(Value(hits(3), dotDiagram("a")))

	assert.Equal(t, Any(false), d.Sample(geom.Point{}))
	// The envelope is untouched.
	assert.InDelta(t, 1.0, d.Envelope()(geom.Vec{X: 1}), 1e-9)
}

func TestMapQuery_PreservesStructureAndNames(t *testing.T) {
	base := dotDiagram("a").Named("x").Translated(geom.Vec{X: 2}).
		Combine(dotDiagram("b"))
	d := Value(hits(1), base)

	assert.Empty(t, cmp.Diff(records(base), records(d)))

	subs := d.LookupName("x")
	require.Len(t, subs, 1)
	assert.InDelta(t, 2.0, subs[0].Location().X, 1e-9)
	// The binding's diagram answers in the target monoid.
	assert.Equal(t, hits(1), subs[0].RawSub().Sample(geom.Point{}))
}

func TestMapQuery_KeepsDelayedLeaves(t *testing.T) {
	base := Delayed(unitEnvelope(), nil, func(annot.Down) *Diagram[Any] {
		return dotDiagram("inner")
	})
	d := Value(hits(2), base)

	recs := records(d)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Delayed)
}
