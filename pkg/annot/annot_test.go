package annot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/geom"
)

func TestEnvelope_OfPoints(t *testing.T) {
	e := EnvelopeOf(geom.Point{X: -1}, geom.Point{X: 2, Y: 1})
	assert.InDelta(t, 2.0, e(geom.Vec{X: 1}), 1e-9)
	assert.InDelta(t, 1.0, e(geom.Vec{X: -1}), 1e-9)
	assert.InDelta(t, 1.0, e(geom.Vec{Y: 1}), 1e-9)
}

func TestEnvelope_MergeIsPointwiseMax(t *testing.T) {
	a := EnvelopeOf(geom.Point{X: 1})
	b := EnvelopeOf(geom.Point{X: -3})

	m := a.Merge(b)
	assert.InDelta(t, 1.0, m(geom.Vec{X: 1}), 1e-9)
	assert.InDelta(t, 3.0, m(geom.Vec{X: -1}), 1e-9)

	// nil is a two-sided identity.
	assert.InDelta(t, 1.0, Envelope(nil).Merge(a)(geom.Vec{X: 1}), 1e-9)
	assert.InDelta(t, 1.0, a.Merge(nil)(geom.Vec{X: 1}), 1e-9)
	assert.Nil(t, Envelope(nil).Merge(nil))
}

func TestEnvelope_Transform(t *testing.T) {
	unit := EnvelopeOf(
		geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: -1},
		geom.Point{X: -1, Y: 1}, geom.Point{X: -1, Y: -1},
	)

	moved := unit.ApplyTransform(geom.Translate(geom.Vec{X: 3}))
	assert.InDelta(t, 4.0, moved(geom.Vec{X: 1}), 1e-9)
	assert.InDelta(t, -2.0, moved(geom.Vec{X: -1}), 1e-9)
	assert.InDelta(t, 1.0, moved(geom.Vec{Y: 1}), 1e-9)

	grown := unit.ApplyTransform(geom.Scale(2))
	assert.InDelta(t, 2.0, grown(geom.Vec{X: 1}), 1e-9)
}

func TestTrace_MergeAndTransform(t *testing.T) {
	// A trace that "hits" a vertical wall at x = w for rays along +x from
	// the origin line.
	wall := func(w float64) Trace {
		return func(origin geom.Point, dir geom.Vec) []float64 {
			if dir.X == 0 {
				return nil
			}
			return []float64{(w - origin.X) / dir.X}
		}
	}

	m := wall(1).Merge(wall(3))
	hits := m(geom.Origin, geom.Vec{X: 1})
	require.Equal(t, []float64{1, 3}, hits)

	moved := wall(1).ApplyTransform(geom.Translate(geom.Vec{X: 2}))
	hits = moved(geom.Origin, geom.Vec{X: 1})
	require.Len(t, hits, 1)
	assert.InDelta(t, 3.0, hits[0], 1e-9)

	assert.Nil(t, Trace(nil).Merge(nil))
	assert.Nil(t, Trace(nil).ApplyTransform(geom.Scale(2)))
}

type testAttr string

func (a testAttr) MergeAttr(inner Attribute) Attribute { return inner }

func TestStyle_ComposeInnerWins(t *testing.T) {
	outer := Style{}.Set("fill", testAttr("blue")).Set("stroke", testAttr("black"))
	inner := Style{}.Set("fill", testAttr("red"))

	got := outer.Compose(inner)
	a, ok := got.Get("fill")
	require.True(t, ok)
	assert.Equal(t, testAttr("red"), a)
	a, ok = got.Get("stroke")
	require.True(t, ok)
	assert.Equal(t, testAttr("black"), a)
	assert.Equal(t, []string{"fill", "stroke"}, got.Keys())
}

func TestStyle_ZeroIsIdentity(t *testing.T) {
	s := Style{}.Set("fill", testAttr("red"))
	assert.Equal(t, s.Keys(), Style{}.Compose(s).Keys())
	assert.Equal(t, s.Keys(), s.Compose(Style{}).Keys())
	assert.Equal(t, 0, Style{}.Len())
}

func TestName_QualifyAndSuffix(t *testing.T) {
	n := NameOf("a").Qualify(NameOf("b", "c"))
	assert.Equal(t, "a.b.c", n.String())

	assert.True(t, n.HasSuffix(ParseName("b.c")))
	assert.True(t, n.HasSuffix(ParseName("a.b.c")))
	assert.False(t, n.HasSuffix(ParseName("c.b")))
	// Whole-atom tails only: "bc" does not match ".c".
	assert.False(t, ParseName("a.bc").HasSuffix(ParseName("c")))
	assert.True(t, n.HasSuffix(nil))
}

func TestDown_Compose(t *testing.T) {
	outer := DownTransform(geom.Scale(2)).Compose(DownPrefix(NameOf("g")))
	inner := DownTransform(geom.Translate(geom.Vec{X: 1})).Compose(DownStyle(Style{}.Set("fill", testAttr("red"))))

	d := outer.Compose(inner)
	assert.Equal(t, "g", d.Prefix.String())
	assert.Equal(t, 1, d.Style.Len())

	p := d.Total().Apply(geom.Origin)
	assert.InDelta(t, 2.0, p.X, 1e-9)
}
