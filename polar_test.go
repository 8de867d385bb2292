package geom2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngle(t *testing.T) {
	require.Equal(t, 0.0, NewVector2(1, 0).Angle())
	require.InDelta(t, math.Pi/2, NewVector2(0, 2).Angle(), eps)
	require.InDelta(t, -3*math.Pi/4, NewVector2(-1, -1).Angle(), eps)
	require.Equal(t, 0.0, Zero().Angle())
}

func TestAngleBetween(t *testing.T) {
	a, err := NewVector2(1, 0).AngleBetween(NewVector2(1, 1))
	require.NoError(t, err)
	require.InDelta(t, 0.7853982, a, eps)

	a, err = NewVector2(1, 0).AngleBetween(NewVector2(-2, 0))
	require.NoError(t, err)
	require.InDelta(t, math.Pi, a, eps)

	// unsigned, so symmetric
	a1, _ := NewVector2(1, 2).AngleBetween(NewVector2(3, -4))
	a2, _ := NewVector2(3, -4).AngleBetween(NewVector2(1, 2))
	require.InDelta(t, a1, a2, eps)

	var inv *InvalidArgumentError
	_, err = Zero().AngleBetween(NewVector2(1, 0))
	require.ErrorAs(t, err, &inv)
	_, err = NewVector2(1, 0).AngleBetween(Zero())
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "angle", inv.Op)
}

func TestAngleBetweenClamped(t *testing.T) {
	// parallel vectors of very different magnitude can push the cosine
	// ratio past 1 through rounding; the result must stay a number
	v := NewVector2(0.1, 0.2)
	a, err := v.AngleBetween(v.Scale(1e9))
	require.NoError(t, err)
	require.False(t, math.IsNaN(a))
	require.InDelta(t, 0.0, a, eps)

	a, err = v.AngleBetween(v.Scale(-1e9))
	require.NoError(t, err)
	require.InDelta(t, math.Pi, a, eps)
}

func TestFromPolar(t *testing.T) {
	require.True(t, FromPolar(NewVector2(0, 2)).NearEqual(NewVector2(2, 0), eps))
	require.True(t, FromPolar(NewVector2(math.Pi/2, 2)).NearEqual(NewVector2(0, 2), eps))
	require.True(t, FromPolar(NewVector2(math.Pi/4, math.Sqrt2)).NearEqual(NewVector2(1, 1), eps))
}

func TestToPolar(t *testing.T) {
	p := ToPolar(NewVector2(0, 3))
	require.InDelta(t, math.Pi/2, p.X, eps)
	require.InDelta(t, 3.0, p.Y, eps)

	require.Equal(t, Zero(), ToPolar(Zero()))
}

func TestPolarRoundTrip(t *testing.T) {
	vecs := []Vector2{
		{1, 0}, {0, 1}, {3, 4}, {-2.5, 7}, {1, -1}, {-0.3, -0.4},
	}
	for _, v := range vecs {
		require.True(t, FromPolar(ToPolar(v)).NearEqual(v, eps), "round trip %v", v)
	}

	p := NewVector2(0.6, 2.5)
	q := ToPolar(FromPolar(p))
	require.True(t, q.NearEqual(p, eps))
}
