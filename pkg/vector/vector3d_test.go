package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector3d_Basics(t *testing.T) {
	v := New3d(1, 2, 3)
	require.Equal(t, 3.0, v.Z())
	require.Equal(t, "x:1,y:2,z:3", v.String())

	require.True(t, v.Clone().Equals(v))

	v.Set(4, 5, 6).Add(New3d(1, 1, 1))
	require.True(t, v.Equals(New3d(5, 6, 7)))
}

func TestVector3d_MissingZDefaults(t *testing.T) {
	// Additive operations read a missing z as 0; multiplicative ones as
	// 1, so scaling by a 2D vector never touches z. The asymmetry is
	// contractual.
	two := New2d(10, 20)

	add := New3d(1, 2, 3).Add(two)
	require.True(t, add.Equals(New3d(11, 22, 3)))

	sub := New3d(1, 2, 3).Sub(two)
	require.True(t, sub.Equals(New3d(-9, -18, 3)))

	scaled := New3d(1, 2, 3).ScaleV(New2d(2, 2))
	require.True(t, scaled.Equals(New3d(2, 4, 3)))

	// Dot with a 2D argument counts the receiver's z once (z*1).
	require.Equal(t, 1.0*10+2.0*20+3.0, New3d(1, 2, 3).Dot(two))

	// Distance reads a missing z as 0.
	require.Equal(t, 5.0, New3d(3, 0, 4).Distance(New2d(0, 0)))
}

func TestVector3d_EqualsIgnoresZFor2dArgument(t *testing.T) {
	// A 2D argument always matches on z; its missing component is read
	// back as the receiver's own. Surprising, but part of the contract.
	v := New3d(1, 2, 99)
	require.True(t, v.Equals(New2d(1, 2)))
	require.False(t, v.Equals(New3d(1, 2, 0)))
}

func TestVector3d_Dot(t *testing.T) {
	require.Equal(t, -14.0, New3d(1, 2, 3).Dot(New3d(-1, -2, -3)))
}

func TestVector3d_Cross(t *testing.T) {
	v := New3d(2, 3, 4).Cross(New3d(5, 6, 7))
	require.True(t, v.Equals(New3d(-3, 6, -3)))
}

func TestVector3d_FloorCeil(t *testing.T) {
	v := New3d(-0.1, 0.1, 0.3)
	require.True(t, v.Clone().FloorSelf().Equals(New3d(-1, 0, 0)))
	require.True(t, v.Clone().CeilSelf().Equals(New3d(0, 1, 1)))
}

func TestVector3d_NormalizeAndLength(t *testing.T) {
	v := New3d(1, 2, 2)
	require.Equal(t, 3.0, v.Length())
	require.InDelta(t, v.Length()*v.Length(), v.Length2(), 1e-9)

	v.Normalize()
	require.InDelta(t, 1.0, v.Length(), 1e-12)
}

func TestVector3d_Lerp(t *testing.T) {
	a := New3d(0, 0, 0)
	b := New3d(10, 20, 30)
	require.True(t, a.Clone().Lerp(b, 0).Equals(New3d(0, 0, 0)))
	require.True(t, a.Clone().Lerp(b, 1).Equals(b))
	require.True(t, a.Clone().Lerp(b, 0.5).Equals(New3d(5, 10, 15)))
}

func TestVector3d_MoveTowardsKeepsZ(t *testing.T) {
	v := New3d(0, 0, 7).MoveTowards(New3d(30, 40, -100), 5)
	require.InDelta(t, 3.0, v.X(), 1e-9)
	require.InDelta(t, 4.0, v.Y(), 1e-9)
	require.Equal(t, 7.0, v.Z())

	snapped := New3d(0, 0, 7).MoveTowards(New2d(1, 1), 10)
	require.True(t, snapped.Equals(New3d(1, 1, 7)))
}

func TestVector3d_RotateKeepsZ(t *testing.T) {
	v := New3d(1, 0, 5).Rotate(math.Pi / 2)
	require.InDelta(t, 0.0, v.X(), 1e-9)
	require.InDelta(t, 1.0, v.Y(), 1e-9)
	require.Equal(t, 5.0, v.Z())
}

func TestVector3d_Angle(t *testing.T) {
	require.InDelta(t, math.Pi, New3d(1, 2, 0).Angle(New3d(-1, -2, 0)), 1e-9)
	require.InDelta(t, 0.0, New3d(1, 2, 3).Angle(New3d(1, 2, 3)), 1e-9)
	require.InDelta(t, math.Pi/2, New3d(1, 0, 0).Angle(New3d(0, 1, 0)), 1e-9)
}

func TestVector3d_Project(t *testing.T) {
	v := New3d(3, 4, 5).Project(New3d(1, 0, 0))
	require.True(t, v.Equals(New3d(3, 0, 0)))
}

func TestVector3d_ToVector2d(t *testing.T) {
	flat := New3d(1, 2, 3).ToVector2d()
	require.True(t, flat.Equals(New2d(1, 2)))
}

func TestVector3d_PoolRecycling(t *testing.T) {
	v := Acquire3d(1, 2, 3)
	Release3d(v)

	got := Acquire3d(4, 5, 6)
	require.Same(t, v, got)
	require.True(t, got.Equals(New3d(4, 5, 6)))
}
