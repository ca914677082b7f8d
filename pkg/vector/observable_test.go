package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// commit2d is a callback that accepts every write unchanged.
func commit2d(_, _ Point2d) *Point2d { return nil }

// commit3d is a callback that accepts every write unchanged.
func commit3d(_, _ Point3d) *Point3d { return nil }

func TestObservable_ConstructionRequiresCallback(t *testing.T) {
	_, err := NewObservable2d(1, 2, nil)
	require.ErrorIs(t, err, ErrNoCallback)

	_, err = NewObservable3d(1, 2, 3, nil)
	require.ErrorIs(t, err, ErrNoCallback)

	ov, err := NewObservable3d(1, 2, 3, commit3d)
	require.NoError(t, err)
	require.ErrorIs(t, ov.SetOnUpdate(nil), ErrNoCallback)
}

func TestObservable_ConstructionIsMuted(t *testing.T) {
	calls := 0
	ov, err := NewObservable2d(10, 20, func(_, _ Point2d) *Point2d {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, calls)
	require.Equal(t, 10.0, ov.X())
	require.Equal(t, 20.0, ov.Y())
}

func TestObservable3d_SetXNotifiesWithFullContext(t *testing.T) {
	var gotNew, gotOld Point3d
	calls := 0
	ov, err := NewObservable3d(10, 100, 20, func(updated, old Point3d) *Point3d {
		calls++
		gotNew, gotOld = updated, old
		return nil
	})
	require.NoError(t, err)

	ov.SetX(1)
	require.Equal(t, 1, calls)
	require.Equal(t, Point3d{X: 1, Y: 100, Z: 20}, gotNew)
	require.Equal(t, Point3d{X: 10, Y: 100, Z: 20}, gotOld)
	require.Equal(t, 1.0, ov.X())
}

func TestObservable3d_SetXOverrideTakesOnlyThatAxis(t *testing.T) {
	ov, err := NewObservable3d(10, 100, 20, func(updated, old Point3d) *Point3d {
		return &Point3d{X: 42, Y: -1, Z: -1}
	})
	require.NoError(t, err)

	ov.SetX(1)
	// The override's x wins; the override's other axes are context only
	// and must not leak into the vector.
	require.Equal(t, 42.0, ov.X())
	require.Equal(t, 100.0, ov.Y())
	require.Equal(t, 20.0, ov.Z())
}

func TestObservable3d_AddBatchNotifiesOnce(t *testing.T) {
	var gotNew, gotOld Point3d
	calls := 0
	ov, err := NewObservable3d(10, 100, 20, func(updated, old Point3d) *Point3d {
		calls++
		gotNew, gotOld = updated, old
		return nil
	})
	require.NoError(t, err)

	ov.Add(New3d(10, 10, 10))
	require.Equal(t, 1, calls)
	require.Equal(t, Point3d{X: 20, Y: 110, Z: 30}, gotNew)
	require.Equal(t, Point3d{X: 10, Y: 100, Z: 20}, gotOld)
	require.Equal(t, gotOld.Y+10, ov.Y())
}

func TestObservable3d_BatchOverrideIsAllOrNothing(t *testing.T) {
	ov, err := NewObservable3d(1, 2, 3, func(updated, old Point3d) *Point3d {
		return &Point3d{X: 7, Y: 8, Z: 9}
	})
	require.NoError(t, err)

	ov.Add(New3d(100, 100, 100))
	require.Equal(t, 7.0, ov.X())
	require.Equal(t, 8.0, ov.Y())
	require.Equal(t, 9.0, ov.Z())
}

func TestObservable2d_VetoByRewritingOldValues(t *testing.T) {
	// A callback can veto any write by overriding with the old values.
	ov, err := NewObservable2d(5, 6, func(updated, old Point2d) *Point2d {
		return &Point2d{X: old.X, Y: old.Y}
	})
	require.NoError(t, err)

	ov.Set(100, 200).Scale(3).NegateSelf()
	require.Equal(t, 5.0, ov.X())
	require.Equal(t, 6.0, ov.Y())
}

func TestObservable2d_SetMutedBypassesCallback(t *testing.T) {
	calls := 0
	ov, err := NewObservable2d(0, 0, func(_, _ Point2d) *Point2d {
		calls++
		return nil
	})
	require.NoError(t, err)

	ov.SetMuted(9, 9)
	require.Zero(t, calls)
	require.Equal(t, 9.0, ov.X())
}

func TestObservable2d_GeometryMatchesPlainVector(t *testing.T) {
	ov, err := NewObservable2d(3, 1, commit2d)
	require.NoError(t, err)

	plain := New2d(3, 1)
	ov.Rotate(math.Pi / 3).Normalize().Lerp(New2d(1, 1), 0.25)
	plain.Rotate(math.Pi / 3).Normalize().Lerp(New2d(1, 1), 0.25)

	require.InDelta(t, plain.X(), ov.X(), 1e-12)
	require.InDelta(t, plain.Y(), ov.Y(), 1e-12)
}

func TestObservable2d_EachMethodNotifiesExactlyOnce(t *testing.T) {
	calls := 0
	ov, err := NewObservable2d(3, 4, func(_, _ Point2d) *Point2d {
		calls++
		return nil
	})
	require.NoError(t, err)

	steps := []func(){
		func() { ov.Add(New2d(1, 1)) },
		func() { ov.Sub(New2d(1, 1)) },
		func() { ov.Scale(2) },
		func() { ov.ScaleV(New2d(1, 1)) },
		func() { ov.Div(2) },
		func() { ov.Rotate(0.5) },
		func() { ov.Lerp(New2d(1, 1), 0.5) },
		func() { ov.MoveTowards(New2d(10, 10), 0.5) },
		func() { ov.Normalize() },
		func() { ov.Project(New2d(1, 0)) },
		func() { ov.ClampSelf(-10, 10) },
		func() { ov.FloorSelf() },
		func() { ov.CeilSelf() },
		func() { ov.NegateSelf() },
		func() { ov.Perp() },
	}
	for i, step := range steps {
		step()
		require.Equal(t, i+1, calls)
	}
}

func TestObservable_ReentrantCallback(t *testing.T) {
	// A callback may mutate the vector it observes; the nested write
	// re-enters the mutation path synchronously. The callback itself is
	// responsible for terminating the recursion.
	var ov *ObservableVector2d
	depth := 0
	var err error
	ov, err = NewObservable2d(0, 0, func(updated, old Point2d) *Point2d {
		if depth == 0 {
			depth++
			ov.SetMuted(updated.X+1, updated.Y+1)
		}
		return nil
	})
	require.NoError(t, err)

	ov.SetX(10)
	// The muted nested write landed first (x=11, y=1), then the outer
	// per-axis commit overwrote x with the attempted value.
	require.Equal(t, 10.0, ov.X())
	require.Equal(t, 1.0, ov.Y())
}

func TestObservable2d_NonMutatingVariantsShareCallback(t *testing.T) {
	calls := 0
	ov, err := NewObservable2d(-1.5, 2.5, func(_, _ Point2d) *Point2d {
		calls++
		return nil
	})
	require.NoError(t, err)

	floored := ov.Floor()
	require.Zero(t, calls, "constructing the variant must not notify")
	require.Equal(t, -2.0, floored.X())
	require.Equal(t, 2.0, floored.Y())
	// The receiver is untouched.
	require.Equal(t, -1.5, ov.X())

	// The variant shares the original callback.
	floored.Set(1, 1)
	require.Equal(t, 1, calls)

	negated := ov.Negate()
	negated.Set(0, 0)
	require.Equal(t, 2, calls)
}

func TestObservable_CloneSharesCallbackThroughPool(t *testing.T) {
	calls := 0
	ov, err := NewObservable3d(1, 2, 3, func(_, _ Point3d) *Point3d {
		calls++
		return nil
	})
	require.NoError(t, err)

	c := ov.Clone()
	require.True(t, c.Equals(ov))
	c.Set(4, 5, 6)
	require.Equal(t, 1, calls)
	// The original is unaffected by writes to the clone.
	require.Equal(t, 1.0, ov.X())
}

func TestObservable_ToPlainVector(t *testing.T) {
	ov, err := NewObservable3d(1, 2, 3, commit3d)
	require.NoError(t, err)

	plain := ov.ToVector3d()
	require.True(t, plain.Equals(New3d(1, 2, 3)))

	flat := ov.ToVector2d()
	require.True(t, flat.Equals(New2d(1, 2)))
}

func TestObservable_PoolResetIsMutedAndRebindsCallback(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	first := AcquireObservable2d(1, 1, func(_, _ Point2d) *Point2d {
		firstCalls++
		return nil
	})
	ReleaseObservable2d(first)

	second := AcquireObservable2d(5, 5, func(_, _ Point2d) *Point2d {
		secondCalls++
		return nil
	})
	require.Same(t, first, second)
	// Reset applied the new coordinates without firing anything.
	require.Equal(t, 5.0, second.X())
	require.Zero(t, firstCalls)
	require.Zero(t, secondCalls)

	// And the rebound callback is the new one.
	second.Set(6, 6)
	require.Zero(t, firstCalls)
	require.Equal(t, 1, secondCalls)
}

func TestObservable_PoolResetWithoutCallbackKeepsOldBinding(t *testing.T) {
	calls := 0
	ov := AcquireObservable3d(1, 2, 3, func(_, _ Point3d) *Point3d {
		calls++
		return nil
	})
	ReleaseObservable3d(ov)

	// Pulling without a callback argument reuses the previous binding.
	got, err := Pool().Pull(TagObservable3d, 7.0, 8.0, 9.0)
	require.NoError(t, err)
	require.Same(t, ov, got)

	got.(*ObservableVector3d).SetZ(0)
	require.Equal(t, 1, calls)
}
