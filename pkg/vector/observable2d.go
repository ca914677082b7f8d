package vector

import (
	"errors"
	"math"
)

// ErrNoCallback is returned when an observable vector is constructed,
// reset or rebound without an onUpdate callback.
var ErrNoCallback = errors.New("vector: observable vector requires an onUpdate callback")

// OnUpdate2d is invoked synchronously on every coordinate mutation
// attempt with the attempted and previous coordinates. Return nil to
// commit the attempted values, or a fully-populated point to override
// what gets written. On the per-axis setters only the written axis is
// taken from the override; on batch operations the whole point is.
//
// The callback may itself mutate the vector; such writes re-enter the
// mutation path synchronously, so the callback is responsible for
// bounding its own recursion.
type OnUpdate2d func(updated, old Point2d) *Point2d

// ObservableVector2d is a 2D vector that funnels every coordinate
// mutation through its onUpdate callback before committing. It
// composes a plain Vector2d rather than inheriting from it, so the
// plain type stays observer-free.
type ObservableVector2d struct {
	v        Vector2d
	onUpdate OnUpdate2d
}

// NewObservable2d creates an observable 2D vector. The construction is
// muted: the callback does not fire for the initial values. A nil
// callback is a construction error.
func NewObservable2d(x, y float64, onUpdate OnUpdate2d) (*ObservableVector2d, error) {
	if onUpdate == nil {
		return nil, ErrNoCallback
	}
	return &ObservableVector2d{v: Vector2d{x: x, y: y}, onUpdate: onUpdate}, nil
}

// point captures the current coordinates.
func (ov *ObservableVector2d) point() Point2d {
	return Point2d{X: ov.v.x, Y: ov.v.y}
}

// set is the batch mutation path used by every geometric method: one
// callback invocation, override honored all-or-nothing.
func (ov *ObservableVector2d) set(x, y float64) *ObservableVector2d {
	if r := ov.onUpdate(Point2d{X: x, Y: y}, ov.point()); r != nil {
		ov.v.x, ov.v.y = r.X, r.Y
	} else {
		ov.v.x, ov.v.y = x, y
	}
	return ov
}

// X returns the x component.
func (ov *ObservableVector2d) X() float64 { return ov.v.x }

// Y returns the y component.
func (ov *ObservableVector2d) Y() float64 { return ov.v.y }

// SetX writes the x component through the per-axis path: the callback
// sees the full attempted/old context, but only x is committed, from
// the override when one is returned.
func (ov *ObservableVector2d) SetX(x float64) *ObservableVector2d {
	if r := ov.onUpdate(Point2d{X: x, Y: ov.v.y}, ov.point()); r != nil {
		ov.v.x = r.X
	} else {
		ov.v.x = x
	}
	return ov
}

// SetY writes the y component through the per-axis path.
func (ov *ObservableVector2d) SetY(y float64) *ObservableVector2d {
	if r := ov.onUpdate(Point2d{X: ov.v.x, Y: y}, ov.point()); r != nil {
		ov.v.y = r.Y
	} else {
		ov.v.y = y
	}
	return ov
}

// Set writes both components through the batch path.
func (ov *ObservableVector2d) Set(x, y float64) *ObservableVector2d {
	return ov.set(x, y)
}

// SetZero resets to the origin through the batch path.
func (ov *ObservableVector2d) SetZero() *ObservableVector2d {
	return ov.set(0, 0)
}

// SetV copies o through the batch path.
func (ov *ObservableVector2d) SetV(o Reader2d) *ObservableVector2d {
	return ov.set(o.X(), o.Y())
}

// SetMuted writes both components without notifying the callback. Used
// by construction and pool reset; available to callers that need a
// silent rewind.
func (ov *ObservableVector2d) SetMuted(x, y float64) *ObservableVector2d {
	ov.v.x, ov.v.y = x, y
	return ov
}

// SetOnUpdate replaces the callback. The callback can never be
// removed, only replaced; a nil value is rejected.
func (ov *ObservableVector2d) SetOnUpdate(onUpdate OnUpdate2d) error {
	if onUpdate == nil {
		return ErrNoCallback
	}
	ov.onUpdate = onUpdate
	return nil
}

// OnUpdate returns the bound callback.
func (ov *ObservableVector2d) OnUpdate() OnUpdate2d {
	return ov.onUpdate
}

// apply runs a plain-vector mutation on a scratch copy and commits the
// result through the batch path, so each method costs exactly one
// callback invocation.
func (ov *ObservableVector2d) apply(mutate func(*Vector2d)) *ObservableVector2d {
	tmp := ov.v
	mutate(&tmp)
	return ov.set(tmp.x, tmp.y)
}

// Add adds o componentwise.
func (ov *ObservableVector2d) Add(o Reader2d) *ObservableVector2d {
	return ov.set(ov.v.x+o.X(), ov.v.y+o.Y())
}

// Sub subtracts o componentwise.
func (ov *ObservableVector2d) Sub(o Reader2d) *ObservableVector2d {
	return ov.set(ov.v.x-o.X(), ov.v.y-o.Y())
}

// Scale multiplies by x, and by y on the y axis when given.
func (ov *ObservableVector2d) Scale(x float64, y ...float64) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.Scale(x, y...) })
}

// ScaleV multiplies componentwise by o.
func (ov *ObservableVector2d) ScaleV(o Reader2d) *ObservableVector2d {
	return ov.set(ov.v.x*o.X(), ov.v.y*o.Y())
}

// Div divides both components by n.
func (ov *ObservableVector2d) Div(n float64) *ObservableVector2d {
	return ov.set(ov.v.x/n, ov.v.y/n)
}

// AbsSelf replaces each component with its absolute value.
func (ov *ObservableVector2d) AbsSelf() *ObservableVector2d {
	return ov.set(math.Abs(ov.v.x), math.Abs(ov.v.y))
}

// Abs returns a new observable vector, sharing the callback, holding
// the absolute value of each component.
func (ov *ObservableVector2d) Abs() *ObservableVector2d {
	return AcquireObservable2d(math.Abs(ov.v.x), math.Abs(ov.v.y), ov.onUpdate)
}

// ClampSelf clamps each component into [low, high] via the batch path.
func (ov *ObservableVector2d) ClampSelf(low, high float64) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.ClampSelf(low, high) })
}

// Clamp returns a new observable vector, sharing the callback, with
// each component clamped into [low, high].
func (ov *ObservableVector2d) Clamp(low, high float64) *ObservableVector2d {
	tmp := ov.v
	tmp.ClampSelf(low, high)
	return AcquireObservable2d(tmp.x, tmp.y, ov.onUpdate)
}

// MinV updates each component to the minimum of itself and o's.
func (ov *ObservableVector2d) MinV(o Reader2d) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.MinV(o) })
}

// MaxV updates each component to the maximum of itself and o's.
func (ov *ObservableVector2d) MaxV(o Reader2d) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.MaxV(o) })
}

// FloorSelf floors each component via the batch path.
func (ov *ObservableVector2d) FloorSelf() *ObservableVector2d {
	return ov.set(math.Floor(ov.v.x), math.Floor(ov.v.y))
}

// Floor returns a new observable vector, sharing the callback, with
// each component floored.
func (ov *ObservableVector2d) Floor() *ObservableVector2d {
	return AcquireObservable2d(math.Floor(ov.v.x), math.Floor(ov.v.y), ov.onUpdate)
}

// CeilSelf ceils each component via the batch path.
func (ov *ObservableVector2d) CeilSelf() *ObservableVector2d {
	return ov.set(math.Ceil(ov.v.x), math.Ceil(ov.v.y))
}

// Ceil returns a new observable vector, sharing the callback, with
// each component ceiled.
func (ov *ObservableVector2d) Ceil() *ObservableVector2d {
	return AcquireObservable2d(math.Ceil(ov.v.x), math.Ceil(ov.v.y), ov.onUpdate)
}

// NegateSelf negates both components via the batch path.
func (ov *ObservableVector2d) NegateSelf() *ObservableVector2d {
	return ov.set(-ov.v.x, -ov.v.y)
}

// Negate returns a new negated observable vector sharing the callback.
func (ov *ObservableVector2d) Negate() *ObservableVector2d {
	return AcquireObservable2d(-ov.v.x, -ov.v.y, ov.onUpdate)
}

// Copy copies o through the batch path.
func (ov *ObservableVector2d) Copy(o Reader2d) *ObservableVector2d {
	return ov.set(o.X(), o.Y())
}

// Equals reports exact componentwise equality.
func (ov *ObservableVector2d) Equals(o Reader2d) bool {
	return ov.v.Equals(o)
}

// Normalize scales to unit length via the batch path.
func (ov *ObservableVector2d) Normalize() *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.Normalize() })
}

// Perp rotates 90 degrees clockwise via the batch path.
func (ov *ObservableVector2d) Perp() *ObservableVector2d {
	return ov.set(ov.v.y, -ov.v.x)
}

// Rotate rotates counter-clockwise by angle radians about the optional
// pivot via the batch path.
func (ov *ObservableVector2d) Rotate(angle float64, pivot ...Reader2d) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.Rotate(angle, pivot...) })
}

// Dot returns the dot product with o.
func (ov *ObservableVector2d) Dot(o Reader2d) float64 {
	return ov.v.Dot(o)
}

// Length2 returns the squared magnitude.
func (ov *ObservableVector2d) Length2() float64 {
	return ov.v.Length2()
}

// Length returns the magnitude.
func (ov *ObservableVector2d) Length() float64 {
	return ov.v.Length()
}

// Distance returns the Euclidean distance to o.
func (ov *ObservableVector2d) Distance(o Reader2d) float64 {
	return ov.v.Distance(o)
}

// Lerp interpolates toward o by alpha via the batch path.
func (ov *ObservableVector2d) Lerp(o Reader2d, alpha float64) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.Lerp(o, alpha) })
}

// MoveTowards moves at most step toward target via the batch path.
func (ov *ObservableVector2d) MoveTowards(target Reader2d, step float64) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.MoveTowards(target, step) })
}

// Angle returns the unsigned angle to o in [0, pi].
func (ov *ObservableVector2d) Angle(o Reader2d) float64 {
	return ov.v.Angle(o)
}

// Project projects onto o via the batch path.
func (ov *ObservableVector2d) Project(o Reader2d) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.Project(o) })
}

// ProjectN projects onto unit-length o via the batch path.
func (ov *ObservableVector2d) ProjectN(o Reader2d) *ObservableVector2d {
	return ov.apply(func(v *Vector2d) { v.ProjectN(o) })
}

// Clone returns a pooled copy bound to the same callback.
func (ov *ObservableVector2d) Clone() *ObservableVector2d {
	return AcquireObservable2d(ov.v.x, ov.v.y, ov.onUpdate)
}

// ToVector2d returns a pooled plain (non-observable) copy.
func (ov *ObservableVector2d) ToVector2d() *Vector2d {
	return Acquire2d(ov.v.x, ov.v.y)
}

// OnReset re-initializes a pooled instance. The argument list mirrors
// the constructor: x, y, onUpdate. The write is muted; the callback is
// rebound when one is supplied and is mandatory for an instance that
// never had one.
func (ov *ObservableVector2d) OnReset(args ...any) {
	ov.SetMuted(floatArg(args, 0, 0), floatArg(args, 1, 0))
	if cb, ok := callbackArg[OnUpdate2d](args, 2); ok {
		ov.onUpdate = cb
	}
	if ov.onUpdate == nil {
		panic(ErrNoCallback)
	}
}

// String renders the vector as "x:<x>,y:<y>".
func (ov *ObservableVector2d) String() string {
	return ov.v.String()
}
