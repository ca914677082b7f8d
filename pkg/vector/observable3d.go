package vector

import "math"

// OnUpdate3d is the 3D counterpart of OnUpdate2d: invoked synchronously
// on every coordinate mutation attempt, nil return commits the
// attempted values, a non-nil point overrides them.
type OnUpdate3d func(updated, old Point3d) *Point3d

// ObservableVector3d is a 3D vector that funnels every coordinate
// mutation through its onUpdate callback before committing.
type ObservableVector3d struct {
	v        Vector3d
	onUpdate OnUpdate3d
}

// NewObservable3d creates an observable 3D vector. The construction is
// muted: the callback does not fire for the initial values. A nil
// callback is a construction error.
func NewObservable3d(x, y, z float64, onUpdate OnUpdate3d) (*ObservableVector3d, error) {
	if onUpdate == nil {
		return nil, ErrNoCallback
	}
	return &ObservableVector3d{v: Vector3d{x: x, y: y, z: z}, onUpdate: onUpdate}, nil
}

func (ov *ObservableVector3d) point() Point3d {
	return Point3d{X: ov.v.x, Y: ov.v.y, Z: ov.v.z}
}

// set is the batch mutation path used by every geometric method: one
// callback invocation, override honored all-or-nothing.
func (ov *ObservableVector3d) set(x, y, z float64) *ObservableVector3d {
	if r := ov.onUpdate(Point3d{X: x, Y: y, Z: z}, ov.point()); r != nil {
		ov.v.x, ov.v.y, ov.v.z = r.X, r.Y, r.Z
	} else {
		ov.v.x, ov.v.y, ov.v.z = x, y, z
	}
	return ov
}

// X returns the x component.
func (ov *ObservableVector3d) X() float64 { return ov.v.x }

// Y returns the y component.
func (ov *ObservableVector3d) Y() float64 { return ov.v.y }

// Z returns the z component.
func (ov *ObservableVector3d) Z() float64 { return ov.v.z }

// SetX writes the x component through the per-axis path: the callback
// sees the full attempted/old context, but only x is committed, from
// the override when one is returned.
func (ov *ObservableVector3d) SetX(x float64) *ObservableVector3d {
	if r := ov.onUpdate(Point3d{X: x, Y: ov.v.y, Z: ov.v.z}, ov.point()); r != nil {
		ov.v.x = r.X
	} else {
		ov.v.x = x
	}
	return ov
}

// SetY writes the y component through the per-axis path.
func (ov *ObservableVector3d) SetY(y float64) *ObservableVector3d {
	if r := ov.onUpdate(Point3d{X: ov.v.x, Y: y, Z: ov.v.z}, ov.point()); r != nil {
		ov.v.y = r.Y
	} else {
		ov.v.y = y
	}
	return ov
}

// SetZ writes the z component through the per-axis path.
func (ov *ObservableVector3d) SetZ(z float64) *ObservableVector3d {
	if r := ov.onUpdate(Point3d{X: ov.v.x, Y: ov.v.y, Z: z}, ov.point()); r != nil {
		ov.v.z = r.Z
	} else {
		ov.v.z = z
	}
	return ov
}

// Set writes all components through the batch path.
func (ov *ObservableVector3d) Set(x, y, z float64) *ObservableVector3d {
	return ov.set(x, y, z)
}

// SetZero resets to the origin through the batch path.
func (ov *ObservableVector3d) SetZero() *ObservableVector3d {
	return ov.set(0, 0, 0)
}

// SetV copies o through the batch path, a missing z counts as 0.
func (ov *ObservableVector3d) SetV(o Reader2d) *ObservableVector3d {
	return ov.set(o.X(), o.Y(), zOr(o, 0))
}

// SetMuted writes all components without notifying the callback.
func (ov *ObservableVector3d) SetMuted(x, y, z float64) *ObservableVector3d {
	ov.v.x, ov.v.y, ov.v.z = x, y, z
	return ov
}

// SetOnUpdate replaces the callback. The callback can never be
// removed, only replaced; a nil value is rejected.
func (ov *ObservableVector3d) SetOnUpdate(onUpdate OnUpdate3d) error {
	if onUpdate == nil {
		return ErrNoCallback
	}
	ov.onUpdate = onUpdate
	return nil
}

// OnUpdate returns the bound callback.
func (ov *ObservableVector3d) OnUpdate() OnUpdate3d {
	return ov.onUpdate
}

// apply runs a plain-vector mutation on a scratch copy and commits the
// result through the batch path, so each method costs exactly one
// callback invocation.
func (ov *ObservableVector3d) apply(mutate func(*Vector3d)) *ObservableVector3d {
	tmp := ov.v
	mutate(&tmp)
	return ov.set(tmp.x, tmp.y, tmp.z)
}

// Add adds o componentwise, a missing z counts as 0.
func (ov *ObservableVector3d) Add(o Reader2d) *ObservableVector3d {
	return ov.set(ov.v.x+o.X(), ov.v.y+o.Y(), ov.v.z+zOr(o, 0))
}

// Sub subtracts o componentwise, a missing z counts as 0.
func (ov *ObservableVector3d) Sub(o Reader2d) *ObservableVector3d {
	return ov.set(ov.v.x-o.X(), ov.v.y-o.Y(), ov.v.z-zOr(o, 0))
}

// Scale multiplies per-axis, y defaulting to x and z to 1.
func (ov *ObservableVector3d) Scale(x float64, yz ...float64) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.Scale(x, yz...) })
}

// ScaleV multiplies componentwise by o, a missing z counts as 1.
func (ov *ObservableVector3d) ScaleV(o Reader2d) *ObservableVector3d {
	return ov.set(ov.v.x*o.X(), ov.v.y*o.Y(), ov.v.z*zOr(o, 1))
}

// Div divides all components by n.
func (ov *ObservableVector3d) Div(n float64) *ObservableVector3d {
	return ov.set(ov.v.x/n, ov.v.y/n, ov.v.z/n)
}

// AbsSelf replaces each component with its absolute value.
func (ov *ObservableVector3d) AbsSelf() *ObservableVector3d {
	return ov.set(math.Abs(ov.v.x), math.Abs(ov.v.y), math.Abs(ov.v.z))
}

// Abs returns a new observable vector, sharing the callback, holding
// the absolute value of each component.
func (ov *ObservableVector3d) Abs() *ObservableVector3d {
	return AcquireObservable3d(math.Abs(ov.v.x), math.Abs(ov.v.y), math.Abs(ov.v.z), ov.onUpdate)
}

// ClampSelf clamps each component into [low, high] via the batch path.
func (ov *ObservableVector3d) ClampSelf(low, high float64) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.ClampSelf(low, high) })
}

// Clamp returns a new observable vector, sharing the callback, with
// each component clamped into [low, high].
func (ov *ObservableVector3d) Clamp(low, high float64) *ObservableVector3d {
	tmp := ov.v
	tmp.ClampSelf(low, high)
	return AcquireObservable3d(tmp.x, tmp.y, tmp.z, ov.onUpdate)
}

// MinV updates each component to the minimum of itself and o's.
func (ov *ObservableVector3d) MinV(o Reader2d) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.MinV(o) })
}

// MaxV updates each component to the maximum of itself and o's.
func (ov *ObservableVector3d) MaxV(o Reader2d) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.MaxV(o) })
}

// FloorSelf floors each component via the batch path.
func (ov *ObservableVector3d) FloorSelf() *ObservableVector3d {
	return ov.set(math.Floor(ov.v.x), math.Floor(ov.v.y), math.Floor(ov.v.z))
}

// Floor returns a new observable vector, sharing the callback, with
// each component floored.
func (ov *ObservableVector3d) Floor() *ObservableVector3d {
	return AcquireObservable3d(math.Floor(ov.v.x), math.Floor(ov.v.y), math.Floor(ov.v.z), ov.onUpdate)
}

// CeilSelf ceils each component via the batch path.
func (ov *ObservableVector3d) CeilSelf() *ObservableVector3d {
	return ov.set(math.Ceil(ov.v.x), math.Ceil(ov.v.y), math.Ceil(ov.v.z))
}

// Ceil returns a new observable vector, sharing the callback, with
// each component ceiled.
func (ov *ObservableVector3d) Ceil() *ObservableVector3d {
	return AcquireObservable3d(math.Ceil(ov.v.x), math.Ceil(ov.v.y), math.Ceil(ov.v.z), ov.onUpdate)
}

// NegateSelf negates all components via the batch path.
func (ov *ObservableVector3d) NegateSelf() *ObservableVector3d {
	return ov.set(-ov.v.x, -ov.v.y, -ov.v.z)
}

// Negate returns a new negated observable vector sharing the callback.
func (ov *ObservableVector3d) Negate() *ObservableVector3d {
	return AcquireObservable3d(-ov.v.x, -ov.v.y, -ov.v.z, ov.onUpdate)
}

// Copy copies o through the batch path, a missing z counts as 0.
func (ov *ObservableVector3d) Copy(o Reader2d) *ObservableVector3d {
	return ov.SetV(o)
}

// Equals reports exact componentwise equality; a 2D argument always
// matches on z.
func (ov *ObservableVector3d) Equals(o Reader2d) bool {
	return ov.v.Equals(o)
}

// Normalize scales to unit length via the batch path.
func (ov *ObservableVector3d) Normalize() *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.Normalize() })
}

// Perp rotates the xy components 90 degrees clockwise via the batch
// path, z unchanged.
func (ov *ObservableVector3d) Perp() *ObservableVector3d {
	return ov.set(ov.v.y, -ov.v.x, ov.v.z)
}

// Rotate rotates the xy components counter-clockwise by angle radians
// about the optional pivot via the batch path, z unchanged.
func (ov *ObservableVector3d) Rotate(angle float64, pivot ...Reader2d) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.Rotate(angle, pivot...) })
}

// Dot returns the dot product with o, a missing z counts as 1.
func (ov *ObservableVector3d) Dot(o Reader2d) float64 {
	return ov.v.Dot(o)
}

// Cross replaces the vector with the cross product via the batch path.
func (ov *ObservableVector3d) Cross(o Reader3d) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.Cross(o) })
}

// Length2 returns the squared magnitude.
func (ov *ObservableVector3d) Length2() float64 {
	return ov.v.Length2()
}

// Length returns the magnitude.
func (ov *ObservableVector3d) Length() float64 {
	return ov.v.Length()
}

// Distance returns the Euclidean distance to o.
func (ov *ObservableVector3d) Distance(o Reader2d) float64 {
	return ov.v.Distance(o)
}

// Lerp interpolates toward o by alpha via the batch path.
func (ov *ObservableVector3d) Lerp(o Reader2d, alpha float64) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.Lerp(o, alpha) })
}

// MoveTowards moves at most step toward target in the XY plane via the
// batch path, z carried through.
func (ov *ObservableVector3d) MoveTowards(target Reader2d, step float64) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.MoveTowards(target, step) })
}

// Angle returns the unsigned angle to o in [0, pi].
func (ov *ObservableVector3d) Angle(o Reader2d) float64 {
	return ov.v.Angle(o)
}

// Project projects onto o via the batch path.
func (ov *ObservableVector3d) Project(o Reader3d) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.Project(o) })
}

// ProjectN projects onto unit-length o via the batch path.
func (ov *ObservableVector3d) ProjectN(o Reader3d) *ObservableVector3d {
	return ov.apply(func(v *Vector3d) { v.ProjectN(o) })
}

// Clone returns a pooled copy bound to the same callback.
func (ov *ObservableVector3d) Clone() *ObservableVector3d {
	return AcquireObservable3d(ov.v.x, ov.v.y, ov.v.z, ov.onUpdate)
}

// ToVector3d returns a pooled plain (non-observable) copy.
func (ov *ObservableVector3d) ToVector3d() *Vector3d {
	return Acquire3d(ov.v.x, ov.v.y, ov.v.z)
}

// ToVector2d returns a pooled plain 2D vector holding the xy
// components.
func (ov *ObservableVector3d) ToVector2d() *Vector2d {
	return Acquire2d(ov.v.x, ov.v.y)
}

// OnReset re-initializes a pooled instance. The argument list mirrors
// the constructor: x, y, z, onUpdate. The write is muted; the callback
// is rebound when one is supplied and is mandatory for an instance that
// never had one.
func (ov *ObservableVector3d) OnReset(args ...any) {
	ov.SetMuted(floatArg(args, 0, 0), floatArg(args, 1, 0), floatArg(args, 2, 0))
	if cb, ok := callbackArg[OnUpdate3d](args, 3); ok {
		ov.onUpdate = cb
	}
	if ov.onUpdate == nil {
		panic(ErrNoCallback)
	}
}

// String renders the vector as "x:<x>,y:<y>,z:<z>".
func (ov *ObservableVector3d) String() string {
	return ov.v.String()
}
