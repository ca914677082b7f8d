package vector

import (
	"fmt"
	"math"

	"github.com/vexlab/vex/pkg/vmath"
)

// Vector3d is a mutable 3D vector. The zero value is the origin.
//
// Operations taking a Reader2d substitute the documented default when
// the argument has no z axis: 0 for add/sub/distance, 1 for
// scaleV/div/dot, the receiver's own z for Equals.
type Vector3d struct {
	x, y, z float64
}

// New3d creates a 3D vector. Prefer Acquire3d on hot paths so instances
// can be recycled through the pool.
func New3d(x, y, z float64) *Vector3d {
	return &Vector3d{x: x, y: y, z: z}
}

// X returns the x component.
func (v *Vector3d) X() float64 { return v.x }

// Y returns the y component.
func (v *Vector3d) Y() float64 { return v.y }

// Z returns the z component.
func (v *Vector3d) Z() float64 { return v.z }

// SetX sets the x component.
func (v *Vector3d) SetX(x float64) *Vector3d {
	v.x = x
	return v
}

// SetY sets the y component.
func (v *Vector3d) SetY(y float64) *Vector3d {
	v.y = y
	return v
}

// SetZ sets the z component.
func (v *Vector3d) SetZ(z float64) *Vector3d {
	v.z = z
	return v
}

// Set sets all three components.
func (v *Vector3d) Set(x, y, z float64) *Vector3d {
	v.x = x
	v.y = y
	v.z = z
	return v
}

// SetZero resets the vector to the origin.
func (v *Vector3d) SetZero() *Vector3d {
	return v.Set(0, 0, 0)
}

// SetV copies the components of o, z defaulting to 0.
func (v *Vector3d) SetV(o Reader2d) *Vector3d {
	return v.Set(o.X(), o.Y(), zOr(o, 0))
}

// Copy is an alias for SetV.
func (v *Vector3d) Copy(o Reader2d) *Vector3d {
	return v.SetV(o)
}

// Add adds o componentwise, a missing z counts as 0.
func (v *Vector3d) Add(o Reader2d) *Vector3d {
	return v.Set(v.x+o.X(), v.y+o.Y(), v.z+zOr(o, 0))
}

// Sub subtracts o componentwise, a missing z counts as 0.
func (v *Vector3d) Sub(o Reader2d) *Vector3d {
	return v.Set(v.x-o.X(), v.y-o.Y(), v.z-zOr(o, 0))
}

// Scale multiplies by x, optionally per-axis: Scale(s), Scale(sx, sy),
// Scale(sx, sy, sz). A missing y falls back to x; a missing z falls
// back to 1 so the z axis is untouched.
func (v *Vector3d) Scale(x float64, yz ...float64) *Vector3d {
	sy, sz := x, 1.0
	if len(yz) > 0 {
		sy = yz[0]
	}
	if len(yz) > 1 {
		sz = yz[1]
	}
	return v.Set(v.x*x, v.y*sy, v.z*sz)
}

// ScaleV multiplies componentwise by o; scaling by a 2D vector is a
// no-op on z (missing z counts as 1).
func (v *Vector3d) ScaleV(o Reader2d) *Vector3d {
	return v.Set(v.x*o.X(), v.y*o.Y(), v.z*zOr(o, 1))
}

// Div divides all components by n. n is not checked against zero.
func (v *Vector3d) Div(n float64) *Vector3d {
	return v.Set(v.x/n, v.y/n, v.z/n)
}

// AbsSelf replaces each component with its absolute value.
func (v *Vector3d) AbsSelf() *Vector3d {
	return v.Set(math.Abs(v.x), math.Abs(v.y), math.Abs(v.z))
}

// Abs returns a new vector holding the absolute value of each
// component.
func (v *Vector3d) Abs() *Vector3d {
	return v.Clone().AbsSelf()
}

// ClampSelf clamps each component independently into [low, high].
func (v *Vector3d) ClampSelf(low, high float64) *Vector3d {
	return v.Set(
		vmath.Clamp(v.x, low, high),
		vmath.Clamp(v.y, low, high),
		vmath.Clamp(v.z, low, high),
	)
}

// Clamp returns a new vector with each component clamped into
// [low, high].
func (v *Vector3d) Clamp(low, high float64) *Vector3d {
	return v.Clone().ClampSelf(low, high)
}

// MinV updates each component to the minimum of itself and o's, a
// missing z counts as 0.
func (v *Vector3d) MinV(o Reader2d) *Vector3d {
	return v.Set(math.Min(v.x, o.X()), math.Min(v.y, o.Y()), math.Min(v.z, zOr(o, 0)))
}

// MaxV updates each component to the maximum of itself and o's, a
// missing z counts as 0.
func (v *Vector3d) MaxV(o Reader2d) *Vector3d {
	return v.Set(math.Max(v.x, o.X()), math.Max(v.y, o.Y()), math.Max(v.z, zOr(o, 0)))
}

// FloorSelf floors each component.
func (v *Vector3d) FloorSelf() *Vector3d {
	return v.Set(math.Floor(v.x), math.Floor(v.y), math.Floor(v.z))
}

// Floor returns a new vector with each component floored.
func (v *Vector3d) Floor() *Vector3d {
	return v.Clone().FloorSelf()
}

// CeilSelf ceils each component.
func (v *Vector3d) CeilSelf() *Vector3d {
	return v.Set(math.Ceil(v.x), math.Ceil(v.y), math.Ceil(v.z))
}

// Ceil returns a new vector with each component ceiled.
func (v *Vector3d) Ceil() *Vector3d {
	return v.Clone().CeilSelf()
}

// NegateSelf negates all components.
func (v *Vector3d) NegateSelf() *Vector3d {
	return v.Set(-v.x, -v.y, -v.z)
}

// Negate returns a new negated vector.
func (v *Vector3d) Negate() *Vector3d {
	return v.Clone().NegateSelf()
}

// Equals reports exact componentwise equality. A 2D argument always
// matches on z: its missing z is read as the receiver's own.
func (v *Vector3d) Equals(o Reader2d) bool {
	return v.x == o.X() && v.y == o.Y() && v.z == zOr(o, v.z)
}

// Normalize scales the vector to unit length. A zero-length vector
// yields NaN components; that is the documented contract, not a bug.
func (v *Vector3d) Normalize() *Vector3d {
	return v.Div(v.Length())
}

// Perp rotates the xy components 90 degrees clockwise about the z axis,
// leaving z untouched.
func (v *Vector3d) Perp() *Vector3d {
	return v.Set(v.y, -v.x, v.z)
}

// Rotate rotates the xy components counter-clockwise by angle radians
// about the optional pivot (default origin). z is unchanged.
func (v *Vector3d) Rotate(angle float64, pivot ...Reader2d) *Vector3d {
	x, y := v.x, v.y
	var cx, cy float64
	if len(pivot) > 0 && pivot[0] != nil {
		cx, cy = pivot[0].X(), pivot[0].Y()
		x -= cx
		y -= cy
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return v.Set(x*c-y*s+cx, x*s+y*c+cy, v.z)
}

// Dot returns the dot product with o, a missing z counts as 1.
func (v *Vector3d) Dot(o Reader2d) float64 {
	return v.x*o.X() + v.y*o.Y() + v.z*zOr(o, 1)
}

// Cross replaces the vector with the right-hand-rule cross product
// with o.
func (v *Vector3d) Cross(o Reader3d) *Vector3d {
	ax, ay, az := v.x, v.y, v.z
	bx, by, bz := o.X(), o.Y(), o.Z()
	return v.Set(ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx)
}

// Length2 returns the squared magnitude.
func (v *Vector3d) Length2() float64 {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

// Length returns the magnitude.
func (v *Vector3d) Length() float64 {
	return math.Sqrt(v.Length2())
}

// Distance returns the Euclidean distance to o, a missing z counts
// as 0.
func (v *Vector3d) Distance(o Reader2d) float64 {
	dx, dy, dz := v.x-o.X(), v.y-o.Y(), v.z-zOr(o, 0)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp interpolates toward o by alpha. Alpha is expected in [0,1] but
// not clamped. A missing z on o counts as 0.
func (v *Vector3d) Lerp(o Reader2d, alpha float64) *Vector3d {
	oz := zOr(o, 0)
	return v.Set(
		v.x+(o.X()-v.x)*alpha,
		v.y+(o.Y()-v.y)*alpha,
		v.z+(oz-v.z)*alpha,
	)
}

// MoveTowards moves at most step toward target in the XY plane only,
// carrying z through unchanged. Snaps exactly onto target's x/y once
// within range (squared distance against step*step, only for a
// non-negative step). A negative step moves away.
func (v *Vector3d) MoveTowards(target Reader2d, step float64) *Vector3d {
	dx, dy := target.X()-v.x, target.Y()-v.y
	dist2 := dx*dx + dy*dy
	if dist2 == 0 || (step >= 0 && dist2 <= step*step) {
		return v.Set(target.X(), target.Y(), v.z)
	}
	angle := math.Atan2(dy, dx)
	return v.Set(v.x+math.Cos(angle)*step, v.y+math.Sin(angle)*step, v.z)
}

// Angle returns the unsigned angle to o in [0, pi]. The cosine is
// clamped into [-1,1] so floating-point overshoot cannot escape acos's
// domain. A missing z on o counts as 0 for o's magnitude.
func (v *Vector3d) Angle(o Reader2d) float64 {
	oz := zOr(o, 0)
	denom := v.Length() * math.Sqrt(o.X()*o.X()+o.Y()*o.Y()+oz*oz)
	return math.Acos(vmath.Clamp(v.Dot(o)/denom, -1, 1))
}

// Project replaces the vector with its projection onto o:
// v = o * (v.o / o.o). A zero-length o propagates NaN.
func (v *Vector3d) Project(o Reader3d) *Vector3d {
	ox, oy, oz := o.X(), o.Y(), o.Z()
	ratio := v.Dot(o) / (ox*ox + oy*oy + oz*oz)
	return v.Set(ox*ratio, oy*ratio, oz*ratio)
}

// ProjectN projects onto o, which must already be unit length.
func (v *Vector3d) ProjectN(o Reader3d) *Vector3d {
	amt := v.Dot(o)
	return v.Set(o.X()*amt, o.Y()*amt, o.Z()*amt)
}

// Clone returns a copy drawn from the pool.
func (v *Vector3d) Clone() *Vector3d {
	return Acquire3d(v.x, v.y, v.z)
}

// ToVector2d returns a pooled 2D vector holding the xy components.
func (v *Vector3d) ToVector2d() *Vector2d {
	return Acquire2d(v.x, v.y)
}

// OnReset re-initializes a pooled instance from constructor arguments,
// missing arguments default to 0.
func (v *Vector3d) OnReset(args ...any) {
	v.Set(floatArg(args, 0, 0), floatArg(args, 1, 0), floatArg(args, 2, 0))
}

// String renders the vector as "x:<x>,y:<y>,z:<z>".
func (v *Vector3d) String() string {
	return fmt.Sprintf("x:%v,y:%v,z:%v", v.x, v.y, v.z)
}
