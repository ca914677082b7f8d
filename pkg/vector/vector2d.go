package vector

import (
	"fmt"
	"math"

	"github.com/vexlab/vex/pkg/vmath"
)

// Vector2d is a mutable 2D vector. The zero value is the origin.
type Vector2d struct {
	x, y float64
}

// New2d creates a 2D vector. Prefer Acquire2d on hot paths so instances
// can be recycled through the pool.
func New2d(x, y float64) *Vector2d {
	return &Vector2d{x: x, y: y}
}

// X returns the x component.
func (v *Vector2d) X() float64 { return v.x }

// Y returns the y component.
func (v *Vector2d) Y() float64 { return v.y }

// SetX sets the x component.
func (v *Vector2d) SetX(x float64) *Vector2d {
	v.x = x
	return v
}

// SetY sets the y component.
func (v *Vector2d) SetY(y float64) *Vector2d {
	v.y = y
	return v
}

// Set sets both components.
func (v *Vector2d) Set(x, y float64) *Vector2d {
	v.x = x
	v.y = y
	return v
}

// SetZero resets the vector to the origin.
func (v *Vector2d) SetZero() *Vector2d {
	return v.Set(0, 0)
}

// SetV copies the components of o.
func (v *Vector2d) SetV(o Reader2d) *Vector2d {
	return v.Set(o.X(), o.Y())
}

// Copy is an alias for SetV kept for parity with the 3D type.
func (v *Vector2d) Copy(o Reader2d) *Vector2d {
	return v.SetV(o)
}

// Add adds o componentwise.
func (v *Vector2d) Add(o Reader2d) *Vector2d {
	return v.Set(v.x+o.X(), v.y+o.Y())
}

// Sub subtracts o componentwise.
func (v *Vector2d) Sub(o Reader2d) *Vector2d {
	return v.Set(v.x-o.X(), v.y-o.Y())
}

// Scale multiplies by x, and by y on the y axis when given, otherwise
// uniformly by x.
func (v *Vector2d) Scale(x float64, y ...float64) *Vector2d {
	sy := x
	if len(y) > 0 {
		sy = y[0]
	}
	return v.Set(v.x*x, v.y*sy)
}

// ScaleV multiplies componentwise by o.
func (v *Vector2d) ScaleV(o Reader2d) *Vector2d {
	return v.Set(v.x*o.X(), v.y*o.Y())
}

// Div divides both components by n. n is not checked against zero.
func (v *Vector2d) Div(n float64) *Vector2d {
	return v.Set(v.x/n, v.y/n)
}

// AbsSelf replaces each component with its absolute value.
func (v *Vector2d) AbsSelf() *Vector2d {
	return v.Set(math.Abs(v.x), math.Abs(v.y))
}

// Abs returns a new vector holding the absolute value of each
// component.
func (v *Vector2d) Abs() *Vector2d {
	return v.Clone().AbsSelf()
}

// ClampSelf clamps each component independently into [low, high].
func (v *Vector2d) ClampSelf(low, high float64) *Vector2d {
	return v.Set(vmath.Clamp(v.x, low, high), vmath.Clamp(v.y, low, high))
}

// Clamp returns a new vector with each component clamped into
// [low, high].
func (v *Vector2d) Clamp(low, high float64) *Vector2d {
	return v.Clone().ClampSelf(low, high)
}

// MinV updates each component to the minimum of itself and o's.
func (v *Vector2d) MinV(o Reader2d) *Vector2d {
	return v.Set(math.Min(v.x, o.X()), math.Min(v.y, o.Y()))
}

// MaxV updates each component to the maximum of itself and o's.
func (v *Vector2d) MaxV(o Reader2d) *Vector2d {
	return v.Set(math.Max(v.x, o.X()), math.Max(v.y, o.Y()))
}

// FloorSelf floors each component.
func (v *Vector2d) FloorSelf() *Vector2d {
	return v.Set(math.Floor(v.x), math.Floor(v.y))
}

// Floor returns a new vector with each component floored.
func (v *Vector2d) Floor() *Vector2d {
	return v.Clone().FloorSelf()
}

// CeilSelf ceils each component.
func (v *Vector2d) CeilSelf() *Vector2d {
	return v.Set(math.Ceil(v.x), math.Ceil(v.y))
}

// Ceil returns a new vector with each component ceiled.
func (v *Vector2d) Ceil() *Vector2d {
	return v.Clone().CeilSelf()
}

// NegateSelf negates both components.
func (v *Vector2d) NegateSelf() *Vector2d {
	return v.Set(-v.x, -v.y)
}

// Negate returns a new negated vector.
func (v *Vector2d) Negate() *Vector2d {
	return v.Clone().NegateSelf()
}

// Equals reports exact componentwise equality.
func (v *Vector2d) Equals(o Reader2d) bool {
	return v.x == o.X() && v.y == o.Y()
}

// Normalize scales the vector to unit length. A zero-length vector
// yields NaN components; that is the documented contract, not a bug.
func (v *Vector2d) Normalize() *Vector2d {
	return v.Div(v.Length())
}

// Perp rotates the vector 90 degrees clockwise: (x,y) -> (y,-x).
func (v *Vector2d) Perp() *Vector2d {
	return v.Set(v.y, -v.x)
}

// Rotate rotates the vector counter-clockwise by angle radians about
// the optional pivot (default origin).
func (v *Vector2d) Rotate(angle float64, pivot ...Reader2d) *Vector2d {
	x, y := v.x, v.y
	var cx, cy float64
	if len(pivot) > 0 && pivot[0] != nil {
		cx, cy = pivot[0].X(), pivot[0].Y()
		x -= cx
		y -= cy
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return v.Set(x*c-y*s+cx, x*s+y*c+cy)
}

// Dot returns the dot product with o.
func (v *Vector2d) Dot(o Reader2d) float64 {
	return v.x*o.X() + v.y*o.Y()
}

// Length2 returns the squared magnitude.
func (v *Vector2d) Length2() float64 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v *Vector2d) Length() float64 {
	return math.Sqrt(v.Length2())
}

// Distance returns the Euclidean distance to o.
func (v *Vector2d) Distance(o Reader2d) float64 {
	dx, dy := v.x-o.X(), v.y-o.Y()
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp interpolates toward o by alpha. Alpha is expected in [0,1] but
// not clamped.
func (v *Vector2d) Lerp(o Reader2d, alpha float64) *Vector2d {
	return v.Set(v.x+(o.X()-v.x)*alpha, v.y+(o.Y()-v.y)*alpha)
}

// MoveTowards moves at most step toward target, snapping exactly onto
// it once within range (squared distance against step*step, only for a
// non-negative step). A negative step moves away from target.
func (v *Vector2d) MoveTowards(target Reader2d, step float64) *Vector2d {
	dx, dy := target.X()-v.x, target.Y()-v.y
	dist2 := dx*dx + dy*dy
	if dist2 == 0 || (step >= 0 && dist2 <= step*step) {
		return v.Set(target.X(), target.Y())
	}
	angle := math.Atan2(dy, dx)
	return v.Set(v.x+math.Cos(angle)*step, v.y+math.Sin(angle)*step)
}

// Angle returns the unsigned angle to o in [0, pi]. The cosine is
// clamped into [-1,1] so floating-point overshoot cannot escape acos's
// domain.
func (v *Vector2d) Angle(o Reader2d) float64 {
	denom := math.Sqrt(v.Length2() * (o.X()*o.X() + o.Y()*o.Y()))
	return math.Acos(vmath.Clamp(v.Dot(o)/denom, -1, 1))
}

// Project replaces the vector with its projection onto o:
// v = o * (v.o / o.o). A zero-length o propagates NaN.
func (v *Vector2d) Project(o Reader2d) *Vector2d {
	ratio := v.Dot(o) / (o.X()*o.X() + o.Y()*o.Y())
	return v.Set(o.X()*ratio, o.Y()*ratio)
}

// ProjectN projects onto o, which must already be unit length.
func (v *Vector2d) ProjectN(o Reader2d) *Vector2d {
	amt := v.Dot(o)
	return v.Set(o.X()*amt, o.Y()*amt)
}

// Clone returns a copy drawn from the pool.
func (v *Vector2d) Clone() *Vector2d {
	return Acquire2d(v.x, v.y)
}

// OnReset re-initializes a pooled instance from constructor arguments,
// missing arguments default to 0.
func (v *Vector2d) OnReset(args ...any) {
	v.Set(floatArg(args, 0, 0), floatArg(args, 1, 0))
}

// String renders the vector as "x:<x>,y:<y>".
func (v *Vector2d) String() string {
	return fmt.Sprintf("x:%v,y:%v", v.x, v.y)
}
