package entity

import (
	"github.com/vexlab/vex/pkg/vector"
)

// Body is an entity's physics state: collision shapes plus the
// velocity and force accumulators integrated every tick.
type Body struct {
	shapes []Shape
	bounds Bounds

	vel      *vector.Vector2d
	force    *vector.Vector2d
	maxVel   *vector.Vector2d
	friction *vector.Vector2d

	// GravityScale weights the world gravity; 0 pins the body.
	GravityScale float64
}

// NewBody creates a body from at least one shape.
func NewBody(shapes ...Shape) (*Body, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShape
	}
	b := &Body{
		shapes:       shapes,
		vel:          vector.Acquire2d(0, 0),
		force:        vector.Acquire2d(0, 0),
		maxVel:       vector.Acquire2d(490, 490),
		friction:     vector.Acquire2d(0, 0),
		GravityScale: 1,
	}
	b.recalcBounds()
	return b, nil
}

// AddShape appends a shape and grows the bounds.
func (b *Body) AddShape(s Shape) {
	b.shapes = append(b.shapes, s)
	b.bounds = b.bounds.union(s.Bounds())
}

// Shapes returns the collision shapes.
func (b *Body) Shapes() []Shape { return b.shapes }

// Bounds returns the body-space bounding box covering every shape.
func (b *Body) Bounds() Bounds { return b.bounds }

// Velocity returns the velocity accumulator, in units per second.
func (b *Body) Velocity() *vector.Vector2d { return b.vel }

// Force returns the force accumulator, consumed each tick.
func (b *Body) Force() *vector.Vector2d { return b.force }

// SetMaxVelocity caps the per-axis velocity magnitude.
func (b *Body) SetMaxVelocity(x, y float64) {
	b.maxVel.Set(x, y)
}

// SetFriction sets the per-axis velocity decay applied each tick.
func (b *Body) SetFriction(x, y float64) {
	b.friction.Set(x, y)
}

// Update integrates force and gravity into velocity for a tick of dt
// seconds, applies friction and the per-axis cap, then zeroes the
// force accumulator. It returns the velocity.
func (b *Body) Update(dt, gravity float64) *vector.Vector2d {
	b.vel.Add(b.force)
	b.vel.SetY(b.vel.Y() + gravity*b.GravityScale*dt)

	if fx := b.friction.X(); fx > 0 {
		b.vel.SetX(decay(b.vel.X(), fx*dt))
	}
	if fy := b.friction.Y(); fy > 0 {
		b.vel.SetY(decay(b.vel.Y(), fy*dt))
	}

	b.vel.Set(
		clampAxis(b.vel.X(), b.maxVel.X()),
		clampAxis(b.vel.Y(), b.maxVel.Y()),
	)
	b.force.SetZero()
	return b.vel
}

// Release returns the body's pooled vectors. The body must not be used
// afterwards.
func (b *Body) Release() {
	vector.Release2d(b.vel)
	vector.Release2d(b.force)
	vector.Release2d(b.maxVel)
	vector.Release2d(b.friction)
	b.vel, b.force, b.maxVel, b.friction = nil, nil, nil, nil
}

func (b *Body) recalcBounds() {
	bounds := b.shapes[0].Bounds()
	for _, s := range b.shapes[1:] {
		bounds = bounds.union(s.Bounds())
	}
	b.bounds = bounds
}

// decay moves v toward zero by amount, stopping at zero.
func decay(v, amount float64) float64 {
	switch {
	case v > amount:
		return v - amount
	case v < -amount:
		return v + amount
	default:
		return 0
	}
}

// clampAxis limits v to [-max, max].
func clampAxis(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
