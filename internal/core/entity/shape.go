// Package entity implements the engine's actor layer: entities own an
// observable position and a physics body; the body owns collision
// shapes and derives its axis-aligned bounds from them.
package entity

import (
	"errors"
	"fmt"
)

// ErrNoShape is returned when a body is built without any shape.
var ErrNoShape = errors.New("entity: body requires at least one shape")

// Bounds is an axis-aligned bounding box in the coordinate space of
// its owner.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Translate returns the bounds shifted by (dx, dy).
func (b Bounds) Translate(dx, dy float64) Bounds {
	return Bounds{
		MinX: b.MinX + dx,
		MinY: b.MinY + dy,
		MaxX: b.MaxX + dx,
		MaxY: b.MaxY + dy,
	}
}

// Overlaps reports whether two boxes intersect. Touching edges count
// as overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// union grows b to contain o.
func (b Bounds) union(o Bounds) Bounds {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// Shape is a collision shape positioned relative to its body's origin.
type Shape interface {
	// Bounds returns the shape's axis-aligned box in body space.
	Bounds() Bounds
}

// Rect is a rectangle collision shape.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle shape. Width and height are mandatory
// and must be positive.
func NewRect(x, y, w, h float64) (*Rect, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("entity: rect shape requires positive dimensions, got %vx%v", w, h)
	}
	return &Rect{X: x, Y: y, W: w, H: h}, nil
}

// Bounds implements Shape.
func (r *Rect) Bounds() Bounds {
	return Bounds{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}
}

// Circle is a circle collision shape centered at (X, Y).
type Circle struct {
	X, Y, R float64
}

// NewCircle creates a circle shape. The radius is mandatory and must
// be positive.
func NewCircle(x, y, r float64) (*Circle, error) {
	if r <= 0 {
		return nil, fmt.Errorf("entity: circle shape requires a positive radius, got %v", r)
	}
	return &Circle{X: x, Y: y, R: r}, nil
}

// Bounds implements Shape.
func (c *Circle) Bounds() Bounds {
	return Bounds{MinX: c.X - c.R, MinY: c.Y - c.R, MaxX: c.X + c.R, MaxY: c.Y + c.R}
}
