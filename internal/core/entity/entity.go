package entity

import (
	"github.com/google/uuid"

	"github.com/vexlab/vex/pkg/vector"
)

// Entity is a positioned actor. Its position is an observable vector
// whose callback keeps the world-space bounds in sync with every
// coordinate write, no matter which code path performs it.
type Entity struct {
	guid string
	name string

	pos    *vector.ObservableVector3d
	body   *Body
	bounds Bounds
}

// New creates an entity at (x, y) with the given body. The body is
// mandatory; its shape set defines the entity's bounds.
func New(name string, x, y float64, body *Body) (*Entity, error) {
	if body == nil {
		return nil, ErrNoShape
	}
	e := &Entity{
		guid: uuid.New().String(),
		name: name,
		body: body,
	}
	pos, err := vector.NewObservable3d(x, y, 0, e.onPositionUpdate)
	if err != nil {
		return nil, err
	}
	e.pos = pos
	e.bounds = body.Bounds().Translate(x, y)
	return e, nil
}

// onPositionUpdate commits every attempted write and refreshes the
// world-space bounds from the committed coordinates.
func (e *Entity) onPositionUpdate(updated, _ vector.Point3d) *vector.Point3d {
	e.bounds = e.body.Bounds().Translate(updated.X, updated.Y)
	return nil
}

// GUID returns the entity's unique identifier.
func (e *Entity) GUID() string { return e.guid }

// Name returns the display name.
func (e *Entity) Name() string { return e.name }

// Position returns the observable position. All writes to it, single
// axis or batch, keep the bounds current.
func (e *Entity) Position() *vector.ObservableVector3d { return e.pos }

// Body returns the physics body.
func (e *Entity) Body() *Body { return e.body }

// Bounds returns the world-space bounding box.
func (e *Entity) Bounds() Bounds { return e.bounds }

// Overlaps reports whether the world-space bounds of two entities
// intersect.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.bounds.Overlaps(o.bounds)
}
