// Package world holds the live entity set and drives the fixed-step
// simulation: velocity integration, collision sweep, event publishing.
package world

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/vexlab/vex/internal/core/entity"
	"github.com/vexlab/vex/internal/core/events/bus"
	"github.com/vexlab/vex/internal/core/observability/log"
	"github.com/vexlab/vex/pkg/vector"
)

// Collision describes one overlapping entity pair for a tick.
type Collision struct {
	A, B string // entity GUIDs
}

// Snapshot is the wire-friendly view of one entity, consumed by the
// inspector stream.
type Snapshot struct {
	GUID string  `json:"guid"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	VelX float64 `json:"vel_x"`
	VelY float64 `json:"vel_y"`
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// shard is one slice of the entity store. The store is sharded by GUID
// hash so lookups and iteration stay cheap as the population grows.
type shard struct {
	mu       sync.RWMutex
	entities map[string]*entity.Entity
}

// World is the engine's entity container and simulation driver.
type World struct {
	shards  []*shard
	bus     *bus.Bus
	log     *log.Logger
	gravity float64
}

// New creates a world with the given shard count.
func New(shards int, gravity float64, b *bus.Bus, logger *log.Logger) *World {
	if shards <= 0 {
		shards = 1
	}
	w := &World{
		shards:  make([]*shard, shards),
		bus:     b,
		log:     logger,
		gravity: gravity,
	}
	for i := range w.shards {
		w.shards[i] = &shard{entities: make(map[string]*entity.Entity)}
	}
	return w
}

// Bus returns the world's event bus.
func (w *World) Bus() *bus.Bus { return w.bus }

func (w *World) shardFor(guid string) *shard {
	return w.shards[xxhash.Sum64String(guid)%uint64(len(w.shards))]
}

// Spawn adds an entity and publishes world.spawn.
func (w *World) Spawn(e *entity.Entity) {
	s := w.shardFor(e.GUID())
	s.mu.Lock()
	s.entities[e.GUID()] = e
	s.mu.Unlock()

	w.log.Debug("entity spawned",
		log.String("guid", e.GUID()),
		log.String("name", e.Name()),
	)
	w.bus.Publish(bus.EventWorldSpawn, e.GUID(), e)
}

// Despawn removes an entity, releasing its body's pooled vectors, and
// publishes world.despawn.
func (w *World) Despawn(guid string) error {
	s := w.shardFor(guid)
	s.mu.Lock()
	e, ok := s.entities[guid]
	if ok {
		delete(s.entities, guid)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("world: no entity with guid %q", guid)
	}

	w.bus.Publish(bus.EventWorldDespawn, guid, e)
	e.Body().Release()
	return nil
}

// Get looks an entity up by GUID.
func (w *World) Get(guid string) (*entity.Entity, bool) {
	s := w.shardFor(guid)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entities[guid]
	return e, ok
}

// Count returns the live entity count.
func (w *World) Count() int {
	n := 0
	for _, s := range w.shards {
		s.mu.RLock()
		n += len(s.entities)
		s.mu.RUnlock()
	}
	return n
}

// Each calls fn for every live entity. Iteration order is undefined.
func (w *World) Each(fn func(*entity.Entity)) {
	for _, s := range w.shards {
		s.mu.RLock()
		for _, e := range s.entities {
			fn(e)
		}
		s.mu.RUnlock()
	}
}

// eachLocked calls fn for every live entity while holding each shard's
// write lock. Mutating passes use this so concurrent readers such as
// Snapshots never observe a half-written entity.
func (w *World) eachLocked(fn func(*entity.Entity)) {
	for _, s := range w.shards {
		s.mu.Lock()
		for _, e := range s.entities {
			fn(e)
		}
		s.mu.Unlock()
	}
}

// Update advances the simulation by dt seconds: every body integrates
// its forces, positions move through the observable batch path (so
// bounds stay current), then an AABB sweep publishes collisions.
// Entity state is written under the shard write locks; moved events
// publish after the locks drop so handlers may call back into the
// world.
func (w *World) Update(dt float64) []Collision {
	step := vector.Acquire3d(0, 0, 0)
	defer vector.Release3d(step)

	var moved []*entity.Entity
	w.eachLocked(func(e *entity.Entity) {
		vel := e.Body().Update(dt, w.gravity)
		if vel.X() == 0 && vel.Y() == 0 {
			return
		}
		step.Set(vel.X()*dt, vel.Y()*dt, 0)
		e.Position().Add(step)
		moved = append(moved, e)
	})
	for _, e := range moved {
		w.bus.Publish(bus.EventEntityMoved, e.GUID(), e)
	}

	collisions := w.sweep()
	for _, c := range collisions {
		w.bus.Publish(bus.EventEntityCollision, c.A, c)
	}
	return collisions
}

// sweep runs a naive pairwise AABB test over the live set.
func (w *World) sweep() []Collision {
	all := make([]*entity.Entity, 0, w.Count())
	w.Each(func(e *entity.Entity) { all = append(all, e) })

	var out []Collision
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[i].Overlaps(all[j]) {
				out = append(out, Collision{A: all[i].GUID(), B: all[j].GUID()})
			}
		}
	}
	return out
}

// Snapshots appends the view of every live entity to dst and returns
// it. dst may be nil or a recycled slice.
func (w *World) Snapshots(dst []Snapshot) []Snapshot {
	w.Each(func(e *entity.Entity) {
		pos := e.Position()
		b := e.Bounds()
		vel := e.Body().Velocity()
		dst = append(dst, Snapshot{
			GUID: e.GUID(),
			Name: e.Name(),
			X:    pos.X(),
			Y:    pos.Y(),
			Z:    pos.Z(),
			VelX: vel.X(),
			VelY: vel.Y(),
			MinX: b.MinX,
			MinY: b.MinY,
			MaxX: b.MaxX,
			MaxY: b.MaxY,
		})
	})
	return dst
}
