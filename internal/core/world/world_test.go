package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlab/vex/internal/core/entity"
	"github.com/vexlab/vex/internal/core/events/bus"
	"github.com/vexlab/vex/internal/core/observability/log"
)

func newTestWorld(t *testing.T, gravity float64) *World {
	t.Helper()
	return New(8, gravity, bus.New(), log.Nop())
}

func spawnBox(t *testing.T, w *World, name string, x, y, size float64) *entity.Entity {
	t.Helper()
	r, err := entity.NewRect(0, 0, size, size)
	require.NoError(t, err)
	body, err := entity.NewBody(r)
	require.NoError(t, err)
	e, err := entity.New(name, x, y, body)
	require.NoError(t, err)
	w.Spawn(e)
	return e
}

func TestSpawnGetDespawn(t *testing.T) {
	w := newTestWorld(t, 0)

	spawned := 0
	w.Bus().Subscribe(bus.EventWorldSpawn, func(bus.Event) { spawned++ })

	e := spawnBox(t, w, "crate", 0, 0, 10)
	require.Equal(t, 1, spawned)
	require.Equal(t, 1, w.Count())

	got, ok := w.Get(e.GUID())
	require.True(t, ok)
	require.Same(t, e, got)

	require.NoError(t, w.Despawn(e.GUID()))
	require.Zero(t, w.Count())
	_, ok = w.Get(e.GUID())
	require.False(t, ok)

	require.Error(t, w.Despawn(e.GUID()))
}

func TestShardingDistributesButFindsEverything(t *testing.T) {
	w := newTestWorld(t, 0)
	var guids []string
	for i := 0; i < 64; i++ {
		e := spawnBox(t, w, "n", float64(i)*100, 0, 1)
		guids = append(guids, e.GUID())
	}
	require.Equal(t, 64, w.Count())
	for _, g := range guids {
		_, ok := w.Get(g)
		require.True(t, ok)
	}

	seen := map[string]bool{}
	w.Each(func(e *entity.Entity) { seen[e.GUID()] = true })
	require.Len(t, seen, 64)
}

func TestUpdateMovesEntitiesAndKeepsBounds(t *testing.T) {
	w := newTestWorld(t, 0)
	e := spawnBox(t, w, "mover", 0, 0, 10)
	e.Body().Velocity().Set(10, 20)

	moved := 0
	w.Bus().Subscribe(bus.EventEntityMoved, func(bus.Event) { moved++ })

	w.Update(0.5)
	require.InDelta(t, 5.0, e.Position().X(), 1e-9)
	require.InDelta(t, 10.0, e.Position().Y(), 1e-9)
	// Bounds tracked the observable write.
	require.InDelta(t, 5.0, e.Bounds().MinX, 1e-9)
	require.InDelta(t, 10.0, e.Bounds().MinY, 1e-9)
	require.Equal(t, 1, moved)
}

func TestUpdateSkipsIdleEntities(t *testing.T) {
	w := newTestWorld(t, 0)
	spawnBox(t, w, "idle", 0, 0, 10)

	moved := 0
	w.Bus().Subscribe(bus.EventEntityMoved, func(bus.Event) { moved++ })
	w.Update(1.0)
	require.Zero(t, moved)
}

func TestGravityPullsBodiesDown(t *testing.T) {
	w := newTestWorld(t, 9.8)
	e := spawnBox(t, w, "faller", 0, 0, 1)

	w.Update(1.0)
	require.Greater(t, e.Position().Y(), 0.0)
}

func TestUpdateReportsCollisions(t *testing.T) {
	w := newTestWorld(t, 0)
	a := spawnBox(t, w, "a", 0, 0, 10)
	b := spawnBox(t, w, "b", 5, 5, 10)
	spawnBox(t, w, "far", 1000, 1000, 10)

	var events []bus.Event
	w.Bus().Subscribe(bus.EventEntityCollision, func(ev bus.Event) { events = append(events, ev) })

	collisions := w.Update(1.0)
	require.Len(t, collisions, 1)
	require.Len(t, events, 1)

	pair := map[string]bool{collisions[0].A: true, collisions[0].B: true}
	require.True(t, pair[a.GUID()])
	require.True(t, pair[b.GUID()])
}

func TestSnapshotsCoverLiveSet(t *testing.T) {
	w := newTestWorld(t, 0)
	e := spawnBox(t, w, "crate", 3, 4, 10)
	e.Body().Velocity().Set(1, 2)

	snaps := w.Snapshots(nil)
	require.Len(t, snaps, 1)
	require.Equal(t, e.GUID(), snaps[0].GUID)
	require.Equal(t, 3.0, snaps[0].X)
	require.Equal(t, 4.0, snaps[0].Y)
	require.Equal(t, 1.0, snaps[0].VelX)
	require.Equal(t, 13.0, snaps[0].MaxX)

	// Append semantics for recycled slices.
	again := w.Snapshots(snaps[:0])
	require.Len(t, again, 1)
}

func TestSnapshotsSafeDuringUpdates(t *testing.T) {
	w := newTestWorld(t, 0)
	for i := 0; i < 16; i++ {
		e := spawnBox(t, w, "mover", float64(i)*20, 0, 10)
		e.Body().Velocity().Set(5, 5)
	}

	// The inspector streams snapshots from its own goroutine while the
	// game loop keeps ticking. Run both hot; the race detector flags
	// any unsynchronized entity access.
	done := make(chan struct{})
	go func() {
		defer close(done)
		var buf []Snapshot
		for i := 0; i < 200; i++ {
			buf = w.Snapshots(buf[:0])
			if len(buf) != 16 {
				t.Errorf("snapshot count = %d, want 16", len(buf))
				return
			}
		}
	}()
	for i := 0; i < 200; i++ {
		w.Update(0.016)
	}
	<-done
}
