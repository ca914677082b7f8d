package bus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()

	var got []Event
	b.Subscribe(EventEntityMoved, func(ev Event) {
		got = append(got, ev)
	})

	b.Publish(EventEntityMoved, "entity-1", 42)
	require.Len(t, got, 1)
	require.Equal(t, EventEntityMoved, got[0].Type)
	require.Equal(t, "entity-1", got[0].Source)
	require.Equal(t, 42, got[0].Data)
}

func TestEventTypeIsolation(t *testing.T) {
	b := New()

	moved, spawned := 0, 0
	b.Subscribe(EventEntityMoved, func(Event) { moved++ })
	b.Subscribe(EventWorldSpawn, func(Event) { spawned++ })

	b.Publish(EventEntityMoved, "e", nil)
	b.Publish(EventEntityMoved, "e", nil)
	b.Publish(EventWorldSpawn, "w", nil)

	require.Equal(t, 2, moved)
	require.Equal(t, 1, spawned)
}

func TestSubscriptionCancel(t *testing.T) {
	b := New()

	calls := 0
	sub := b.Subscribe(EventEntityCollision, func(Event) { calls++ })
	require.Equal(t, 1, b.SubscriberCount(EventEntityCollision))

	b.Publish(EventEntityCollision, "e", nil)
	sub.Cancel()
	sub.Cancel() // idempotent
	b.Publish(EventEntityCollision, "e", nil)

	require.Equal(t, 1, calls)
	require.Zero(t, b.SubscriberCount(EventEntityCollision))
}

func TestPublishWithNoSubscribers(t *testing.T) {
	b := New()
	require.NotPanics(t, func() {
		b.Publish(EventWorldDespawn, "w", nil)
	})
}

func TestHandlerMaySubscribeDuringDispatch(t *testing.T) {
	b := New()

	nested := 0
	b.Subscribe(EventWorldSpawn, func(Event) {
		b.Subscribe(EventEntityMoved, func(Event) { nested++ })
	})

	b.Publish(EventWorldSpawn, "w", nil)
	b.Publish(EventEntityMoved, "e", nil)
	require.Equal(t, 1, nested)
}
