// Package bus is the engine's synchronous event bus. The game loop is
// single-threaded, so handlers run inline on the publishing call stack
// in subscription order.
package bus

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types published by the engine.
const (
	EventEntityMoved     = "entity.moved"
	EventEntityCollision = "entity.collision"
	EventWorldSpawn      = "world.spawn"
	EventWorldDespawn    = "world.despawn"
)

// Event is a published occurrence.
type Event struct {
	Type      string
	Source    string
	Timestamp time.Time
	Data      any
}

// Handler consumes events.
type Handler func(Event)

// Subscription identifies a registered handler and can cancel it.
type Subscription struct {
	id        string
	eventType string
	bus       *Bus
}

// ID returns the subscription identifier.
func (s *Subscription) ID() string { return s.id }

// EventType returns the subscribed event type.
func (s *Subscription) EventType() string { return s.eventType }

// Cancel removes the handler. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.bus.unsubscribe(s.eventType, s.id)
}

// Bus dispatches events to subscribed handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]map[string]Handler
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[string]map[string]Handler)}
}

// Subscribe registers handler for eventType.
func (b *Bus) Subscribe(eventType string, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.handlers[eventType]
	if !ok {
		subs = make(map[string]Handler)
		b.handlers[eventType] = subs
	}
	id := uuid.New().String()
	subs[id] = handler
	return &Subscription{id: id, eventType: eventType, bus: b}
}

// Publish delivers the event synchronously to every handler subscribed
// to its type.
func (b *Bus) Publish(eventType, source string, data any) {
	b.mu.RLock()
	subs := b.handlers[eventType]
	handlers := make([]Handler, 0, len(subs))
	for _, h := range subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	ev := Event{Type: eventType, Source: source, Timestamp: time.Now(), Data: data}
	for _, h := range handlers {
		h(ev)
	}
}

// SubscriberCount reports how many handlers listen to eventType.
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

func (b *Bus) unsubscribe(eventType, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.handlers[eventType]; ok {
		delete(subs, id)
	}
}
