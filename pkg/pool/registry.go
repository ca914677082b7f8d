// Package pool implements a tag-keyed object recycling registry. Types
// register a factory under a string tag; Pull either reuses a released
// instance of that tag or constructs a fresh one. Recycled instances
// are re-initialized through their Recyclable reset hook, which applies
// the constructor arguments without firing any observer callbacks.
package pool

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownTag is returned by Pull and Push for tags that were never
// registered.
var ErrUnknownTag = errors.New("pool: unknown tag")

// Factory constructs a fresh instance from constructor arguments.
type Factory func(args ...any) any

// Recyclable is implemented by pooled types that can be re-initialized
// in place. OnReset must behave like the constructor's muted path: same
// argument list, no notifications.
type Recyclable interface {
	OnReset(args ...any)
}

type entry struct {
	factory Factory
	free    []any
}

// Registry maps tags to factories and per-tag free lists. The registry
// is shared mutable state; the lock only protects its own bookkeeping.
// Callers must not retain references to pushed instances.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register associates tag with a factory. Re-registering a tag replaces
// the factory and drops any instances released under the old one.
func (r *Registry) Register(tag string, factory Factory) {
	r.mu.Lock()
	r.entries[tag] = &entry{factory: factory}
	r.mu.Unlock()
}

// Pull returns an instance of tag, recycling a released one when
// available. Recycled instances are reset via OnReset with args; fresh
// instances come from the factory.
func (r *Registry) Pull(tag string, args ...any) (any, error) {
	r.mu.Lock()
	e, ok := r.entries[tag]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	if n := len(e.free); n > 0 {
		v := e.free[n-1]
		e.free[n-1] = nil
		e.free = e.free[:n-1]
		r.mu.Unlock()
		if rec, ok := v.(Recyclable); ok {
			rec.OnReset(args...)
		}
		return v, nil
	}
	factory := e.factory
	r.mu.Unlock()
	return factory(args...), nil
}

// Push releases an instance for later reuse under tag. The caller gives
// up ownership: mutating a pushed instance afterwards corrupts whoever
// pulls it next.
func (r *Registry) Push(tag string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[tag]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	e.free = append(e.free, v)
	return nil
}

// Free reports how many released instances are waiting under tag.
func (r *Registry) Free(tag string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[tag]; ok {
		return len(e.free)
	}
	return 0
}
