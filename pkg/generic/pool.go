package generic

import "sync"

// Pool recycles homogeneous values of type T. It is a thin typed layer
// over sync.Pool for hot-path allocations (scratch buffers, snapshot
// slices) where the tag-based registry would be overkill.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T) T
}

// NewPool creates a pool that falls back to generate when empty.
func NewPool[T any](generate func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return generate()
			},
		},
	}
}

// NewWarmPool creates a pool pre-filled with warm generated values, so
// the first acquisitions of a frame never allocate.
func NewWarmPool[T any](generate func() T, warm int) *Pool[T] {
	p := NewPool(generate)
	for i := 0; i < warm; i++ {
		p.pool.Put(generate())
	}
	return p
}

// OnPut installs a reset function applied to every value returned to
// the pool. Useful for truncating slices or clearing references.
func (p *Pool[T]) OnPut(reset func(T) T) *Pool[T] {
	p.reset = reset
	return p
}

// Get acquires a value, reusing a released one when available.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put releases a value back to the pool. The caller must not retain a
// reference to it afterwards.
func (p *Pool[T]) Put(value T) {
	if p.reset != nil {
		value = p.reset(value)
	}
	p.pool.Put(value)
}
