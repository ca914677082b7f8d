package vector

import (
	"fmt"

	"github.com/vexlab/vex/pkg/pool"
)

// Registry tags for the vector types.
const (
	Tag2d           = "vex.Vector2d"
	Tag3d           = "vex.Vector3d"
	TagObservable2d = "vex.ObservableVector2d"
	TagObservable3d = "vex.ObservableVector3d"
)

// registry is the recycling registry this package draws from. Owned
// here because vectors are the engine's dominant per-frame allocation;
// Clone and the Acquire helpers always go through it.
var registry = newRegistry()

func newRegistry() *pool.Registry {
	r := pool.NewRegistry()
	registerTags(r)
	return r
}

func registerTags(r *pool.Registry) {
	r.Register(Tag2d, func(args ...any) any {
		return New2d(floatArg(args, 0, 0), floatArg(args, 1, 0))
	})
	r.Register(Tag3d, func(args ...any) any {
		return New3d(floatArg(args, 0, 0), floatArg(args, 1, 0), floatArg(args, 2, 0))
	})
	r.Register(TagObservable2d, func(args ...any) any {
		cb, _ := callbackArg[OnUpdate2d](args, 2)
		ov, err := NewObservable2d(floatArg(args, 0, 0), floatArg(args, 1, 0), cb)
		if err != nil {
			panic(err)
		}
		return ov
	})
	r.Register(TagObservable3d, func(args ...any) any {
		cb, _ := callbackArg[OnUpdate3d](args, 3)
		ov, err := NewObservable3d(floatArg(args, 0, 0), floatArg(args, 1, 0), floatArg(args, 2, 0), cb)
		if err != nil {
			panic(err)
		}
		return ov
	})
}

// Pool exposes the registry so other subsystems can recycle their own
// types alongside the vectors.
func Pool() *pool.Registry {
	return registry
}

// UsePool swaps in an externally owned registry, registering the vector
// tags on it first. Intended for tests and embedders that scope
// recycling themselves.
func UsePool(r *pool.Registry) {
	registerTags(r)
	registry = r
}

// Acquire2d pulls a recycled or fresh 2D vector from the pool.
func Acquire2d(x, y float64) *Vector2d {
	return mustPull(Tag2d, x, y).(*Vector2d)
}

// Acquire3d pulls a recycled or fresh 3D vector from the pool.
func Acquire3d(x, y, z float64) *Vector3d {
	return mustPull(Tag3d, x, y, z).(*Vector3d)
}

// AcquireObservable2d pulls a recycled or fresh observable 2D vector
// from the pool. A nil callback panics: observables are unusable
// without one.
func AcquireObservable2d(x, y float64, onUpdate OnUpdate2d) *ObservableVector2d {
	return mustPull(TagObservable2d, x, y, onUpdate).(*ObservableVector2d)
}

// AcquireObservable3d pulls a recycled or fresh observable 3D vector
// from the pool.
func AcquireObservable3d(x, y, z float64, onUpdate OnUpdate3d) *ObservableVector3d {
	return mustPull(TagObservable3d, x, y, z, onUpdate).(*ObservableVector3d)
}

// Release2d returns a 2D vector to the pool. The caller must drop its
// reference.
func Release2d(v *Vector2d) {
	_ = registry.Push(Tag2d, v)
}

// Release3d returns a 3D vector to the pool.
func Release3d(v *Vector3d) {
	_ = registry.Push(Tag3d, v)
}

// ReleaseObservable2d returns an observable 2D vector to the pool.
func ReleaseObservable2d(v *ObservableVector2d) {
	_ = registry.Push(TagObservable2d, v)
}

// ReleaseObservable3d returns an observable 3D vector to the pool.
func ReleaseObservable3d(v *ObservableVector3d) {
	_ = registry.Push(TagObservable3d, v)
}

// mustPull panics on unknown tags, which can only mean registry
// misconfiguration through UsePool.
func mustPull(tag string, args ...any) any {
	v, err := registry.Pull(tag, args...)
	if err != nil {
		panic(fmt.Errorf("vector: %w", err))
	}
	return v
}

// floatArg reads args[i] as a float64, falling back to def when absent.
// Integer literals are accepted for convenience.
func floatArg(args []any, i int, def float64) float64 {
	if i >= len(args) || args[i] == nil {
		return def
	}
	switch n := args[i].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return def
	}
}

// callbackArg reads args[i] as a callback of type F.
func callbackArg[F any](args []any, i int) (F, bool) {
	var zero F
	if i >= len(args) || args[i] == nil {
		return zero, false
	}
	f, ok := args[i].(F)
	return f, ok
}
