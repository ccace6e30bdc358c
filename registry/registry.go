// Package registry is a convenience collaborator on top of pool.Pool: a
// per-type global pool, lazily constructed on first use and never torn down.
// It is not part of the core allocator - the core pool is always a
// standalone value with an explicit lifetime (pool.New); this package only
// adds a process-wide singleton on top of it for callers who want a default
// pool per type without threading a *pool.Pool[T] through their call graph.
package registry

import (
	"reflect"
	"sync"

	"github.com/concurrentpool/slotpool/pool"
)

// DefaultCapacity is the capacity Default passes to For; it takes effect
// only if no pool for T has already been created by an earlier call.
const DefaultCapacity = 1024

var (
	mu    sync.Mutex
	pools = map[reflect.Type]any{}
)

// For returns the process-wide Pool[T], creating it with the given capacity
// on the first call for T. Later calls for the same T return the same pool
// regardless of the capacity argument they pass - the registry's whole point
// is "one Pool[T] for the process' lifetime", and a pool's capacity is fixed
// at construction (invariant I3), so it cannot be changed retroactively to
// match a later caller's request.
//
// The pool created here is never torn down: teardown ordering against
// arbitrary user code holding live handles or raw pointers from it is
// intractable in general, so the registry simply never attempts it.
func For[T any](capacity int) (*pool.Pool[T], error) {
	key := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()

	if existing, ok := pools[key]; ok {
		return existing.(*pool.Pool[T]), nil
	}

	p, err := pool.New[T](capacity)
	if err != nil {
		return nil, err
	}

	pools[key] = p
	return p, nil
}

// Default returns the process-wide Pool[T], creating it with DefaultCapacity
// if this is the first call for T.
func Default[T any]() *pool.Pool[T] {
	p, err := For[T](DefaultCapacity)
	if err != nil {
		// DefaultCapacity is a package constant known to be valid; the
		// only failure pool.New can report is an invalid capacity.
		panic(err)
	}
	return p
}
