// Package pool implements a fixed-capacity, lock-free object pool for a
// single concrete type T.
//
// A Pool[T] is created with a capacity that never changes (New). Callers
// obtain a constructed T with Acquire (scoped, auto-releasing Handle) or
// AcquireRaw (a bare *T the caller releases explicitly with Release). The
// pool never grows and never moves the storage backing a live object: once
// claimed, a slot's address is stable until it is released.
//
// # Concurrency
//
// Any number of goroutines may call Acquire, AcquireRaw and Release on the
// same Pool concurrently. The claim/release protocol is implemented with
// sync/atomic compare-and-swap over each slot's occupied flag; there are no
// mutexes and no goroutine ever blocks waiting for a slot to free up.
// Exhaustion is reported immediately as ErrExhausted (Acquire: an empty
// Handle) rather than waited out.
//
// Go's sync/atomic operations are sequentially consistent, which is strictly
// stronger than the acquire/release pairing this protocol requires: a
// successful claim synchronizes-with the slot's most recent release, so
// whatever the previous occupant (and its destructor) wrote to the slot is
// visible to the new occupant before construction begins.
//
// # Construction and destruction
//
// Construction is supplied by the caller as a func() (T, error). If it
// returns an error, the claimed slot is handed back to the pool before the
// error reaches the caller - Acquire suppresses it (empty Handle);
// AcquireRaw propagates it. Destruction runs automatically when a Handle is
// closed, or when Release is called on a raw pointer: if the stored value
// implements Destroyer its Destroy method runs, and in all cases the slot is
// reset to T's zero value before it is marked free, so no reference to the
// retired value outlives the release.
package pool
