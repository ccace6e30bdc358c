package pool

import (
	"sync/atomic"
	"unsafe"
)

// cacheLineSize is the padding target used to isolate the pool's hint from
// the slot array's cache lines. 64 bytes covers every mainstream x86/arm64
// part; a few server parts use 128, but padding to 64 still avoids false
// sharing on every multiple of it.
const cacheLineSize = 64

// spuriousRetryCap bounds the number of times claim() retries a
// compare-and-swap on the same slot before concluding the failure was
// genuine contention rather than a spurious weak-CAS failure. sync/atomic's
// CompareAndSwap never actually fails spuriously on any current Go port, so
// in practice this loop runs once; it costs nothing to keep it and it keeps
// the algorithm portable to a hypothetical weak-CAS backend.
const spuriousRetryCap = 3

// Destroyer is implemented by object types that need to run cleanup before
// their slot is released back to the pool - closing a file descriptor,
// draining a buffer, clearing a secret. A Pool does not require T to
// implement it; if it doesn't, the slot's value is simply reset to its zero
// value before release.
type Destroyer interface {
	Destroy()
}

// slot is one entry of the pool's backing array: space for exactly one T
// plus the atomic bit that tracks whether that space currently holds a live
// object. occupied is the only synchronization point for the slot; value is
// otherwise owned exclusively by whichever goroutine currently holds the
// slot claimed.
type slot[T any] struct {
	occupied atomic.Bool
	value    T
}

// hintCell holds the pool's shared claim-search hint on its own cache line.
// The hint is read and written far more often, and under far higher
// contention, than any single slot - without isolation its cache line would
// ping-pong between cores doing completely unrelated slot traffic.
type hintCell struct {
	value atomic.Uint32
	_     [cacheLineSize - unsafe.Sizeof(atomic.Uint32{})]byte
}
