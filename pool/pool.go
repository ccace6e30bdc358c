package pool

import (
	"sync/atomic"
	"unsafe"
)

// Pool is a fixed-capacity, lock-free allocator for values of type T. Create
// one with New; it never resizes and its slot storage never moves for the
// lifetime of the Pool.
type Pool[T any] struct {
	// slots is allocated once, in New, and never reallocated or reordered -
	// every *T this Pool ever hands out points into this same backing
	// array for as long as the Pool exists.
	slots []slot[T]

	hint hintCell

	// Lifetime accounting, exposed via Stats. Not part of the snapshot's
	// point-in-time {total,free,used} counts.
	totalAllocated atomic.Uint64
	totalReleased  atomic.Uint64
	totalExhausted atomic.Uint64
}

// New creates a Pool[T] with the given fixed capacity. capacity must be at
// least 1. The slot array is allocated here and only here; no further
// allocation occurs on Acquire, AcquireRaw or Release.
func New[T any](capacity int) (*Pool[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Pool[T]{
		slots: make([]slot[T], capacity),
	}, nil
}

// Capacity returns the pool's fixed slot count, set once at New and never
// changed afterward.
func (p *Pool[T]) Capacity() int {
	return len(p.slots)
}

// Acquire is the scoped allocation form. It constructs a new T with
// construct and returns an owning Handle. If the pool is exhausted, or
// construct returns an error, or construct is nil, Acquire returns an empty
// Handle - the scoped form never surfaces the distinction to the caller;
// check IsEmpty and, if that matters to you, use AcquireRaw instead.
func (p *Pool[T]) Acquire(construct func() (T, error)) Handle[T] {
	if construct == nil {
		return Handle[T]{}
	}

	i, v, err := p.acquireInto(construct)
	if err != nil {
		return Handle[T]{}
	}

	return Handle[T]{pool: p, index: i, value: v}
}

// AcquireRaw is the raw allocation form. It constructs a new T with
// construct and returns a pointer the caller owns directly, to be released
// explicitly with Release. Unlike Acquire, construction failures propagate:
// AcquireRaw returns (nil, ErrExhausted) if the pool is full, or (nil, err)
// with construct's own error if construction failed.
func (p *Pool[T]) AcquireRaw(construct func() (T, error)) (*T, error) {
	if construct == nil {
		return nil, ErrNilConstructor
	}

	_, v, err := p.acquireInto(construct)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Release returns a pointer obtained from AcquireRaw on this same Pool back
// to the pool, running T's destructor first. Release(nil) is a no-op.
//
// Passing a pointer that did not come from AcquireRaw on this Pool, or
// releasing the same pointer twice, is a contract violation (see §7 of the
// design notes): Release recovers the slot index by pointer arithmetic
// against the slot array's base address and panics if the pointer does not
// land on a slot value inside [0, Capacity) of this pool's array, which
// catches pointers from other pools and from outside any pool. It cannot
// detect every misuse: releasing a pointer twice, or releasing it while the
// slot is owned by someone else, lands on a valid slot and does not panic.
func (p *Pool[T]) Release(ptr *T) {
	if ptr == nil {
		return
	}

	p.destroyAndRelease(p.indexOf(ptr))
}

// indexOf recovers the slot index owning ptr by pointer subtraction against
// the base of the slot array - constant time, no lookup table, relying on
// the slot array being a single contiguous, never-reallocated slice.
func (p *Pool[T]) indexOf(ptr *T) int {
	base := unsafe.Pointer(&p.slots[0])
	valueOffset := unsafe.Offsetof(p.slots[0].value)
	stride := unsafe.Sizeof(p.slots[0])

	delta := uintptr(unsafe.Pointer(ptr)) - uintptr(base) - valueOffset
	idx := delta / stride

	if delta%stride != 0 || idx >= uintptr(len(p.slots)) {
		panic("slotpool: Release called with a pointer not owned by this pool")
	}

	return int(idx)
}
