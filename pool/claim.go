package pool

// claim finds a free slot by linear probing from the shared hint and
// atomically flips it to occupied. It returns the claimed index and true on
// success, or -1 and false if every slot was probed and found occupied.
//
// The search starts at hint rather than always at index 0 so that, under
// light contention, the first probe typically lands on a free slot
// (expected O(1)); under heavy contention the worst case degrades to a full
// O(Capacity) scan. The hint is advisory only - a stale or perturbed value
// changes performance, never correctness, since every index is still probed
// in turn until capacity probes have been made.
//
// Memory ordering: the successful CompareAndSwap on occupied is the
// synchronization point with the slot's most recent release. sync/atomic
// gives every operation here sequential consistency, so the acquire half of
// a successful claim is guaranteed to observe every write release() made
// visible (including the previous occupant's destructor completing) - the
// spec's required acquire/release pairing is satisfied and then some.
func (p *Pool[T]) claim() (int, bool) {
	capacity := len(p.slots)
	start := int(p.hint.value.Load()) % capacity

	for k := 0; k < capacity; k++ {
		i := (start + k) % capacity
		s := &p.slots[i]

		for attempt := 0; attempt < spuriousRetryCap; attempt++ {
			if s.occupied.CompareAndSwap(false, true) {
				p.hint.value.Store(uint32((i + 1) % capacity))
				return i, true
			}

			if s.occupied.Load() {
				// Genuinely occupied by another owner; move on to the
				// next candidate slot instead of retrying this one.
				break
			}

			// The CAS observed free but still failed - a spurious
			// failure under a weak-CAS model. Retry the same slot.
		}
	}

	return -1, false
}

// release marks slot i free. The store uses release ordering (again,
// sequential consistency under sync/atomic) so it pairs with the acquire
// half of whichever future claim() next lands on this slot: every write this
// goroutine made to the slot's value, including running its destructor,
// happens-before the next owner's construction.
func (p *Pool[T]) release(i int) {
	p.slots[i].occupied.Store(false)
}
