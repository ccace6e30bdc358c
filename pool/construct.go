package pool

// acquireInto claims a slot and constructs T into it via construct. On
// success it returns the claimed index and a pointer to the live value.
//
// If claim() reports exhaustion, construct is never called and ErrExhausted
// propagates. If construct returns an error, the claimed slot is returned to
// free (restoring invariant I1 - occupied implies a live object - before
// control leaves this function) and the constructor's error propagates
// unchanged; the caller decides whether that distinguishes it from
// exhaustion.
func (p *Pool[T]) acquireInto(construct func() (T, error)) (int, *T, error) {
	i, ok := p.claim()
	if !ok {
		p.totalExhausted.Add(1)
		return -1, nil, ErrExhausted
	}

	value, err := construct()
	if err != nil {
		p.release(i)
		return -1, nil, err
	}

	s := &p.slots[i]
	s.value = value
	p.totalAllocated.Add(1)

	return i, &s.value, nil
}

// destroyAndRelease runs T's destructor (if any) on slot i, resets the slot
// to T's zero value so no reference to the retired object survives release,
// and then releases the slot back to the pool.
func (p *Pool[T]) destroyAndRelease(i int) {
	destroyValue(&p.slots[i].value)
	p.release(i)
	p.totalReleased.Add(1)
}

// destroyValue runs v's Destroy method if it implements Destroyer, then
// resets *v to T's zero value. This must complete before the slot's
// release-store publishes it as reusable: the next claimant's acquire-load
// must observe a finished destructor, never a half-torn-down value.
func destroyValue[T any](v *T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*v = zero
}
