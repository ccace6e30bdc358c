package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// S2 (Exhaustion & reuse).
func TestAcquire_ExhaustionAndReuse(t *testing.T) {
	p, err := New[int](3)
	assert.NoError(t, err)

	construct := func() (int, error) { return 0, nil }

	h1 := p.Acquire(construct)
	h2 := p.Acquire(construct)
	h3 := p.Acquire(construct)
	assert.False(t, h1.IsEmpty())
	assert.False(t, h2.IsEmpty())
	assert.False(t, h3.IsEmpty())

	h4 := p.Acquire(construct)
	assert.True(t, h4.IsEmpty())

	assert.NoError(t, h1.Close())

	h5 := p.Acquire(construct)
	assert.False(t, h5.IsEmpty())
}

func TestHandle_EmptyCloseIsNoop(t *testing.T) {
	var h Handle[int]
	assert.True(t, h.IsEmpty())
	assert.Nil(t, h.Value())
	assert.NoError(t, h.Close())
}

func TestHandle_DoubleCloseIsNoop(t *testing.T) {
	p, err := New[int](1)
	assert.NoError(t, err)

	h := p.Acquire(func() (int, error) { return 1, nil })
	assert.False(t, h.IsEmpty())

	assert.NoError(t, h.Close())
	assert.Equal(t, 0, p.Snapshot().Used)

	// Second close must not double-release the slot.
	assert.NoError(t, h.Close())
	assert.Equal(t, 0, p.Snapshot().Used)
}

// Defer-based release must run on a panicking exit path, the same guarantee
// the spec asks of a scoped handle's destruction.
func TestHandle_ClosesOnPanicUnwind(t *testing.T) {
	p, err := New[int](1)
	assert.NoError(t, err)

	func() {
		defer func() {
			recover()
		}()

		h := p.Acquire(func() (int, error) { return 9, nil })
		defer h.Close()

		panic("boom")
	}()

	assert.Equal(t, 0, p.Snapshot().Used)
}

// P2 (Conservation).
func TestHandle_ConservationAfterBalancedOps(t *testing.T) {
	p, err := New[int](4)
	assert.NoError(t, err)

	for round := 0; round < 50; round++ {
		handles := make([]Handle[int], 0, 4)
		for i := 0; i < 4; i++ {
			h := p.Acquire(func() (int, error) { return i, nil })
			assert.False(t, h.IsEmpty())
			handles = append(handles, h)
		}
		for _, h := range handles {
			assert.NoError(t, h.Close())
		}
	}

	assert.Equal(t, 0, p.Snapshot().Used)
}

// Destroyer should run before the slot is marked reusable.
type destroyTracking struct {
	destroyed *bool
}

func (d destroyTracking) Destroy() {
	*d.destroyed = true
}

func TestHandle_RunsDestroyerBeforeRelease(t *testing.T) {
	p, err := New[destroyTracking](1)
	assert.NoError(t, err)

	destroyed := false
	h := p.Acquire(func() (destroyTracking, error) {
		return destroyTracking{destroyed: &destroyed}, nil
	})
	assert.False(t, h.IsEmpty())
	assert.False(t, destroyed)

	assert.NoError(t, h.Close())
	assert.True(t, destroyed)
}
