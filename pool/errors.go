package pool

import "errors"

// Sentinel errors returned by this package. A failing constructor's own
// error is returned by AcquireRaw unchanged; contract violations (such as
// releasing a pointer this pool does not own) panic instead of returning an
// error.
var (
	// ErrExhausted is returned when every slot in a pool is occupied at the
	// moment of a claim. It is an expected outcome under load, not a fault:
	// callers that need a fallback (heap allocation, shedding the request)
	// distinguish it with errors.Is.
	ErrExhausted = errors.New("slotpool: pool exhausted")

	// ErrInvalidCapacity is returned by New when capacity < 1.
	ErrInvalidCapacity = errors.New("slotpool: capacity must be >= 1")

	// ErrNilConstructor is returned by AcquireRaw when construct is nil.
	// Acquire treats a nil constructor the same as a failed construction
	// and returns an empty handle instead, since the scoped form never
	// surfaces constructor errors to the caller.
	ErrNilConstructor = errors.New("slotpool: constructor must not be nil")
)
