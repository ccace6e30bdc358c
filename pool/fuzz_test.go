package pool

import (
	"testing"

	"github.com/concurrentpool/slotpool/testpkg/fuzzutil"
)

// FuzzAcquireRelease drives randomized Acquire/Close sequences against a
// fixed-capacity pool, checks each acquired value as it is constructed, and
// at the end of the run checks that the pool's own accounting matches the
// tracked live handles and drains to zero - this is the construct/
// destroy boundary's fuzz surface, the Go analogue of offheap's
// FuzzObjectStore.
func FuzzAcquireRelease(f *testing.F) {
	for _, tc := range fuzzutil.MakeRandomTestCases() {
		f.Add(tc)
	}

	f.Fuzz(func(t *testing.T, bytes []byte) {
		tr := newChurnRun(bytes)
		tr.Run()
	})
}

const churnCapacity = 32

func newChurnRun(bytes []byte) *fuzzutil.TestRun {
	p, err := New[int](churnCapacity)
	if err != nil {
		panic(err)
	}

	live := make([]Handle[int], 0, churnCapacity)

	stepMaker := func(c *fuzzutil.ByteConsumer) fuzzutil.Step {
		switch c.Byte() % 2 {
		case 0:
			return acquireStep{p: p, live: &live, seed: int(c.Uint32())}
		default:
			return releaseStep{live: &live, pick: c.Byte()}
		}
	}

	cleanup := func() {
		if used := p.Snapshot().Used; used != len(live) {
			panic("slotpool fuzz: snapshot used count diverged from tracked live handles")
		}

		for _, h := range live {
			h.Close()
		}

		if used := p.Snapshot().Used; used != 0 {
			panic("slotpool fuzz: pool did not fully drain after closing every tracked handle")
		}
	}

	return fuzzutil.NewTestRun(bytes, stepMaker, cleanup)
}

type acquireStep struct {
	p    *Pool[int]
	live *[]Handle[int]
	seed int
}

func (s acquireStep) DoStep() {
	h := s.p.Acquire(func() (int, error) { return s.seed, nil })
	if h.IsEmpty() {
		return // pool exhausted, a legitimate outcome
	}
	if *h.Value() != s.seed {
		panic("slotpool fuzz: acquired slot did not hold the constructed value")
	}
	*s.live = append(*s.live, h)
}

type releaseStep struct {
	live *[]Handle[int]
	pick byte
}

func (s releaseStep) DoStep() {
	n := len(*s.live)
	if n == 0 {
		return
	}
	i := int(s.pick) % n
	h := (*s.live)[i]
	*s.live = append((*s.live)[:i], (*s.live)[i+1:]...)
	if err := h.Close(); err != nil {
		panic(err)
	}
}
