// Command pooldemo is a small worked example of the pool package's public
// API: the scoped form (Acquire/Close), the raw form (AcquireRaw/Release),
// and the diagnostic snapshot. It is an external collaborator, not part of
// the core allocator.
package main

import (
	"flag"
	"fmt"

	"github.com/concurrentpool/slotpool/pool"
)

var capacityFlag = flag.Int("capacity", 8, "pool capacity")

type request struct {
	ID   int
	Body string
}

func main() {
	flag.Parse()

	requests, err := pool.New[request](*capacityFlag)
	if err != nil {
		fmt.Printf("cannot create pool: %s\n", err)
		return
	}

	runScoped(requests)
	runRaw(requests)

	fmt.Printf("final snapshot: %+v\n", requests.Snapshot())
}

func runScoped(requests *pool.Pool[request]) {
	h := requests.Acquire(func() (request, error) {
		return request{ID: 1, Body: "scoped request"}, nil
	})
	if h.IsEmpty() {
		fmt.Println("pool exhausted, scoped allocation skipped")
		return
	}
	defer h.Close()

	fmt.Printf("handling %+v\n", *h.Value())
}

func runRaw(requests *pool.Pool[request]) {
	r, err := requests.AcquireRaw(func() (request, error) {
		return request{ID: 2, Body: "raw request"}, nil
	})
	if err != nil {
		fmt.Printf("raw acquire failed: %s\n", err)
		return
	}

	fmt.Printf("handling %+v\n", *r)
	requests.Release(r)
}
