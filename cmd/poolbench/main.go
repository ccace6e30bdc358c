// Command poolbench measures Acquire/Release throughput for a
// fixed-capacity pool.Pool under concurrent load. It is an external
// collaborator exercising the pool's public API, not part of the core
// allocator.
package main

import (
	"flag"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/concurrentpool/slotpool/pool"
)

var (
	capacityFlag   = flag.Int("capacity", 4096, "pool capacity")
	goroutinesFlag = flag.Int("goroutines", 8, "number of concurrent worker goroutines")
	durationFlag   = flag.Duration("duration", 2*time.Second, "how long to run the benchmark")
)

type payload struct {
	value int64
}

func main() {
	flag.Parse()

	p, err := pool.New[payload](*capacityFlag)
	if err != nil {
		fmt.Printf("cannot create pool: %s\n", err)
		return
	}

	var totalOps atomic.Int64
	var totalExhausted atomic.Int64

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(*goroutinesFlag)

	for g := 0; g < *goroutinesFlag; g++ {
		go func(seed int64) {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				h := p.Acquire(func() (payload, error) {
					return payload{value: seed}, nil
				})
				if h.IsEmpty() {
					totalExhausted.Add(1)
					continue
				}

				h.Value().value++
				h.Close()
				totalOps.Add(1)
			}
		}(int64(g))
	}

	duration := *durationFlag
	time.Sleep(duration)
	close(stop)
	wg.Wait()

	snap := p.Snapshot()
	stats := p.Stats()

	fmt.Printf("capacity=%d goroutines=%d duration=%s\n", *capacityFlag, *goroutinesFlag, duration)
	fmt.Printf("total ops=%d exhausted=%d ops/sec=%.0f\n",
		totalOps.Load(), totalExhausted.Load(), float64(totalOps.Load())/duration.Seconds())
	fmt.Printf("final snapshot: %+v\n", snap)
	fmt.Printf("lifetime stats: %+v\n", stats)
}
