package pool

// Snapshot is a point-in-time view of slot availability, per §4.5: total is
// fixed at construction, free+used always equals total by construction of
// the snapshot itself (used is derived as total-free), and
// UtilizationPercent is 0 when Total is 0 even though New forbids a capacity
// of 0 - the formula itself must never divide by zero.
type Snapshot struct {
	Total              int
	Free               int
	Used               int
	UtilizationPercent float64
}

// Snapshot scans every slot's occupied flag with an atomic load and reports
// {total, free, used, utilization_percent}. The scan is not linearizable:
// concurrent Acquire/Release activity may be reflected inconsistently across
// slots, so two slots read moments apart may not agree on "the state of the
// pool at time X". Free and Used are still guaranteed to sum to Total,
// because Used is computed as Total-Free rather than counted separately.
func (p *Pool[T]) Snapshot() Snapshot {
	total := len(p.slots)

	free := 0
	for i := range p.slots {
		if !p.slots[i].occupied.Load() {
			free++
		}
	}

	used := total - free

	var utilization float64
	if total > 0 {
		utilization = float64(used) / float64(total) * 100
	}

	return Snapshot{
		Total:              total,
		Free:               free,
		Used:               used,
		UtilizationPercent: utilization,
	}
}

// Stats reports lifetime allocation counters, supplementing Snapshot's
// point-in-time view - grounded on the teacher package's own Allocs/
// Frees/Reused accounting in pointerstore.Store.Stats.
type Stats struct {
	TotalAllocated uint64
	TotalReleased  uint64
	TotalExhausted uint64
}

// Stats returns the pool's lifetime allocation counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		TotalAllocated: p.totalAllocated.Load(),
		TotalReleased:  p.totalReleased.Load(),
		TotalExhausted: p.totalExhausted.Load(),
	}
}
