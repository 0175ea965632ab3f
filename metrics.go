package buddy

// Stats is a snapshot of an allocator's bookkeeping. It exists because
// the public Malloc/Free API deliberately does not distinguish genuine
// exhaustion from order-level fragmentation (the arena can hold enough
// free bytes in aggregate without holding them contiguously at the
// order a caller needs); FreeByOrder gives a caller that cares about the
// distinction the data to work it out for itself.
type Stats struct {
	Capacity    uint64          // total arena size in bytes
	BytesInUse  uint64          // bytes currently handed out, including per-allocation header overhead
	Allocations int             // outstanding Malloc calls not yet Free'd
	FreeByOrder [MaxOrder + 1]int // number of free blocks at each order
	Utilization float64         // BytesInUse / Capacity, 0 if Capacity is 0
}

// Stats returns a snapshot of the allocator's current bookkeeping.
func (a *Allocator) Stats() Stats {
	s := Stats{
		Capacity:    a.size,
		Allocations: a.nallocs,
	}

	free := uint64(0)
	for order := uint(MinOrder); order <= a.maxOrder; order++ {
		n := 0
		for b := a.bank[order]; b != nil; b = b.next {
			n++
		}
		s.FreeByOrder[order] = n
		free += uint64(n) << order
	}
	s.BytesInUse = a.size - free
	if s.Capacity > 0 {
		s.Utilization = float64(s.BytesInUse) / float64(s.Capacity)
	}
	return s
}
