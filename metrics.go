package stackalloc

// FreeListStart returns the bump cursor: the number of free-list slots that
// have never yet held a reclaimed cell. Diagnostics only; not meant to
// drive control flow.
func (a *Allocator[T]) FreeListStart() int {
	return a.freeListStart
}

// OverflowCount returns how many times the allocator served a request in
// degraded form or had to leak freed storage. A nonzero value means the
// free-list capacity or region is undersized for the workload.
func (a *Allocator[T]) OverflowCount() int {
	return a.overflowCount
}

// FreeCells returns the number of occupied free-list slots.
func (a *Allocator[T]) FreeCells() int {
	n := 0
	for _, s := range a.slots {
		if len(s) > 0 {
			n++
		}
	}
	return n
}

// FreeElems returns the total number of elements currently sitting in the
// free list, including the uncarved remainder of the region.
func (a *Allocator[T]) FreeElems() int {
	sum := 0
	for _, s := range a.slots {
		sum += len(s)
	}
	return sum
}

// RegionLen returns the length of the bound region, 0 before Bind.
func (a *Allocator[T]) RegionLen() int {
	return a.regionLen
}

// Metrics returns a snapshot of allocator statistics.
func (a *Allocator[T]) Metrics() Metrics {
	return Metrics{
		FreeListCap:   len(a.slots),
		FreeCells:     a.FreeCells(),
		FreeElems:     a.FreeElems(),
		RegionLen:     a.regionLen,
		FreeListStart: a.freeListStart,
		OverflowCount: a.overflowCount,
	}
}

// Metrics contains statistical information about an allocator.
type Metrics struct {
	FreeListCap   int // Fixed capacity of the free list
	FreeCells     int // Occupied free-list slots
	FreeElems     int // Elements reachable through the free list
	RegionLen     int // Length of the bound region
	FreeListStart int // Bump cursor (never-used slots)
	OverflowCount int // Degraded allocations plus leaked frees
}
