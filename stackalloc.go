package stackalloc

// splitThreshold is the smallest surplus (in elements) worth splitting off
// a best-fit slot; anything smaller rides along whole with the cell, since
// recycling a slightly larger cell beats leaving a sliver in the slot.
const splitThreshold = 31

// Allocator manages one contiguous region of T through a fixed-capacity
// free list. Not goroutine-safe; use SafeAllocator for concurrent access.
//
// Slots are claimed top-down: indices below freeListStart have never held a
// cell. The region itself enters the free list as the initial free cell at
// construction, and carving fresh memory is expressed as splitting that
// cell's remainder, so reuse and carving share one code path.
type Allocator[T any] struct {
	slots         [][]T
	freeListStart int
	overflowCount int
	regionLen     int
	policy        InitPolicy
	bound         bool
}

func newAllocator[T any](slots [][]T, policy InitPolicy) *Allocator[T] {
	for i := range slots {
		slots[i] = nil
	}
	return &Allocator[T]{
		slots:         slots,
		freeListStart: len(slots),
		policy:        policy,
	}
}

// Bind attaches a region to an allocator constructed without one
// (NewGlobalAllocator). The region is registered as the initial free cell,
// after the construction policy is applied to it. An allocator accepts
// exactly one region for its lifetime; binding twice panics.
func (a *Allocator[T]) Bind(region []T) {
	a.panicIfReleased()
	if a.bound {
		panic("stackalloc: region already bound")
	}
	a.bound = true
	a.regionLen = len(region)
	if len(region) > 0 {
		// Clamp capacity so cells can never reach past the declared region.
		a.freeMem(region[:len(region):len(region)])
	}
}

// AllocCell returns a cell of length n, or the best degraded cell the
// allocator can still produce when the free list and region are exhausted.
// It never fails; callers operating near capacity must check the returned
// cell's Len against their request. n <= 0 yields an empty cell at no cost.
func (a *Allocator[T]) AllocCell(n int) Cell[T] {
	a.panicIfReleased()
	if n <= 0 {
		return Cell[T]{}
	}
	best := -1
	for i, s := range a.slots {
		if len(s) >= n && (best < 0 || len(s) < len(a.slots[best])) {
			best = i
		}
	}
	if best < 0 {
		return a.allocDegraded()
	}
	s := a.slots[best]
	if len(s) >= n+splitThreshold {
		a.slots[best] = s[n:]
		return Cell[T]{mem: s[0:n:n]}
	}
	a.slots[best] = nil
	return Cell[T]{mem: s[:n]}
}

// allocDegraded serves a request nothing can satisfy: count it and hand out
// the smallest cell still available, down to an empty one.
func (a *Allocator[T]) allocDegraded() Cell[T] {
	a.overflowCount++
	small := -1
	for i, s := range a.slots {
		if len(s) > 0 && (small < 0 || len(s) < len(a.slots[small])) {
			small = i
		}
	}
	if small < 0 {
		return Cell[T]{}
	}
	s := a.slots[small]
	a.slots[small] = nil
	return Cell[T]{mem: s}
}

// FreeCell consumes the cell and returns its storage, restored to full
// capacity, to the free list. Freeing the same cell twice panics. With the
// free list fully occupied the storage leaks for the allocator's remaining
// lifetime; the overflow counter records the event.
func (a *Allocator[T]) FreeCell(c *Cell[T]) {
	a.panicIfReleased()
	if c.freed {
		panic("stackalloc: cell freed twice")
	}
	mem := c.mem[:cap(c.mem)]
	c.mem = nil
	c.freed = true
	if len(mem) == 0 {
		return
	}
	a.freeMem(mem)
}

func (a *Allocator[T]) freeMem(mem []T) {
	if a.policy == Zeroed {
		clear(mem)
	}
	if a.freeListStart > 0 {
		a.freeListStart--
		a.slots[a.freeListStart] = mem
		return
	}
	for i, s := range a.slots {
		if len(s) == 0 {
			a.slots[i] = mem
			return
		}
	}
	a.overflowCount++
}

// Release drops the allocator's state and makes it unusable.
// Any subsequent operation will panic.
func (a *Allocator[T]) Release() {
	a.slots = nil
	a.regionLen = 0
}

// panicIfReleased panics if the allocator has been released.
func (a *Allocator[T]) panicIfReleased() {
	if a.slots == nil {
		panic("stackalloc: use after Release()")
	}
}
