package stackalloc

import "unsafe"

// RawAllocFn is an externally supplied raw-allocation primitive: given an
// element count and element size it returns a pointer to the start of the
// storage, or nil if none could be produced. Whether the storage is
// zero-initialized is the primitive's own contract. This package never
// defines one itself beyond the optional SystemRawAlloc.
type RawAllocFn func(count, elemSize int) unsafe.Pointer

// NewStackAllocator builds an allocator over a caller-owned region,
// typically a buffer in the caller's frame. The caller retains ownership
// and must keep the buffer alive for the allocator's lifetime.
func NewStackAllocator[T any](storage SlotStorage[T], region []T, policy InitPolicy) *Allocator[T] {
	a := newAllocator[T](storage.Slots(), policy)
	a.Bind(region)
	return a
}

// NewHeapAllocator builds an allocator that owns its region and sizes both
// the region and the free list at run time. Unlike the FreeListN family,
// freeListLen may be any positive value.
func NewHeapAllocator[T any](freeListLen, regionLen int, policy InitPolicy) *Allocator[T] {
	if freeListLen < 1 {
		panic("stackalloc: free list capacity must be positive")
	}
	if regionLen < 0 {
		regionLen = 0
	}
	a := newAllocator[T](make([][]T, freeListLen), policy)
	a.Bind(make([]T, regionLen))
	return a
}

// NewRawAllocator builds an allocator over a region obtained from raw. The
// returned pointer is wrapped into a []T here and nowhere else; the rest of
// the package never sees it. A nil pointer or non-positive length yields an
// allocator with an empty region: every real allocation degrades, none
// aborts.
func NewRawAllocator[T any](storage SlotStorage[T], raw RawAllocFn, regionLen int, policy InitPolicy) *Allocator[T] {
	a := newAllocator[T](storage.Slots(), policy)
	a.Bind(rawRegion[T](raw, regionLen))
	return a
}

func rawRegion[T any](raw RawAllocFn, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	p := raw(n, int(unsafe.Sizeof(zero)))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// NewGlobalAllocator builds an allocator with no region attached. It backs
// the process-wide static pattern: declare the slot storage and the region
// as package variables, construct the allocator once, and Bind the region
// during initialization. Until Bind, real allocations are served degraded.
func NewGlobalAllocator[T any](storage SlotStorage[T], policy InitPolicy) *Allocator[T] {
	return newAllocator[T](storage.Slots(), policy)
}
