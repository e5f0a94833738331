// Package stackalloc implements a fixed-region free-list allocator for Go.
//
// # Overview
//
// The caller hands the allocator one contiguous region of memory up front;
// the allocator then carves sub-regions ("cells") out of it and recycles
// them through a fixed-capacity free list. The system allocator is never
// touched on the hot path, which makes the package suitable for:
//
//   - Codecs and parsers with a known peak working set
//   - Sandboxed or embedded targets without a general-purpose heap
//   - Pinning all scratch memory of a component to one buffer
//   - Predictable allocation behavior under memory pressure
//
// # Basic Usage
//
//	var pool stackalloc.FreeList4[byte]
//	var buf [65536]byte
//	a := stackalloc.NewStackAllocator[byte](&pool, buf[:], stackalloc.Uninitialized)
//
//	cell := a.AllocCell(1024)
//	cell.Slice()[0] = 42
//	a.FreeCell(&cell) // storage returns to the free list
//
// # Backing Stores
//
// Four constructors differ only in where the region comes from:
// NewStackAllocator borrows a caller-owned buffer, NewHeapAllocator makes
// its own, NewRawAllocator obtains one from an integrator-supplied
// allocation primitive (see SystemRawAlloc for a stock mmap-backed one),
// and NewGlobalAllocator is constructed empty and bound once to a
// process-wide static region via Bind.
//
// # Capacity and Degradation
//
// The free list remembers at most its fixed capacity of reclaimed cells.
// Allocation never fails: when neither reuse nor carving can satisfy a
// request the caller receives a degraded cell (possibly empty) and the
// overflow counter is incremented. Freeing while the free list is full
// leaks that storage for the rest of the allocator's lifetime; this is the
// deliberate price of a fixed-size table and is likewise visible through
// the overflow counter.
//
// # Thread Safety
//
// Allocator is not goroutine-safe and contains no locks. For concurrent
// access wrap it in a SafeAllocator, or give each worker its own instance:
//
//	safe := stackalloc.NewSafeAllocator(stackalloc.NewHeapAllocator[byte](8, 1<<20, stackalloc.Zeroed))
//	cell := safe.AllocCell(512)
//
// # Important Notes
//
//   - A Cell is an exclusive handle; freeing it twice panics
//   - Freed storage is not cleared under Uninitialized: the next holder of
//     the slot sees the previous bytes verbatim. Use Zeroed to scrub
//     storage whenever it enters the free pool
//   - Cells are not tracked individually; a cell must go back to the
//     allocator that produced it
package stackalloc
