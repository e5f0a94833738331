package stackalloc

import "sync"

// SafeAllocator is a mutex-protected wrapper around an Allocator for
// concurrent access. The core allocator stays lock-free; this is the
// external serialization an integrator is expected to supply when one
// instance must be shared between goroutines.
type SafeAllocator[T any] struct {
	mu sync.Mutex
	a  *Allocator[T]
}

// NewSafeAllocator wraps an allocator built by any of the constructors.
// The inner allocator must not be used directly afterwards.
func NewSafeAllocator[T any](a *Allocator[T]) *SafeAllocator[T] {
	return &SafeAllocator[T]{a: a}
}

// AllocCell thread-safely allocates a cell of length n.
func (s *SafeAllocator[T]) AllocCell(n int) Cell[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocCell(n)
}

// FreeCell thread-safely consumes the cell and recycles its storage.
func (s *SafeAllocator[T]) FreeCell(c *Cell[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.FreeCell(c)
}

// Bind thread-safely attaches a region; see Allocator.Bind.
func (s *SafeAllocator[T]) Bind(region []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Bind(region)
}

// Release thread-safely drops the allocator's state.
func (s *SafeAllocator[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// FreeListStart thread-safely returns the bump cursor.
func (s *SafeAllocator[T]) FreeListStart() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.FreeListStart()
}

// OverflowCount thread-safely returns the overflow counter.
func (s *SafeAllocator[T]) OverflowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.OverflowCount()
}

// Metrics thread-safely returns a snapshot of allocator statistics.
func (s *SafeAllocator[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
