package stackalloc

import (
	"math"
	"unsafe"

	"github.com/pavanmanishd/stackalloc/internal/mmap"
)

// SystemRawAlloc is a stock RawAllocFn backed by an anonymous memory
// mapping, for integrators who want a region outside the Go heap without
// writing their own primitive. The mapping lives until process exit; the
// allocator's no-release contract for raw regions makes that acceptable.
// Returns nil when the mapping cannot be established.
func SystemRawAlloc(count, elemSize int) unsafe.Pointer {
	if count <= 0 || elemSize <= 0 || count > math.MaxInt/elemSize {
		return nil
	}
	b, err := mmap.AnonMap(count * elemSize)
	if err != nil || len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
