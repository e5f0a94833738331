package stackalloc

// SlotStorage supplies the fixed slot array backing an allocator's free
// list. The zero value of any FreeListN type is ready to use; declare it
// wherever the allocator should live (stack frame, struct field, package
// variable) and pass its address to a constructor.
type SlotStorage[T any] interface {
	Slots() [][]T
}

// The FreeListN family covers the supported compile-time free-list
// capacities: powers of two from 1 through 4096, except 512. Capacities
// outside this set cannot be expressed, so an unsupported request is a
// build failure rather than a runtime one. NewHeapAllocator sizes its free
// list at run time and takes any positive capacity instead.
type (
	FreeList1[T any]    struct{ slots [1][]T }
	FreeList2[T any]    struct{ slots [2][]T }
	FreeList4[T any]    struct{ slots [4][]T }
	FreeList8[T any]    struct{ slots [8][]T }
	FreeList16[T any]   struct{ slots [16][]T }
	FreeList32[T any]   struct{ slots [32][]T }
	FreeList64[T any]   struct{ slots [64][]T }
	FreeList128[T any]  struct{ slots [128][]T }
	FreeList256[T any]  struct{ slots [256][]T }
	FreeList1024[T any] struct{ slots [1024][]T }
	FreeList2048[T any] struct{ slots [2048][]T }
	FreeList4096[T any] struct{ slots [4096][]T }
)

func (f *FreeList1[T]) Slots() [][]T    { return f.slots[:] }
func (f *FreeList2[T]) Slots() [][]T    { return f.slots[:] }
func (f *FreeList4[T]) Slots() [][]T    { return f.slots[:] }
func (f *FreeList8[T]) Slots() [][]T    { return f.slots[:] }
func (f *FreeList16[T]) Slots() [][]T   { return f.slots[:] }
func (f *FreeList32[T]) Slots() [][]T   { return f.slots[:] }
func (f *FreeList64[T]) Slots() [][]T   { return f.slots[:] }
func (f *FreeList128[T]) Slots() [][]T  { return f.slots[:] }
func (f *FreeList256[T]) Slots() [][]T  { return f.slots[:] }
func (f *FreeList1024[T]) Slots() [][]T { return f.slots[:] }
func (f *FreeList2048[T]) Slots() [][]T { return f.slots[:] }
func (f *FreeList4096[T]) Slots() [][]T { return f.slots[:] }
