package stackalloc

import (
	"fmt"
)

// Example demonstrates the recycle discipline over a caller-owned buffer.
func Example() {
	var pool FreeList4[byte]
	var buf [1024]byte
	a := NewStackAllocator[byte](&pool, buf[:], Zeroed)

	c := a.AllocCell(4)
	copy(c.Slice(), "data")
	fmt.Printf("%s %d/%d\n", c.Slice(), c.Len(), c.Cap())
	a.FreeCell(&c)

	d := a.AllocCell(4) // recycles c's storage, scrubbed by the Zeroed policy
	fmt.Println(d.Slice()[0])
	// Output:
	// data 4/4
	// 0
}

// ExampleNewHeapAllocator shows the self-owned backing store.
func ExampleNewHeapAllocator() {
	a := NewHeapAllocator[byte](8, 1<<16, Uninitialized)
	defer a.Release()

	c := a.AllocCell(9)
	fmt.Println(c.Len(), a.OverflowCount())
	// Output: 9 0
}

// ExampleNewRawAllocator wires the allocator to an integrator-supplied
// raw-allocation primitive; here the stock mmap-backed one.
func ExampleNewRawAllocator() {
	var pool FreeList8[int32]
	a := NewRawAllocator[int32](&pool, SystemRawAlloc, 4096, Uninitialized)

	c := a.AllocCell(128)
	c.Slice()[127] = 7
	fmt.Println(c.Len(), c.Slice()[127])
	// Output: 128 7
}
