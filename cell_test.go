package stackalloc

import (
	"testing"
)

type vec3 struct {
	x, y, z float32
}

func TestTypedCells(t *testing.T) {
	a := NewHeapAllocator[vec3](4, 1024, Zeroed)

	c := a.AllocCell(10)
	if c.Len() != 10 {
		t.Fatalf("Len = %d, want 10", c.Len())
	}
	c.Slice()[9] = vec3{1, 2, 3}
	a.FreeCell(&c)

	d := a.AllocCell(10)
	if d.Slice()[9] != (vec3{}) {
		t.Errorf("Zeroed policy exposed stale element %+v", d.Slice()[9])
	}
}

func TestCellLenCap(t *testing.T) {
	a := NewHeapAllocator[byte](4, 256, Uninitialized)

	c := a.AllocCell(16)
	if c.Cap() != 16 {
		t.Errorf("carved cell Cap = %d, want 16", c.Cap())
	}
	a.FreeCell(&c)

	// A 13-element request recycles the 16-capacity cell whole: exposed
	// length is exactly the request, the surplus stays reachable via Cap.
	d := a.AllocCell(13)
	if d.Len() != 13 {
		t.Errorf("Len = %d, want 13", d.Len())
	}
	if d.Cap() != 16 {
		t.Errorf("Cap = %d, want 16", d.Cap())
	}
}

func TestZeroValueCellFree(t *testing.T) {
	a := NewHeapAllocator[byte](2, 64, Uninitialized)

	var c Cell[byte]
	a.FreeCell(&c) // the empty cell holds no storage; freeing it is cheap

	if got := a.FreeListStart(); got != 1 {
		t.Errorf("FreeListStart = %d, want 1 (empty free must not claim a slot)", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on second free of the same cell")
		}
	}()
	a.FreeCell(&c)
}
