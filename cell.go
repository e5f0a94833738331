package stackalloc

// Cell is an exclusively owned view over a contiguous run of T handed out
// by AllocCell. While held, the cell is the only way to reach its storage.
// Passing it to FreeCell consumes the handle; using a consumed handle is a
// programming error and panics.
//
// The exposed length matches the requested size. A cell recycled from a
// slightly larger slot keeps the extra storage reachable through its
// capacity; callers must not assume those bytes are cleared or adjacent to
// anything.
type Cell[T any] struct {
	mem   []T
	freed bool
}

// Slice returns the cell's storage. The slice is valid until the cell is
// freed or the owning allocator is released.
func (c *Cell[T]) Slice() []T { return c.mem }

// Len returns the cell's exposed length in elements.
func (c *Cell[T]) Len() int { return len(c.mem) }

// Cap returns the true capacity of the cell's underlying storage.
func (c *Cell[T]) Cap() int { return cap(c.mem) }

// InitPolicy selects what a caller observes on memory it has never written.
// It is fixed per allocator at construction time.
type InitPolicy int

const (
	// Uninitialized leaves storage as-is: a recycled cell exposes whatever
	// its previous holder wrote.
	Uninitialized InitPolicy = iota

	// Zeroed clears storage whenever it enters the free pool, so both
	// virgin and recycled cells read zero.
	Zeroed
)
