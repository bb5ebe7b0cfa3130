package funcmax

// File: cell.go
// Role: Reference-counted ownership of argument and value storage, with a
//       weak-handle mode so the value index can observe a value without
//       keeping it alive.
// Safety:
//   - Single-threaded only: counts are plain ints, never atomics.
//   - Every retain/release pair is balanced by the mutation engine; cell
//     itself enforces nothing beyond the counts.

// cell is a reference-counted box around a value of type T. strong counts
// track owners that keep the value alive (points in the domain index, and
// points in a clone sharing the original's storage). weak counts track
// observers, currently only valueIndex entries, that can see the value
// while it is alive but do not keep it alive.
//
// A cell with strong == 0 is dead: the engine evicts the weak entry of the
// container whose operation dropped the last strong reference, in that same
// operation; a clone's entry for a shared cell is not evicted (see
// value_index.go). upgrade reports liveness by refusing once strong reaches
// zero.
type cell[T any] struct {
	val    T
	strong int
	weak   int
}

// newCell allocates a cell holding val with a single strong reference.
func newCell[T any](val T) *cell[T] {
	return &cell[T]{val: val, strong: 1}
}

// retain adds one strong reference, returning the cell for chaining.
func (c *cell[T]) retain() *cell[T] {
	c.strong++
	return c
}

// release drops one strong reference and reports whether the cell is now
// dead (strong == 0). The caller is responsible for evicting any weak
// observer once release returns true.
func (c *cell[T]) release() bool {
	c.strong--
	return c.strong == 0
}

// weakRetain registers one weak observer.
func (c *cell[T]) weakRetain() {
	c.weak++
}

// weakRelease unregisters one weak observer.
func (c *cell[T]) weakRelease() {
	c.weak--
}

// upgrade reports whether the cell is still alive (strong > 0), the only
// operation a weak handle is allowed before dereferencing val.
func (c *cell[T]) upgrade() bool {
	return c.strong > 0
}
