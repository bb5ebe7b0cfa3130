package funcmax

// File: point.go
// Role: An (argument, value) pair sharing its storage cells.
//
// point.arg never changes after construction; point.val is rewritten in
// place by the mutation engine while the point sits inside domainIndex and
// maximaIndex, which is safe because neither index's ordering key reads
// val — domainIndex orders by arg, and maximaIndex orders by a maximaKey
// snapshot taken at insertion, never by inspecting a live point.val (the
// engine rewrites val first and then removes the stale entry by its old
// key; see mutation.go and maxima_index.go).
type point[A, V any] struct {
	arg *cell[A]
	val *cell[V]
}

// newPoint allocates a point holding both cells. It does not retain them:
// the caller passes in strong references that the point takes over.
func newPoint[A, V any](arg *cell[A], val *cell[V]) *point[A, V] {
	return &point[A, V]{arg: arg, val: val}
}

// Arg returns the point's argument.
func (p *point[A, V]) Arg() A { return p.arg.val }

// Value returns the point's current value.
func (p *point[A, V]) Value() V { return p.val.val }

// Pair is a read-only snapshot of a point, returned by the public
// iteration surface so callers never see the internal cell/treap types.
type Pair[A, V any] struct {
	Arg   A
	Value V
}

func (p *point[A, V]) pair() Pair[A, V] {
	return Pair[A, V]{Arg: p.Arg(), Value: p.Value()}
}

// ComparePoints orders two points the way maximaIndex does: greater value
// first, ties broken by smaller argument first. Exposed so callers can sort
// an exported snapshot ([]Pair) consistently with MxBegin/MxEnd without
// reaching into package internals.
func ComparePoints[A, V any](lessA LessFunc[A], lessV LessFunc[V], x, y Pair[A, V]) bool {
	if lessV(y.Value, x.Value) {
		return true
	}
	if lessV(x.Value, y.Value) {
		return false
	}
	return lessA(x.Arg, y.Arg)
}
