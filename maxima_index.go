package funcmax

// File: maxima_index.go
// Role: Ordered set of points keyed by (value desc, argument asc) — the
// local maxima of f.
//
// Key design note: the key stored for each entry is a *snapshot*
// (maximaKey{val, arg}), not a live pointer into a mutating point. A
// comparator must never observe a point whose value is being mutated
// concurrently; snapshotting the key at insertion time sidesteps that by
// construction — once inserted, a maximaIndex entry's sort key never
// changes, even though the underlying point's value slot is later
// rewritten in place by the mutation engine. A stale entry (one whose
// point has since changed value) is recognized by its old key and removed
// explicitly by the engine — it is never re-compared against a live,
// mutating point.

type maximaKey[A, V any] struct {
	val V
	arg A
}

type maximaIndex[A, V any] struct {
	t *treap[maximaKey[A, V], *point[A, V]]
}

func newMaximaIndex[A, V any](lessA LessFunc[A], lessV LessFunc[V]) *maximaIndex[A, V] {
	less := func(x, y maximaKey[A, V]) bool {
		if lessV(y.val, x.val) {
			return true
		}
		if lessV(x.val, y.val) {
			return false
		}
		return lessA(x.arg, y.arg)
	}
	return &maximaIndex[A, V]{t: newTreap[maximaKey[A, V], *point[A, V]](less)}
}

func keyOf[A, V any](p *point[A, V]) maximaKey[A, V] {
	return maximaKey[A, V]{val: p.Value(), arg: p.Arg()}
}

// find reports the node representing key's current maxima-set membership,
// or nil. Callers pass the key as observed at the time they care about
// (usually keyOf(p) read before p's value is rewritten).
func (m *maximaIndex[A, V]) find(key maximaKey[A, V]) *treapNode[maximaKey[A, V], *point[A, V]] {
	return m.t.find(key)
}

func (m *maximaIndex[A, V]) insert(key maximaKey[A, V], p *point[A, V]) *treapNode[maximaKey[A, V], *point[A, V]] {
	return m.t.insert(key, p)
}

func (m *maximaIndex[A, V]) remove(n *treapNode[maximaKey[A, V], *point[A, V]]) {
	m.t.remove(n)
}

func (m *maximaIndex[A, V]) first() *treapNode[maximaKey[A, V], *point[A, V]] { return m.t.min() }
