package funcmax

// File: domain_index.go
// Role: Ordered set of points keyed by argument — the graph of f.
// Arguments are unique; the mutation engine enforces this by always
// calling find before insert.

type domainIndex[A, V any] struct {
	t *treap[A, *point[A, V]]
}

func newDomainIndex[A, V any](lessA LessFunc[A]) *domainIndex[A, V] {
	return &domainIndex[A, V]{t: newTreap[A, *point[A, V]](lessA)}
}

func (d *domainIndex[A, V]) Len() int { return d.t.Len() }

// find is transparent lookup: a bare A is compared directly against stored
// keys, no probe point is ever constructed.
func (d *domainIndex[A, V]) find(a A) *treapNode[A, *point[A, V]] {
	return d.t.find(a)
}

func (d *domainIndex[A, V]) insert(p *point[A, V]) *treapNode[A, *point[A, V]] {
	return d.t.insert(p.Arg(), p)
}

func (d *domainIndex[A, V]) remove(n *treapNode[A, *point[A, V]]) {
	d.t.remove(n)
}

func (d *domainIndex[A, V]) first() *treapNode[A, *point[A, V]] { return d.t.min() }
