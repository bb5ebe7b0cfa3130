package funcmax

// File: treap.go
// Role: Generic intrusive treap used as the storage for domainIndex,
//       maximaIndex and valueIndex. Takes an explicit comparator over a
//       separate key type K with a stored payload P, so that
//       DomainIndex/ValueIndex can do transparent lookup (find by a bare
//       A or V without constructing a probe point) and MaximaIndex can key by
//       the compound (value desc, arg asc) order.
//
// Determinism:
//   - Iteration order (treapNode.next/prev) always matches in-order key
//     order, regardless of insertion order or rebalancing history.
// Safety:
//   - Not safe for concurrent use; callers (the three index wrappers and
//     the mutation engine) are themselves single-threaded per spec.

import "math/rand/v2"

// treapNode is one node of an intrusive treap. parent/left/right form the
// tree; pri is the random priority used to keep the tree balanced in
// expectation.
type treapNode[K, P any] struct {
	parent, left, right *treapNode[K, P]
	key                 K
	payload             P
	pri                 uint64
}

// treap is an ordered container of (K, P) pairs under a caller-supplied
// strict weak order less. It supports O(log n) expected find/insert/
// remove and predecessor/successor given a node via parent links (O(log n)
// expected per step, amortised O(1) over a full walk), which the mutation
// engine relies on for neighbour lookups.
type treap[K, P any] struct {
	root *treapNode[K, P]
	less func(K, K) bool
	size int
}

func newTreap[K, P any](less func(K, K) bool) *treap[K, P] {
	return &treap[K, P]{less: less}
}

func (t *treap[K, P]) Len() int { return t.size }

// find locates the node whose key equals k under less, or nil.
func (t *treap[K, P]) find(k K) *treapNode[K, P] {
	n := t.root
	for n != nil {
		switch {
		case t.less(k, n.key):
			n = n.left
		case t.less(n.key, k):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insert adds a new node with key k and payload p. The caller must have
// already verified k is absent (find(k) == nil); insert does not check.
// Returns the newly created node.
func (t *treap[K, P]) insert(k K, p P) *treapNode[K, P] {
	var parent *treapNode[K, P]
	link := &t.root
	for *link != nil {
		parent = *link
		if t.less(k, parent.key) {
			link = &parent.left
		} else {
			link = &parent.right
		}
	}
	n := &treapNode[K, P]{parent: parent, key: k, payload: p, pri: rand.Uint64()}
	*link = n
	t.size++
	t.rotateUp(n)
	return n
}

// remove deletes n from the treap. n must belong to t.
func (t *treap[K, P]) remove(n *treapNode[K, P]) {
	// Rotate n down to a leaf, always preferring to rotate up the
	// higher-priority child, then unlink it.
	for n.left != nil || n.right != nil {
		if n.right == nil || (n.left != nil && n.left.pri > n.right.pri) {
			t.rotateRight(n)
		} else {
			t.rotateLeft(n)
		}
	}
	switch p := n.parent; {
	case p == nil:
		t.root = nil
	case p.left == n:
		p.left = nil
	default:
		p.right = nil
	}
	n.parent, n.left, n.right = nil, nil, nil
	t.size--
}

// rotateUp rotates n upward until its priority no longer violates the
// heap property against its parent.
func (t *treap[K, P]) rotateUp(n *treapNode[K, P]) {
	for n.parent != nil && n.parent.pri < n.pri {
		if n.parent.left == n {
			t.rotateRight(n.parent)
		} else {
			t.rotateLeft(n.parent)
		}
	}
}

// rotateLeft performs a standard left rotation around x, bringing x.right
// up to take x's place.
func (t *treap[K, P]) rotateLeft(x *treapNode[K, P]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch p := x.parent; {
	case p == nil:
		t.root = y
	case p.left == x:
		p.left = y
	default:
		p.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight performs a standard right rotation around x, bringing
// x.left up to take x's place.
func (t *treap[K, P]) rotateRight(x *treapNode[K, P]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch p := x.parent; {
	case p == nil:
		t.root = y
	case p.left == x:
		p.left = y
	default:
		p.right = y
	}
	y.right = x
	x.parent = y
}

// min returns the node with the smallest key, or nil if empty.
func (t *treap[K, P]) min() *treapNode[K, P] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// next returns the in-order successor of n, or nil if n is the last node.
func next[K, P any](n *treapNode[K, P]) *treapNode[K, P] {
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		return n
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// prev returns the in-order predecessor of n, or nil if n is the first node.
func prev[K, P any](n *treapNode[K, P]) *treapNode[K, P] {
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right
		}
		return n
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}
