package funcmax

// File: mutation.go
// Role: SetValue / Erase — the only operations that change a
// FunctionMaxima.
//
// Exception-safety: every step that can invoke a caller's LessFunc (and
// thus panic) either (a) runs before any state is touched, so a panic
// there leaves the container untouched with nothing to roll back, or
// (b) is wrapped so its effect is pushed onto an undoStack immediately
// after it succeeds. A single deferred recover, registered in each method
// once the non-mutating prefix is done, unwinds that stack and re-panics the original value unchanged once
// rollback completes. Steps that run after the last possibly-panicking
// call (the "finalisation") touch only treap removal and cell refcounts,
// neither of which ever invokes a caller's LessFunc, so they are no-throw
// by construction — see treap.go's remove, which compares priorities
// only.

// SetValue makes f(a) = v, inserting a into the domain if it is not
// already present. If a is already mapped to a value equal to v (under
// !(cur<v) && !(v<cur)), this is a no-op, including leaving maxima order
// for unrelated equal-valued points untouched.
//
// Complexity: O(log n) expected, plus O(1) neighbour re-classification.
func (m *FunctionMaxima[A, V]) SetValue(a A, v V) {
	argNode := m.domain.find(a)
	argWasPresent := argNode != nil
	if argWasPresent && equal(m.lessV, argNode.payload.Value(), v) {
		return
	}

	// Non-mutating prefix: every lookup below may invoke a caller's
	// LessFunc and panic, but none of them changes any state yet.
	var maxNode *treapNode[maximaKey[A, V], *point[A, V]]
	var oldValNode *treapNode[V, *cell[V]]
	if argWasPresent {
		maxNode = m.maxima.find(keyOf[A, V](argNode.payload))
		oldValNode = m.values.find(argNode.payload.Value())
	}

	newValNode := m.values.find(v)
	valWasPresent := newValNode != nil

	var argCell *cell[A]
	if argWasPresent {
		argCell = argNode.payload.arg
	} else {
		argCell = newCell(a)
	}

	var valCell *cell[V]
	if valWasPresent {
		valCell = newValNode.payload
	} else {
		valCell = newCell(v)
	}

	var stack undoStack
	defer func() {
		if r := recover(); r != nil {
			stack.unwind()
			panic(r)
		}
	}()

	// Step 3: stage the value cell's sharing. A freshly allocated cell
	// already carries the one strong reference its point will hold;
	// a reused cell needs an extra strong reference for the new sharer.
	// Either way the reference is "pending" until the point actually
	// attaches to it below, so its release is staged unconditionally.
	if valWasPresent {
		valCell.retain()
	}
	stack.push(func() { valCell.release() })

	if !valWasPresent {
		valNode := m.values.insert(valCell)
		stack.push(func() { m.values.remove(valNode) })
	}

	// Step 4: apply to DomainIndex.
	var pointNode domainNode[A, V]
	var priorVal *cell[V]
	if argWasPresent {
		pointNode = argNode
		priorVal = pointNode.payload.val
		pointNode.payload.val = valCell
		stack.push(func() { pointNode.payload.val = priorVal })
	} else {
		p := newPoint(argCell, valCell)
		pointNode = m.domain.insert(p)
		stack.push(func() { m.domain.remove(pointNode) })
	}

	// Step 5: future maximum status over the post-mutation graph
	// (no erase is in play, so the skip-one hint is nil throughout).
	leftNode := prev(pointNode)
	rightNode := next(pointNode)

	willBeMaxCenter := m.isMaximum(pointNode, nil)
	var willBeMaxLeft, willBeMaxRight bool
	var maxLeftNode, maxRightNode *treapNode[maximaKey[A, V], *point[A, V]]
	var wasMaxLeft, wasMaxRight bool
	if leftNode != nil {
		willBeMaxLeft = m.isMaximum(leftNode, nil)
		maxLeftNode = m.maxima.find(keyOf[A, V](leftNode.payload))
		wasMaxLeft = maxLeftNode != nil
	}
	if rightNode != nil {
		willBeMaxRight = m.isMaximum(rightNode, nil)
		maxRightNode = m.maxima.find(keyOf[A, V](rightNode.payload))
		wasMaxRight = maxRightNode != nil
	}

	shouldEraseLeft := leftNode != nil && wasMaxLeft && !willBeMaxLeft
	shouldEraseRight := rightNode != nil && wasMaxRight && !willBeMaxRight
	shouldInsertLeft := leftNode != nil && !wasMaxLeft && willBeMaxLeft
	shouldInsertRight := rightNode != nil && !wasMaxRight && willBeMaxRight

	// Step 6: stage maxima insertions.
	if willBeMaxCenter {
		n := m.maxima.insert(keyOf[A, V](pointNode.payload), pointNode.payload)
		stack.push(func() { m.maxima.remove(n) })
	}
	if shouldInsertLeft {
		n := m.maxima.insert(keyOf[A, V](leftNode.payload), leftNode.payload)
		stack.push(func() { m.maxima.remove(n) })
	}
	if shouldInsertRight {
		n := m.maxima.insert(keyOf[A, V](rightNode.payload), rightNode.payload)
		stack.push(func() { m.maxima.remove(n) })
	}

	// Step 7/8: commit (implicit — we simply stop pushing undo steps)
	// then finalise, no-throw from here on.
	if maxNode != nil {
		m.maxima.remove(maxNode)
	}
	if shouldEraseLeft {
		m.maxima.remove(maxLeftNode)
	}
	if shouldEraseRight {
		m.maxima.remove(maxRightNode)
	}
	if argWasPresent && priorVal.release() {
		if oldValNode != nil {
			m.values.remove(oldValNode)
		}
	}
}

// Erase removes a from the domain and repairs all indexes. A no-op if a
// is not in the domain.
//
// Complexity: O(log n) expected, plus O(1) neighbour re-classification.
func (m *FunctionMaxima[A, V]) Erase(a A) {
	argNode := m.domain.find(a)
	if argNode == nil {
		return
	}
	target := argNode.payload

	// Non-mutating prefix.
	ownMaxNode := m.maxima.find(keyOf[A, V](target))
	valNode := m.values.find(target.Value())

	leftNode := prev(argNode)
	rightNode := next(argNode)

	var maxLeftNode, maxRightNode *treapNode[maximaKey[A, V], *point[A, V]]
	var wasMaxLeft, wasMaxRight, willBeMaxLeft, willBeMaxRight bool
	if leftNode != nil {
		maxLeftNode = m.maxima.find(keyOf[A, V](leftNode.payload))
		wasMaxLeft = maxLeftNode != nil
		willBeMaxLeft = m.isMaximum(leftNode, argNode)
	}
	if rightNode != nil {
		maxRightNode = m.maxima.find(keyOf[A, V](rightNode.payload))
		wasMaxRight = maxRightNode != nil
		willBeMaxRight = m.isMaximum(rightNode, argNode)
	}

	shouldEraseLeft := leftNode != nil && wasMaxLeft && !willBeMaxLeft
	shouldEraseRight := rightNode != nil && wasMaxRight && !willBeMaxRight
	shouldInsertLeft := leftNode != nil && !wasMaxLeft && willBeMaxLeft
	shouldInsertRight := rightNode != nil && !wasMaxRight && willBeMaxRight

	var stack undoStack
	defer func() {
		if r := recover(); r != nil {
			stack.unwind()
			panic(r)
		}
	}()

	// Step 3: stage maxima insertions — the only throwing operations.
	if shouldInsertLeft {
		n := m.maxima.insert(keyOf[A, V](leftNode.payload), leftNode.payload)
		stack.push(func() { m.maxima.remove(n) })
	}
	if shouldInsertRight {
		n := m.maxima.insert(keyOf[A, V](rightNode.payload), rightNode.payload)
		stack.push(func() { m.maxima.remove(n) })
	}

	// Step 4: commit, then no-throw finalisation.
	if ownMaxNode != nil {
		m.maxima.remove(ownMaxNode)
	}
	m.domain.remove(argNode)
	if shouldEraseLeft {
		m.maxima.remove(maxLeftNode)
	}
	if shouldEraseRight {
		m.maxima.remove(maxRightNode)
	}
	target.arg.release()
	if target.val.release() {
		if valNode != nil {
			m.values.remove(valNode)
		}
	}
}
