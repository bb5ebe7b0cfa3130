package funcmax_test

// File: funcmax_test.go
// Scope: scenario-level behavior of FunctionMaxima — empty, monotone,
// multi-peak, plateau, erase, no-op overwrite, and the throwing-comparator
// rollback guarantee. Mirrors the scenario table the API was designed
// against; property-style tests live in property_test.go.

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/katalvlaran/funcmax"
)

func lessInt(x, y int) bool { return x < y }

func maximaPairs[A, V any](m *funcmax.FunctionMaxima[A, V]) []funcmax.Pair[A, V] {
	var out []funcmax.Pair[A, V]
	for c := m.MxBegin(); c.Valid(); c = c.Next() {
		out = append(out, c.Pair())
	}
	return out
}

func domainPairs[A, V any](m *funcmax.FunctionMaxima[A, V]) []funcmax.Pair[A, V] {
	var out []funcmax.Pair[A, V]
	for c := m.Begin(); c.Valid(); c = c.Next() {
		out = append(out, c.Pair())
	}
	return out
}

func TestEmpty(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	require.Equal(t, 0, m.Size())
	require.Empty(t, maximaPairs(m))

	_, err := m.ValueAt(0)
	require.True(t, errors.Is(err, funcmax.ErrArgumentNotFound))

	c, ok := m.Find(0)
	require.False(t, ok)
	require.False(t, c.Valid())
}

func TestSinglePoint(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	m.SetValue(1, 10)

	require.Equal(t, 1, m.Size())
	v, err := m.ValueAt(1)
	require.NoError(t, err)
	require.Equal(t, 10, v)

	require.Equal(t, []funcmax.Pair[int, int]{{Arg: 1, Value: 10}}, maximaPairs(m))
}

func TestMonotoneUp(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	for a := 0; a < 5; a++ {
		m.SetValue(a, a)
	}
	// Strictly increasing: only the last point is a local maximum (no
	// right neighbour, and not smaller than its left neighbour).
	require.Equal(t, []funcmax.Pair[int, int]{{Arg: 4, Value: 4}}, maximaPairs(m))
}

func TestTwoPeaks(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	values := map[int]int{0: 0, 1: 5, 2: 1, 3: 1, 4: 7, 5: 0}
	for a := 0; a <= 5; a++ {
		m.SetValue(a, values[a])
	}
	got := maximaPairs(m)
	require.Equal(t, []funcmax.Pair[int, int]{
		{Arg: 4, Value: 7},
		{Arg: 1, Value: 5},
	}, got)
}

func TestPlateau(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	for _, a := range []int{0, 1, 2, 3, 4} {
		m.SetValue(a, 5)
	}
	// A flat plateau: every point is non-decreasing and non-increasing
	// relative to both neighbours, so every point is a maximum. Ties in
	// value are broken by ascending argument.
	got := maximaPairs(m)
	require.Len(t, got, 5)
	for i, p := range got {
		require.Equal(t, i, p.Arg)
		require.Equal(t, 5, p.Value)
	}
}

func TestEraseMiddle(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	values := map[int]int{0: 0, 1: 5, 2: 1, 3: 1, 4: 7, 5: 0}
	for a := 0; a <= 5; a++ {
		m.SetValue(a, values[a])
	}
	m.Erase(2)
	require.Equal(t, 5, m.Size())
	_, err := m.ValueAt(2)
	require.True(t, errors.Is(err, funcmax.ErrArgumentNotFound))

	// Removing 2 merges the flat stretch {2,3} with its neighbours; 3
	// becomes adjacent to the peak at 1, and remains non-maximal since
	// its value (1) is less than 1's value (5)... so the maxima set is
	// unchanged apart from 2's own entry never having been one.
	require.Equal(t, []funcmax.Pair[int, int]{
		{Arg: 4, Value: 7},
		{Arg: 1, Value: 5},
	}, maximaPairs(m))
}

func TestOverwriteEqualIsNoOp(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	m.SetValue(0, 1)
	m.SetValue(1, 9)
	m.SetValue(2, 1)

	before := maximaPairs(m)
	m.SetValue(1, 9) // same value, should not perturb anything
	after := maximaPairs(m)
	require.Equal(t, before, after)
	require.Equal(t, 3, m.Size())
}

// TestThrowingComparatorRollsBack plants the panic on the comparator's 4th
// invocation during the call under test: the first two calls resolve
// values.find's failed lookup for the incoming value, the third is the
// insertion descent that stages it into the value index, and the fourth
// falls inside the neighbour re-classification that follows the domain
// insert. By then the call has already staged a value-index insertion and
// a domain insertion, so a correct rollback has real work to undo, not an
// empty stack.
func TestThrowingComparatorRollsBack(t *testing.T) {
	boom := errors.New("comparator exploded")
	const panicOnCall = 4
	calls := 0
	flaky := func(x, y int) bool {
		calls++
		if calls == panicOnCall {
			panic(boom)
		}
		return x < y
	}

	m := funcmax.New[int, int](lessInt, flaky)
	m.SetValue(0, 0) // a single point never reaches the comparator at all

	before := domainPairs(m)
	beforeMax := maximaPairs(m)
	beforeSize := m.Size()

	require.PanicsWithValue(t, boom, func() {
		m.SetValue(1, 1)
	})

	require.Equal(t, beforeSize, m.Size())
	require.Equal(t, before, domainPairs(m))
	require.Equal(t, beforeMax, maximaPairs(m))

	_, err := m.ValueAt(1)
	require.True(t, errors.Is(err, funcmax.ErrArgumentNotFound))
}

func TestClone(t *testing.T) {
	m := funcmax.New[int, int](lessInt, lessInt)
	m.SetValue(0, 3)
	m.SetValue(1, 1)
	m.SetValue(2, 5)

	c := m.Clone()
	c.SetValue(1, 100)
	c.Erase(2)

	require.Equal(t, 3, m.Size())
	v, err := m.ValueAt(1)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.Equal(t, 2, c.Size())
	v, err = c.ValueAt(1)
	require.NoError(t, err)
	require.Equal(t, 100, v)
}
