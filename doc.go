// Package funcmax implements an incremental local-maxima index over a
// partial function f : A → V, where A and V are caller-supplied totally
// ordered types.
//
// A FunctionMaxima stores the graph of f — the set of (argument, value)
// pairs — and concurrently maintains the set of local maxima of f, so that
// both can be walked in their natural orders:
//
//   - SetValue(a, v) makes f(a) = v, inserting a into the domain if absent.
//   - Erase(a) removes a from the domain.
//   - Begin/End/Find walk the domain in argument order.
//   - MxBegin/MxEnd walk the maxima in (value descending, argument
//     ascending) order.
//
// A point is a local maximum at a iff f(a) is not strictly less than f at
// either of its immediate neighbours in argument order; a missing
// neighbour (a is the first or last argument) automatically satisfies that
// side's criterion.
//
// Under the hood, FunctionMaxima keeps three intrusive treaps in lock-step:
//
//	domain  — keyed by argument, the graph of f
//	maxima  — keyed by (value desc, argument asc), the local maxima
//	values  — keyed by value, weak handles used to deduplicate value storage
//
// and a reference-counted cell type shares argument and value storage
// between the domain index and a cloned FunctionMaxima without copying A or
// V (see cell.go).
//
// Every mutating method (SetValue, Erase) is strongly exception-safe: if a
// caller-supplied Less function panics partway through a mutation, the
// FunctionMaxima is left exactly as it was before the call, and the panic
// is re-raised unchanged once rollback completes. There is no locking and
// no concurrency support — a FunctionMaxima is a plain, single-threaded,
// in-process container.
package funcmax
