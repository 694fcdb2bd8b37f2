package order

import "iter"

// Lazy is a generator-backed order with an explicit infinite tag.
//
// It satisfies the Order contract for comparability queries while never
// materializing its carrier: Elements returns nil and Finite reports
// false, so finite-only consumers (lattice, galois, incidence) fail fast
// with ErrInfiniteOrder instead of looping forever. Use Seq to enumerate
// a prefix of the carrier.
type Lazy[T comparable] struct {
	// LeFn answers x ≤ y for the lazy order.
	LeFn func(x, y T) (bool, error)

	// SeqFn yields carrier elements, possibly without end.
	SeqFn func(yield func(T) bool)
}

// Le reports whether x ≤ y by delegating to LeFn.
func (l *Lazy[T]) Le(x, y T) (bool, error) { return l.LeFn(x, y) }

// Elements is undefined for a lazy order and returns nil.
func (l *Lazy[T]) Elements() []T { return nil }

// Finite always reports false.
func (l *Lazy[T]) Finite() bool { return false }

// Seq returns the element generator as an iterator. Consumers must bound
// their own iteration; the sequence may be infinite.
func (l *Lazy[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.SeqFn != nil {
			l.SeqFn(yield)
		}
	}
}
