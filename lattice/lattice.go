package lattice

import (
	"fmt"
	"sync"

	"github.com/velkov/ordlat/order"
)

// Bound operation names used in cache keys and BoundError values.
const (
	opMeet = "meet"
	opJoin = "join"
)

// pairKey is an unordered element pair, normalized by index.
type pairKey struct {
	lo, hi int
}

// memo is a memoized bound: the value, or an explicit "undefined" marker.
type memo[T comparable] struct {
	val T
	ok  bool
}

// Lattice answers meet/join queries over a finite order with
// instance-scoped memoization. Construct with New; safe for concurrent
// use.
type Lattice[T comparable] struct {
	ord   order.Order[T]
	elems []T
	index map[T]int

	mu        sync.RWMutex
	meetCache map[pairKey]memo[T]
	joinCache map[pairKey]memo[T]
}

// New wraps ord in a Lattice. The order must be finite; WithVerify runs
// the exhaustive all-pairs check and surfaces the first pair without a
// meet or join as a *BoundError (ErrNotALattice).
func New[T comparable](ord order.Order[T], opts ...Option) (*Lattice[T], error) {
	if ord == nil {
		return nil, ErrNilOrder
	}
	if !ord.Finite() {
		return nil, fmt.Errorf("lattice: New: %w", order.ErrInfiniteOrder)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	elems := ord.Elements()
	l := &Lattice[T]{
		ord:       ord,
		elems:     elems,
		index:     make(map[T]int, len(elems)),
		meetCache: make(map[pairKey]memo[T]),
		joinCache: make(map[pairKey]memo[T]),
	}
	for i, e := range elems {
		l.index[e] = i
	}

	if o.verify {
		if err := l.verify(o); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Order returns the underlying order.
func (l *Lattice[T]) Order() order.Order[T] { return l.ord }

// Elements returns the element enumeration, shared with the underlying
// order.
func (l *Lattice[T]) Elements() []T {
	out := make([]T, len(l.elems))
	copy(out, l.elems)

	return out
}

// Meet returns the greatest lower bound of x and y, or a *BoundError
// (ErrNotALattice) when no unique bound exists.
func (l *Lattice[T]) Meet(x, y T) (T, error) { return l.bound(x, y, opMeet) }

// Join returns the least upper bound of x and y, or a *BoundError
// (ErrNotALattice) when no unique bound exists.
func (l *Lattice[T]) Join(x, y T) (T, error) { return l.bound(x, y, opJoin) }

// Infimum folds Meet over xs. The empty sequence is undefined:
// ok == false with a nil error.
func (l *Lattice[T]) Infimum(xs []T) (T, bool, error) { return l.fold(xs, opMeet) }

// Supremum folds Join over xs. The empty sequence is undefined:
// ok == false with a nil error.
func (l *Lattice[T]) Supremum(xs []T) (T, bool, error) { return l.fold(xs, opJoin) }

// bound computes or recalls the memoized meet/join of an unordered pair.
func (l *Lattice[T]) bound(x, y T, op string) (T, error) {
	var zero T
	ix, ok := l.index[x]
	if !ok {
		return zero, fmt.Errorf("lattice: %v: %w", x, order.ErrUnknownElement)
	}
	iy, ok := l.index[y]
	if !ok {
		return zero, fmt.Errorf("lattice: %v: %w", y, order.ErrUnknownElement)
	}

	key := pairKey{lo: ix, hi: iy}
	if key.lo > key.hi {
		key.lo, key.hi = key.hi, key.lo
	}
	cache := l.meetCache
	if op == opJoin {
		cache = l.joinCache
	}

	l.mu.RLock()
	m, hit := cache[key]
	l.mu.RUnlock()
	if !hit {
		val, defined, err := l.compute(ix, iy, op)
		if err != nil {
			return zero, err
		}
		m = memo[T]{val: val, ok: defined}
		// Write-once: concurrent computations store identical values, so
		// the race is redundant work, never a wrong answer.
		l.mu.Lock()
		cache[key] = m
		l.mu.Unlock()
	}
	if !m.ok {
		return zero, &BoundError{Op: op, X: x, Y: y}
	}

	return m.val, nil
}

// compute scans for common bounds of the pair and selects the unique
// extremum among them, if any.
func (l *Lattice[T]) compute(ix, iy int, op string) (T, bool, error) {
	var zero T
	x, y := l.elems[ix], l.elems[iy]

	// Collect common lower (meet) or upper (join) bounds.
	var cand []T
	for _, z := range l.elems {
		bx, err := l.le(z, x, op)
		if err != nil {
			return zero, false, err
		}
		if !bx {
			continue
		}
		by, err := l.le(z, y, op)
		if err != nil {
			return zero, false, err
		}
		if by {
			cand = append(cand, z)
		}
	}
	if len(cand) == 0 {
		return zero, false, nil
	}

	// The bound must dominate every other candidate; if the candidates
	// top out in mutually incomparable elements the pair has no bound.
	for _, m := range cand {
		extremum := true
		for _, z := range cand {
			if z == m {
				continue
			}
			dom, err := l.le(z, m, op)
			if err != nil {
				return zero, false, err
			}
			if !dom {
				extremum = false
				break
			}
		}
		if extremum {
			return m, true, nil
		}
	}

	return zero, false, nil
}

// le answers a ≤ b for meets and the reversed comparison for joins, so
// compute can run one scan for both duals.
func (l *Lattice[T]) le(a, b T, op string) (bool, error) {
	if op == opJoin {
		a, b = b, a
	}

	return l.ord.Le(a, b)
}

// fold reduces xs by the requested bound operation.
func (l *Lattice[T]) fold(xs []T, op string) (T, bool, error) {
	var zero T
	if len(xs) == 0 {
		return zero, false, nil
	}
	acc := xs[0]
	if _, ok := l.index[acc]; !ok {
		return zero, false, fmt.Errorf("lattice: %v: %w", acc, order.ErrUnknownElement)
	}
	for _, x := range xs[1:] {
		v, err := l.bound(acc, x, op)
		if err != nil {
			return zero, false, err
		}
		acc = v
	}

	return acc, true, nil
}

// verify runs the exhaustive all-pairs lattice check.
func (l *Lattice[T]) verify(o options) error {
	for _, x := range l.elems {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}
		for _, y := range l.elems {
			if _, err := l.Meet(x, y); err != nil {
				return err
			}
			if _, err := l.Join(x, y); err != nil {
				return err
			}
		}
	}

	return nil
}
