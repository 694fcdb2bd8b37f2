package incidence

import (
	"errors"
	"fmt"
	"sync"

	"github.com/velkov/ordlat/order"
)

// ErrBridge is returned when an installed Bridge produces a matrix that
// is not the exact inverse of the zeta matrix.
var ErrBridge = errors.New("incidence: bridge produced a non-inverse matrix")

// Bridge computes the Möbius matrix externally, e.g. through a
// computer-algebra adapter. The extension fixes the row/column order;
// le answers order queries over it. Implementations must return an
// exact integer matrix over the same extension.
type Bridge[T comparable] interface {
	MobiusMatrix(ext []T, le func(x, y T) (bool, error)) (*Matrix[T], error)
}

// Option configures an Algebra via functional arguments.
type Option[T comparable] func(*options[T])

// options holds construction settings.
type options[T comparable] struct {
	bridge Bridge[T]
}

// WithBridge installs an external Möbius computer. The fallback
// back-substitution still runs once to cross-check the result; the two
// must agree entry for entry or New's first MobiusMatrix call fails
// with ErrBridge.
func WithBridge[T comparable](b Bridge[T]) Option[T] {
	return func(o *options[T]) { o.bridge = b }
}

// Algebra is the incidence algebra of a finite poset over a fixed
// linear extension. Matrices are computed lazily and cached; an Algebra
// is safe for concurrent use.
type Algebra[T comparable] struct {
	ord    order.Order[T]
	ext    []T
	bridge Bridge[T]

	mu     sync.RWMutex
	zeta   *Matrix[T]
	mobius *Matrix[T]
}

// New builds the incidence algebra of a finite order. The linear
// extension is fixed at construction: a *order.Poset uses its own
// deterministic extension, any other finite order is sorted minimal
// elements first with O(n²) Le queries.
func New[T comparable](ord order.Order[T], opts ...Option[T]) (*Algebra[T], error) {
	if ord == nil {
		return nil, ErrNilOrder
	}
	if !ord.Finite() {
		return nil, fmt.Errorf("incidence: New: %w", order.ErrInfiniteOrder)
	}
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	ext, err := linearize(ord)
	if err != nil {
		return nil, fmt.Errorf("incidence: New: %w", err)
	}

	return &Algebra[T]{ord: ord, ext: ext, bridge: o.bridge}, nil
}

// linearize picks a deterministic linear extension of ord.
func linearize[T comparable](ord order.Order[T]) ([]T, error) {
	if p, ok := any(ord).(*order.Poset[T]); ok {
		return p.LinearExtension()
	}

	// Topological insertion sort: place each element before the first
	// already-placed element strictly above it.
	var ext []T
	for _, x := range ord.Elements() {
		at := len(ext)
		for i, y := range ext {
			le, err := ord.Le(x, y)
			if err != nil {
				return nil, err
			}
			if le && x != y {
				at = i
				break
			}
		}
		ext = append(ext, x)
		copy(ext[at+1:], ext[at:])
		ext[at] = x
	}

	return ext, nil
}

// Extension returns a copy of the linear extension fixing the matrix
// index.
func (a *Algebra[T]) Extension() []T {
	return append([]T(nil), a.ext...)
}

// ZetaMatrix returns the zeta matrix: entry (i,j) is 1 iff
// ext[i] ≤ ext[j]. The matrix is upper-triangular with a unit diagonal
// and is computed once per Algebra.
func (a *Algebra[T]) ZetaMatrix() (*Matrix[T], error) {
	a.mu.RLock()
	z := a.zeta
	a.mu.RUnlock()
	if z != nil {
		return z.Clone(), nil
	}

	z = newMatrix(a.ext)
	for i, x := range a.ext {
		for j := i; j < len(a.ext); j++ {
			le, err := a.ord.Le(x, a.ext[j])
			if err != nil {
				return nil, fmt.Errorf("incidence: ZetaMatrix: %w", err)
			}
			if le {
				z.Data[i][j] = 1
			}
		}
	}

	a.mu.Lock()
	if a.zeta == nil {
		a.zeta = z
	}
	z = a.zeta
	a.mu.Unlock()

	return z.Clone(), nil
}

// MobiusMatrix returns the Möbius matrix, the exact integer inverse of
// the zeta matrix. With a Bridge installed its result is cross-checked
// against the triangular fallback; otherwise the fallback alone runs.
// Computed once per Algebra.
//
// Time Complexity: O(n³) integer operations.
func (a *Algebra[T]) MobiusMatrix() (*Matrix[T], error) {
	a.mu.RLock()
	m := a.mobius
	a.mu.RUnlock()
	if m != nil {
		return m.Clone(), nil
	}

	z, err := a.ZetaMatrix()
	if err != nil {
		return nil, err
	}
	m = backSubstitute(z)

	if a.bridge != nil {
		bm, err := a.bridge.MobiusMatrix(a.Extension(), a.ord.Le)
		if err != nil {
			return nil, fmt.Errorf("incidence: MobiusMatrix: %w", err)
		}
		if err := sameEntries(bm, m); err != nil {
			return nil, err
		}
		m = bm
	}

	a.mu.Lock()
	if a.mobius == nil {
		a.mobius = m
	}
	m = a.mobius
	a.mu.Unlock()

	return m.Clone(), nil
}

// backSubstitute inverts an upper-triangular zeta matrix row by row:
// μ(x,x) = 1 and μ(x,y) = −Σ_{x≤z<y} μ(x,z).
func backSubstitute[T comparable](z *Matrix[T]) *Matrix[T] {
	n := len(z.Extension)
	m := newMatrix(z.Extension)
	for i := 0; i < n; i++ {
		m.Data[i][i] = 1
		for j := i + 1; j < n; j++ {
			if z.Data[i][j] == 0 {
				continue
			}
			var sum int64
			for k := i; k < j; k++ {
				if z.Data[k][j] != 0 {
					sum += m.Data[i][k]
				}
			}
			m.Data[i][j] = -sum
		}
	}

	return m
}

// sameEntries checks that a bridge result matches the fallback exactly.
func sameEntries[T comparable](bridge, fallback *Matrix[T]) error {
	if bridge == nil || len(bridge.Extension) != len(fallback.Extension) {
		return fmt.Errorf("incidence: MobiusMatrix: %w", ErrBridge)
	}
	for i := range fallback.Data {
		if bridge.Extension[i] != fallback.Extension[i] {
			return fmt.Errorf("incidence: MobiusMatrix: extension differs at %d: %w", i, ErrBridge)
		}
		for j := range fallback.Data[i] {
			if bridge.Data[i][j] != fallback.Data[i][j] {
				return fmt.Errorf("incidence: MobiusMatrix: entry (%v,%v) = %d, want %d: %w",
					fallback.Extension[i], fallback.Extension[j],
					bridge.Data[i][j], fallback.Data[i][j], ErrBridge)
			}
		}
	}

	return nil
}

// Mobius evaluates the Möbius function μ(x, y). Lookups after the first
// read the cached matrix without copying it.
func (a *Algebra[T]) Mobius(x, y T) (int64, error) {
	a.mu.RLock()
	m := a.mobius
	a.mu.RUnlock()
	if m == nil {
		if _, err := a.MobiusMatrix(); err != nil {
			return 0, err
		}
		a.mu.RLock()
		m = a.mobius
		a.mu.RUnlock()
	}

	return m.At(x, y)
}
