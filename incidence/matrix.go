package incidence

import (
	"errors"
	"fmt"

	"github.com/velkov/ordlat/order"
)

// Sentinel errors for incidence-algebra operations.
var (
	// ErrNilOrder is returned if a nil order is passed to New.
	ErrNilOrder = errors.New("incidence: order is nil")

	// ErrDimensionMismatch indicates two matrices are not indexed by the
	// same element extension.
	ErrDimensionMismatch = errors.New("incidence: matrix dimension mismatch")
)

// Matrix is a square integer matrix indexed by a fixed linear extension
// of a poset's elements.
//
// Index maps an element to its row/column; Data[i][j] is the entry for
// the pair (extension[i], extension[j]). Entries are exact int64 values.
type Matrix[T comparable] struct {
	// Index maps element → row/column index in Data.
	Index map[T]int
	// Extension is the element ordering backing the index.
	Extension []T
	// Data[i][j] holds the entry for (Extension[i], Extension[j]).
	Data [][]int64
}

// newMatrix allocates a zero matrix over the given extension.
func newMatrix[T comparable](ext []T) *Matrix[T] {
	n := len(ext)
	m := &Matrix[T]{
		Index:     make(map[T]int, n),
		Extension: append([]T(nil), ext...),
		Data:      make([][]int64, n),
	}
	for i, e := range ext {
		m.Index[e] = i
	}
	for i := range m.Data {
		m.Data[i] = make([]int64, n)
	}

	return m
}

// At returns the entry for the element pair (x, y).
func (m *Matrix[T]) At(x, y T) (int64, error) {
	i, ok := m.Index[x]
	if !ok {
		return 0, fmt.Errorf("incidence: %v: %w", x, order.ErrUnknownElement)
	}
	j, ok := m.Index[y]
	if !ok {
		return 0, fmt.Errorf("incidence: %v: %w", y, order.ErrUnknownElement)
	}

	return m.Data[i][j], nil
}

// Mul returns the matrix product m·other. Both matrices must be indexed
// by the same extension.
//
// Time Complexity: O(n³)
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	n := len(m.Extension)
	if other == nil || len(other.Extension) != n {
		return nil, ErrDimensionMismatch
	}
	for i, e := range m.Extension {
		if other.Extension[i] != e {
			return nil, fmt.Errorf("incidence: extension differs at %d: %w", i, ErrDimensionMismatch)
		}
	}

	out := newMatrix(m.Extension)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a := m.Data[i][k]
			if a == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out.Data[i][j] += a * other.Data[k][j]
			}
		}
	}

	return out, nil
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m *Matrix[T]) IsIdentity() bool {
	for i := range m.Data {
		for j := range m.Data[i] {
			want := int64(0)
			if i == j {
				want = 1
			}
			if m.Data[i][j] != want {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy sharing no state with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := newMatrix(m.Extension)
	for i := range m.Data {
		copy(out.Data[i], m.Data[i])
	}

	return out
}
