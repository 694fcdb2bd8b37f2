package order

import (
	"fmt"
	"sort"
)

// Poset is an immutable finite partial order: an element set together with
// the transitive reduction (cover relation) of the order.
//
// Construction goes through New (full relation, closure computed and
// validated) or FromCovers (trusted cover pairs, not re-validated).
// A Poset never changes after construction; all methods are safe for
// concurrent use.
type Poset[T comparable] struct {
	elems []T       // fixed enumeration order (first-seen input order)
	index map[T]int // element → position in elems
	up    [][]int   // upper covers per element index, ascending
	down  [][]int   // lower covers per element index, ascending
}

// newSkeleton registers elements in first-seen order, dropping duplicates.
func newSkeleton[T comparable](elements []T) *Poset[T] {
	p := &Poset[T]{index: make(map[T]int, len(elements))}
	for _, e := range elements {
		if _, dup := p.index[e]; dup {
			continue
		}
		p.index[e] = len(p.elems)
		p.elems = append(p.elems, e)
	}
	p.up = make([][]int, len(p.elems))
	p.down = make([][]int, len(p.elems))

	return p
}

// New builds a Poset from elements and a generating relation of pairs
// (x, y) meaning x ≤ y. The reflexive-transitive closure is computed by
// fixpoint iteration; each full pass either adds at least one pair or
// terminates, so the loop runs at most |elements| passes. Distinct elements
// that end up mutually reachable make the relation non-antisymmetrizable
// and construction fails with ErrMalformedRelation.
//
// Duplicate elements are dropped, keeping the first occurrence.
func New[T comparable](elements []T, relation [][2]T, opts ...Option) (*Poset[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := newSkeleton(elements)
	n := len(p.elems)

	// Seed the reflexive closure plus the supplied generating pairs.
	le := make([][]bool, n)
	for i := range le {
		le[i] = make([]bool, n)
		le[i][i] = true
	}
	for _, pair := range relation {
		i, ok := p.index[pair[0]]
		if !ok {
			return nil, fmt.Errorf("order: New: pair (%v,%v): %v: %w", pair[0], pair[1], pair[0], ErrUnknownElement)
		}
		j, ok := p.index[pair[1]]
		if !ok {
			return nil, fmt.Errorf("order: New: pair (%v,%v): %v: %w", pair[0], pair[1], pair[1], ErrUnknownElement)
		}
		le[i][j] = true
	}

	// Transitive closure by fixpoint: add (i,k) whenever (i,j) and (j,k)
	// are present, until a full pass adds nothing.
	for changed := true; changed; {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}
		changed = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if !le[i][j] {
					continue
				}
				for k := 0; k < n; k++ {
					if le[j][k] && !le[i][k] {
						le[i][k] = true
						changed = true
					}
				}
			}
		}
	}

	// Antisymmetry: mutual reachability of distinct elements is a cycle.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if le[i][j] && le[j][i] {
				return nil, fmt.Errorf("order: New: %v and %v are mutually reachable: %w",
					p.elems[i], p.elems[j], ErrMalformedRelation)
			}
		}
	}

	// Transitive reduction: (i,j) is a cover iff i < j strictly and no
	// third element sits between them.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !le[i][j] {
				continue
			}
			cover := true
			for k := 0; k < n && cover; k++ {
				if k != i && k != j && le[i][k] && le[k][j] {
					cover = false
				}
			}
			if cover {
				p.up[i] = append(p.up[i], j)
				p.down[j] = append(p.down[j], i)
			}
		}
	}

	return p, nil
}

// FromCovers builds a Poset directly from cover pairs (x, y) meaning
// y covers x. The input is trusted as the exact transitive reduction of a
// strict partial order and is not re-validated; behavior on cyclic input
// is undefined (LinearExtension will surface ErrMalformedRelation for
// cycles it happens to walk, but queries may not).
func FromCovers[T comparable](elements []T, covers [][2]T) (*Poset[T], error) {
	p := newSkeleton(elements)
	seen := make(map[[2]int]struct{}, len(covers))
	for _, c := range covers {
		i, ok := p.index[c[0]]
		if !ok {
			return nil, fmt.Errorf("order: FromCovers: cover (%v,%v): %v: %w", c[0], c[1], c[0], ErrUnknownElement)
		}
		j, ok := p.index[c[1]]
		if !ok {
			return nil, fmt.Errorf("order: FromCovers: cover (%v,%v): %v: %w", c[0], c[1], c[1], ErrUnknownElement)
		}
		if i == j {
			continue // reflexive pairs carry no cover information
		}
		if _, dup := seen[[2]int{i, j}]; dup {
			continue
		}
		seen[[2]int{i, j}] = struct{}{}
		p.up[i] = append(p.up[i], j)
		p.down[j] = append(p.down[j], i)
	}
	// Cover lists are kept ascending for deterministic traversal.
	for i := range p.up {
		sort.Ints(p.up[i])
		sort.Ints(p.down[i])
	}

	return p, nil
}

// Len returns the number of elements.
func (p *Poset[T]) Len() int { return len(p.elems) }

// Has reports whether x belongs to the element set.
func (p *Poset[T]) Has(x T) bool {
	_, ok := p.index[x]

	return ok
}

// Elements returns the fixed enumeration order of the element set.
// The returned slice is a copy; the order is stable across calls.
func (p *Poset[T]) Elements() []T {
	out := make([]T, len(p.elems))
	copy(out, p.elems)

	return out
}

// Finite always reports true: a Poset is fully materialized.
func (p *Poset[T]) Finite() bool { return true }

// CoverPairs returns every Hasse-diagram edge as a pair (x, y) with y
// covering x, in enumeration order. Together with Elements this is the
// full reconstruction surface for serialization adapters:
// FromCovers(Elements(), CoverPairs()) preserves Le for all pairs.
func (p *Poset[T]) CoverPairs() [][2]T {
	var out [][2]T
	for i, ups := range p.up {
		for _, j := range ups {
			out = append(out, [2]T{p.elems[i], p.elems[j]})
		}
	}

	return out
}

// pair resolves two elements to their indices, or ErrUnknownElement.
func (p *Poset[T]) pair(x, y T) (int, int, error) {
	ix, ok := p.index[x]
	if !ok {
		return 0, 0, fmt.Errorf("order: %v: %w", x, ErrUnknownElement)
	}
	iy, ok := p.index[y]
	if !ok {
		return 0, 0, fmt.Errorf("order: %v: %w", y, ErrUnknownElement)
	}

	return ix, iy, nil
}

// at resolves one element to its index, or ErrUnknownElement.
func (p *Poset[T]) at(x T) (int, error) {
	ix, ok := p.index[x]
	if !ok {
		return 0, fmt.Errorf("order: %v: %w", x, ErrUnknownElement)
	}

	return ix, nil
}
