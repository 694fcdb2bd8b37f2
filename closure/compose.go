package closure

import (
	"fmt"
	"strconv"
	"strings"
)

// Endo is a total function on a finite carrier, tabulated by carrier
// index. Two endomorphisms are the same element of the composition
// closure iff their tables agree (extensional identity).
type Endo[T comparable] struct {
	carrier []T
	index   map[T]int
	table   []int // table[i] = carrier index of the image of carrier[i]
}

// NewEndo tabulates f over the carrier. Images outside the carrier are
// rejected with ErrNotEndo.
func NewEndo[T comparable](carrier []T, f func(T) T) (Endo[T], error) {
	e := Endo[T]{
		carrier: carrier,
		index:   make(map[T]int, len(carrier)),
		table:   make([]int, len(carrier)),
	}
	for i, x := range carrier {
		e.index[x] = i
	}
	for i, x := range carrier {
		img := f(x)
		j, ok := e.index[img]
		if !ok {
			return Endo[T]{}, fmt.Errorf("closure: image %v of %v: %w", img, x, ErrNotEndo)
		}
		e.table[i] = j
	}

	return e, nil
}

// Apply evaluates the endomorphism on a carrier element.
func (e Endo[T]) Apply(x T) (T, error) {
	var zero T
	i, ok := e.index[x]
	if !ok {
		return zero, fmt.Errorf("closure: %v: %w", x, ErrNotEndo)
	}

	return e.carrier[e.table[i]], nil
}

// After composes endomorphisms: (e.After(g))(x) = e(g(x)).
func (e Endo[T]) After(g Endo[T]) Endo[T] {
	out := Endo[T]{carrier: e.carrier, index: e.index, table: make([]int, len(e.table))}
	for i := range e.table {
		out.table[i] = e.table[g.table[i]]
	}

	return out
}

// key is the extensional identity of the endomorphism.
func (e Endo[T]) key() string {
	var sb strings.Builder
	for i, v := range e.table {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// CompositionClosure closes a finite set of endomorphisms under pairwise
// composition. The universe of endomorphisms on an n-element carrier has
// n^n members, so the iteration cap matters: pass WithMaxPasses to bound
// runaway generator sets, or rely on DefaultMaxPasses.
func CompositionClosure[T comparable](carrier []T, fns []func(T) T, opts ...Option) ([]Endo[T], error) {
	byKey := make(map[string]Endo[T], len(fns))
	seed := make([]string, 0, len(fns))
	for _, f := range fns {
		e, err := NewEndo(carrier, f)
		if err != nil {
			return nil, err
		}
		k := e.key()
		if _, dup := byKey[k]; dup {
			continue
		}
		byKey[k] = e
		seed = append(seed, k)
	}

	step := func(current []string) ([]string, error) {
		var out []string
		for _, ka := range current {
			for _, kb := range current {
				c := byKey[ka].After(byKey[kb])
				k := c.key()
				if _, ok := byKey[k]; !ok {
					byKey[k] = c
				}
				out = append(out, k)
			}
		}

		return out, nil
	}

	keys, err := Fix("composition closure", seed, step, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Endo[T], len(keys))
	for i, k := range keys {
		out[i] = byKey[k]
	}

	return out, nil
}
