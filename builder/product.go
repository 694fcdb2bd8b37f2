package builder

import (
	"fmt"

	"github.com/velkov/ordlat/order"
)

// Pair is an element of a product poset.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// Product builds the componentwise order on pairs:
// (a,b) ≤ (a',b') iff a ≤ a' in p and b ≤ b' in q. Both factors must be
// finite. Enumeration runs p's elements in the outer loop.
//
// Time Complexity: O(|p|²·|q|²) Le queries at construction.
func Product[A, B comparable](p order.Order[A], q order.Order[B]) (*order.Poset[Pair[A, B]], error) {
	if p == nil || q == nil {
		return nil, fmt.Errorf("builder: Product: %w", ErrTooFewElements)
	}
	if !p.Finite() || !q.Finite() {
		return nil, fmt.Errorf("builder: Product: %w", order.ErrInfiniteOrder)
	}

	var elems []Pair[A, B]
	for _, a := range p.Elements() {
		for _, b := range q.Elements() {
			elems = append(elems, Pair[A, B]{First: a, Second: b})
		}
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("builder: Product: %w", ErrTooFewElements)
	}

	var rel [][2]Pair[A, B]
	for _, x := range elems {
		for _, y := range elems {
			leA, err := p.Le(x.First, y.First)
			if err != nil {
				return nil, fmt.Errorf("builder: Product: %w", err)
			}
			if !leA {
				continue
			}
			leB, err := q.Le(x.Second, y.Second)
			if err != nil {
				return nil, fmt.Errorf("builder: Product: %w", err)
			}
			if leB {
				rel = append(rel, [2]Pair[A, B]{x, y})
			}
		}
	}

	return order.New(elems, rel)
}
