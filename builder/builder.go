package builder

import (
	"fmt"
	"sort"

	"github.com/velkov/ordlat/order"
)

// Chain builds the total order 0 < 1 < ... < n-1.
//
// Time Complexity: O(n)
func Chain(n int) (*order.Poset[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("builder: Chain(%d): %w", n, ErrBadSize)
	}
	elems := make([]int, n)
	covers := make([][2]int, 0, n-1)
	for i := 0; i < n; i++ {
		elems[i] = i
		if i > 0 {
			covers = append(covers, [2]int{i - 1, i})
		}
	}

	return order.FromCovers(elems, covers)
}

// Antichain builds the discrete order on elems: reflexivity only, no two
// distinct elements comparable.
func Antichain[T comparable](elems []T) (*order.Poset[T], error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("builder: Antichain: %w", ErrTooFewElements)
	}

	return order.FromCovers(elems, nil)
}

// Divisors builds the divisors of n ordered by divisibility. For n = 1
// the result is the one-element poset.
//
// Time Complexity: O(d²) for d divisors.
func Divisors(n int) (*order.Poset[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("builder: Divisors(%d): %w", n, ErrBadSize)
	}
	var elems []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			elems = append(elems, d)
		}
	}
	var rel [][2]int
	for _, x := range elems {
		for _, y := range elems {
			if y%x == 0 {
				rel = append(rel, [2]int{x, y})
			}
		}
	}

	return order.New(elems, rel)
}

// SubsetID renders a subset of labels canonically: members sorted and
// comma-joined inside braces, e.g. "{a,c}". The empty subset is "{}".
func SubsetID(members []string) string {
	sorted := append([]string(nil), members...)
	sort.Strings(sorted)
	out := "{"
	for i, m := range sorted {
		if i > 0 {
			out += ","
		}
		out += m
	}

	return out + "}"
}
