package closure

import (
	"fmt"

	"github.com/velkov/ordlat/order"
)

// DownSet returns the order-ideal closure over ord: cl(S) is the set of
// all elements below some member of S. One application suffices; the
// rule costs O(|S|·|E|) Le queries.
func DownSet[T comparable](ord order.Order[T]) (Operator[T], error) {
	return orderClosure("order-ideal", ord, false)
}

// UpSet returns the order-filter closure over ord: cl(S) is the set of
// all elements above some member of S.
func UpSet[T comparable](ord order.Order[T]) (Operator[T], error) {
	return orderClosure("order-filter", ord, true)
}

// orderClosure builds the shared ideal/filter rule.
func orderClosure[T comparable](name string, ord order.Order[T], upward bool) (Operator[T], error) {
	if ord == nil {
		return Operator[T]{}, ErrNilOrder
	}
	if !ord.Finite() {
		return Operator[T]{}, fmt.Errorf("closure: %s: %w", name, order.ErrInfiniteOrder)
	}
	universe := ord.Elements()

	rule := func(subset []T) ([]T, error) {
		out := make([]T, 0, len(subset))
		for _, z := range universe {
			hit := false
			for _, x := range subset {
				var le bool
				var err error
				if upward {
					le, err = ord.Le(x, z)
				} else {
					le, err = ord.Le(z, x)
				}
				if err != nil {
					return nil, err
				}
				if le {
					hit = true
					break
				}
			}
			if hit {
				out = append(out, z)
			}
		}

		return out, nil
	}

	return Operator[T]{
		Name:       name,
		Rule:       rule,
		Extensive:  true,
		Idempotent: true,
		Monotone:   true,
	}, nil
}

// FromEndo lifts an element map h to the subset operator
// cl(S) = S ∪ h(S). When h is idempotent and monotone — a closure map on
// its poset — the lift satisfies all three Moore axioms.
func FromEndo[T comparable](name string, h func(T) T) Operator[T] {
	rule := func(subset []T) ([]T, error) {
		out := make([]T, 0, 2*len(subset))
		out = append(out, subset...)
		for _, x := range subset {
			out = append(out, h(x))
		}

		return out, nil
	}

	return Operator[T]{
		Name:       name,
		Rule:       rule,
		Extensive:  true,
		Idempotent: true,
		Monotone:   true,
	}
}

// Polar maps a subset S of the left domain to the elements of the right
// domain related to everything in S: {y ∈ ys : x R y for every x ∈ S}.
// The empty subset polarizes to all of ys.
func Polar[X, Y comparable](ys []Y, rel func(X, Y) bool) func(subset []X) []Y {
	return func(subset []X) []Y {
		out := make([]Y, 0, len(ys))
		for _, y := range ys {
			all := true
			for _, x := range subset {
				if !rel(x, y) {
					all = false
					break
				}
			}
			if all {
				out = append(out, y)
			}
		}

		return out
	}
}

// GaloisClosure builds the closure operator induced on the left domain
// by a binary relation: cl(S) = {x ∈ xs : x R y for every y in the polar
// of S}. Closed sets of this operator are exactly the Galois-closed sets
// of the relation.
func GaloisClosure[X, Y comparable](xs []X, ys []Y, rel func(X, Y) bool) Operator[X] {
	polar := Polar(ys, rel)
	dual := Polar(xs, func(y Y, x X) bool { return rel(x, y) })

	rule := func(subset []X) ([]X, error) {
		return dual(polar(subset)), nil
	}

	return Operator[X]{
		Name:       "galois",
		Rule:       rule,
		Extensive:  true,
		Idempotent: true,
		Monotone:   true,
	}
}
