package order

import "fmt"

// Visitation states for the linear-extension DFS.
const (
	white = iota // unvisited
	gray         // in progress
	black        // fully explored
)

// LinearExtension returns a total order of the elements compatible with
// Le: whenever x ≤ y, x appears before y. The extension is deterministic:
// roots and cover lists are explored in enumeration order.
//
// Cover cycles encountered during the walk (possible only after
// FromCovers with malformed input) surface as ErrMalformedRelation.
// You may pass WithContext(ctx) to enable cancellation.
//
// Time Complexity: O(n + |covers|)
func (p *Poset[T]) LinearExtension(opts ...Option) ([]T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(p.elems)
	state := make([]int, n)
	post := make([]int, 0, n)

	var visit func(i int) error
	visit = func(i int) error {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}
		switch state[i] {
		case gray:
			return fmt.Errorf("order: LinearExtension: cover cycle through %v: %w",
				p.elems[i], ErrMalformedRelation)
		case black:
			return nil
		}
		state[i] = gray
		for _, j := range p.up[i] {
			if err := visit(j); err != nil {
				return err
			}
		}
		state[i] = black
		post = append(post, i)

		return nil
	}

	for i := 0; i < n; i++ {
		if state[i] == white {
			if err := visit(i); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order places every element before its upper covers.
	out := make([]T, 0, n)
	for k := len(post) - 1; k >= 0; k-- {
		out = append(out, p.elems[post[k]])
	}

	return out, nil
}

// Dual returns the order-reversed poset: x ≤ y in the dual iff y ≤ x
// here. Covers swap direction; the element enumeration order is preserved.
func (p *Poset[T]) Dual() *Poset[T] {
	d := &Poset[T]{
		elems: make([]T, len(p.elems)),
		index: make(map[T]int, len(p.index)),
		up:    make([][]int, len(p.elems)),
		down:  make([][]int, len(p.elems)),
	}
	copy(d.elems, p.elems)
	for e, i := range p.index {
		d.index[e] = i
	}
	for i := range p.elems {
		d.up[i] = append([]int(nil), p.down[i]...)
		d.down[i] = append([]int(nil), p.up[i]...)
	}

	return d
}
