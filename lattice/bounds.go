package lattice

import (
	"errors"
	"fmt"

	"github.com/velkov/ordlat/order"
)

// Top returns the greatest element, or ErrUnbounded when none exists.
// Antisymmetry guarantees at most one.
func (l *Lattice[T]) Top() (T, error) { return l.extremum(true) }

// Bottom returns the least element, or ErrUnbounded when none exists.
func (l *Lattice[T]) Bottom() (T, error) { return l.extremum(false) }

// extremum scans for the element above (greatest) or below (least) every
// other element.
func (l *Lattice[T]) extremum(greatest bool) (T, error) {
	var zero T
	for _, x := range l.elems {
		all := true
		for _, y := range l.elems {
			var dom bool
			var err error
			if greatest {
				dom, err = l.ord.Le(y, x)
			} else {
				dom, err = l.ord.Le(x, y)
			}
			if err != nil {
				return zero, err
			}
			if !dom {
				all = false
				break
			}
		}
		if all {
			return x, nil
		}
	}
	name := "bottom"
	if greatest {
		name = "top"
	}

	return zero, fmt.Errorf("lattice: no %s element: %w", name, ErrUnbounded)
}

// Complement returns an element y with Meet(x,y) == Bottom and
// Join(x,y) == Top, if one exists (ok reports existence). The lattice
// must be bounded.
func (l *Lattice[T]) Complement(x T) (T, bool, error) {
	var zero T
	if _, ok := l.index[x]; !ok {
		return zero, false, fmt.Errorf("lattice: %v: %w", x, order.ErrUnknownElement)
	}
	top, err := l.Top()
	if err != nil {
		return zero, false, err
	}
	bottom, err := l.Bottom()
	if err != nil {
		return zero, false, err
	}
	for _, y := range l.elems {
		m, err := l.Meet(x, y)
		if err != nil {
			return zero, false, err
		}
		if m != bottom {
			continue
		}
		j, err := l.Join(x, y)
		if err != nil {
			return zero, false, err
		}
		if j == top {
			return y, true, nil
		}
	}

	return zero, false, nil
}

// IsComplemented reports whether every element has a complement.
func (l *Lattice[T]) IsComplemented() (bool, error) {
	for _, x := range l.elems {
		_, ok, err := l.Complement(x)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// IsSublatticeOf reports whether l's elements all belong to other and
// l's meet and join agree with other's restriction to those elements.
func (l *Lattice[T]) IsSublatticeOf(other *Lattice[T]) (bool, error) {
	if other == nil {
		return false, ErrNilOrder
	}
	for _, x := range l.elems {
		if _, ok := other.index[x]; !ok {
			return false, nil
		}
	}
	for _, x := range l.elems {
		for _, y := range l.elems {
			same, err := l.agreesWith(other, x, y, opMeet)
			if err != nil || !same {
				return false, err
			}
			same, err = l.agreesWith(other, x, y, opJoin)
			if err != nil || !same {
				return false, err
			}
		}
	}

	return true, nil
}

// agreesWith compares one bound of (x, y) across two lattices. An
// undefined bound on either side counts as disagreement, not an error.
func (l *Lattice[T]) agreesWith(other *Lattice[T], x, y T, op string) (bool, error) {
	mine, errA := l.bound(x, y, op)
	theirs, errB := other.bound(x, y, op)
	if errors.Is(errA, ErrNotALattice) || errors.Is(errB, ErrNotALattice) {
		return false, nil
	}
	if errA != nil {
		return false, errA
	}
	if errB != nil {
		return false, errB
	}

	return mine == theirs, nil
}

// Dual returns the lattice over the reversed order: meets and joins swap.
// The reversed order is rebuilt from the full relation of the original.
func (l *Lattice[T]) Dual() (*Lattice[T], error) {
	var rel [][2]T
	for _, x := range l.elems {
		for _, y := range l.elems {
			le, err := l.ord.Le(x, y)
			if err != nil {
				return nil, err
			}
			if le {
				rel = append(rel, [2]T{y, x})
			}
		}
	}
	rev, err := order.New(l.Elements(), rel)
	if err != nil {
		return nil, err
	}

	return New(rev)
}
