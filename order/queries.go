package order

// Le reports whether x ≤ y. It walks the cover DAG upward from x
// breadth-first until y is found or the frontier is exhausted; this is
// exact because the stored covers are the transitive reduction of the
// order, so cover reachability equals relation reachability.
//
// Time Complexity: O(n + |covers|)
func (p *Poset[T]) Le(x, y T) (bool, error) {
	ix, iy, err := p.pair(x, y)
	if err != nil {
		return false, err
	}
	if ix == iy {
		return true, nil
	}

	return p.reaches(ix, iy), nil
}

// Lt reports whether x < y, i.e. Le(x, y) with x != y.
func (p *Poset[T]) Lt(x, y T) (bool, error) {
	ix, iy, err := p.pair(x, y)
	if err != nil {
		return false, err
	}
	if ix == iy {
		return false, nil
	}

	return p.reaches(ix, iy), nil
}

// Comparable reports whether x ≤ y or y ≤ x.
func (p *Poset[T]) Comparable(x, y T) (bool, error) {
	ix, iy, err := p.pair(x, y)
	if err != nil {
		return false, err
	}
	if ix == iy {
		return true, nil
	}

	return p.reaches(ix, iy) || p.reaches(iy, ix), nil
}

// Covers reports whether x covers y: y < x with no element strictly
// between. Covers reads the Hasse diagram directly, so it is exact and
// needs no reachability walk.
func (p *Poset[T]) Covers(x, y T) (bool, error) {
	ix, iy, err := p.pair(x, y)
	if err != nil {
		return false, err
	}
	for _, j := range p.up[iy] {
		if j == ix {
			return true, nil
		}
	}

	return false, nil
}

// UpperCovers returns the immediate successors of x in the Hasse diagram,
// in enumeration order.
func (p *Poset[T]) UpperCovers(x T) ([]T, error) {
	ix, err := p.at(x)
	if err != nil {
		return nil, err
	}

	return p.pick(p.up[ix]), nil
}

// LowerCovers returns the immediate predecessors of x in the Hasse
// diagram, in enumeration order.
func (p *Poset[T]) LowerCovers(x T) ([]T, error) {
	ix, err := p.at(x)
	if err != nil {
		return nil, err
	}

	return p.pick(p.down[ix]), nil
}

// MinimalElements returns every element with no strictly smaller element,
// in enumeration order.
func (p *Poset[T]) MinimalElements() []T {
	var out []T
	for i := range p.elems {
		if len(p.down[i]) == 0 {
			out = append(out, p.elems[i])
		}
	}

	return out
}

// MaximalElements returns every element with no strictly greater element,
// in enumeration order.
func (p *Poset[T]) MaximalElements() []T {
	var out []T
	for i := range p.elems {
		if len(p.up[i]) == 0 {
			out = append(out, p.elems[i])
		}
	}

	return out
}

// reaches walks the cover DAG upward breadth-first from src, reporting
// whether dst is reachable. src != dst is assumed.
func (p *Poset[T]) reaches(src, dst int) bool {
	visited := make([]bool, len(p.elems))
	queue := make([]int, 0, len(p.elems))
	visited[src] = true
	queue = append(queue, src)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range p.up[cur] {
			if nxt == dst {
				return true
			}
			if !visited[nxt] {
				visited[nxt] = true
				queue = append(queue, nxt)
			}
		}
	}

	return false
}

// pick maps element indices back to elements.
func (p *Poset[T]) pick(idx []int) []T {
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = p.elems[i]
	}

	return out
}
