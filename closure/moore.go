package closure

// Moore closes a family of subsets under pairwise intersection, the
// defining property of a Moore family once the full universe is adjoined
// by the caller. Family members are deduplicated set-wise; the result
// preserves input order followed by discovery order.
//
// Internally subsets are keyed by their membership mask over the union
// of the family, so elements only need to be comparable.
func Moore[T comparable](family [][]T, opts ...Option) ([][]T, error) {
	// Index the union universe in encounter order.
	index := make(map[T]int)
	var universe []T
	for _, set := range family {
		for _, e := range set {
			if _, ok := index[e]; !ok {
				index[e] = len(universe)
				universe = append(universe, e)
			}
		}
	}

	mask := func(set []T) string {
		b := make([]byte, len(universe))
		for i := range b {
			b[i] = '0'
		}
		for _, e := range set {
			b[index[e]] = '1'
		}

		return string(b)
	}
	intersect := func(a, b string) string {
		out := make([]byte, len(a))
		for i := range out {
			if a[i] == '1' && b[i] == '1' {
				out[i] = '1'
			} else {
				out[i] = '0'
			}
		}

		return string(out)
	}

	seed := make([]string, 0, len(family))
	for _, set := range family {
		seed = append(seed, mask(set))
	}

	step := func(current []string) ([]string, error) {
		var out []string
		for _, a := range current {
			for _, b := range current {
				out = append(out, intersect(a, b))
			}
		}

		return out, nil
	}

	masks, err := Fix("moore closure", seed, step, opts...)
	if err != nil {
		return nil, err
	}

	out := make([][]T, len(masks))
	for i, m := range masks {
		set := make([]T, 0, len(universe))
		for j, e := range universe {
			if m[j] == '1' {
				set = append(set, e)
			}
		}
		out[i] = set
	}

	return out, nil
}
