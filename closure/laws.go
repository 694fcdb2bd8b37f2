package closure

import "fmt"

// exhaustiveLawLimit bounds the universe size for all-subsets law
// checking; larger universes fall back to a deterministic sample.
const exhaustiveLawLimit = 8

// Laws verifies the axioms an operator declares for itself. Universes of
// at most exhaustiveLawLimit elements are checked over every subset;
// larger universes over a deterministic sample (empty set, singletons,
// prefixes, full universe). Violations surface as ErrLawViolation naming
// the operator, the failed axiom and the witnessing subset.
func Laws[T comparable](op Operator[T], universe []T, opts ...Option) error {
	universe = dedupe(universe)
	subsets := lawSubsets(universe)

	closures := make([][]T, len(subsets))
	for i, s := range subsets {
		cl, err := op.Apply(s)
		if err != nil {
			return err
		}
		closures[i] = cl
	}

	for i, s := range subsets {
		if op.Extensive && !subsetOf(s, closures[i]) {
			return fmt.Errorf("closure: %s: extensive law failed for %v: %w", op.Name, s, ErrLawViolation)
		}
		if op.Idempotent {
			again, err := op.Apply(closures[i])
			if err != nil {
				return err
			}
			if !setEq(again, closures[i]) {
				return fmt.Errorf("closure: %s: idempotent law failed for %v: %w", op.Name, s, ErrLawViolation)
			}
		}
	}

	if op.Monotone {
		for i, s := range subsets {
			for j, t := range subsets {
				if i == j || !subsetOf(s, t) {
					continue
				}
				if !subsetOf(closures[i], closures[j]) {
					return fmt.Errorf("closure: %s: monotone law failed for %v ⊆ %v: %w", op.Name, s, t, ErrLawViolation)
				}
			}
		}
	}

	return nil
}

// lawSubsets enumerates the subsets to check.
func lawSubsets[T comparable](universe []T) [][]T {
	n := len(universe)
	if n <= exhaustiveLawLimit {
		out := make([][]T, 0, 1<<n)
		for mask := 0; mask < 1<<n; mask++ {
			var s []T
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					s = append(s, universe[i])
				}
			}
			out = append(out, s)
		}

		return out
	}

	// Deterministic sample: empty, singletons, prefixes, everything.
	out := [][]T{nil}
	for _, e := range universe {
		out = append(out, []T{e})
	}
	for k := 2; k < n; k++ {
		out = append(out, universe[:k])
	}
	out = append(out, universe)

	return out
}

// subsetOf reports a ⊆ b set-wise.
func subsetOf[T comparable](a, b []T) bool {
	have := make(map[T]struct{}, len(b))
	for _, e := range b {
		have[e] = struct{}{}
	}
	for _, e := range a {
		if _, ok := have[e]; !ok {
			return false
		}
	}

	return true
}

// setEq reports set-wise equality.
func setEq[T comparable](a, b []T) bool {
	return subsetOf(a, b) && subsetOf(b, a)
}
