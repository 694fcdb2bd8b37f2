// Package lattice computes meets and joins over a finite partial order,
// with per-instance memoization and optional all-pairs lattice verification.
//
// What
//
//   - Lattice wraps any finite order.Order and answers Meet (greatest
//     lower bound) and Join (least upper bound) queries.
//   - Infimum/Supremum fold Meet/Join over a sequence; the empty sequence
//     is undefined (ok == false), not an error.
//   - WithVerify runs the exhaustive all-pairs check at construction and
//     fails with ErrNotALattice (a BoundError naming the offending pair).
//   - Top, Bottom, Complement, IsComplemented, IsSublatticeOf and Dual
//     round out the bounded-lattice surface.
//
// Algorithm
//
//	Meet(x, y) collects every common lower bound and selects the bound m
//	that dominates all others; when the common bounds have no unique
//	maximum the pair has no meet and a BoundError is returned. Join is
//	dual. Results are memoized per unordered index pair; the cache is
//	written once and never invalidated for the life of the instance, so
//	concurrent redundant writes are harmless.
//
// Concurrency
//
//	The memo cache is guarded by a sync.RWMutex scoped to one Lattice
//	instance. Independent instances never share state.
//
// Complexity (n = |elements|)
//
//   - Meet/Join (cache miss): O(n²) Le queries
//   - Verify: O(n²) Meet/Join pairs
//
// Usage
//
//	l, err := lattice.New(p, lattice.WithVerify())
//	if err != nil { ... }           // ErrNotALattice names the pair
//	m, err := l.Meet(6, 4)          // 2 in the divisor lattice of 12
//
// Errors
//
//   - ErrNilOrder             if the order is nil.
//   - order.ErrInfiniteOrder  if the order is not finite.
//   - order.ErrUnknownElement for foreign query elements.
//   - ErrNotALattice          when a meet/join has no unique bound; use
//     errors.As with *BoundError to recover the pair.
//   - ErrUnbounded            when Top or Bottom does not exist.
package lattice
