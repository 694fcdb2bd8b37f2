// Package closure implements the Moore-closure contract over subsets of
// a finite universe: a generic capped fixpoint driver plus the provided
// operator families (order ideals/filters, intersection closure,
// composition closure, Galois closure from a relation).
//
// What
//
//   - Operator: a named subset map together with the axioms it declares
//     (Extensive, Idempotent, Monotone). Stateless beyond its rule.
//   - Fix: the fixpoint driver. Starting from a seed, it applies a
//     one-step expansion rule and unions the result into the running set
//     until a pass adds nothing — or the mandatory iteration cap is hit,
//     which is reported as ErrClosureDiverged (never silently truncated).
//   - DownSet/UpSet: downward/upward closure under an order.Order.
//   - Moore: closure of a family of subsets under pairwise intersection.
//   - CompositionClosure: closure of a finite set of endomorphisms under
//     pairwise composition, identified extensionally by their tables.
//   - Polar/GaloisClosure: closed sets induced directly by a binary
//     relation between two domains.
//   - FromEndo: lifts an idempotent element map h to the subset operator
//     cl(S) = S ∪ h(S), a Moore closure whenever h is a closure map.
//   - Laws: exhaustive (small universes) or deterministically sampled
//     verification of an operator's declared axioms.
//
// Why
//
//	Order-ideal closure, composition closure and Galois closure are the
//	same fixpoint shape over different expansion rules; one driver with a
//	hard cap keeps malformed generator sets from looping forever.
//
// Determinism
//
//	Fix preserves seed order and first-discovery order, and every provided
//	rule iterates its universe in enumeration order, so closure results
//	are fully reproducible.
//
// Usage
//
//	down, _ := closure.DownSet(poset)
//	ideal, err := down.Apply([]int{6})      // {1, 2, 3, 6} in divisors(12)
//
//	endos, err := closure.CompositionClosure(carrier, fns,
//	    closure.WithMaxPasses(32))
//
// Errors
//
//   - ErrClosureDiverged when the cap is exceeded without convergence;
//     use errors.As with *DivergenceError to recover the pass count.
//   - ErrOptionViolation for invalid options (negative cap).
//   - ErrNilOrder, order.ErrInfiniteOrder, order.ErrUnknownElement from
//     the order-backed operators.
//   - ErrNotEndo when a function's image escapes its carrier.
//   - ErrLawViolation from Laws when a declared axiom fails.
package closure
