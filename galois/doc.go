// Package galois verifies Galois connections between two finite partial
// orders and derives the induced closure and kernel operators.
//
// What
//
//   - Verify checks the adjunction law exhaustively over both finite
//     carriers: lower(x) ≤ y ⇔ x ≤ upper(y) for every x in the domain
//     and y in the codomain. The first violation aborts with an
//     AdjunctionError carrying the witnessing pair.
//   - A verified Connection exposes:
//   - ClosureMap: upper∘lower on the domain — extensive, idempotent,
//     monotone by the adjunction theorem, not re-verified.
//   - KernelMap: lower∘upper on the codomain — intensive, idempotent,
//     monotone, dually.
//   - ClosureOperator/KernelOperator: the subset-operator lifts of the
//     two maps, built with closure.FromEndo.
//   - FixedPointsDomain/FixedPointsCodomain: elements the respective
//     operator leaves in place, computed by direct evaluation.
//
// Why
//
//	Every Galois connection factors through its closure and kernel
//	operators; verifying the adjunction once buys both operators without
//	further checking.
//
// Verification is always exhaustive — finite carriers make sampling
// unnecessary, so there is no sampling mode and no soundness caveat.
// Orders tagged infinite are rejected with order.ErrInfiniteOrder.
//
// Complexity: Verify costs |P|·|Q| pairs, two Le queries each.
//
// Usage
//
//	conn, err := galois.Verify(lower, upper, dom, cod)
//	if err != nil {
//	    var ae *galois.AdjunctionError
//	    if errors.As(err, &ae) { ... ae.X, ae.Y ... }
//	}
//	cl := conn.ClosureMap()
//
// Errors
//
//   - ErrNilMap, ErrNilOrder        for nil inputs.
//   - order.ErrInfiniteOrder        for infinite-tagged orders.
//   - ErrAdjunction (*AdjunctionError) when the law fails; carries the
//     counterexample pair.
//   - order.ErrUnknownElement       when a map's image escapes its order.
package galois
