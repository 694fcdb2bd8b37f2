// Package order provides finite partial orders: construction from a
// generating relation or from trusted cover pairs, reachability queries,
// Hasse-diagram covers, extrema, duals and linear extensions.
//
// What
//
//   - Build an immutable Poset from an element slice plus either a
//     generating relation (New: reflexive-transitive closure is computed,
//     antisymmetry violations are rejected) or a cover relation
//     (FromCovers: trusted as the exact transitive reduction).
//   - Query Le/Lt/Covers/Comparable, upper and lower covers,
//     minimal and maximal elements.
//   - Elements() is the fixed enumeration order (input order, deduplicated)
//     used by every matrix-indexed consumer; it is stable across calls.
//   - CoverPairs() exposes the Hasse diagram for serialization and
//     visualization adapters; FromCovers(Elements(), CoverPairs()) rebuilds
//     an order-equivalent poset.
//   - LinearExtension() returns a total order compatible with Le.
//   - The Order interface is the contract consumed by lattice, closure,
//     galois and incidence; Lazy is a generator-backed implementation with
//     an explicit infinite tag, rejected by finite-only consumers.
//
// Why
//
//   - A single validated order core lets every higher layer (meet/join,
//     closures, Möbius inversion) assume a strict partial order and a
//     minimal cover relation.
//   - Reachability through covers equals reachability through the original
//     relation because the stored covers are the exact transitive reduction.
//
// Determinism
//
//	Elements keep their first-seen input position, cover lists are held in
//	ascending element-index order, and every query iterates in that order,
//	so results are fully reproducible.
//
// Complexity (n = |elements|)
//
//   - New:              O(n³) per closure pass, at most n passes (fixpoint)
//   - FromCovers:       O(n + |covers|·log|covers|)
//   - Le:               O(n + |covers|) breadth-first over the cover DAG
//   - LinearExtension:  O(n + |covers|)
//
// Usage
//
//	p, err := order.New(
//	    []int{1, 2, 3, 6},
//	    [][2]int{{1, 2}, {1, 3}, {2, 6}, {3, 6}},
//	)
//	if err != nil { ... }
//	ok, _ := p.Le(1, 6) // true
//
// Errors
//
//   - ErrUnknownElement    if a query or relation pair names a foreign element.
//   - ErrMalformedRelation if the input relation is not antisymmetrizable
//     (detected from the computed closure; FromCovers does not re-validate).
//   - ErrInfiniteOrder     when a finite-only consumer receives a Lazy order.
package order
