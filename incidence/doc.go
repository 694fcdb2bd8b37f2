// Package incidence implements the incidence algebra of a finite poset:
// the zeta matrix, its exact inverse (the Möbius function), incidence
// functions and their convolution.
//
// What
//
//   - Algebra fixes a linear extension of the poset's elements as the
//     matrix index, making the zeta matrix upper-triangular with a unit
//     diagonal.
//   - ZetaMatrix: entry (i,j) is 1 iff elements[i] ≤ elements[j].
//   - MobiusMatrix: the inverse of zeta, computed by triangular
//     back-substitution — μ(x,x) = 1 and μ(x,y) = −Σ_{x≤z<y} μ(x,z) for
//     x < y. Exact int64 arithmetic throughout; no floating point.
//   - Delta, Zeta, MobiusFunc, Characteristic: incidence functions.
//   - Convolve: (f*g)(x,y) = Σ_{x≤z≤y} f(x,z)·g(z,y), zero when x ≰ y.
//   - Bridge: a capability-checked strategy hook for an external
//     computer-algebra adapter. When installed via WithBridge it computes
//     the Möbius matrix; otherwise the triangular fallback runs. Both
//     strategies must agree where both are defined — a tested contract,
//     not an assumption.
//
// Matrices are cached per Algebra instance under a sync.RWMutex and
// recomputed only when a new Algebra is built.
//
// Why
//
//	Möbius inversion over the order is the workhorse behind counting
//	arguments on posets; triangular back-substitution keeps it exact and
//	quadratic-per-row instead of running general elimination.
//
// Complexity (n = |elements|)
//
//   - ZetaMatrix:   O(n²) Le queries (first call; cached after)
//   - MobiusMatrix: O(n³) integer ops via back-substitution
//   - Convolve:     O(n) per evaluated pair
//
// Usage
//
//	alg, err := incidence.New[int](poset)
//	mu, err := alg.Mobius(x, y)
//	zm, _ := alg.ZetaMatrix()
//	mm, _ := alg.MobiusMatrix()
//	prod, _ := zm.Mul(mm)        // identity, exactly
//
// Errors
//
//   - ErrNilOrder, order.ErrInfiniteOrder at construction.
//   - order.ErrUnknownElement for foreign elements.
//   - ErrDimensionMismatch from Matrix.Mul on incompatible shapes.
package incidence
