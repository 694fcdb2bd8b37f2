// Package builder constructs the standard textbook posets and lattices:
// chains, antichains, divisor lattices, powerset lattices and product
// posets.
//
// What
//
//   - Chain(n):        the total order 0 < 1 < ... < n-1.
//   - Antichain(xs):   pairwise-incomparable elements.
//   - Divisors(n):     the divisors of n ordered by divisibility.
//   - PowerSet(ls):    all subsets of the label set under inclusion,
//     elements named by canonical SubsetID strings such as "{a,c}".
//   - Product(p, q):   the componentwise order on Pair[A,B].
//
// Every factory validates its parameters early and returns a sentinel
// error instead of panicking. Construction is deterministic: the same
// inputs always yield the same element enumeration and cover lists.
//
// Why
//
//	Hand-writing cover relations for fixtures is error-prone; the
//	factories here are the vocabulary the test suites and examples of
//	the other packages are built from.
//
// Usage
//
//	p, err := builder.PowerSet([]string{"a", "b", "c"})
//	l, err := lattice.New[string](p)
//
// Errors
//
//   - ErrBadSize          for out-of-range sizes (n < 1, too many labels).
//   - ErrTooFewElements   for empty element or label slices.
//   - ErrBadLabel         for duplicate, empty or malformed labels.
package builder
