// Package ordlat is an in-memory engine for finite partial orders and
// lattices — from core order primitives to closure operators, Galois
// connections and the incidence algebra.
//
// 🚀 What is ordlat?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Core primitives: build posets from relations or cover pairs, query safely
//		• Hasse diagrams: transitive reduction, upper/lower covers, minima/maxima
//		• Lattice algebra: memoized meet/join, infima/suprema, bounds, complements
//		• Closure operators: capped fixpoint driver, ideals/filters, Moore closure
//		• Galois connections: exhaustive adjunction verification, induced operators
//		• Incidence algebra: zeta/Möbius matrices (exact), convolution
//
// ✨ Why choose ordlat?
//
//   - Correctness-first – exact integer arithmetic, exhaustive verification
//   - Rock-solid guarantees – immutable posets, instance-scoped caches
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every consumer works over the order.Order contract
//
// Under the hood, everything is organized under six subpackages:
//
//	order/     — finite posets: construction, reachability, covers, extensions
//	lattice/   — meet/join engine with per-instance memoization
//	closure/   — closure/kernel framework and provided operator families
//	galois/    — adjoint-pair verification and induced closure/kernel operators
//	incidence/ — zeta and Möbius matrices, incidence-function convolution
//	builder/   — standard posets: chains, antichains, divisors, power sets
//
// Quick ASCII example:
//
//	    {a,b,c}
//	    /  |  \
//	{a,b}{a,c}{b,c}
//	    \ /\ /
//	   {a}{b}{c}
//	    \  |  /
//	      {}
//
//	the power-set lattice of {a,b,c}: meet is intersection, join is union.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/velkov/ordlat
package ordlat
