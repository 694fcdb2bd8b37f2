// Package order provides error definitions, options, and the Order
// contract consumed by the lattice, closure, galois and incidence packages.
package order

import (
	"context"
	"errors"
)

// Sentinel errors for order construction and queries.
var (
	// ErrUnknownElement indicates an operation referenced an element
	// outside the poset's element set.
	ErrUnknownElement = errors.New("order: unknown element")

	// ErrMalformedRelation indicates the input relation is not
	// antisymmetrizable: two distinct elements are mutually reachable.
	ErrMalformedRelation = errors.New("order: relation is not antisymmetric")

	// ErrInfiniteOrder indicates a finite-only algorithm received an order
	// tagged as infinite.
	ErrInfiniteOrder = errors.New("order: finite order required")
)

// Order is the read-only view of a partial order consumed by generic
// algorithms. Implementations must keep Elements stable across calls on
// the same instance; Finite reports whether Elements enumerates the whole
// carrier. Finite-only consumers must reject orders with Finite() == false
// by returning ErrInfiniteOrder.
type Order[T comparable] interface {
	// Le reports whether x ≤ y, or ErrUnknownElement for foreign elements.
	Le(x, y T) (bool, error)

	// Elements returns the fixed enumeration order of the carrier.
	// Undefined (nil) when Finite() == false.
	Elements() []T

	// Finite reports whether the carrier is fully materialized.
	Finite() bool
}

// Option configures Poset construction and traversal via functional
// arguments, in the usual WithX style.
type Option func(*options)

// options holds construction/traversal settings, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a custom context for cancellation of construction and
// long-running derivations. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
