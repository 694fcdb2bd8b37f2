// Package closure provides error definitions, options, and the Operator
// type for the closure/kernel framework.
package closure

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxPasses caps fixpoint iteration when WithMaxPasses is not
// supplied. Well-formed closures over a universe of n elements converge
// in at most n passes; the cap exists so malformed generator sets cannot
// loop forever.
const DefaultMaxPasses = 1024

// Sentinel errors for the closure framework.
var (
	// ErrClosureDiverged indicates the fixpoint iteration cap was
	// exceeded without convergence. The concrete error is a
	// *DivergenceError carrying the pass count.
	ErrClosureDiverged = errors.New("closure: fixpoint iteration cap exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closure: invalid option supplied")

	// ErrNilOrder is returned if a nil order is passed to an
	// order-backed operator constructor.
	ErrNilOrder = errors.New("closure: order is nil")

	// ErrNotEndo indicates a function's image escapes its carrier.
	ErrNotEndo = errors.New("closure: function image escapes the carrier")

	// ErrLawViolation indicates an operator failed one of its declared
	// axioms under Laws.
	ErrLawViolation = errors.New("closure: operator violates a declared axiom")
)

// DivergenceError reports a fixpoint computation that hit its iteration
// cap. It unwraps to ErrClosureDiverged.
type DivergenceError struct {
	Name   string // the computation that diverged
	Passes int    // the cap that was exhausted
}

// Error implements the error interface.
func (e *DivergenceError) Error() string {
	return fmt.Sprintf("closure: %s did not converge within %d passes", e.Name, e.Passes)
}

// Unwrap ties the error to the ErrClosureDiverged sentinel.
func (e *DivergenceError) Unwrap() error { return ErrClosureDiverged }

// Rule is a subset map on a fixed universe: it receives a subset and
// returns a subset. Inputs are treated as sets; outputs may repeat
// elements, the framework deduplicates.
type Rule[T comparable] func(subset []T) ([]T, error)

// Operator is a named closure (or kernel) rule together with metadata
// declaring which axioms it satisfies. The metadata is declarative;
// Laws verifies it.
type Operator[T comparable] struct {
	// Name identifies the operator in errors and diagnostics.
	Name string

	// Rule is the subset map.
	Rule Rule[T]

	// Extensive declares S ⊆ cl(S) for all S.
	Extensive bool

	// Idempotent declares cl(cl(S)) == cl(S) for all S.
	Idempotent bool

	// Monotone declares S ⊆ T ⇒ cl(S) ⊆ cl(T).
	Monotone bool
}

// Apply evaluates the operator's rule on a subset and deduplicates the
// result, preserving first-occurrence order.
func (op Operator[T]) Apply(subset []T) ([]T, error) {
	out, err := op.Rule(subset)
	if err != nil {
		return nil, err
	}

	return dedupe(out), nil
}

// Option configures fixpoint computation via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// the computation runs.
type Option func(*options)

// options holds fixpoint settings.
type options struct {
	ctx       context.Context
	maxPasses int
	err       error // recorded during option parsing
}

// defaultOptions returns the defaults: Background context, DefaultMaxPasses.
func defaultOptions() options {
	return options{ctx: context.Background(), maxPasses: DefaultMaxPasses}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxPasses overrides the fixpoint iteration cap.
//
//	n > 0: cap at n passes
//	n == 0: keep DefaultMaxPasses
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.maxPasses = DefaultMaxPasses
		default:
			o.maxPasses = n
		}
	}
}

// dedupe removes repeated elements, keeping first occurrences in order.
func dedupe[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, e := range in {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}
