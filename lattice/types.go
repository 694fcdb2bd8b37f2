// Package lattice provides error definitions and options for the
// meet/join engine.
package lattice

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrNilOrder is returned if a nil order is passed to New.
	ErrNilOrder = errors.New("lattice: order is nil")

	// ErrNotALattice indicates a meet or join has no unique bound for
	// some pair. The concrete error is a *BoundError carrying the pair.
	ErrNotALattice = errors.New("lattice: meet or join undefined")

	// ErrUnbounded indicates the lattice has no unique top or bottom.
	ErrUnbounded = errors.New("lattice: no unique bound element")
)

// BoundError reports the operation and pair for which no unique bound
// exists. It unwraps to ErrNotALattice so errors.Is keeps working.
type BoundError struct {
	Op   string // "meet" or "join"
	X, Y any    // the offending pair
}

// Error implements the error interface.
func (e *BoundError) Error() string {
	return fmt.Sprintf("lattice: %s undefined for (%v, %v)", e.Op, e.X, e.Y)
}

// Unwrap ties the error to the ErrNotALattice sentinel.
func (e *BoundError) Unwrap() error { return ErrNotALattice }

// Option configures Lattice construction via functional arguments.
type Option func(*options)

// options holds construction settings.
type options struct {
	ctx    context.Context // cancellation for the verify pass
	verify bool            // run the all-pairs lattice check
}

// defaultOptions returns the default options: Background context, no
// verification.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithVerify enables the exhaustive all-pairs meet/join check at
// construction time.
func WithVerify() Option {
	return func(o *options) { o.verify = true }
}

// WithContext sets a custom context for cancellation of the verify pass.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
