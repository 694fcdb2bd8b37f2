package galois

import (
	"context"
	"errors"
	"fmt"

	"github.com/velkov/ordlat/closure"
	"github.com/velkov/ordlat/order"
)

// Sentinel errors for adjunction verification.
var (
	// ErrNilOrder is returned if either order is nil.
	ErrNilOrder = errors.New("galois: order is nil")

	// ErrNilMap is returned if either adjoint map is nil.
	ErrNilMap = errors.New("galois: adjoint map is nil")

	// ErrAdjunction indicates the Galois-connection law failed. The
	// concrete error is an *AdjunctionError carrying the counterexample.
	ErrAdjunction = errors.New("galois: adjunction law violated")
)

// AdjunctionError reports the pair witnessing a violated adjunction:
// lower(X) ≤ Y and X ≤ upper(Y) disagreed. It unwraps to ErrAdjunction.
type AdjunctionError struct {
	X, Y any
}

// Error implements the error interface.
func (e *AdjunctionError) Error() string {
	return fmt.Sprintf("galois: adjunction law violated at (%v, %v)", e.X, e.Y)
}

// Unwrap ties the error to the ErrAdjunction sentinel.
func (e *AdjunctionError) Unwrap() error { return ErrAdjunction }

// Option configures verification via functional arguments.
type Option func(*options)

// options holds verification settings, currently only cancellation.
type options struct {
	ctx context.Context
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a custom context for cancellation of the exhaustive
// check. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Connection is a verified Galois connection: a lower adjoint into the
// codomain and an upper adjoint back into the domain, with the
// adjunction law already checked over both full carriers.
type Connection[P, Q comparable] struct {
	lower func(P) Q
	upper func(Q) P
	dom   order.Order[P]
	cod   order.Order[Q]
}

// Verify exhaustively checks lower(x) ≤ y ⇔ x ≤ upper(y) for every
// x in dom and y in cod, returning the verified Connection or an
// *AdjunctionError carrying the first counterexample. Both orders must
// be finite.
func Verify[P, Q comparable](
	lower func(P) Q,
	upper func(Q) P,
	dom order.Order[P],
	cod order.Order[Q],
	opts ...Option,
) (*Connection[P, Q], error) {
	if lower == nil || upper == nil {
		return nil, ErrNilMap
	}
	if dom == nil || cod == nil {
		return nil, ErrNilOrder
	}
	if !dom.Finite() || !cod.Finite() {
		return nil, fmt.Errorf("galois: Verify: %w", order.ErrInfiniteOrder)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, x := range dom.Elements() {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}
		fx := lower(x)
		for _, y := range cod.Elements() {
			left, err := cod.Le(fx, y)
			if err != nil {
				return nil, fmt.Errorf("galois: Verify: lower(%v): %w", x, err)
			}
			right, err := dom.Le(x, upper(y))
			if err != nil {
				return nil, fmt.Errorf("galois: Verify: upper(%v): %w", y, err)
			}
			if left != right {
				return nil, &AdjunctionError{X: x, Y: y}
			}
		}
	}

	return &Connection[P, Q]{lower: lower, upper: upper, dom: dom, cod: cod}, nil
}

// Lower applies the lower adjoint.
func (c *Connection[P, Q]) Lower(x P) Q { return c.lower(x) }

// Upper applies the upper adjoint.
func (c *Connection[P, Q]) Upper(y Q) P { return c.upper(y) }

// ClosureMap returns upper∘lower on the domain. For a verified
// adjunction it is extensive, idempotent and monotone — a theorem, not
// re-verified here.
func (c *Connection[P, Q]) ClosureMap() func(P) P {
	return func(x P) P { return c.upper(c.lower(x)) }
}

// KernelMap returns lower∘upper on the codomain — intensive, idempotent
// and monotone, dually.
func (c *Connection[P, Q]) KernelMap() func(Q) Q {
	return func(y Q) Q { return c.lower(c.upper(y)) }
}

// ClosureOperator lifts ClosureMap to a subset operator on the domain.
func (c *Connection[P, Q]) ClosureOperator() closure.Operator[P] {
	return closure.FromEndo("galois closure", c.ClosureMap())
}

// KernelOperator lifts KernelMap to a subset operator on the codomain.
// The element-level map is a kernel (intensive); its subset lift is
// still a Moore closure on the power set.
func (c *Connection[P, Q]) KernelOperator() closure.Operator[Q] {
	return closure.FromEndo("galois kernel", c.KernelMap())
}

// FixedPointsDomain returns the domain elements where upper∘lower is the
// identity, in enumeration order.
func (c *Connection[P, Q]) FixedPointsDomain() []P {
	cl := c.ClosureMap()
	var out []P
	for _, x := range c.dom.Elements() {
		if cl(x) == x {
			out = append(out, x)
		}
	}

	return out
}

// FixedPointsCodomain returns the codomain elements where lower∘upper is
// the identity, in enumeration order.
func (c *Connection[P, Q]) FixedPointsCodomain() []Q {
	k := c.KernelMap()
	var out []Q
	for _, y := range c.cod.Elements() {
		if k(y) == y {
			out = append(out, y)
		}
	}

	return out
}
