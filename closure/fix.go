package closure

// Step produces the one-step expansion of the running set. It may return
// already-present elements; the driver unions and deduplicates.
type Step[T comparable] func(current []T) ([]T, error)

// Fix drives a closure computation to its fixpoint: starting from seed,
// it repeatedly applies step and unions the result into the running set
// until a full pass adds nothing. The iteration cap is mandatory;
// exceeding it returns a *DivergenceError (ErrClosureDiverged) naming
// the computation — never a silently truncated set.
//
// The result preserves seed order followed by first-discovery order, so
// a deterministic step yields a deterministic closure.
func Fix[T comparable](name string, seed []T, step Step[T], opts ...Option) ([]T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	have := make(map[T]struct{}, len(seed))
	out := make([]T, 0, len(seed))
	for _, e := range seed {
		if _, dup := have[e]; dup {
			continue
		}
		have[e] = struct{}{}
		out = append(out, e)
	}

	for pass := 1; ; pass++ {
		if pass > o.maxPasses {
			return nil, &DivergenceError{Name: name, Passes: o.maxPasses}
		}
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		next, err := step(out)
		if err != nil {
			return nil, err
		}
		grew := false
		for _, e := range next {
			if _, ok := have[e]; ok {
				continue
			}
			have[e] = struct{}{}
			out = append(out, e)
			grew = true
		}
		if !grew {
			return out, nil
		}
	}
}
