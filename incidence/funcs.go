package incidence

// Func is an incidence function on interval pairs: f(x, y) is meaningful
// when x ≤ y and conventionally zero elsewhere. Values are exact int64.
type Func[T comparable] func(x, y T) (int64, error)

// Delta is the convolution identity: 1 on the diagonal, 0 elsewhere.
func Delta[T comparable](a *Algebra[T]) Func[T] {
	return func(x, y T) (int64, error) {
		z, err := a.ZetaMatrix()
		if err != nil {
			return 0, err
		}
		if _, err := z.At(x, y); err != nil {
			return 0, err
		}
		if x == y {
			return 1, nil
		}

		return 0, nil
	}
}

// Zeta is the order indicator: 1 iff x ≤ y.
func Zeta[T comparable](a *Algebra[T]) Func[T] {
	return func(x, y T) (int64, error) {
		z, err := a.ZetaMatrix()
		if err != nil {
			return 0, err
		}

		return z.At(x, y)
	}
}

// MobiusFunc evaluates μ through the cached Möbius matrix. It is the
// convolution inverse of Zeta: Convolve(Zeta, MobiusFunc) = Delta.
func MobiusFunc[T comparable](a *Algebra[T]) Func[T] {
	return func(x, y T) (int64, error) {
		return a.Mobius(x, y)
	}
}

// Characteristic is the indicator of the closed interval [lo, hi]:
// 1 iff lo ≤ x ≤ y ≤ hi, 0 elsewhere.
func Characteristic[T comparable](a *Algebra[T], lo, hi T) Func[T] {
	return func(x, y T) (int64, error) {
		z, err := a.ZetaMatrix()
		if err != nil {
			return 0, err
		}
		for _, pair := range [][2]T{{lo, x}, {x, y}, {y, hi}} {
			v, err := z.At(pair[0], pair[1])
			if err != nil {
				return 0, err
			}
			if v == 0 {
				return 0, nil
			}
		}

		return 1, nil
	}
}

// Convolve returns the incidence product
// (f*g)(x, y) = Σ_{x ≤ z ≤ y} f(x, z)·g(z, y). The sum is empty, hence
// zero, when x ≰ y. Costs O(n) evaluations of f and g per pair.
func Convolve[T comparable](a *Algebra[T], f, g Func[T]) Func[T] {
	return func(x, y T) (int64, error) {
		zm, err := a.ZetaMatrix()
		if err != nil {
			return 0, err
		}
		i, ok := zm.Index[x]
		if !ok {
			_, err := zm.At(x, y)
			return 0, err
		}
		j, ok := zm.Index[y]
		if !ok {
			_, err := zm.At(x, y)
			return 0, err
		}

		var sum int64
		for k := i; k <= j; k++ {
			if zm.Data[i][k] == 0 || zm.Data[k][j] == 0 {
				continue
			}
			z := zm.Extension[k]
			fv, err := f(x, z)
			if err != nil {
				return 0, err
			}
			gv, err := g(z, y)
			if err != nil {
				return 0, err
			}
			sum += fv * gv
		}

		return sum, nil
	}
}
