package incidence_test

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkov/ordlat/incidence"
	"github.com/velkov/ordlat/order"
)

// chainPoset builds the total order 0 < 1 < ... < n-1.
func chainPoset(t *testing.T, n int) *order.Poset[int] {
	t.Helper()
	elems := make([]int, n)
	var covers [][2]int
	for i := 0; i < n; i++ {
		elems[i] = i
		if i > 0 {
			covers = append(covers, [2]int{i - 1, i})
		}
	}
	p, err := order.FromCovers(elems, covers)
	require.NoError(t, err)

	return p
}

// divisorPoset orders the divisors of 12 by divisibility.
func divisorPoset(t *testing.T) *order.Poset[int] {
	t.Helper()
	elems := []int{1, 2, 3, 4, 6, 12}
	var rel [][2]int
	for _, x := range elems {
		for _, y := range elems {
			if y%x == 0 {
				rel = append(rel, [2]int{x, y})
			}
		}
	}
	p, err := order.New(elems, rel)
	require.NoError(t, err)

	return p
}

// maskPoset is the powerset of a 3-element set as uint8 bitmasks under
// inclusion.
func maskPoset(t *testing.T) *order.Poset[uint8] {
	t.Helper()
	elems := make([]uint8, 0, 8)
	var rel [][2]uint8
	for m := uint8(0); m < 8; m++ {
		elems = append(elems, m)
	}
	for _, a := range elems {
		for _, b := range elems {
			if a&b == a {
				rel = append(rel, [2]uint8{a, b})
			}
		}
	}
	p, err := order.New(elems, rel)
	require.NoError(t, err)

	return p
}

func TestNew_Errors(t *testing.T) {
	_, err := incidence.New[int](nil)
	assert.ErrorIs(t, err, incidence.ErrNilOrder)

	lz := &order.Lazy[int]{LeFn: func(x, y int) (bool, error) { return x <= y, nil }}
	_, err = incidence.New[int](lz)
	assert.ErrorIs(t, err, order.ErrInfiniteOrder)
}

// TestMobius_Chain pins the textbook values on the three-element chain:
// 1 on the diagonal, −1 on covers, 0 beyond.
func TestMobius_Chain(t *testing.T) {
	alg, err := incidence.New[int](chainPoset(t, 3))
	require.NoError(t, err)

	want := map[[2]int]int64{
		{0, 0}: 1, {1, 1}: 1, {2, 2}: 1,
		{0, 1}: -1, {1, 2}: -1,
		{0, 2}: 0,
		{1, 0}: 0, {2, 0}: 0, {2, 1}: 0,
	}
	for pair, mu := range want {
		got, err := alg.Mobius(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, mu, got, "μ(%d,%d)", pair[0], pair[1])
	}
}

// TestZetaMobiusIdentity multiplies ζ and μ both ways and demands the
// exact identity.
func TestZetaMobiusIdentity(t *testing.T) {
	t.Run("divisors", func(t *testing.T) {
		alg, err := incidence.New[int](divisorPoset(t))
		require.NoError(t, err)

		z, err := alg.ZetaMatrix()
		require.NoError(t, err)
		m, err := alg.MobiusMatrix()
		require.NoError(t, err)

		zm, err := z.Mul(m)
		require.NoError(t, err)
		assert.True(t, zm.IsIdentity(), "ζ·μ must be the identity")

		mz, err := m.Mul(z)
		require.NoError(t, err)
		assert.True(t, mz.IsIdentity(), "μ·ζ must be the identity")
	})

	t.Run("powerset", func(t *testing.T) {
		alg, err := incidence.New[uint8](maskPoset(t))
		require.NoError(t, err)

		z, err := alg.ZetaMatrix()
		require.NoError(t, err)
		m, err := alg.MobiusMatrix()
		require.NoError(t, err)

		zm, err := z.Mul(m)
		require.NoError(t, err)
		assert.True(t, zm.IsIdentity())
	})
}

// TestBooleanMobius checks μ(A,B) = (−1)^|B∖A| on the powerset lattice.
func TestBooleanMobius(t *testing.T) {
	alg, err := incidence.New[uint8](maskPoset(t))
	require.NoError(t, err)

	for a := uint8(0); a < 8; a++ {
		for b := uint8(0); b < 8; b++ {
			got, err := alg.Mobius(a, b)
			require.NoError(t, err)

			var want int64
			if a&b == a {
				want = 1
				if bits.OnesCount8(b^a)%2 == 1 {
					want = -1
				}
			}
			assert.Equal(t, want, got, "μ(%03b,%03b)", a, b)
		}
	}
}

// TestMobius_Divisors spot-checks number-theoretic μ: for divisibility,
// μ(x,y) depends only on y/x and matches the classic Möbius function.
func TestMobius_Divisors(t *testing.T) {
	alg, err := incidence.New[int](divisorPoset(t))
	require.NoError(t, err)

	want := map[[2]int]int64{
		{1, 1}: 1,  // ratio 1
		{1, 2}: -1, // prime ratio
		{1, 3}: -1,
		{2, 4}: -1,
		{1, 6}: 1, // ratio 2·3, squarefree
		{2, 12}: 1,
		{1, 4}: 0, // ratio 4 = 2², squared factor
		{3, 12}: 0,
		{1, 12}: 0,
		{4, 6}: 0, // incomparable
	}
	for pair, mu := range want {
		got, err := alg.Mobius(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, mu, got, "μ(%d,%d)", pair[0], pair[1])
	}
}

// TestExtension verifies the matrix index respects the order and the
// zeta matrix is upper-triangular with a unit diagonal.
func TestExtension(t *testing.T) {
	p := divisorPoset(t)
	alg, err := incidence.New[int](p)
	require.NoError(t, err)

	ext := alg.Extension()
	assert.ElementsMatch(t, p.Elements(), ext)
	pos := make(map[int]int, len(ext))
	for i, e := range ext {
		pos[e] = i
	}
	for _, x := range ext {
		for _, y := range ext {
			le, err := p.Le(x, y)
			require.NoError(t, err)
			if le && x != y {
				assert.Less(t, pos[x], pos[y], "%d must precede %d", x, y)
			}
		}
	}

	z, err := alg.ZetaMatrix()
	require.NoError(t, err)
	for i := range z.Data {
		assert.EqualValues(t, 1, z.Data[i][i])
		for j := 0; j < i; j++ {
			assert.EqualValues(t, 0, z.Data[i][j], "ζ must be upper-triangular")
		}
	}
}

// flatOrder exercises the non-Poset linearization path.
type flatOrder struct{ elems []int }

func (f *flatOrder) Le(x, y int) (bool, error) { return y%x == 0, nil }
func (f *flatOrder) Elements() []int           { return f.elems }
func (f *flatOrder) Finite() bool              { return true }

func TestGenericOrderLinearization(t *testing.T) {
	// deliberately not sorted by divisibility
	ord := &flatOrder{elems: []int{12, 4, 6, 1, 3, 2}}
	alg, err := incidence.New[int](ord)
	require.NoError(t, err)

	z, err := alg.ZetaMatrix()
	require.NoError(t, err)
	for i := range z.Data {
		for j := 0; j < i; j++ {
			assert.EqualValues(t, 0, z.Data[i][j])
		}
	}

	got, err := alg.Mobius(1, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got)
}

func TestFuncs(t *testing.T) {
	alg, err := incidence.New[int](divisorPoset(t))
	require.NoError(t, err)

	delta := incidence.Delta(alg)
	zeta := incidence.Zeta(alg)
	mu := incidence.MobiusFunc(alg)

	v, err := delta(6, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
	v, err = delta(2, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)

	v, err = zeta(2, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
	v, err = zeta(4, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)

	_, err = mu(5, 6)
	assert.ErrorIs(t, err, order.ErrUnknownElement)
}

// TestConvolve_Inversion checks ζ*μ = δ = μ*ζ pointwise and that
// convolution vanishes off the order.
func TestConvolve_Inversion(t *testing.T) {
	alg, err := incidence.New[int](divisorPoset(t))
	require.NoError(t, err)

	delta := incidence.Delta(alg)
	zeta := incidence.Zeta(alg)
	mu := incidence.MobiusFunc(alg)

	zm := incidence.Convolve(alg, zeta, mu)
	mz := incidence.Convolve(alg, mu, zeta)

	for _, x := range alg.Extension() {
		for _, y := range alg.Extension() {
			want, err := delta(x, y)
			require.NoError(t, err)

			got, err := zm(x, y)
			require.NoError(t, err)
			assert.Equal(t, want, got, "(ζ*μ)(%d,%d)", x, y)

			got, err = mz(x, y)
			require.NoError(t, err)
			assert.Equal(t, want, got, "(μ*ζ)(%d,%d)", x, y)
		}
	}

	v, err := zm(4, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v, "convolution vanishes on incomparable pairs")
}

func TestCharacteristic(t *testing.T) {
	alg, err := incidence.New[int](divisorPoset(t))
	require.NoError(t, err)

	chi := incidence.Characteristic(alg, 2, 12)

	v, err := chi(2, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	v, err = chi(4, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	// 1 is outside [2, 12]
	v, err = chi(1, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)

	// 4 ≤ 6 fails
	v, err = chi(4, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)
}

// recursiveBridge recomputes μ by top-down memoized recursion; it must
// agree with the built-in back-substitution entry for entry.
type recursiveBridge struct{ calls int }

func (b *recursiveBridge) MobiusMatrix(ext []int, le func(x, y int) (bool, error)) (*incidence.Matrix[int], error) {
	b.calls++
	n := len(ext)
	m := &incidence.Matrix[int]{
		Index:     make(map[int]int, n),
		Extension: append([]int(nil), ext...),
		Data:      make([][]int64, n),
	}
	for i, e := range ext {
		m.Index[e] = i
		m.Data[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		m.Data[i][i] = 1
		for j := i + 1; j < n; j++ {
			ok, err := le(ext[i], ext[j])
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			var sum int64
			for k := i; k < j; k++ {
				below, err := le(ext[k], ext[j])
				if err != nil {
					return nil, err
				}
				if below {
					sum += m.Data[i][k]
				}
			}
			m.Data[i][j] = -sum
		}
	}

	return m, nil
}

// corruptBridge returns a plausible-looking matrix with one wrong entry.
type corruptBridge struct{}

func (corruptBridge) MobiusMatrix(ext []int, le func(x, y int) (bool, error)) (*incidence.Matrix[int], error) {
	b := &recursiveBridge{}
	m, err := b.MobiusMatrix(ext, le)
	if err != nil {
		return nil, err
	}
	m.Data[0][len(ext)-1]++

	return m, nil
}

func TestBridge(t *testing.T) {
	t.Run("agreement", func(t *testing.T) {
		br := &recursiveBridge{}
		alg, err := incidence.New[int](divisorPoset(t), incidence.WithBridge[int](br))
		require.NoError(t, err)

		got, err := alg.Mobius(1, 6)
		require.NoError(t, err)
		assert.EqualValues(t, 1, got)
		assert.Equal(t, 1, br.calls, "bridge result must be cached")

		// cache hit, no second bridge call
		_, err = alg.MobiusMatrix()
		require.NoError(t, err)
		assert.Equal(t, 1, br.calls)
	})

	t.Run("disagreement", func(t *testing.T) {
		alg, err := incidence.New[int](divisorPoset(t), incidence.WithBridge[int](corruptBridge{}))
		require.NoError(t, err)

		_, err = alg.MobiusMatrix()
		assert.ErrorIs(t, err, incidence.ErrBridge)
	})

	t.Run("bridge error", func(t *testing.T) {
		failing := bridgeFunc(func([]int, func(int, int) (bool, error)) (*incidence.Matrix[int], error) {
			return nil, errors.New("adapter offline")
		})
		alg, err := incidence.New[int](divisorPoset(t), incidence.WithBridge[int](failing))
		require.NoError(t, err)

		_, err = alg.MobiusMatrix()
		assert.ErrorContains(t, err, "adapter offline")
	})
}

// bridgeFunc adapts a plain function to the Bridge interface.
type bridgeFunc func([]int, func(int, int) (bool, error)) (*incidence.Matrix[int], error)

func (f bridgeFunc) MobiusMatrix(ext []int, le func(x, y int) (bool, error)) (*incidence.Matrix[int], error) {
	return f(ext, le)
}

func TestMatrix_Errors(t *testing.T) {
	a1, err := incidence.New[int](chainPoset(t, 3))
	require.NoError(t, err)
	a2, err := incidence.New[int](chainPoset(t, 4))
	require.NoError(t, err)

	z1, err := a1.ZetaMatrix()
	require.NoError(t, err)
	z2, err := a2.ZetaMatrix()
	require.NoError(t, err)

	_, err = z1.Mul(z2)
	assert.ErrorIs(t, err, incidence.ErrDimensionMismatch)
	_, err = z1.Mul(nil)
	assert.ErrorIs(t, err, incidence.ErrDimensionMismatch)

	_, err = z1.At(99, 0)
	assert.ErrorIs(t, err, order.ErrUnknownElement)
}

// TestConcurrentMobius hammers the lazy caches from several goroutines.
func TestConcurrentMobius(t *testing.T) {
	alg, err := incidence.New[uint8](maskPoset(t))
	require.NoError(t, err)

	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func() {
			m, err := alg.MobiusMatrix()
			if err != nil {
				done <- err
				return
			}
			v, err := m.At(0, 7)
			if err == nil && v != -1 {
				err = errors.New("unexpected μ(∅, {a,b,c})")
			}
			done <- err
		}()
	}
	for g := 0; g < 8; g++ {
		assert.NoError(t, <-done)
	}
}
