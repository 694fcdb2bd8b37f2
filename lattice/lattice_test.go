package lattice_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkov/ordlat/lattice"
	"github.com/velkov/ordlat/order"
)

// divisorLattice builds {1,2,3,4,6,12} under divisibility: meet is gcd,
// join is lcm.
func divisorLattice(t *testing.T) *lattice.Lattice[int] {
	t.Helper()
	elems := []int{1, 2, 3, 4, 6, 12}
	var rel [][2]int
	for _, d := range elems {
		for _, e := range elems {
			if e%d == 0 {
				rel = append(rel, [2]int{d, e})
			}
		}
	}
	p, err := order.New(elems, rel)
	require.NoError(t, err)
	l, err := lattice.New(p, lattice.WithVerify())
	require.NoError(t, err)

	return l
}

// maskLattice builds the power-set lattice of a k-element ground set,
// with subsets encoded as bitmasks: meet is AND, join is OR.
func maskLattice(t *testing.T, k int) *lattice.Lattice[int] {
	t.Helper()
	n := 1 << k
	elems := make([]int, n)
	var rel [][2]int
	for i := 0; i < n; i++ {
		elems[i] = i
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x&y == x {
				rel = append(rel, [2]int{x, y})
			}
		}
	}
	p, err := order.New(elems, rel)
	require.NoError(t, err)
	l, err := lattice.New(p, lattice.WithVerify())
	require.NoError(t, err)

	return l
}

// bowtiePoset is the classic non-lattice: a,b < c,d with {a,b} and {c,d}
// mutually incomparable, so meet(c,d) has no unique bound.
func bowtiePoset(t *testing.T) *order.Poset[string] {
	t.Helper()
	p, err := order.New(
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}},
	)
	require.NoError(t, err)

	return p
}

func TestNew_Errors(t *testing.T) {
	_, err := lattice.New[int](nil)
	assert.ErrorIs(t, err, lattice.ErrNilOrder)

	lz := &order.Lazy[int]{LeFn: func(x, y int) (bool, error) { return x <= y, nil }}
	_, err = lattice.New[int](lz)
	assert.ErrorIs(t, err, order.ErrInfiniteOrder)
}

// TestDivisorScenario checks meet(6,4)==2 (gcd) and join(6,4)==12 (lcm).
func TestDivisorScenario(t *testing.T) {
	l := divisorLattice(t)

	m, err := l.Meet(6, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, m)

	j, err := l.Join(6, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, j)
}

// TestPowerSetScenario checks intersection/union and the bounds of the
// power-set lattice of a 3-element ground set.
func TestPowerSetScenario(t *testing.T) {
	l := maskLattice(t, 3)
	ab, bc := 0b011, 0b110

	m, err := l.Meet(ab, bc)
	require.NoError(t, err)
	assert.Equal(t, 0b010, m, "meet must be the intersection")

	j, err := l.Join(ab, bc)
	require.NoError(t, err)
	assert.Equal(t, 0b111, j, "join must be the union")

	bottom, err := l.Bottom()
	require.NoError(t, err)
	assert.Equal(t, 0b000, bottom)

	top, err := l.Top()
	require.NoError(t, err)
	assert.Equal(t, 0b111, top)
}

// TestLatticeLaws checks commutativity, associativity and idempotence of
// meet and join over every element triple of the divisor lattice.
func TestLatticeLaws(t *testing.T) {
	l := divisorLattice(t)
	elems := l.Elements()

	type op struct {
		name  string
		apply func(x, y int) (int, error)
	}
	for _, o := range []op{{"meet", l.Meet}, {"join", l.Join}} {
		for _, x := range elems {
			xx, err := o.apply(x, x)
			require.NoError(t, err)
			assert.Equal(t, x, xx, "%s(%d,%d) must be idempotent", o.name, x, x)
			for _, y := range elems {
				xy, err := o.apply(x, y)
				require.NoError(t, err)
				yx, err := o.apply(y, x)
				require.NoError(t, err)
				assert.Equal(t, xy, yx, "%s must commute for (%d,%d)", o.name, x, y)
				for _, z := range elems {
					yz, err := o.apply(y, z)
					require.NoError(t, err)
					left, err := o.apply(x, yz)
					require.NoError(t, err)
					right, err := o.apply(xy, z)
					require.NoError(t, err)
					assert.Equal(t, left, right, "%s must associate for (%d,%d,%d)", o.name, x, y, z)
				}
			}
		}
	}
}

// TestAbsorption checks meet(x, join(x,y)) == x and its dual.
func TestAbsorption(t *testing.T) {
	l := divisorLattice(t)
	for _, x := range l.Elements() {
		for _, y := range l.Elements() {
			j, err := l.Join(x, y)
			require.NoError(t, err)
			m, err := l.Meet(x, j)
			require.NoError(t, err)
			assert.Equal(t, x, m)

			m2, err := l.Meet(x, y)
			require.NoError(t, err)
			j2, err := l.Join(x, m2)
			require.NoError(t, err)
			assert.Equal(t, x, j2)
		}
	}
}

// TestNotALattice verifies that the bowtie poset is rejected and the
// offending pair is carried on the error.
func TestNotALattice(t *testing.T) {
	p := bowtiePoset(t)

	_, err := lattice.New[string](p, lattice.WithVerify())
	require.Error(t, err)
	assert.ErrorIs(t, err, lattice.ErrNotALattice)

	var be *lattice.BoundError
	require.ErrorAs(t, err, &be)
	assert.Contains(t, []string{"meet", "join"}, be.Op)

	// without verification, the failure surfaces lazily on the bad pair
	l, err := lattice.New[string](p)
	require.NoError(t, err)
	_, err = l.Meet("c", "d")
	assert.ErrorIs(t, err, lattice.ErrNotALattice)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "c", be.X)
	assert.Equal(t, "d", be.Y)
}

// TestInfimumSupremum covers folds, including the undefined empty input.
func TestInfimumSupremum(t *testing.T) {
	l := divisorLattice(t)

	inf, ok, err := l.Infimum([]int{4, 6, 12})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, inf)

	sup, ok, err := l.Supremum([]int{2, 3})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6, sup)

	_, ok, err = l.Infimum(nil)
	require.NoError(t, err)
	assert.False(t, ok, "empty infimum is undefined, not an error")

	_, ok, err = l.Supremum([]int{})
	require.NoError(t, err)
	assert.False(t, ok, "empty supremum is undefined, not an error")

	_, _, err = l.Infimum([]int{5})
	assert.ErrorIs(t, err, order.ErrUnknownElement)
}

// TestUnknownElement covers foreign elements on every entry point.
func TestUnknownElement(t *testing.T) {
	l := divisorLattice(t)
	_, err := l.Meet(5, 6)
	assert.ErrorIs(t, err, order.ErrUnknownElement)
	_, err = l.Join(6, 5)
	assert.ErrorIs(t, err, order.ErrUnknownElement)
	_, _, err = l.Complement(5)
	assert.ErrorIs(t, err, order.ErrUnknownElement)
}

// TestComplement checks complements in the Boolean lattice and their
// absence in a chain.
func TestComplement(t *testing.T) {
	b := maskLattice(t, 3)
	c, ok, err := b.Complement(0b011)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0b100, c)

	complemented, err := b.IsComplemented()
	require.NoError(t, err)
	assert.True(t, complemented)

	// chain 0 < 1 < 2: the middle element has no complement
	p, err := order.New([]int{0, 1, 2}, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	ch, err := lattice.New(p)
	require.NoError(t, err)
	_, ok, err = ch.Complement(1)
	require.NoError(t, err)
	assert.False(t, ok)

	complemented, err = ch.IsComplemented()
	require.NoError(t, err)
	assert.False(t, complemented)
}

// TestUnbounded verifies ErrUnbounded on an antichain.
func TestUnbounded(t *testing.T) {
	p, err := order.New([]string{"x", "y"}, nil)
	require.NoError(t, err)
	l, err := lattice.New[string](p)
	require.NoError(t, err)

	_, err = l.Top()
	assert.ErrorIs(t, err, lattice.ErrUnbounded)
	_, err = l.Bottom()
	assert.ErrorIs(t, err, lattice.ErrUnbounded)
}

// TestIsSublatticeOf checks a divisor sublattice and a counterexample.
func TestIsSublatticeOf(t *testing.T) {
	big := divisorLattice(t)

	// {1,2,6,12} is closed under gcd/lcm inside divisors(12)
	sub, err := order.New([]int{1, 2, 6, 12}, [][2]int{{1, 2}, {2, 6}, {6, 12}})
	require.NoError(t, err)
	small, err := lattice.New(sub)
	require.NoError(t, err)
	ok, err := small.IsSublatticeOf(big)
	require.NoError(t, err)
	assert.True(t, ok)

	// {1,4,6,12} is not: join(4,6) is 12 both inside and outside, but
	// meet(4,6) is 1 inside and 2 outside.
	sub2, err := order.New([]int{1, 4, 6, 12}, [][2]int{{1, 4}, {1, 6}, {4, 12}, {6, 12}})
	require.NoError(t, err)
	small2, err := lattice.New(sub2)
	require.NoError(t, err)
	ok, err = small2.IsSublatticeOf(big)
	require.NoError(t, err)
	assert.False(t, ok)

	// foreign elements disqualify immediately
	other, err := order.New([]int{7, 14}, [][2]int{{7, 14}})
	require.NoError(t, err)
	stranger, err := lattice.New(other)
	require.NoError(t, err)
	ok, err = stranger.IsSublatticeOf(big)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestDualSwapsBounds verifies meet/join swap under dualization.
func TestDualSwapsBounds(t *testing.T) {
	l := divisorLattice(t)
	d, err := l.Dual()
	require.NoError(t, err)

	m, err := d.Meet(6, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, m, "dual meet must be the original join")

	j, err := d.Join(6, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, j, "dual join must be the original meet")
}

// TestConcurrentMeets ensures concurrent cache use is race-free and
// consistent.
func TestConcurrentMeets(t *testing.T) {
	l := divisorLattice(t)
	elems := l.Elements()

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, x := range elems {
				for _, y := range elems {
					m, err := l.Meet(x, y)
					if err != nil {
						t.Errorf("Meet(%d,%d): %v", x, y, err)
						return
					}
					results[w] = append(results[w], m)
				}
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < 8; w++ {
		assert.Equal(t, results[0], results[w], "worker %d disagrees", w)
	}
}

// TestMeetErrorsDoNotPoisonCache verifies an undefined pair keeps
// reporting the same BoundError on repeat queries.
func TestMeetErrorsDoNotPoisonCache(t *testing.T) {
	l, err := lattice.New[string](bowtiePoset(t))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = l.Meet("c", "d")
		assert.ErrorIs(t, err, lattice.ErrNotALattice)
	}
	// defined pairs keep working alongside
	m, err := l.Meet("a", "c")
	require.NoError(t, err)
	assert.Equal(t, "a", m)
}
