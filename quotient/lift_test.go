package quotient_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centraliser/quotient"
	"github.com/katalvlaran/centraliser/transformation"
)

func TestLiftOf_TwoCycle(t *testing.T) {
	a := transformation.MustNew(1, 2, 3, 2)
	p, err := quotient.Bar(4, []transformation.Transformation{a})
	require.NoError(t, err)

	l, err := quotient.LiftOf(a, p)
	require.NoError(t, err)
	assert.True(t, l.WellDefined())
	// {0}→{1}, {1}→{2,3}, {2,3}→{2,3}
	assert.Equal(t, []int{1, 2, 2}, l.Transformation().Images())
	assert.True(t, l.Fixes(2))
	assert.False(t, l.Fixes(0))
	assert.Equal(t, quotient.BlockSet{1, 2}, l.Image())
}

func TestLiftOf_NotWellDefined(t *testing.T) {
	// 0 ⇄ 1 under the swap; b splits them into different blocks {2}, {3}.
	swap := transformation.MustNew(1, 0, 2, 3)
	b := transformation.MustNew(2, 3, 2, 3)
	p, err := quotient.Bar(4, []transformation.Transformation{swap, b})
	require.NoError(t, err)

	l, err := quotient.LiftOf(b, p)
	require.NoError(t, err)
	assert.False(t, l.WellDefined())
	assert.False(t, b.Commutes(swap))

	lifts, err := quotient.LiftAll([]transformation.Transformation{swap, b}, p)
	require.NoError(t, err)
	assert.False(t, quotient.AllWellDefined(lifts))
}

func TestLiftOf_DegreeMismatch(t *testing.T) {
	p, err := quotient.Bar(2, []transformation.Transformation{transformation.Identity(2)})
	require.NoError(t, err)
	_, err = quotient.LiftOf(transformation.Identity(3), p)
	assert.ErrorIs(t, err, quotient.ErrDegreeMismatch)
	assert.ErrorIs(t, err, transformation.ErrDegreeMismatch)
}

// A transformation commuting with every generator lifts to a well-defined
// map: two points of one block always land in one block.
func TestLiftOf_CommutingIsWellDefined(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rng.Intn(8)
		a := randomTransformation(rng, n)
		gens := []transformation.Transformation{a, a.Mul(a)}
		f := transformation.Product(n, a, a, a)
		if rng.Intn(2) == 0 {
			f = transformation.Identity(n)
		}
		for _, g := range gens {
			require.True(t, f.Commutes(g))
		}

		p, err := quotient.Bar(n, gens)
		require.NoError(t, err)
		l, err := quotient.LiftOf(f, p)
		require.NoError(t, err)
		assert.True(t, l.WellDefined(), "lift of %v over %v", f, a)
	}
}

func TestHat_AgreesOnZIdentityOff(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(8)
		a := randomTransformation(rng, n)
		p, err := quotient.Bar(n, []transformation.Transformation{a})
		require.NoError(t, err)

		var zs []int
		for i := 0; i < p.Len(); i++ {
			if rng.Intn(2) == 0 {
				zs = append(zs, i)
			}
		}
		z := quotient.NewBlockSet(zs...)
		f := randomTransformation(rng, n)

		h, err := quotient.Hat(f, p, z)
		require.NoError(t, err)
		require.Equal(t, n, h.Degree())
		for x := 0; x < n; x++ {
			if z.Contains(p.BlockOf(x)) {
				assert.Equal(t, f.At(x), h.At(x))
			} else {
				assert.Equal(t, x, h.At(x))
			}
		}
	}
}

func TestHat_Errors(t *testing.T) {
	p, err := quotient.Bar(2, []transformation.Transformation{transformation.Identity(2)})
	require.NoError(t, err)

	_, err = quotient.Hat(transformation.Identity(3), p, nil)
	assert.ErrorIs(t, err, quotient.ErrDegreeMismatch)

	_, err = quotient.Hat(transformation.Identity(2), p, quotient.BlockSet{5})
	assert.ErrorIs(t, err, quotient.ErrBlockOutOfRange)
}

func TestBlockSet(t *testing.T) {
	s := quotient.NewBlockSet(3, 1, 3, 0)
	assert.Equal(t, quotient.BlockSet{0, 1, 3}, s)
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(2))
}
