package quotient_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centraliser/quotient"
	"github.com/katalvlaran/centraliser/transformation"
)

func TestStabiliser_TwoCycle(t *testing.T) {
	a := transformation.MustNew(1, 2, 3, 2)
	e := transformation.MustNew(0, 1, 2, 2)
	gens := []transformation.Transformation{a, e}
	p, err := quotient.Bar(4, gens)
	require.NoError(t, err)
	lifts, err := quotient.LiftAll(gens, p)
	require.NoError(t, err)

	// block {2,3} (index 2) is fixed by both generators
	st, err := quotient.Stabiliser(2, gens, lifts)
	require.NoError(t, err)
	require.Len(t, st, 3)
	assert.True(t, st[0].IsIdentity())
	assert.True(t, st[1].Equal(a))
	assert.True(t, st[2].Equal(e))

	idx, err := quotient.StabiliserIndices(2, gens, lifts)
	require.NoError(t, err)
	assert.Equal(t, []int{quotient.IdentityIndex, 0, 1}, idx)

	// block {0} is moved by a, fixed by e
	st, err = quotient.Stabiliser(0, gens, lifts)
	require.NoError(t, err)
	require.Len(t, st, 2)
	assert.True(t, st[1].Equal(e))
}

func TestStabiliser_AlwaysContainsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(7)
		gens := []transformation.Transformation{randomTransformation(rng, n), randomTransformation(rng, n)}
		p, err := quotient.Bar(n, gens)
		require.NoError(t, err)
		lifts, err := quotient.LiftAll(gens, p)
		require.NoError(t, err)

		for b := 0; b < p.Len(); b++ {
			st, err := quotient.Stabiliser(b, gens, lifts)
			require.NoError(t, err)
			found := false
			for _, s := range st {
				if s.Equal(transformation.Identity(n)) {
					found = true
				}
			}
			assert.True(t, found, "identity stabilises block %d", b)
		}
	}
}

func TestIntersectStabilisers(t *testing.T) {
	a := transformation.MustNew(1, 2, 3, 2)
	e := transformation.MustNew(0, 1, 2, 2)
	gens := []transformation.Transformation{a, e, e}
	p, err := quotient.Bar(4, gens)
	require.NoError(t, err)
	lifts, err := quotient.LiftAll(gens, p)
	require.NoError(t, err)

	elems, idx, err := quotient.IntersectStabilisers(quotient.NewBlockSet(0, 2), gens, lifts)
	require.NoError(t, err)
	assert.Equal(t, []int{quotient.IdentityIndex, 1}, idx, "duplicates of e appear once")
	require.Len(t, elems, 2)
	assert.True(t, elems[1].Equal(e))

	elems, idx, err = quotient.IntersectStabilisers(nil, gens, lifts)
	require.NoError(t, err)
	assert.Equal(t, []int{quotient.IdentityIndex, 0, 1}, idx)
	assert.Len(t, elems, 3)
}

func TestIntersectStabilisers_Errors(t *testing.T) {
	gens := []transformation.Transformation{transformation.Identity(2)}
	p, err := quotient.Bar(2, gens)
	require.NoError(t, err)
	lifts, err := quotient.LiftAll(gens, p)
	require.NoError(t, err)

	_, _, err = quotient.IntersectStabilisers(nil, gens, nil)
	assert.ErrorIs(t, err, quotient.ErrLiftCount)

	_, err = quotient.Stabiliser(9, gens, lifts)
	assert.ErrorIs(t, err, quotient.ErrBlockOutOfRange)
}
