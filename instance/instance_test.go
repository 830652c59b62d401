package instance_test

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centraliser/instance"
	"github.com/katalvlaran/centraliser/transformation"
)

func TestLoad_YAML(t *testing.T) {
	in, err := instance.Load("testdata/seventeen.yaml")
	require.NoError(t, err)
	assert.Equal(t, "seventeen-generator", in.Name)
	require.NotNil(t, in.Expect)
	assert.True(t, *in.Expect)

	f, gens, err := in.Transformations()
	require.NoError(t, err)
	assert.Equal(t, 17, f.Degree())
	require.Len(t, gens, 3)
	assert.True(t, f.Equal(gens[1]))
}

func TestLoad_JSON(t *testing.T) {
	in, err := instance.Load("testdata/seventeen-identity.json")
	require.NoError(t, err)
	require.NotNil(t, in.Expect)
	assert.False(t, *in.Expect)

	f, _, err := in.Transformations()
	require.NoError(t, err)
	assert.True(t, f.IsIdentity())
}

func TestLoad_Missing(t *testing.T) {
	_, err := instance.Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	in, err := instance.Load("testdata/broken.yaml")
	require.NoError(t, err)

	err = in.Validate()
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	// candidate image 5, generator 1 degree, candidate degree
	assert.Len(t, merr.Errors, 3)
	assert.ErrorIs(t, err, transformation.ErrImageOutOfRange)
	assert.ErrorIs(t, err, transformation.ErrDegreeMismatch)

	_, _, err = in.Transformations()
	assert.Error(t, err)
}

func TestValidate_MissingParts(t *testing.T) {
	in, err := instance.Parse([]byte("name: nothing\n"))
	require.NoError(t, err)
	err = in.Validate()
	assert.ErrorIs(t, err, instance.ErrNoCandidate)
	assert.ErrorIs(t, err, transformation.ErrEmptyGenerators)
}

func TestParse_Errors(t *testing.T) {
	_, err := instance.Parse(nil)
	assert.ErrorIs(t, err, instance.ErrEmpty)

	_, err = instance.Parse([]byte("candidate: [0]\nbogus: 1\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = instance.Parse([]byte("candidate: zero\n"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	f := transformation.MustNew(2, 3, 2, 3)
	gens := []transformation.Transformation{transformation.MustNew(1, 2, 3, 2)}
	data, err := instance.FromTransformations(f, gens).Marshal()
	require.NoError(t, err)

	in, err := instance.Parse(data)
	require.NoError(t, err)
	got, gotGens, err := in.Transformations()
	require.NoError(t, err)
	assert.True(t, got.Equal(f))
	require.Len(t, gotGens, 1)
	assert.True(t, gotGens[0].Equal(gens[0]))
}
