package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centraliser/membership"
	"github.com/katalvlaran/centraliser/semigroup"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestDecide_Flags(t *testing.T) {
	out, _, err := run(t, "decide", "-c", "[2, 3, 2, 3]", "-g", "[1, 2, 3, 2]")
	require.NoError(t, err)
	assert.Equal(t, "member: true\nstage: quotient-witness\nblocks: 3\nfactorisation: [0 0]\n", out)

	out, _, err = run(t, "decide", "-c", "[0, 1, 2, 3]", "-g", "[1, 2, 3, 2]")
	require.NoError(t, err)
	assert.Contains(t, out, "member: false\n")
	assert.NotContains(t, out, "factorisation")
}

func TestDecide_FileJSON(t *testing.T) {
	out, _, err := run(t, "decide", "-f", "testdata/seventeen.yaml", "-o", "json")
	require.NoError(t, err)

	var res membership.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Member)
	assert.Equal(t, 17, res.Degree)
}

func TestDecide_Errors(t *testing.T) {
	_, _, err := run(t, "decide", "-f", "testdata/wrong-expect.yaml")
	assert.ErrorIs(t, err, errUnexpected)

	_, _, err = run(t, "decide", "-c", "[0]")
	assert.Error(t, err, "no generators")

	_, _, err = run(t, "decide", "-c", "[0, 1]", "-g", "[0]")
	assert.Error(t, err)

	_, _, err = run(t, "decide", "-c", "[0]", "-g", "[0]", "-o", "xml")
	assert.Error(t, err)
}

func TestMaxElements_FromConfigAndEnv(t *testing.T) {
	args := []string{"decide", "-c", "[0, 1, 2]", "--full", "3"}

	_, stderr, err := run(t, append(args, "--config", "testdata/config.yaml")...)
	assert.ErrorIs(t, err, semigroup.ErrLimitExceeded)
	assert.Contains(t, stderr, "configuration loaded", "debug comes from the config file")

	t.Setenv("CENTRALISER_MAX_ELEMENTS", "2")
	_, _, err = run(t, args...)
	assert.ErrorIs(t, err, semigroup.ErrLimitExceeded)

	out, _, err := run(t, append(args, "--max-elements", "0")...)
	require.NoError(t, err, "flags override the environment")
	assert.Contains(t, out, "member: true")
}

func TestBar(t *testing.T) {
	out, _, err := run(t, "bar", "-g", "[1, 2, 3, 2]")
	require.NoError(t, err)
	assert.Equal(t, "0: [0]\n1: [1]\n2: [2 3]\nsources: [0]\nsinks: [2]\n", out)

	out, _, err = run(t, "bar", "-g", "[1, 2, 3, 2]", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "blocks: [[0], [1], [2, 3]]\nsources: [0]\nsinks: [2]\n", out)
}

func TestEnumerate(t *testing.T) {
	out, _, err := run(t, "enumerate", "--full", "3")
	require.NoError(t, err)
	assert.Equal(t, "size: 27\nidempotents: 10\n", out)

	out, _, err = run(t, "enumerate", "-g", "[1, 2, 2]", "--elements")
	require.NoError(t, err)
	assert.Equal(t, "size: 2\nidempotents: 1\n0\tTransformation([1, 2, 2])\t[0]\n1\tTransformation([2, 2, 2])\t[0 0]\n", out)

	_, _, err = run(t, "enumerate", "--full", "3", "-g", "[0, 1, 2]")
	assert.Error(t, err, "generator sources are exclusive")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
