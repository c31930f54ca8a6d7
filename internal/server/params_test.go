package server

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringParam(t *testing.T) {
	params := map[string]any{"s": "text", "n": float64(1)}
	assert.Equal(t, "text", StringParam(params, "s", "d"))
	assert.Equal(t, "d", StringParam(params, "missing", "d"))
	assert.Equal(t, "d", StringParam(params, "n", "d"))
}

func TestArgs_Valid(t *testing.T) {
	params := map[string]any{
		"n":     float64(12.6),
		"ns":    " 7 ",
		"hex":   "0x1F",
		"whole": float64(42),
		"f":     "0.25",
		"b":     true,
		"bs":    "false",
		"null":  nil,
	}

	n, err := IntArg(params, "n", 0)
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	n, err = IntArg(params, "ns", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	n, err = IntArg(params, "missing", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	n, err = IntArg(params, "null", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	h, err := Int64Arg(params, "hex", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(31), h)
	h, err = Int64Arg(params, "whole", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), h)

	f, err := FloatArg(params, "f", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)
	f, err = FloatArg(params, "n", 1)
	require.NoError(t, err)
	assert.Equal(t, 12.6, f)

	b, err := BoolArg(params, "b", false)
	require.NoError(t, err)
	assert.True(t, b)
	b, err = BoolArg(params, "bs", true)
	require.NoError(t, err)
	assert.False(t, b)
	b, err = BoolArg(params, "missing", true)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestArgs_Invalid(t *testing.T) {
	params := map[string]any{
		"word":  "abc",
		"list":  []any{1},
		"frac":  1.5,
		"nan":   math.NaN(),
		"inf":   "Inf",
		"flag":  true,
		"maybe": "maybe",
	}

	for _, key := range []string{"word", "list", "nan", "flag"} {
		n, err := IntArg(params, key, 9)
		assert.Error(t, err, key)
		assert.Equal(t, 9, n, key)
	}
	for _, key := range []string{"word", "frac", "nan"} {
		_, err := Int64Arg(params, key, 0)
		assert.Error(t, err, key)
	}
	for _, key := range []string{"word", "inf", "nan", "flag"} {
		_, err := FloatArg(params, key, 0)
		assert.Error(t, err, key)
	}
	for _, key := range []string{"maybe", "frac"} {
		_, err := BoolArg(params, key, false)
		assert.Error(t, err, key)
	}

	_, err := IntArg(params, "word", 0)
	assert.Contains(t, err.Error(), "word")
}
