package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL2Distance(t *testing.T) {
	d, err := L2Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	// 3-4-5 triangle must be exact.
	assert.Equal(t, 5.0, d)
}

func TestL2Distance_Cases(t *testing.T) {
	testCases := []struct {
		description string
		a, b        []float64
		expect      float64
	}{
		{description: "identical", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, expect: 0},
		{description: "one dimension", a: []float64{-2}, b: []float64{5}, expect: 7},
		{description: "empty", a: nil, b: []float64{}, expect: 0},
		{description: "symmetric", a: []float64{1, 1}, b: []float64{2, 2}, expect: math.Sqrt2},
	}
	for _, testCase := range testCases {
		actual, err := L2Distance(testCase.a, testCase.b)
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.InDelta(t, testCase.expect, actual, 1e-12, testCase.description)
	}
}

func TestL2Distance_DimensionMismatch(t *testing.T) {
	_, err := L2Distance([]float64{1, 2}, []float64{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Contains(t, err.Error(), "2 vs 3")
}
