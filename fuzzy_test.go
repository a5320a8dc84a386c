package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuzzyEqualReflexive(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 1e-20, 1e20, math.Pi, math.Inf(1)} {
		require.True(t, FuzzyEqual(x, x, DefaultEpsilon))
		require.True(t, FuzzyEqual(x, x, 1e-30))
	}
}

func TestFuzzyEqualRelative(t *testing.T) {
	require.True(t, FuzzyEqual(1.0, 1.005, 0.01))
	require.False(t, FuzzyEqual(1.0, 1.05, 0.01))
	require.True(t, FuzzyEqual(-1.0, -1.005, 0.01))

	// Magnitude-independent: the same relative error passes at any scale.
	require.True(t, FuzzyEqual(1e10, 1.005e10, 0.01))
	require.False(t, FuzzyEqual(1e10, 1.05e10, 0.01))
}

func TestFuzzyEqualNearZero(t *testing.T) {
	// Near zero the comparison switches to an absolute bound of ε·1e-13,
	// which is far stricter than the relative branch.
	require.True(t, FuzzyEqual(0, 1e-16, 0.01))
	require.False(t, FuzzyEqual(0, 1e-14, 0.01))
	require.False(t, FuzzyEqual(0, 0.1, 0.01))
	require.False(t, FuzzyEqual(0.1, 0, 0.01))

	// Operands within 1e-13 of each other also use the strict bound even if
	// neither is zero.
	require.False(t, FuzzyEqual(1e-14, 2e-14, 0.01))
	require.True(t, FuzzyEqual(1e-16, 1.5e-16, 0.01))
}

func TestFuzzyEqualNaN(t *testing.T) {
	nan := math.NaN()
	require.False(t, FuzzyEqual(nan, nan, DefaultEpsilon))
	require.False(t, FuzzyEqual(nan, 0, DefaultEpsilon))
}
