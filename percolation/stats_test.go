package percolation_test

import (
	"testing"

	"github.com/katalvlaran/algoexercises/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStats_SingleTrialStdDevZero checks that a single trial yields a
// defined stddev of exactly 0, per the documented T=1 convention.
func TestStats_SingleTrialStdDevZero(t *testing.T) {
	rng := percolation.NewMathRandRNG(1)
	s, err := percolation.NewStats(5, 1, rng)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.StdDev())
	assert.Greater(t, s.Mean(), 0.0)
	assert.LessOrEqual(t, s.Mean(), 1.0)
}

// TestStats_MeanWithinUnitInterval sanity-checks the threshold mean over
// several trials stays within (0, 1].
func TestStats_MeanWithinUnitInterval(t *testing.T) {
	rng := percolation.NewMathRandRNG(42)
	s, err := percolation.NewStats(10, 20, rng)
	require.NoError(t, err)

	assert.Greater(t, s.Mean(), 0.0)
	assert.LessOrEqual(t, s.Mean(), 1.0)

	lo, hi := s.ConfidenceInterval()
	assert.LessOrEqual(t, lo, s.Mean())
	assert.GreaterOrEqual(t, hi, s.Mean())
}

// TestStats_InvalidInputs checks trial/size validation.
func TestStats_InvalidInputs(t *testing.T) {
	rng := percolation.NewMathRandRNG(1)

	_, err := percolation.NewStats(0, 1, rng)
	assert.ErrorIs(t, err, percolation.ErrInvalidSize)

	_, err = percolation.NewStats(1, 0, rng)
	assert.ErrorIs(t, err, percolation.ErrInvalidTrials)
}
