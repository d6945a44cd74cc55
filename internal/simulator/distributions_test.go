package simulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickeats/dispatchsim/internal/models"
)

func TestExponentialRejectsNonPositiveRate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Exponential(rng, 0)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)

	_, err = Exponential(rng, -0.5)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}

func TestExponentialSamplesAreNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		x, err := Exponential(rng, 0.1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, x, 0.0)
	}
}

func TestExponentialSampleMean(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const rate = 0.1 // mean 10

	var sum float64
	const n = 100000
	for i := 0; i < n; i++ {
		x, err := Exponential(rng, rate)
		require.NoError(t, err)
		sum += x
	}
	assert.InDelta(t, 1.0/rate, sum/n, 0.2)
}

func TestExponentialIsDeterministicForSeed(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		xa, err := Exponential(a, 0.5)
		require.NoError(t, err)
		xb, err := Exponential(b, 0.5)
		require.NoError(t, err)
		assert.Equal(t, xa, xb)
	}
}
