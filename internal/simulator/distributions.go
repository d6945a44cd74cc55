package simulator

import (
	"fmt"
	"math/rand"

	"github.com/quickeats/dispatchsim/internal/models"
)

// Exponential draws a sample from the exponential distribution with the given
// rate (mean 1/rate). Inter-arrival gaps use rate = arrivalRate; service
// durations use rate = 1/serviceMean. The check is defensive: validated
// configuration can never reach it with a bad rate.
func Exponential(rng *rand.Rand, rate float64) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: exponential rate must be positive, got %g",
			models.ErrInvalidParameter, rate)
	}
	return rng.ExpFloat64() / rate, nil
}
