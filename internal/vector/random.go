package vector

import (
	"fmt"
	"math/rand"
)

// Uniform creates a vector of n independent samples drawn uniformly
// from the half-open interval [low, high): low inclusive, high
// exclusive. Floating-point element types sample the continuous
// distribution; integer element types sample the discrete one.
//
// Draws come from the shared, auto-seeded math/rand source, so there is
// no reproducibility guarantee across calls.
// Note: uses math/rand (not crypto/rand), appropriate for statistical
// purposes.
//
// Panics with ErrInvalidInterval if low >= high.
//
// Example:
//
//	v := vector.Uniform(5, 0.0, 1.0)
func Uniform[T Numeric](n int, low, high T) *Vector[T] {
	if low >= high {
		panic(fmt.Errorf("%w: uniform low=%v high=%v", ErrInvalidInterval, low, high))
	}
	mustLen(n)

	elements := make([]T, n)
	var dummy T
	if inferDataType(dummy).IsFloat() {
		span := float64(high) - float64(low)
		for i := range elements {
			elements[i] = low + T(rand.Float64()*span) //nolint:gosec // G404: statistical sampling, not security
		}
	} else {
		span := int64(high) - int64(low)
		for i := range elements {
			elements[i] = low + T(rand.Int63n(span)) //nolint:gosec // G404: statistical sampling, not security
		}
	}
	return &Vector[T]{elements: elements}
}

// Normal creates a float64 vector of n independent samples from the
// Gaussian distribution N(mean, stdDev²). The element type is fixed to
// float64; other element types do not support normal sampling.
//
// stdDev is not validated: a negative value is not rejected, it simply
// mirrors the distribution around the mean.
//
// Example:
//
//	v := vector.Normal(5, 0.0, 1.0)
func Normal(n int, mean, stdDev float64) *Vector[float64] {
	mustLen(n)
	elements := make([]float64, n)
	for i := range elements {
		elements[i] = rand.NormFloat64()*stdDev + mean //nolint:gosec // G404: statistical sampling, not security
	}
	return &Vector[float64]{elements: elements}
}
