package vector

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// mustLen panics when a builder is given a negative length.
func mustLen(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative length %d", ErrOutOfBounds, n))
	}
}

// Full creates a vector of n copies of value. n == 0 is legal and
// yields an empty vector.
//
// Example:
//
//	v := vector.Full(5, 2.5) // Vector([2.5 2.5 2.5 2.5 2.5])
func Full[T Numeric](n int, value T) *Vector[T] {
	mustLen(n)
	elements := make([]T, n)
	for i := range elements {
		elements[i] = value
	}
	return &Vector[T]{elements: elements}
}

// FullLike creates a vector with the same length as v, filled with value.
func FullLike[T Numeric](v *Vector[T], value T) *Vector[T] {
	return Full(v.Len(), value)
}

// Zeros creates a vector of n zeros.
//
// Example:
//
//	v := vector.Zeros[int32](5)
func Zeros[T Numeric](n int) *Vector[T] {
	return Full(n, T(0))
}

// ZerosLike creates a vector of zeros with the same length as v.
func ZerosLike[T Numeric](v *Vector[T]) *Vector[T] {
	return Full(v.Len(), T(0))
}

// Ones creates a vector of n ones.
//
// Example:
//
//	v := vector.Ones[float64](10)
func Ones[T Numeric](n int) *Vector[T] {
	return Full(n, T(1))
}

// OnesLike creates a vector of ones with the same length as v.
func OnesLike[T Numeric](v *Vector[T]) *Vector[T] {
	return Full(v.Len(), T(1))
}

// Range creates a vector of regularly incrementing values over the
// half-open interval [start, stop): the interval includes start but
// excludes stop.
//
// Values are produced by repeated addition of step, not by multiplying
// index by step, so floating-point rounding accumulates across the
// sequence. This is the documented behavior, inherited floating-point
// semantics rather than a defect. step is assumed positive; that is the
// caller's responsibility.
//
// Panics with ErrInvalidInterval if start >= stop.
//
// Example:
//
//	v := vector.Range(1.0, 3.0, 0.5) // Vector([1 1.5 2 2.5])
func Range[T Numeric](start, stop, step T) *Vector[T] {
	if start >= stop {
		panic(fmt.Errorf("%w: range start=%v stop=%v", ErrInvalidInterval, start, stop))
	}
	var elements []T
	for cur := start; cur < stop; cur += step {
		elements = append(elements, cur)
	}
	return &Vector[T]{elements: elements}
}

// Linspace creates a vector of exactly n values evenly spaced over the
// closed interval [start, stop], including both endpoints.
//
// The step is (stop-start)/(n-1) and values accumulate by repeated
// addition, with the same rounding drift as Range; the final slot is
// then forced to exactly stop, so the last element is always the
// literal stop value regardless of accumulated error and the result
// always holds exactly n elements.
//
// n == 1 yields [start] and n == 0 yields an empty vector.
// Panics with ErrInvalidInterval if start >= stop.
//
// Example:
//
//	v := vector.Linspace(5, 1.0, 10.0) // Vector([1 3.25 5.5 7.75 10])
func Linspace[T constraints.Float](n int, start, stop T) *Vector[T] {
	if start >= stop {
		panic(fmt.Errorf("%w: linspace start=%v stop=%v", ErrInvalidInterval, start, stop))
	}
	mustLen(n)
	switch n {
	case 0:
		return &Vector[T]{}
	case 1:
		return Of(start)
	}

	step := (stop - start) / T(n-1)
	elements := make([]T, 0, n)
	for cur := start; cur < stop && len(elements) < n; cur += step {
		elements = append(elements, cur)
	}

	// Include the stop value in the generated sequence.
	if len(elements) == n {
		elements[n-1] = stop
	} else {
		elements = append(elements, stop)
	}
	return &Vector[T]{elements: elements}
}
