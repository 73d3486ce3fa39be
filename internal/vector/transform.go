package vector

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Power raises each element to the power of exp, using exponentiation
// by squaring, producing a new vector.
// Panics with ErrUnsupported if exp is negative: integer element types
// have no useful reciprocal.
//
// Example:
//
//	y := vector.Of(3, 1, 4, 1).Power(2) // Vector([9 1 16 1])
func (v *Vector[T]) Power(exp int) *Vector[T] {
	if exp < 0 {
		panic(fmt.Errorf("%w: negative exponent %d", ErrUnsupported, exp))
	}
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = pow(x, exp)
	}
	return &Vector[T]{elements: out}
}

// pow computes base**exp by squaring. exp must be non-negative.
func pow[T Numeric](base T, exp int) T {
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Filter produces a new vector holding, in original order, every
// element for which keep returns true.
//
// Example:
//
//	y := vector.Of(3, 1, 4, 1).Filter(func(x int) bool { return x >= 2 })
//	// Vector([3 4])
func (v *Vector[T]) Filter(keep func(T) bool) *Vector[T] {
	elements := lo.Filter(v.elements, func(x T, _ int) bool {
		return keep(x)
	})
	return &Vector[T]{elements: elements}
}

// Sum returns the sum of all elements, folding left from the additive
// identity. An empty vector yields 0.
func (v *Vector[T]) Sum() T {
	return lo.Sum(v.elements)
}

// Max returns the largest element. It is restricted to integer element
// types; floating-point instantiations do not compile.
// Panics with ErrEmptyVector on an empty vector.
func Max[T constraints.Integer](v *Vector[T]) T {
	if v.IsEmpty() {
		panic(fmt.Errorf("%w: max", ErrEmptyVector))
	}
	max := v.elements[0]
	for _, x := range v.elements[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// Min returns the smallest element. It is restricted to integer element
// types; floating-point instantiations do not compile.
// Panics with ErrEmptyVector on an empty vector.
func Min[T constraints.Integer](v *Vector[T]) T {
	if v.IsEmpty() {
		panic(fmt.Errorf("%w: min", ErrEmptyVector))
	}
	min := v.elements[0]
	for _, x := range v.elements[1:] {
		if x < min {
			min = x
		}
	}
	return min
}
