package vector

import "fmt"

// mustSameLen panics when a vector-vector operation is given operands
// of differing length. A mismatch is a hard failure, never a
// truncating or padding fallback.
func mustSameLen[T Numeric](op string, a, b *Vector[T]) {
	if len(a.elements) != len(b.elements) {
		panic(fmt.Errorf("%w: vector %s with lengths %d != %d",
			ErrLengthMismatch, op, len(a.elements), len(b.elements)))
	}
}

// Add performs elementwise addition, producing a new vector of the same
// length. Neither operand is modified.
// Panics with ErrLengthMismatch if the lengths differ.
func (v *Vector[T]) Add(other *Vector[T]) *Vector[T] {
	mustSameLen("addition", v, other)
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = x + other.elements[i]
	}
	return &Vector[T]{elements: out}
}

// Sub performs elementwise subtraction, producing a new vector.
// Panics with ErrLengthMismatch if the lengths differ.
func (v *Vector[T]) Sub(other *Vector[T]) *Vector[T] {
	mustSameLen("subtraction", v, other)
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = x - other.elements[i]
	}
	return &Vector[T]{elements: out}
}

// Mul performs elementwise multiplication, producing a new vector.
// Panics with ErrLengthMismatch if the lengths differ.
func (v *Vector[T]) Mul(other *Vector[T]) *Vector[T] {
	mustSameLen("multiplication", v, other)
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = x * other.elements[i]
	}
	return &Vector[T]{elements: out}
}

// AddScalar adds scalar to every element, producing a new vector.
// Addition commutes, so this also covers the scalar-on-the-left form.
func (v *Vector[T]) AddScalar(scalar T) *Vector[T] {
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = x + scalar
	}
	return &Vector[T]{elements: out}
}

// SubScalar subtracts scalar from every element, producing a new vector.
func (v *Vector[T]) SubScalar(scalar T) *Vector[T] {
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = x - scalar
	}
	return &Vector[T]{elements: out}
}

// ScalarSub is the scalar-on-the-left subtraction: each output element
// is scalar - element, not element - scalar.
func (v *Vector[T]) ScalarSub(scalar T) *Vector[T] {
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = scalar - x
	}
	return &Vector[T]{elements: out}
}

// MulScalar multiplies every element by scalar, producing a new vector.
// Multiplication commutes, so this also covers the scalar-on-the-left
// form.
func (v *Vector[T]) MulScalar(scalar T) *Vector[T] {
	out := make([]T, len(v.elements))
	for i, x := range v.elements {
		out[i] = x * scalar
	}
	return &Vector[T]{elements: out}
}

// AddAssign adds other into the receiver in place, index by index.
// Panics with ErrLengthMismatch if the lengths differ.
func (v *Vector[T]) AddAssign(other *Vector[T]) {
	mustSameLen("addition", v, other)
	for i := range v.elements {
		v.elements[i] += other.elements[i]
	}
}

// SubAssign subtracts other from the receiver in place.
// Panics with ErrLengthMismatch if the lengths differ.
func (v *Vector[T]) SubAssign(other *Vector[T]) {
	mustSameLen("subtraction", v, other)
	for i := range v.elements {
		v.elements[i] -= other.elements[i]
	}
}

// MulAssign multiplies the receiver by other in place.
// Panics with ErrLengthMismatch if the lengths differ.
func (v *Vector[T]) MulAssign(other *Vector[T]) {
	mustSameLen("multiplication", v, other)
	for i := range v.elements {
		v.elements[i] *= other.elements[i]
	}
}

// AddScalarAssign adds scalar to every element in place.
func (v *Vector[T]) AddScalarAssign(scalar T) {
	for i := range v.elements {
		v.elements[i] += scalar
	}
}

// SubScalarAssign subtracts scalar from every element in place.
func (v *Vector[T]) SubScalarAssign(scalar T) {
	for i := range v.elements {
		v.elements[i] -= scalar
	}
}

// MulScalarAssign multiplies every element by scalar in place.
func (v *Vector[T]) MulScalarAssign(scalar T) {
	for i := range v.elements {
		v.elements[i] *= scalar
	}
}
