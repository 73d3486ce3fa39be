package vector

import (
	"fmt"
	"iter"
)

// Vector is a generic numeric vector with element type T.
// It owns a contiguous sequence of elements; there is no shared
// ownership, and Clone always produces independent storage. The only
// mutation pathways are Set and the in-place *Assign operators, which
// touch the receiver's own storage only.
//
// Example:
//
//	x := vector.Of(3, 1, 4, 1, 5)
//	y := x.MulScalar(2) // Vector([6 2 8 2 10])
type Vector[T Numeric] struct {
	elements []T
}

// Of creates a vector holding the given elements.
//
// Example:
//
//	v := vector.Of(3.0, 1.0, 4.0)
func Of[T Numeric](elements ...T) *Vector[T] {
	return &Vector[T]{elements: elements}
}

// FromSlice creates a vector from a Go slice.
// The slice is copied into the vector's own storage.
func FromSlice[T Numeric](s []T) *Vector[T] {
	elements := make([]T, len(s))
	copy(elements, s)
	return &Vector[T]{elements: elements}
}

// Len returns the total number of elements.
func (v *Vector[T]) Len() int {
	return len(v.elements)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return len(v.elements) == 0
}

// At returns the element at position i.
// Panics with ErrOutOfBounds if i is negative or not less than Len.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.elements) {
		panic(fmt.Errorf("%w: index %d with length %d", ErrOutOfBounds, i, len(v.elements)))
	}
	return v.elements[i]
}

// Set replaces the element at position i.
// Panics with ErrOutOfBounds if i is negative or not less than Len.
func (v *Vector[T]) Set(i int, value T) {
	if i < 0 || i >= len(v.elements) {
		panic(fmt.Errorf("%w: index %d with length %d", ErrOutOfBounds, i, len(v.elements)))
	}
	v.elements[i] = value
}

// Data returns the vector's backing slice.
//
// WARNING: Modifications to the returned slice will modify the vector.
func (v *Vector[T]) Data() []T {
	return v.elements
}

// Clone creates a deep copy of the vector with independent storage.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.elements)
}

// Equal reports whether both vectors have the same length and
// pairwise-equal elements in order.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return v.EqualSlice(other.elements)
}

// EqualSlice reports whether the vector's elements equal the raw slice.
func (v *Vector[T]) EqualSlice(s []T) bool {
	if len(v.elements) != len(s) {
		return false
	}
	for i, x := range v.elements {
		if x != s[i] {
			return false
		}
	}
	return true
}

// All returns an iterator over index/element pairs in order.
// The sequence is finite and forward-only.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.elements {
			if !yield(i, x) {
				return
			}
		}
	}
}

// String returns a human-readable representation of the vector.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector(%v)", v.elements)
}
