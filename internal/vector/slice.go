package vector

import "fmt"

// mustSliceBounds panics unless 0 <= begin <= end <= Len.
func (v *Vector[T]) mustSliceBounds(begin, end int) {
	if begin < 0 || begin > end || end > len(v.elements) {
		panic(fmt.Errorf("%w: slice [%d, %d) with length %d",
			ErrOutOfBounds, begin, end, len(v.elements)))
	}
}

// Slice produces a new, independently owned vector copying the elements
// of the half-open range [begin, end). Cost is proportional to the size
// of the slice; the result never aliases the receiver's storage.
//
// Panics with ErrOutOfBounds unless 0 <= begin <= end <= Len.
//
// Example:
//
//	x := vector.Of(3, 1, 2, 3)
//	y := x.Slice(1, 3) // Vector([1 2])
func (v *Vector[T]) Slice(begin, end int) *Vector[T] {
	v.mustSliceBounds(begin, end)
	return FromSlice(v.elements[begin:end])
}

// SliceFrom copies the elements from begin through the end of the
// vector, like Slice(begin, Len).
func (v *Vector[T]) SliceFrom(begin int) *Vector[T] {
	return v.Slice(begin, len(v.elements))
}

// SliceTo copies the elements of [0, end), like Slice(0, end).
func (v *Vector[T]) SliceTo(end int) *Vector[T] {
	return v.Slice(0, end)
}

// SliceFull copies the whole vector, like Slice(0, Len).
func (v *Vector[T]) SliceFull() *Vector[T] {
	return v.Slice(0, len(v.elements))
}

// SliceInclusive copies the closed range [begin, end], like
// Slice(begin, end+1).
func (v *Vector[T]) SliceInclusive(begin, end int) *Vector[T] {
	return v.Slice(begin, end+1)
}

// SliceToInclusive copies the elements of [0, end], like
// Slice(0, end+1).
func (v *Vector[T]) SliceToInclusive(end int) *Vector[T] {
	return v.Slice(0, end+1)
}
