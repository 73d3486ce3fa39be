// Copyright 2026 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/numgo-ml/numgo/internal/vector"
)

// Type aliases for public API

// Numeric is the constraint for supported vector element types: every
// primitive integer and floating-point type.
type Numeric = vector.Numeric

// DataType represents runtime type information for vector elements.
type DataType = vector.DataType

// Element data type constants.
const (
	Int     DataType = vector.Int
	Int8    DataType = vector.Int8
	Int16   DataType = vector.Int16
	Int32   DataType = vector.Int32
	Int64   DataType = vector.Int64
	Uint    DataType = vector.Uint
	Uint8   DataType = vector.Uint8
	Uint16  DataType = vector.Uint16
	Uint32  DataType = vector.Uint32
	Uint64  DataType = vector.Uint64
	Float32 DataType = vector.Float32
	Float64 DataType = vector.Float64
)

// Vector is a generic numeric vector with element type T.
//
// A Vector owns its storage exclusively: Clone and Slice always deep
// copy, and only Set and the in-place *Assign operators mutate a vector
// after construction.
//
// Example:
//
//	x := vector.Of(3, 1, 4, 1, 5)
//	y := x.Add(vector.Ones[int](5))
type Vector[T Numeric] = vector.Vector[T]

// Sentinel errors. Panics raised by this package wrap one of these, so
// a recovered value can be classified with errors.Is.
var (
	ErrInvalidInterval = vector.ErrInvalidInterval
	ErrLengthMismatch  = vector.ErrLengthMismatch
	ErrOutOfBounds     = vector.ErrOutOfBounds
	ErrUnsupported     = vector.ErrUnsupported
	ErrEmptyVector     = vector.ErrEmptyVector
)

// Creation functions

// Of creates a vector holding the given elements.
//
// Example:
//
//	v := vector.Of(3, 1, 4, 1, 5)
func Of[T Numeric](elements ...T) *Vector[T] {
	return vector.Of(elements...)
}

// FromSlice creates a vector from a Go slice.
// The slice is copied into the vector's own storage.
func FromSlice[T Numeric](s []T) *Vector[T] {
	return vector.FromSlice(s)
}

// Full creates a vector of n copies of value.
//
// Example:
//
//	v := vector.Full(5, 2.5)
func Full[T Numeric](n int, value T) *Vector[T] {
	return vector.Full(n, value)
}

// FullLike creates a vector with the same length as v, filled with value.
func FullLike[T Numeric](v *Vector[T], value T) *Vector[T] {
	return vector.FullLike(v, value)
}

// Zeros creates a vector of n zeros.
//
// Example:
//
//	v := vector.Zeros[int32](5)
func Zeros[T Numeric](n int) *Vector[T] {
	return vector.Zeros[T](n)
}

// ZerosLike creates a vector of zeros with the same length as v.
func ZerosLike[T Numeric](v *Vector[T]) *Vector[T] {
	return vector.ZerosLike(v)
}

// Ones creates a vector of n ones.
//
// Example:
//
//	v := vector.Ones[float64](10)
func Ones[T Numeric](n int) *Vector[T] {
	return vector.Ones[T](n)
}

// OnesLike creates a vector of ones with the same length as v.
func OnesLike[T Numeric](v *Vector[T]) *Vector[T] {
	return vector.OnesLike(v)
}

// Range creates a vector of regularly incrementing values over the
// half-open interval [start, stop). Panics with ErrInvalidInterval if
// start >= stop.
//
// Example:
//
//	v := vector.Range(1.0, 3.0, 0.5) // Vector([1 1.5 2 2.5])
func Range[T Numeric](start, stop, step T) *Vector[T] {
	return vector.Range(start, stop, step)
}

// Linspace creates a vector of exactly n values evenly spaced over the
// closed interval [start, stop]; the last element is always exactly
// stop. Panics with ErrInvalidInterval if start >= stop.
//
// Example:
//
//	v := vector.Linspace(5, 1.0, 10.0) // Vector([1 3.25 5.5 7.75 10])
func Linspace[T constraints.Float](n int, start, stop T) *Vector[T] {
	return vector.Linspace(n, start, stop)
}

// Uniform creates a vector of n independent samples drawn uniformly
// from the half-open interval [low, high). Panics with
// ErrInvalidInterval if low >= high.
//
// Example:
//
//	v := vector.Uniform(5, 0.0, 1.0)
func Uniform[T Numeric](n int, low, high T) *Vector[T] {
	return vector.Uniform(n, low, high)
}

// Normal creates a float64 vector of n independent samples from the
// Gaussian distribution N(mean, stdDev²).
//
// Example:
//
//	v := vector.Normal(5, 0.0, 1.0)
func Normal(n int, mean, stdDev float64) *Vector[float64] {
	return vector.Normal(n, mean, stdDev)
}

// Reductions

// Max returns the largest element of an integer vector.
// Panics with ErrEmptyVector if v is empty.
func Max[T constraints.Integer](v *Vector[T]) T {
	return vector.Max(v)
}

// Min returns the smallest element of an integer vector.
// Panics with ErrEmptyVector if v is empty.
func Min[T constraints.Integer](v *Vector[T]) T {
	return vector.Min(v)
}
