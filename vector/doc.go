// Copyright 2026 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides generic numeric vectors for the numgo library.
//
// # Overview
//
// Vector[T] is an owned, ordered sequence of numeric values. The package
// provides:
//   - One generic container over every primitive numeric type
//   - Builders for constant, sequential and random fills
//   - Elementwise arithmetic with scalar broadcasting
//   - Copying slices over six range forms
//
// # Basic Usage
//
//	import "github.com/numgo-ml/numgo/vector"
//
//	func main() {
//	    x := vector.Of(3, 1, 4, 1, 5)
//	    y := vector.Ones[int](5)
//
//	    z := x.Add(y)          // Vector([4 2 5 2 6])
//	    w := x.MulScalar(2)    // Vector([6 2 8 2 10])
//	    s := x.Slice(1, 3)     // Vector([1 4])
//	}
//
// # Supported Element Types
//
// The Numeric constraint covers every primitive integer and float type:
//   - float32, float64
//   - int, int8, int16, int32, int64
//   - uint, uint8, uint16, uint32, uint64
//
// Two operations are narrower by design: Max and Min require an integer
// element type (they do not compile for floats), and Normal always
// produces a *Vector[float64].
//
// # Builders
//
//	vector.Full(5, 2.5)            // five copies of 2.5
//	vector.Zeros[int32](5)         // five zeros
//	vector.Ones[float64](5)        // five ones
//	vector.Range(0, 5, 1)          // [0 1 2 3 4], half-open
//	vector.Linspace(5, 1.0, 10.0)  // [1 3.25 5.5 7.75 10], closed
//	vector.Uniform(5, 0.0, 1.0)    // five draws from [0, 1)
//	vector.Normal(5, 0.0, 1.0)     // five Gaussian draws
//
// Range and Linspace accumulate by repeated addition of the step, so
// floating-point rounding drifts across the sequence exactly as repeated
// addition would; Linspace then forces its final element to the literal
// stop value.
//
// # Failure Modes
//
// Misuse panics immediately with an error wrapping one of the package
// sentinels (ErrInvalidInterval, ErrLengthMismatch, ErrOutOfBounds,
// ErrUnsupported, ErrEmptyVector). There is no truncating, padding or
// default-value fallback: an operation either returns a fully-formed
// vector or panics.
//
// # Concurrency
//
// Every vector is independently owned and nothing is shared between
// instances. The in-place *Assign operators mutate only their receiver
// and are not safe for concurrent writers without external
// synchronization.
package vector
