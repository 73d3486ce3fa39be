// Package nd builds nested numeric slices of two, three and four
// dimensions. Each builder is a thin recursive wrapper around the
// one-dimensional builders in internal/vector: an n-dimensional value
// is a slice of independently built (n-1)-dimensional values, so the
// contract (zero length legal, negative length panics) is the same at
// every depth.
package nd

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/numgo-ml/numgo/internal/vector"
)

// Full2 creates a rows×cols nested slice filled with value.
func Full2[T vector.Numeric](rows, cols int, value T) [][]T {
	mustDim(rows)
	return lo.Times(rows, func(int) []T {
		return vector.Full(cols, value).Data()
	})
}

// Full3 creates a d0×d1×d2 nested slice filled with value.
func Full3[T vector.Numeric](d0, d1, d2 int, value T) [][][]T {
	mustDim(d0)
	return lo.Times(d0, func(int) [][]T {
		return Full2(d1, d2, value)
	})
}

// Full4 creates a d0×d1×d2×d3 nested slice filled with value.
func Full4[T vector.Numeric](d0, d1, d2, d3 int, value T) [][][][]T {
	mustDim(d0)
	return lo.Times(d0, func(int) [][][]T {
		return Full3(d1, d2, d3, value)
	})
}

// Zeros2 creates a rows×cols nested slice of zeros.
func Zeros2[T vector.Numeric](rows, cols int) [][]T {
	return Full2(rows, cols, T(0))
}

// Zeros3 creates a d0×d1×d2 nested slice of zeros.
func Zeros3[T vector.Numeric](d0, d1, d2 int) [][][]T {
	return Full3(d0, d1, d2, T(0))
}

// Zeros4 creates a d0×d1×d2×d3 nested slice of zeros.
func Zeros4[T vector.Numeric](d0, d1, d2, d3 int) [][][][]T {
	return Full4(d0, d1, d2, d3, T(0))
}

// Ones2 creates a rows×cols nested slice of ones.
func Ones2[T vector.Numeric](rows, cols int) [][]T {
	return Full2(rows, cols, T(1))
}

// Ones3 creates a d0×d1×d2 nested slice of ones.
func Ones3[T vector.Numeric](d0, d1, d2 int) [][][]T {
	return Full3(d0, d1, d2, T(1))
}

// Ones4 creates a d0×d1×d2×d3 nested slice of ones.
func Ones4[T vector.Numeric](d0, d1, d2, d3 int) [][][][]T {
	return Full4(d0, d1, d2, d3, T(1))
}

func mustDim(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative length %d", vector.ErrOutOfBounds, n))
	}
}
