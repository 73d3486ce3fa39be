package vector

import "errors"

var (
	// ErrInvalidInterval indicates a builder interval with start >= stop.
	ErrInvalidInterval = errors.New("vector: invalid interval")
	// ErrLengthMismatch indicates a vector-vector operation on operands of
	// differing length.
	ErrLengthMismatch = errors.New("vector: length mismatch")
	// ErrOutOfBounds indicates an index or slice bound beyond the vector's
	// length, or a negative builder length.
	ErrOutOfBounds = errors.New("vector: out of bounds")
	// ErrUnsupported indicates an operation invoked with an argument the
	// element type cannot support, such as a negative power exponent.
	ErrUnsupported = errors.New("vector: unsupported operation")
	// ErrEmptyVector indicates a reduction that is undefined on an empty
	// vector, such as Max or Min.
	ErrEmptyVector = errors.New("vector: empty vector")
)
