package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	a := Of(3, 1, 4, 1, 5).Add(Of(3, 1, 4, 1, 5))
	assert.True(t, a.EqualSlice([]int{6, 2, 8, 2, 10}))

	b := Of(3.0, 1.0, 4.0).Add(Of(0.5, 0.5, 0.5))
	assert.True(t, b.EqualSlice([]float64{3.5, 1.5, 4.5}))
}

func TestAddLeavesOperandsIntact(t *testing.T) {
	x := Of(1, 2, 3)
	y := Of(4, 5, 6)
	_ = x.Add(y)
	assert.True(t, x.EqualSlice([]int{1, 2, 3}))
	assert.True(t, y.EqualSlice([]int{4, 5, 6}))
}

func TestAddLengthMismatch(t *testing.T) {
	requirePanicsIs(t, ErrLengthMismatch, func() {
		Of(3, 1, 4, 1, 5).Add(Of(3, 1, 4, 1))
	})
}

func TestSub(t *testing.T) {
	a := Of(3, 1, 4, 1, 5).Sub(Of(3, 1, 4, 1, 5))
	assert.True(t, a.EqualSlice([]int{0, 0, 0, 0, 0}))

	b := Of(3, 1, 4, 1, 5).Sub(Of(1, 1, 1, 1, 1))
	assert.True(t, b.EqualSlice([]int{2, 0, 3, 0, 4}))
}

func TestSubLengthMismatch(t *testing.T) {
	requirePanicsIs(t, ErrLengthMismatch, func() {
		Of(3, 1, 4, 1, 5).Sub(Of(3, 1, 4, 1))
	})
}

func TestMul(t *testing.T) {
	a := Of(3, 1, 4, 1, 5).Mul(Of(3, 1, 4, 1, 5))
	assert.True(t, a.EqualSlice([]int{9, 1, 16, 1, 25}))
}

func TestMulLengthMismatch(t *testing.T) {
	requirePanicsIs(t, ErrLengthMismatch, func() {
		Of(1, 2).Mul(Of(2))
	})
}

func TestAddScalar(t *testing.T) {
	// Addition commutes, so one method covers both operand orders.
	a := Of(5, 5, 5, 5).AddScalar(6)
	assert.True(t, a.EqualSlice([]int{11, 11, 11, 11}))

	b := Of(3.5, 1.5).AddScalar(2.0)
	assert.True(t, b.EqualSlice([]float64{5.5, 3.5}))
}

func TestSubScalar(t *testing.T) {
	a := Of(3, 1, 4, 1, 5).SubScalar(2)
	assert.True(t, a.EqualSlice([]int{1, -1, 2, -1, 3}))
}

func TestScalarSub(t *testing.T) {
	// scalar - element, not element - scalar.
	a := Of(5, 5, 5, 5).ScalarSub(6)
	assert.True(t, a.EqualSlice([]int{1, 1, 1, 1}))

	b := Of(3, 1, 4, 1, 5).ScalarSub(2)
	assert.True(t, b.EqualSlice([]int{-1, 1, -2, 1, -3}))
}

func TestMulScalar(t *testing.T) {
	a := Of(3, 1, 4, 1, 5).MulScalar(2)
	assert.True(t, a.EqualSlice([]int{6, 2, 8, 2, 10}))
}

func TestAddAssign(t *testing.T) {
	a := Of(3, 1, 4, 1, 5)
	a.AddAssign(Of(3, 1, 4, 1, 5))
	assert.True(t, a.EqualSlice([]int{6, 2, 8, 2, 10}))

	requirePanicsIs(t, ErrLengthMismatch, func() {
		a.AddAssign(Of(1, 2))
	})
}

func TestSubAssign(t *testing.T) {
	a := Of(3, 1, 4, 1, 5)
	a.SubAssign(Of(3, 1, 4, 1, 5))
	assert.True(t, a.EqualSlice([]int{0, 0, 0, 0, 0}))

	requirePanicsIs(t, ErrLengthMismatch, func() {
		a.SubAssign(Of(1, 2))
	})
}

func TestMulAssign(t *testing.T) {
	a := Of(3, 1, 4, 1, 5)
	a.MulAssign(Of(3, 1, 4, 1, 5))
	assert.True(t, a.EqualSlice([]int{9, 1, 16, 1, 25}))

	requirePanicsIs(t, ErrLengthMismatch, func() {
		a.MulAssign(Of(1, 2))
	})
}

func TestScalarAssigns(t *testing.T) {
	a := Of(3, 1, 4, 1, 5)
	a.AddScalarAssign(2)
	assert.True(t, a.EqualSlice([]int{5, 3, 6, 3, 7}))

	a.SubScalarAssign(2)
	assert.True(t, a.EqualSlice([]int{3, 1, 4, 1, 5}))

	a.MulScalarAssign(2)
	assert.True(t, a.EqualSlice([]int{6, 2, 8, 2, 10}))
}

func TestAssignMismatchLeavesReceiverIntact(t *testing.T) {
	a := Of(1, 2, 3)
	func() {
		defer func() { _ = recover() }()
		a.AddAssign(Of(1, 2))
	}()
	assert.True(t, a.EqualSlice([]int{1, 2, 3}), "failed assign must not partially mutate")
}
