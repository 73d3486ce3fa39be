package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicsIs asserts that fn panics with an error wrapping target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

func TestOf(t *testing.T) {
	v := Of(1, 2, 3)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 1, v.At(0))
	assert.Equal(t, 2, v.At(1))
	assert.Equal(t, 3, v.At(2))
}

func TestFromSliceCopies(t *testing.T) {
	s := []int{4, 4, 1, 6}
	v := FromSlice(s)
	s[0] = 99
	assert.Equal(t, 4, v.At(0), "vector must own its storage")
}

func TestLen(t *testing.T) {
	assert.Equal(t, 5, Of(3.0, 1.0, 4.0, 1.0, 5.0).Len())
	assert.Equal(t, 0, Of[int]().Len())
	assert.True(t, Of[int]().IsEmpty())
	assert.False(t, Of(1).IsEmpty())
}

func TestAt(t *testing.T) {
	v := Of(3, 1, 4, 1, 5)
	for i, want := range []int{3, 1, 4, 1, 5} {
		assert.Equal(t, want, v.At(i))
	}
}

func TestAtOutOfBounds(t *testing.T) {
	v := Of(3, 1, 2, 3)
	requirePanicsIs(t, ErrOutOfBounds, func() { v.At(12) })
	requirePanicsIs(t, ErrOutOfBounds, func() { v.At(-1) })
}

func TestSet(t *testing.T) {
	v := Of(3, 1, 4)
	v.Set(1, 9)
	assert.True(t, v.EqualSlice([]int{3, 9, 4}))
	requirePanicsIs(t, ErrOutOfBounds, func() { v.Set(3, 0) })
}

func TestCloneIndependent(t *testing.T) {
	a := Of(3, 1, 4)
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Set(0, 42)
	assert.Equal(t, 3, a.At(0), "mutating the clone must not affect the original")
	assert.False(t, a.Equal(b))
}

func TestEqual(t *testing.T) {
	assert.True(t, Of(1, 2, 3).Equal(Of(1, 2, 3)))
	assert.False(t, Of(1, 2, 3).Equal(Of(1, 2, 4)))
	assert.False(t, Of(1, 2, 3).Equal(Of(1, 2)))
	assert.True(t, Of[float64]().Equal(Of[float64]()))
}

func TestEqualSlice(t *testing.T) {
	v := Of(1, 2, 3)
	assert.True(t, v.EqualSlice([]int{1, 2, 3}))
	assert.False(t, v.EqualSlice([]int{1, 2}))
	assert.False(t, v.EqualSlice([]int{3, 2, 1}))
}

func TestAll(t *testing.T) {
	v := Of(1, 2, 3, 5)
	var got []int
	for i, x := range v.All() {
		assert.Equal(t, v.At(i), x)
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 3, 5}, got)

	// Early break stops the sequence.
	n := 0
	for range v.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Vector([3 1 4])", Of(3, 1, 4).String())
	assert.Equal(t, "Vector([])", Of[int]().String())
}

func TestDataAliases(t *testing.T) {
	v := Of(1, 2, 3)
	v.Data()[0] = 7
	assert.Equal(t, 7, v.At(0))
}
