package bstr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushBackGrowth(t *testing.T) {
	s := New()
	var capacities []int
	for i := 0; i < 8; i++ {
		s.PushBack(byte('a' + i))
		capacities = append(capacities, s.Capacity())
		requireTerminated(t, s)
	}
	// raw capacity 2, 4, 8, 16 means reported 1, 3, 7, 15
	assert.Equal(t, []int{1, 3, 3, 7, 7, 7, 7, 15}, capacities)
	assert.Equal(t, "abcdefgh", s.String())
}

func TestPushPopRoundTrip(t *testing.T) {
	s := FromString("abc")
	before := s.String()

	s.PushBack('d')
	s.PopBack()

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, before, s.String())
	requireTerminated(t, s)
}

func TestPopBackOnEmpty(t *testing.T) {
	s := New()
	s.PopBack()
	assert.True(t, s.Empty())

	s = FromString("a")
	s.PopBack()
	s.PopBack()
	assert.True(t, s.Empty())
	requireTerminated(t, s)
}

func TestReserve(t *testing.T) {
	s := FromString("abc")
	s.Reserve(10)
	assert.Equal(t, 10, s.Capacity())
	assert.Equal(t, "abc", s.String())
	requireTerminated(t, s)

	s.Reserve(4)
	assert.Equal(t, 10, s.Capacity(), "Reserve must never shrink")
	assert.Equal(t, "abc", s.String())

	assert.Panics(t, func() { s.Reserve(-1) })
}

func TestShrinkToFit(t *testing.T) {
	s := FromString("abc")
	s.Reserve(32)
	s.ShrinkToFit()
	assert.Equal(t, 3, s.Capacity())
	assert.Equal(t, "abc", s.String())
	requireTerminated(t, s)

	e := New()
	e.ShrinkToFit()
	assert.Nil(t, e.buf)
}

func TestClearKeepsCapacity(t *testing.T) {
	s := FromString("hello world")
	capacity := s.Capacity()

	s.Clear()
	assert.Zero(t, s.Size())
	assert.GreaterOrEqual(t, s.Capacity(), capacity)
	requireTerminated(t, s)

	New().Clear()
}

func TestResize(t *testing.T) {
	s := FromString("hello")
	s.Reserve(10)

	s.Resize(2)
	assert.Equal(t, "he", s.String())
	assert.Equal(t, 10, s.Capacity())
	requireTerminated(t, s)

	s.Resize(4)
	assert.Equal(t, []byte{'h', 'e', 0, 0}, s.Data())

	s.Resize(12)
	assert.Equal(t, 12, s.Size())
	assert.Equal(t, 12, s.Capacity())
	requireTerminated(t, s)

	e := New()
	e.Resize(0)
	assert.Nil(t, e.buf)
}

func TestResizeFill(t *testing.T) {
	s := FromString("ab")
	s.ResizeFill(5, '-')
	assert.Equal(t, "ab---", s.String())
	assert.Equal(t, 5, s.Capacity())

	s.ResizeFill(3, '+')
	assert.Equal(t, "ab-", s.String())

	s.ResizeFill(5, '+')
	assert.Equal(t, "ab-++", s.String())
	requireTerminated(t, s)

	assert.Panics(t, func() { s.ResizeFill(-2, 'x') })
}

func TestReallocateTruncates(t *testing.T) {
	s := FromString("abcdef")
	s.reallocate(4)
	assert.Equal(t, "abc", s.String())
	assert.Equal(t, 3, s.Capacity())
	requireTerminated(t, s)
}

func TestIndexing(t *testing.T) {
	s := FromString("xyz")
	assert.Equal(t, byte('x'), s.Front())
	assert.Equal(t, byte('z'), s.Back())

	s.Set(1, 'Y')
	assert.Equal(t, byte('Y'), s.At(1))

	s.Reserve(10)
	for _, i := range []int{-1, 3, 9} {
		require.PanicsWithError(t, fmt.Sprintf("bstr: index out of range: index %d with size 3", i), func() { s.At(i) })
	}
	assert.Panics(t, func() { New().Front() })
	assert.Panics(t, func() { New().Back() })
}
