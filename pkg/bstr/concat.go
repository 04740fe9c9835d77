package bstr

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Append appends the content of other to s and returns s. Appending a String
// to itself doubles it.
func (s *String) Append(other *String) *String {
	n := other.size
	if n == 0 {
		return s
	}
	s.Reserve(s.size + n)
	// other.buf is re-read after Reserve so that s.Append(s) sees the new storage.
	copy(s.buf[s.size:], other.buf[:n])
	s.size += n
	s.terminate()
	return s
}

// AppendBytes appends p to s and returns s. Unlike Append it grows the
// storage geometrically, as it backs the io.Writer methods.
func (s *String) AppendBytes(p []byte) *String {
	if len(p) == 0 {
		return s
	}
	s.growFor(len(p))
	s.size += copy(s.buf[s.size:], p)
	s.terminate()
	return s
}

// Concat returns a new String holding a followed by b. Neither argument is modified.
func Concat(a, b *String) *String {
	return a.Clone().Append(b)
}

// RepeatInPlace replaces the content of s with count copies of itself and
// returns s. A count of zero releases the storage. It panics with an error
// wrapping ErrNegativeCount when count is negative.
func RepeatInPlace[T constraints.Integer](s *String, count T) *String {
	if count < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCount, count))
	}
	s.repeat(uint64(count))
	return s
}

// Repeat returns a new String holding count copies of s. The argument is not
// modified. It panics with an error wrapping ErrNegativeCount when count is negative.
func Repeat[T constraints.Integer](s *String, count T) *String {
	return RepeatInPlace(s.Clone(), count)
}

// repeat halves even counts by self-appending, so the number of Append calls
// grows with log2(count).
func (s *String) repeat(count uint64) {
	if count == 0 {
		s.Assign(New())
		return
	}
	unit := s.Clone()
	if count%2 == 0 {
		s.Append(unit)
		s.repeat(count / 2)
		return
	}
	s.repeat(count - 1)
	s.Append(unit)
}
