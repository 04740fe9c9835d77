package bstr

import "fmt"

// Reserve makes sure s can hold at least n bytes without reallocating.
// It never shrinks s and never changes its content.
func (s *String) Reserve(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, n))
	}
	if minCapacity(n) <= len(s.buf) {
		return
	}
	s.reallocate(minCapacity(n))
}

// ShrinkToFit releases the unused capacity of s, keeping the terminator slot.
func (s *String) ShrinkToFit() {
	if s.buf == nil || len(s.buf) == minCapacity(s.size) {
		return
	}
	s.reallocate(minCapacity(s.size))
}

// Resize sets the length of s to n. Bytes added by growing are zero.
func (s *String) Resize(n int) {
	s.ResizeFill(n, 0)
}

// ResizeFill sets the length of s to n, filling the bytes added by growing
// with c. Shrinking keeps the capacity; growing past it reallocates to
// exactly n bytes.
func (s *String) ResizeFill(n int, c byte) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n))
	}
	if n == 0 && s.buf == nil {
		return
	}
	old := s.size
	if !s.fits(n) {
		s.reallocate(minCapacity(n))
	}
	for i := old; i < n; i++ {
		s.buf[i] = c
	}
	s.size = n
	s.terminate()
}

// grow is the append growth policy: double the raw capacity, starting at
// initialCapacity for an unallocated String.
func (s *String) grow() {
	if s.buf == nil {
		s.reallocate(initialCapacity)
		return
	}
	s.reallocate(growthFactor * len(s.buf))
}

// growFor makes room for n more bytes, at least doubling the raw capacity
// when it has to reallocate, so a stream of small appends stays amortized O(1).
func (s *String) growFor(n int) {
	need := minCapacity(s.size + n)
	if need <= len(s.buf) {
		return
	}
	s.reallocate(max(need, growthFactor*len(s.buf), initialCapacity))
}

// reallocate moves s to fresh storage of the given raw capacity. When the
// new capacity is smaller, the content is silently truncated to fit.
func (s *String) reallocate(capacity int) {
	logger.Trace().
		Int("from", len(s.buf)).
		Int("to", capacity).
		Int("size", s.size).
		Msg("bstr: reallocate")

	storage := make([]byte, capacity)
	if s.size > maxSize(capacity) {
		s.size = maxSize(capacity)
	}
	copy(storage, s.buf[:s.size])
	s.buf = storage
	s.terminate()
}
