package bstr

import "fmt"

// At returns the byte at index i. It panics with ErrOutOfRange when i is
// outside [0, Size()).
func (s *String) At(i int) byte {
	s.checkIndex(i)
	return s.buf[i]
}

// Set overwrites the byte at index i with c. It panics with ErrOutOfRange
// when i is outside [0, Size()).
func (s *String) Set(i int, c byte) {
	s.checkIndex(i)
	s.buf[i] = c
}

// Front returns the first byte. It panics on an empty String.
func (s *String) Front() byte {
	return s.At(0)
}

// Back returns the last byte. It panics on an empty String.
func (s *String) Back() byte {
	return s.At(s.size - 1)
}

// Clear drops the content of s but keeps its storage.
func (s *String) Clear() {
	s.size = 0
	s.terminate()
}

// PushBack appends c, growing the storage when s is full.
func (s *String) PushBack(c byte) {
	if s.full() {
		s.grow()
	}
	s.buf[s.size] = c
	s.size++
	s.terminate()
}

// PopBack removes the last byte. It does nothing on an empty String.
func (s *String) PopBack() {
	if s.Empty() {
		return
	}
	s.size--
	s.terminate()
}

// WriteByte appends c. It implements io.ByteWriter and never fails.
func (s *String) WriteByte(c byte) error {
	s.PushBack(c)
	return nil
}

// Write appends p. It implements io.Writer and never fails.
func (s *String) Write(p []byte) (int, error) {
	s.AppendBytes(p)
	return len(p), nil
}

// WriteString appends str. It implements io.StringWriter and never fails.
func (s *String) WriteString(str string) (int, error) {
	if len(str) == 0 {
		return 0, nil
	}
	s.growFor(len(str))
	s.size += copy(s.buf[s.size:], str)
	s.terminate()
	return len(str), nil
}

func (s *String) checkIndex(i int) {
	if i < 0 || i >= s.size {
		panic(fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, i, s.size))
	}
}
