// Package bstr provides String, a growable, mutable byte string with manual
// capacity control and a trailing zero terminator kept one slot past the
// last logical byte, so the storage can be handed to C-string style consumers.
//
// A String owns its storage exclusively. Plain struct assignment would share
// that storage between two values, so always pass *String around and use
// Clone or Assign to obtain an independent copy.
//
// String is not safe for concurrent use.
package bstr

import (
	"bytes"
	"fmt"
)

const (
	// growthFactor multiplies the raw capacity when an append finds the buffer full.
	growthFactor = 2
	// initialCapacity is the raw capacity allocated by the first append.
	initialCapacity = 2

	terminator byte = 0
)

// String is a growable byte string. The zero value is an empty String with
// no storage allocated.
type String struct {
	buf  []byte // raw storage, len(buf) is the raw capacity; nil when unallocated
	size int
}

// New returns an empty String with no storage allocated.
func New() *String {
	return &String{}
}

// NewFilled returns a String holding size copies of c.
// A size of 0 yields the empty, unallocated String.
func NewFilled(size int, c byte) *String {
	if size < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrInvalidArgument, size))
	}
	s := &String{}
	if size == 0 {
		return s
	}
	s.buf = make([]byte, minCapacity(size))
	for i := 0; i < size; i++ {
		s.buf[i] = c
	}
	s.size = size
	s.terminate()
	return s
}

// FromCString copies b up to, but not including, its first zero byte.
// Input without a zero byte is copied whole.
func FromCString(b []byte) *String {
	if i := bytes.IndexByte(b, terminator); i >= 0 {
		b = b[:i]
	}
	s := &String{}
	if len(b) == 0 {
		return s
	}
	s.buf = make([]byte, minCapacity(len(b)))
	copy(s.buf, b)
	s.size = len(b)
	s.terminate()
	return s
}

// FromString is FromCString for Go strings.
func FromString(str string) *String {
	return FromCString([]byte(str))
}

// Clone returns a deep copy of s with the same length and raw capacity.
func (s *String) Clone() *String {
	c := &String{size: s.size}
	if s.buf == nil {
		return c
	}
	c.buf = make([]byte, len(s.buf))
	copy(c.buf, s.buf[:s.size+1])
	return c
}

// Assign replaces the content of s with a deep copy of src.
// The copy is built first and then swapped in, so s is left untouched if
// building it fails. Assigning a String to itself is a no-op.
func (s *String) Assign(src *String) *String {
	if s == src {
		return s
	}
	tmp := src.Clone()
	s.Swap(tmp)
	return s
}

// Swap exchanges the contents of s and other without copying any data.
func (s *String) Swap(other *String) {
	s.buf, other.buf = other.buf, s.buf
	s.size, other.size = other.size, s.size
}

// Size returns the number of logical bytes.
func (s *String) Size() int { return s.size }

// Len is Size; it lets String satisfy the usual Len() interfaces.
func (s *String) Len() int { return s.size }

// Empty reports whether s holds no bytes.
func (s *String) Empty() bool { return s.size == 0 }

// Capacity returns the number of bytes s can hold without reallocating.
// The terminator slot is not counted. An unallocated String reports 0.
func (s *String) Capacity() int {
	if s.buf == nil {
		return 0
	}
	return maxSize(len(s.buf))
}

// Data returns the logical bytes of s without copying.
// The returned slice aliases the internal storage and is only valid until the
// next call that mutates s; do not keep it across PushBack, Append, Reserve,
// Resize, ShrinkToFit, Assign, Swap or Clear.
func (s *String) Data() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[:s.size:s.size]
}

// CString returns the logical bytes followed by the zero terminator, without
// copying. It is nil for an unallocated String. The same lifetime rules as
// Data apply.
func (s *String) CString() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[: s.size+1 : s.size+1]
}

// Bytes returns a copy of the logical bytes.
func (s *String) Bytes() []byte {
	b := make([]byte, s.size)
	copy(b, s.Data())
	return b
}

// String returns the logical bytes as a Go string.
func (s *String) String() string {
	return string(s.Data())
}

func minCapacity(size int) int { return size + 1 }

func maxSize(capacity int) int { return capacity - 1 }

func (s *String) terminate() {
	if s.buf != nil {
		s.buf[s.size] = terminator
	}
}

func (s *String) full() bool {
	return s.buf == nil || s.size == maxSize(len(s.buf))
}

func (s *String) fits(size int) bool {
	return minCapacity(size) <= len(s.buf)
}
