// Package buffers pools scratch bstr.String values to cut allocations in
// token-by-token readers.
package buffers

import (
	"sync"

	"bstr-go/pkg/bstr"
)

// DefaultCapacity is the capacity fresh pooled strings start with.
const DefaultCapacity = 64

// MaxPooledCapacity bounds the strings kept for reuse; larger ones are dropped.
const MaxPooledCapacity = 64 * 1024

// StringPool maintains a pool of empty strings with preallocated storage.
type StringPool struct {
	pool     sync.Pool
	capacity int
}

// NewStringPool creates a pool whose fresh strings hold capacity bytes.
func NewStringPool(capacity int) *StringPool {
	return &StringPool{
		pool: sync.Pool{
			New: func() interface{} {
				s := bstr.New()
				s.Reserve(capacity)
				return s
			},
		},
		capacity: capacity,
	}
}

// Get retrieves an empty string from the pool.
func (p *StringPool) Get() *bstr.String {
	return p.pool.Get().(*bstr.String)
}

// Put clears s and returns it to the pool. Its storage is kept.
func (p *StringPool) Put(s *bstr.String) {
	if s == nil || s.Capacity() > MaxPooledCapacity {
		return
	}
	s.Clear()
	p.pool.Put(s)
}

// TokenPool is shared by the token readers of the command line tool.
var TokenPool = NewStringPool(DefaultCapacity)
