package buffers

import (
	"bufio"
	"strings"
	"testing"

	"bstr-go/pkg/bstr"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsEmptyReservedString(t *testing.T) {
	p := NewStringPool(32)
	s := p.Get()
	assert.True(t, s.Empty())
	assert.GreaterOrEqual(t, s.Capacity(), 32)
}

func TestPutClears(t *testing.T) {
	p := NewStringPool(8)
	s := p.Get()
	s.AppendBytes([]byte("leftover"))
	p.Put(s)

	// sync.Pool may or may not hand back the same value; either way it must be empty.
	got := p.Get()
	assert.True(t, got.Empty())
}

func TestPutDropsOversized(t *testing.T) {
	p := NewStringPool(8)
	big := bstr.NewFilled(MaxPooledCapacity+1, 'x')
	p.Put(big)
	assert.Equal(t, MaxPooledCapacity+1, big.Size(), "oversized strings are left untouched")
	p.Put(nil)
}

func TestPooledStringKeepsStorageAcrossTokens(t *testing.T) {
	p := NewStringPool(64)
	s := p.Get()
	r := bufio.NewReader(strings.NewReader("one two three"))

	for _, want := range []string{"one", "two", "three"} {
		assert.NoError(t, s.ReadToken(r))
		assert.Equal(t, want, s.String())
		assert.GreaterOrEqual(t, s.Capacity(), 64)
	}
	p.Put(s)
}
