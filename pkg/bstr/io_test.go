package bstr

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := FromString("payload").WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
	assert.Equal(t, "payload", buf.String())

	n, err = New().WriteTo(&buf)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReadToken(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  first\tsecond\n\nthird"))
	s := FromString("previous content")

	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "first", s.String())
	requireTerminated(t, s)

	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "second", s.String())

	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "third", s.String())

	assert.ErrorIs(t, s.ReadToken(r), io.EOF)
	assert.True(t, s.Empty())
}

func TestReadTokenKeepsRawBytes(t *testing.T) {
	s := New()
	require.NoError(t, s.ReadToken(bytes.NewReader([]byte{0xfe, 0x80, ' ', 'x'})))
	assert.Equal(t, []byte{0xfe, 0x80}, s.Data())
}

func TestFscan(t *testing.T) {
	var a, b String
	n, err := fmt.Fscan(strings.NewReader(" hello \n world "), &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "world", b.String())

	_, err = fmt.Fscan(strings.NewReader("   "), &a)
	assert.Error(t, err)
}

func TestReadTokenReusesStorage(t *testing.T) {
	s := New()
	s.Reserve(64)
	r := bufio.NewReader(strings.NewReader("ab cd"))

	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "ab", s.String())
	assert.Equal(t, 64, s.Capacity())

	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "cd", s.String())
	assert.Equal(t, 64, s.Capacity())

	assert.ErrorIs(t, s.ReadToken(r), io.EOF)
	assert.Equal(t, 64, s.Capacity())
	requireTerminated(t, s)
}

func TestFscanReusesStorage(t *testing.T) {
	s := FromString("previous")
	s.Reserve(32)
	_, err := fmt.Fscan(strings.NewReader("next"), s)
	require.NoError(t, err)
	assert.Equal(t, "next", s.String())
	assert.Equal(t, 32, s.Capacity())
}
