// Package input opens the data the bstr tool works on.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Reader is a buffered input that must be closed after use.
type Reader struct {
	*bufio.Reader
	closers []func() error
}

// Open returns a reader over path, or over stdin when path is "" or "-".
// With compressed set the data is decoded as a Zstandard stream.
func Open(path string, stdin io.Reader, compressed bool) (*Reader, error) {
	r := &Reader{}
	src := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		r.closers = append(r.closers, f.Close)
		src = f
	}
	if compressed {
		dec, err := zstd.NewReader(src)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("input: failed to initialize zstd decoder: %w", err)
		}
		r.closers = append(r.closers, func() error { dec.Close(); return nil })
		src = dec
	}
	r.Reader = bufio.NewReader(src)
	return r, nil
}

// Close releases the decoder and the file, in that order.
func (r *Reader) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	return first
}
