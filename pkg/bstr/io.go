package bstr

import (
	"errors"
	"fmt"
	"io"
)

// WriteTo writes the logical bytes of s to w. It implements io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	if s.size == 0 {
		return 0, nil
	}
	n, err := w.Write(s.Data())
	return int64(n), err
}

// ReadToken skips leading whitespace in r, then reads bytes until the next
// whitespace byte or the end of input. The whitespace byte ending the token is
// consumed. The content of s is replaced by the token, never appended to,
// and the storage of s is reused, so a scratch String read in a loop only
// reallocates when a token outgrows it.
// ReadToken returns io.EOF, leaving s empty, when r held no token.
func (s *String) ReadToken(r io.ByteScanner) error {
	s.Clear()
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		if err != nil {
			return fmt.Errorf("bstr: read token: %w", err)
		}
		if !isSpace(c) {
			if err := r.UnreadByte(); err != nil {
				return fmt.Errorf("bstr: read token: %w", err)
			}
			break
		}
	}
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("bstr: read token: %w", err)
		}
		if isSpace(c) {
			return nil
		}
		s.PushBack(c)
	}
}

// Scan implements fmt.Scanner, so a String can be filled with fmt.Fscan and
// friends. Like ReadToken it reads one whitespace-delimited token and
// replaces the content of s. fmt decodes its input as UTF-8, so use
// ReadToken for arbitrary bytes.
func (s *String) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 's', 'v':
	default:
		return fmt.Errorf("%w: unsupported scan verb %%%c", ErrInvalidArgument, verb)
	}
	s.Clear()
	tok, err := state.Token(true, func(r rune) bool { return r > 0xff || !isSpace(byte(r)) })
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.EOF
	}
	s.AppendBytes(tok)
	return nil
}

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
