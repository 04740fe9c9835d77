package bstr

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger routes the package's trace output (storage reallocations) to l.
// The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	logger = l
}
