package bstr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the panic value family for contract violations by the caller.
	ErrInvalidArgument = errors.New("bstr: invalid argument")
	// ErrNegativeCount is raised when a repeat count is negative.
	ErrNegativeCount = fmt.Errorf("%w: negative repeat count", ErrInvalidArgument)
	// ErrOutOfRange is raised on an index outside [0, Size()).
	ErrOutOfRange = errors.New("bstr: index out of range")
)
