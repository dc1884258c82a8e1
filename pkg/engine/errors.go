package engine

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError
var ErrNotFound = errors.New("engine not found")

// NotFoundError reports the engine binary is missing or cannot run.
type NotFoundError struct {
	Binary string
	Err    error
}

var _ error = (*NotFoundError)(nil)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Binary, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvocationError reports the engine exited unsuccessfully.
// Stdout and Stderr hold what it printed.
type InvocationError struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

var _ error = (*InvocationError)(nil)

func (e *InvocationError) Error() string {
	return fmt.Sprintf("engine exited with code %d: %v", e.ExitCode, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
