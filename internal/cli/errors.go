package cli

import (
	"errors"
	"fmt"
)

// ArgumentError reports malformed invocation arguments: an unknown flag, a
// missing flag value, bad flag syntax or an unexpected positional argument.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string { return e.Err.Error() }

func (e *ArgumentError) Unwrap() error { return e.Err }

// ExitCode is the process status for argument errors.
func (e *ArgumentError) ExitCode() int { return 2 }

func newArgumentError(format string, a ...any) *ArgumentError {
	return &ArgumentError{Err: fmt.Errorf(format, a...)}
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}
