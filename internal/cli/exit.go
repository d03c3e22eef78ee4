package cli

import (
	"context"
	"errors"

	"kmerkit/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// ExitError carries the process exit code for err. Usage, when set, is
// printed after the error message.
type ExitError struct {
	Code  int
	Err   error
	Usage string
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func usageErr(err error, usage string) error { return &ExitError{Code: ExitUsage, Err: err, Usage: usage} }
func ioErr(err error) error                  { return &ExitError{Code: ExitIO, Err: err} }

// ExitCode maps an error returned by a command to a process exit code.
// Broken pipes count as success.
func ExitCode(err error) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	// flag errors and seqerr lookup/precondition/range failures
	return ExitUsage
}
