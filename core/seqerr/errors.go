// Package seqerr classifies failures raised by the core sequence packages.
package seqerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnknownSymbol = errors.New("symbol outside nucleotide alphabet")
	ErrPrecondition  = errors.New("precondition failed")
	ErrRange         = errors.New("out of range")
)

// Kind is a coarse-grained categorization for errors.
type Kind string

const (
	KindLookup       Kind = "lookup"
	KindPrecondition Kind = "precondition"
	KindRange        Kind = "range"
)

// Error wraps an underlying error with the failing operation and its kind.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Lookup reports sym at offset as outside the alphabet.
func Lookup(op string, sym byte, offset int) error {
	return &Error{Op: op, Kind: KindLookup, Err: fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, sym, offset)}
}

// Precondition reports a violated argument contract.
func Precondition(op, format string, a ...any) error {
	return &Error{Op: op, Kind: KindPrecondition, Err: fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, a...)...)}
}

// Range reports an argument that does not fit the input it is applied to.
func Range(op, format string, a ...any) error {
	return &Error{Op: op, Kind: KindRange, Err: fmt.Errorf("%w: "+format, append([]any{ErrRange}, a...)...)}
}

// IsKind helps callers classify errors without string matching.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
