package stdf

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies which of the closed set of failure modes an Error
// represents.
type Code int

// The error taxonomy this package ever returns. Callers can switch on Code
// without string-matching messages.
const (
	// InvalidFile means the stream doesn't look like an STDF/ATDF file at
	// all (bad magic, unrecognized endian marker, empty stream).
	InvalidFile Code = iota
	// InvalidRecordType means a record name or kind has no mapping where one
	// is needed: an unrecognized or unmapped ATDF record name, an ATDF line
	// with fewer fields than its schema requires, or a record kind with no
	// ATDF form.
	InvalidRecordType
	// IoError wraps an underlying read failure from the source reader or a
	// decompressor.
	IoError
	// Eof means the stream ended cleanly between records.
	Eof
	// InsufficientData means a record's declared length ran past what the
	// stream actually had left.
	InsufficientData
	// AtdfSyntax means an ATDF line failed to parse: missing colon, a first
	// record that is not FAR, or a FAR line without its 'A' marker and
	// delimiter.
	AtdfSyntax
)

func (c Code) String() string {
	switch c {
	case InvalidFile:
		return "InvalidFile"
	case InvalidRecordType:
		return "InvalidRecordType"
	case IoError:
		return "IoError"
	case Eof:
		return "Eof"
	case InsufficientData:
		return "InsufficientData"
	case AtdfSyntax:
		return "AtdfSyntax"
	default:
		return "Unknown"
	}
}

// Error is the single error type this package returns; every failure mode
// is one of the Code constants.
type Error struct {
	Code Code
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("stdf: %s: %s: %v", e.Code, e.Msg, e.err)
	}
	return fmt.Sprintf("stdf: %s: %s", e.Code, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.err }

// newError builds an Error with no wrapped cause.
func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// NewError builds an Error with the given code and message. It is exported
// so sibling packages (stdf/atdf, the cmd wrappers) can surface the same
// closed taxonomy instead of inventing their own error types.
func NewError(code Code, format string, args ...interface{}) *Error {
	return newError(code, format, args...)
}

// wrapError builds an Error wrapping cause, annotated via pkg/errors so a
// %+v print carries a stack trace back to the originating I/O call.
func wrapError(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), err: errors.Wrap(cause, code.String())}
}

// IsEOF reports whether err is (or wraps) an Eof-coded Error.
func IsEOF(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == Eof
	}
	return false
}
