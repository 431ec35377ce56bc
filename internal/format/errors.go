package format

import (
	"errors"
	"fmt"
)

// Error represents a stream reader error code.
type Error int

// Error codes.
const (
	ErrNone               Error = 0
	ErrIO                 Error = 1
	ErrSyncNotFound       Error = 2
	ErrInvalidSyncword    Error = 3
	ErrInvalidObjectType  Error = 4
	ErrInvalidFrameLength Error = 5
)

var errMessages = [6]string{
	"No error",
	"I/O failure",
	"Unable to find ADTS syncword",
	"Invalid ADTS syncword",
	"Unrecognized audio object type",
	"Frame length shorter than header",
}

// Error implements the error interface.
func (e Error) Error() string {
	return GetErrorMessage(e)
}

// GetErrorMessage returns the message for an error code.
func GetErrorMessage(code Error) string {
	if code >= 0 && int(code) < len(errMessages) {
		return errMessages[code]
	}
	return "unknown error"
}

// IOError records a failed read or seek on the byte source.
//
// It unwraps to the underlying error and matches ErrIO with errors.Is.
type IOError struct {
	Op     string // "scan", "peek", "seek"
	Offset int64  // source position the operation started at
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// Code classifies an error chain into an error code.
// Errors that carry no code are reported as ErrIO.
func Code(err error) Error {
	if err == nil {
		return ErrNone
	}
	if errors.Is(err, ErrIO) {
		return ErrIO
	}
	var code Error
	if errors.As(err, &code) {
		return code
	}
	return ErrIO
}
