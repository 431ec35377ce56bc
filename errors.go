package streamreader

import "github.com/ePirat/streamreader/internal/format"

// Error represents a stream reader error code.
type Error = format.Error

// Error codes.
const (
	ErrNone               = format.ErrNone
	ErrIO                 = format.ErrIO
	ErrSyncNotFound       = format.ErrSyncNotFound
	ErrInvalidSyncword    = format.ErrInvalidSyncword
	ErrInvalidObjectType  = format.ErrInvalidObjectType
	ErrInvalidFrameLength = format.ErrInvalidFrameLength
)

// IOError records a failed read or seek on the byte source.
// It unwraps to the underlying error and matches ErrIO with errors.Is.
type IOError = format.IOError

// GetErrorMessage returns the message for an error code.
func GetErrorMessage(code Error) string {
	return format.GetErrorMessage(code)
}

// Code classifies an error chain into an error code.
// Errors that carry no code are reported as ErrIO.
func Code(err error) Error {
	return format.Code(err)
}
