// Package syntax implements ADTS header syntax: startcode scanning,
// header decoding and header encoding.
// This file contains error definitions for the syntax package.
package syntax

import "errors"

var (
	// ErrShortBuffer indicates fewer than 7 bytes were handed to ParseHeader.
	ErrShortBuffer = errors.New("syntax: header buffer shorter than 7 bytes")

	// ErrUnencodable indicates a Header that cannot be expressed in ADTS.
	ErrUnencodable = errors.New("syntax: header cannot be encoded")
)
