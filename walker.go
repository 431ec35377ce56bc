package streamreader

import (
	"io"

	"github.com/ePirat/streamreader/internal/demux"
	"github.com/ePirat/streamreader/internal/syntax"
)

// Header is a decoded ADTS header.
type Header = syntax.Header

// Frame is one decoded header and the absolute offset it starts at.
type Frame = demux.Frame

// Config configures a Walker: the start offset, an optional bound on the
// startcode search and an optional logger.
type Config = demux.Config

// Walker locates the first header in a stream and then follows the frame
// lengths from header to header.
//
// The first error ends the walk and every later call to Next returns it.
// At the end of the stream that error matches both ErrIO and io.EOF; when
// the stream ends inside a header or frame it matches io.ErrUnexpectedEOF.
type Walker = demux.Walker

// NewWalker creates a Walker over rs. Nothing is read until the first call
// to Next or Walk.
func NewWalker(rs io.ReadSeeker, cfg Config) *Walker {
	return demux.NewWalker(rs, cfg)
}

// ParseHeader decodes and validates the 7 byte fixed and variable header at
// the start of buf.
func ParseHeader(buf []byte) (*Header, error) {
	return syntax.ParseHeader(buf)
}
