// Package demux walks an ADTS elementary stream frame by frame.
package demux

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ePirat/streamreader/internal/format"
	"github.com/ePirat/streamreader/internal/logging"
	"github.com/ePirat/streamreader/internal/syntax"
)

// Config configures a Walker.
type Config struct {
	// Offset is the absolute byte offset the startcode search begins at.
	Offset int64
	// MaxSyncSearch bounds the startcode search in bytes; 0 searches to the
	// end of the stream.
	MaxSyncSearch int64
	// Logger receives sync and frame events. Nil discards them.
	Logger *logrus.Logger
}

// Frame is one decoded header and the absolute offset it starts at.
type Frame struct {
	Offset int64
	Header *syntax.Header
}

// Walker locates the first header in a stream and then follows the frame
// lengths from header to header.
//
// A Walker is not safe for concurrent use and must be the only user of its
// source. The first error ends the walk: there is no resynchronization, and
// every later call to Next returns the same error.
type Walker struct {
	rs     io.ReadSeeker
	cfg    Config
	logger *logrus.Logger

	synced bool
	pos    int64 // absolute offset of the next header
	frames int
	bytes  int64
	err    error
}

// NewWalker creates a Walker over rs. No I/O happens until the first Next.
func NewWalker(rs io.ReadSeeker, cfg Config) *Walker {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Walker{
		rs:     rs,
		cfg:    cfg,
		logger: logger,
	}
}

// sync seeks to the configured offset and runs the startcode scanner once.
func (w *Walker) sync() error {
	if _, err := w.rs.Seek(w.cfg.Offset, io.SeekStart); err != nil {
		return &format.IOError{Op: "seek", Offset: w.cfg.Offset, Err: err}
	}

	pos, err := syntax.Locate(w.rs, w.cfg.MaxSyncSearch)
	if err != nil {
		return errors.Wrapf(err, "locate startcode from offset %d", w.cfg.Offset)
	}

	w.logger.WithFields(logrus.Fields{
		"start":   w.cfg.Offset,
		"offset":  pos,
		"skipped": pos - w.cfg.Offset,
	}).Debug("startcode found")

	w.pos = pos
	w.synced = true
	return nil
}

// Next decodes the header at the current position and advances the source
// past its frame.
//
// At the end of the stream Next returns an error that matches both
// format.ErrIO and io.EOF. When the stream ends inside a header or
// before the end of the last frame the error matches io.ErrUnexpectedEOF
// instead.
func (w *Walker) Next() (Frame, error) {
	if w.err != nil {
		return Frame{}, w.err
	}

	if !w.synced {
		if err := w.sync(); err != nil {
			w.err = err
			return Frame{}, err
		}
	}

	h, err := syntax.PeekHeader(w.rs)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = w.checkTruncated(err)
		}
		w.err = errors.Wrapf(err, "frame %d at offset %d", w.frames, w.pos)
		return Frame{}, w.err
	}

	fr := Frame{Offset: w.pos, Header: h}

	next, err := w.rs.Seek(int64(h.FrameLength), io.SeekCurrent)
	if err != nil {
		w.err = &format.IOError{Op: "seek", Offset: w.pos, Err: err}
		return Frame{}, w.err
	}

	w.logger.WithFields(logrus.Fields{
		"frame":  w.frames,
		"offset": w.pos,
		"length": h.FrameLength,
	}).Trace("frame header")

	w.pos = next
	w.frames++
	w.bytes += int64(h.FrameLength)
	return fr, nil
}

// checkTruncated turns a clean end of stream into io.ErrUnexpectedEOF when
// the previous frame length pointed past the end of the stream.
func (w *Walker) checkTruncated(err error) error {
	end, serr := w.rs.Seek(0, io.SeekEnd)
	if serr != nil || end >= w.pos {
		return err
	}
	return errors.Wrapf(&format.IOError{Op: "peek", Offset: w.pos, Err: io.ErrUnexpectedEOF},
		"previous frame ends %d bytes past end of stream", w.pos-end)
}

// Walk calls fn for every frame until Next fails or fn returns an error,
// and returns that error.
func (w *Walker) Walk(fn func(Frame) error) error {
	for {
		fr, err := w.Next()
		if err != nil {
			return err
		}
		if err := fn(fr); err != nil {
			return err
		}
	}
}

// Frames returns the number of headers decoded so far.
func (w *Walker) Frames() int {
	return w.frames
}

// Bytes returns the total frame length walked so far.
func (w *Walker) Bytes() int64 {
	return w.bytes
}

// Offset returns the absolute offset of the next header to decode.
// It is only meaningful after the first successful call to Next.
func (w *Walker) Offset() int64 {
	return w.pos
}
