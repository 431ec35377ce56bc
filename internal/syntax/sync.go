package syntax

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ePirat/streamreader/internal/format"
)

// scanOverlap is how many trailing bytes of a window are read again as the
// head of the next one. A 2-byte pattern that starts in the last bytes of a
// window is therefore always complete in one of the two.
const scanOverlap = 4

// findStartcode returns the index of the first byte pair matching
// 0xFF followed by 0xF?, or -1. Only the top nibble of the second byte is
// checked; the decoder validates the full syncword.
func findStartcode(buf []byte) int {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == 0xFF && buf[i+1]&0xF0 == 0xF0 {
			return i
		}
	}
	return -1
}

// Locate advances rs to the first byte of a startcode and returns its
// absolute offset.
//
// The source is read in windows of HeaderMaxLen bytes that advance by
// HeaderMaxLen-scanOverlap bytes. If the first window cannot be filled the
// stream is too short to hold a header and an *format.IOError is
// returned. Reaching end of stream later without a match returns
// format.ErrSyncNotFound. A limit > 0 bounds how far past the start
// position a window may begin.
func Locate(rs io.ReadSeeker, limit int64) (int64, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, &format.IOError{Op: "seek", Offset: -1, Err: err}
	}

	var buf [HeaderMaxLen]byte
	pos := start

	for {
		if limit > 0 && pos-start >= limit {
			return 0, errors.Wrapf(format.ErrSyncNotFound,
				"search limit of %d bytes from offset %d", limit, start)
		}

		n, err := io.ReadFull(rs, buf[:])
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, &format.IOError{Op: "scan", Offset: pos, Err: err}
			}
			if pos == start {
				return 0, &format.IOError{Op: "scan", Offset: pos, Err: err}
			}
			if p := findStartcode(buf[:n]); p >= 0 {
				return seekBack(rs, pos, p-n)
			}
			return 0, errors.Wrapf(format.ErrSyncNotFound,
				"scanned %d bytes from offset %d", pos+int64(n)-start, start)
		}

		if p := findStartcode(buf[:]); p >= 0 {
			return seekBack(rs, pos, p-HeaderMaxLen)
		}

		if _, err := rs.Seek(-scanOverlap, io.SeekCurrent); err != nil {
			return 0, &format.IOError{Op: "seek", Offset: pos, Err: err}
		}
		pos += HeaderMaxLen - scanOverlap
	}
}

// seekBack moves rs by rel bytes (zero or negative) from the end of the
// window read at pos.
func seekBack(rs io.ReadSeeker, pos int64, rel int) (int64, error) {
	off, err := rs.Seek(int64(rel), io.SeekCurrent)
	if err != nil {
		return 0, &format.IOError{Op: "seek", Offset: pos, Err: err}
	}
	return off, nil
}
