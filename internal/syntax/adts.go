// internal/syntax/adts.go
package syntax

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ePirat/streamreader/internal/bits"
	"github.com/ePirat/streamreader/internal/format"
)

// ADTSSyncword is the 12-bit sync pattern for ADTS frames.
const ADTSSyncword = 0x0FFF

// Header sizes in bytes.
const (
	HeaderMinLen = 7 // fixed + variable header, no CRC
	HeaderMaxLen = 9 // with the 16-bit CRC
)

// maxFrameLength is the largest value of the 13-bit frame_length field.
const maxFrameLength = 1<<13 - 1

// Header contains Audio Data Transport Stream header data.
//
// Header structure (56 bits fixed + 16 bits CRC if present):
//   - syncword: 12 bits (0xFFF)
//   - id: 1 bit (0=MPEG-4, 1=MPEG-2)
//   - layer: 2 bits (always 0)
//   - protection_absent: 1 bit (1=no CRC)
//   - profile: 2 bits (object type - 1)
//   - sf_index: 4 bits (sample rate index)
//   - private_bit: 1 bit
//   - channel_configuration: 3 bits
//   - original: 1 bit
//   - home: 1 bit
//   - copyright_id_bit: 1 bit
//   - copyright_id_start: 1 bit
//   - frame_length: 13 bits (includes header)
//   - buffer_fullness: 11 bits
//   - no_raw_data_blocks: 2 bits
//   - crc_check: 16 bits (if protection_absent=0, not read)
type Header struct {
	Syncword             uint16                   // 12 bits, must be 0xFFF
	Version              format.MPEGVersion // 1 bit
	Layer                uint8                    // 2 bits: always 0, not validated
	ProtectionAbsent     bool                     // 1 bit: true=no CRC
	ObjectType           format.ObjectType  // from the 2-bit profile
	SFIndex              uint8                    // 4 bits: opaque sampling frequency index
	PrivateBit           bool                     // 1 bit
	ChannelConfiguration uint8                    // 3 bits
	Original             bool                     // 1 bit
	Home                 bool                     // 1 bit

	// Variable header
	CopyrightIDBit   bool   // 1 bit
	CopyrightIDStart bool   // 1 bit
	FrameLength      uint16 // 13 bits: total frame bytes
	BufferFullness   uint16 // 11 bits
	NumRawDataBlocks uint8  // 2 bits: num blocks - 1
}

// HeaderSize returns the ADTS header size in bytes.
// Returns 7 if CRC is absent, 9 if CRC is present.
func (h *Header) HeaderSize() int {
	if h.ProtectionAbsent {
		return HeaderMinLen
	}
	return HeaderMaxLen
}

// DataSize returns the raw audio data size (frame length minus header).
func (h *Header) DataSize() int {
	return int(h.FrameLength) - h.HeaderSize()
}

// ParseHeader decodes and validates the first 7 bytes of buf.
//
// Fields are read MSB-first in bitstream order. Validation checks, in order,
// the syncword, the object type and the frame length against HeaderSize.
// The CRC of a protected header is not part of buf and is not checked.
func ParseHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderMinLen {
		return nil, errors.Wrapf(ErrShortBuffer, "got %d bytes", len(buf))
	}

	r := bits.NewReader(buf[:HeaderMinLen])
	h := &Header{}

	// adts_fixed_header
	h.Syncword = uint16(r.GetBits(12))
	h.Version = format.MPEGVersion(r.Get1Bit())
	h.Layer = uint8(r.GetBits(2))
	h.ProtectionAbsent = r.GetBool()
	profile := uint8(r.GetBits(2))
	h.SFIndex = uint8(r.GetBits(4))
	h.PrivateBit = r.GetBool()
	h.ChannelConfiguration = uint8(r.GetBits(3))
	h.Original = r.GetBool()
	h.Home = r.GetBool()

	// adts_variable_header
	h.CopyrightIDBit = r.GetBool()
	h.CopyrightIDStart = r.GetBool()
	h.FrameLength = uint16(r.GetBits(13))
	h.BufferFullness = uint16(r.GetBits(11))
	h.NumRawDataBlocks = uint8(r.GetBits(2))

	if r.Error() {
		return nil, ErrShortBuffer
	}

	if h.Syncword != ADTSSyncword {
		return nil, errors.Wrapf(format.ErrInvalidSyncword, "got 0x%03X", h.Syncword)
	}

	ot, err := format.ObjectTypeFromProfile(profile)
	if err != nil {
		return nil, errors.Wrapf(err, "profile %d in %s header", profile, h.Version)
	}
	h.ObjectType = ot

	if int(h.FrameLength) < h.HeaderSize() {
		return nil, errors.Wrapf(format.ErrInvalidFrameLength,
			"frame length %d below header size %d", h.FrameLength, h.HeaderSize())
	}

	return h, nil
}

// PeekHeader reads and decodes the header at the current position of rs.
//
// The position of rs is restored before returning, whether or not the
// header is valid, so the frame length can be applied relative to the
// header start. A source with fewer than 7 bytes left yields an
// *format.IOError wrapping io.EOF or io.ErrUnexpectedEOF.
func PeekHeader(rs io.ReadSeeker) (*Header, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, &format.IOError{Op: "seek", Offset: -1, Err: err}
	}

	var buf [HeaderMinLen]byte
	n, err := io.ReadFull(rs, buf[:])
	if n > 0 {
		if _, serr := rs.Seek(start, io.SeekStart); serr != nil {
			return nil, &format.IOError{Op: "seek", Offset: start, Err: serr}
		}
	}
	if err != nil {
		return nil, &format.IOError{Op: "peek", Offset: start, Err: err}
	}

	return ParseHeader(buf[:])
}

// Encode packs h into HeaderSize bytes. A protected header gets a zero CRC.
//
// The syncword is always written as 0xFFF. Object types that the 2-bit
// profile field cannot carry and frame lengths above 8191 are rejected.
func (h *Header) Encode() ([]byte, error) {
	profile, ok := h.ObjectType.Profile()
	if !ok {
		return nil, errors.Wrapf(ErrUnencodable, "object type %s", h.ObjectType)
	}
	if h.FrameLength > maxFrameLength {
		return nil, errors.Wrapf(ErrUnencodable, "frame length %d", h.FrameLength)
	}

	w := bits.NewWriter(h.HeaderSize())
	w.PutBits(12, ADTSSyncword)
	w.PutBits(1, uint32(h.Version))
	w.PutBits(2, uint32(h.Layer))
	w.PutBool(h.ProtectionAbsent)
	w.PutBits(2, uint32(profile))
	w.PutBits(4, uint32(h.SFIndex))
	w.PutBool(h.PrivateBit)
	w.PutBits(3, uint32(h.ChannelConfiguration))
	w.PutBool(h.Original)
	w.PutBool(h.Home)
	w.PutBool(h.CopyrightIDBit)
	w.PutBool(h.CopyrightIDStart)
	w.PutBits(13, uint32(h.FrameLength))
	w.PutBits(11, uint32(h.BufferFullness))
	w.PutBits(2, uint32(h.NumRawDataBlocks))

	return w.Bytes(), nil
}
