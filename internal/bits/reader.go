// Package bits provides MSB-first bit access to in-memory byte buffers.
package bits

// Reader reads bits from a byte buffer, most significant bit first.
//
// The reader is a plain cursor: pos counts bits consumed from the start of
// the buffer. Reading past the end sets a sticky error flag and yields zero
// bits, so a caller can read a whole header and check Error once.
type Reader struct {
	buffer []byte
	pos    uint // bits consumed
	err    bool // buffer overrun
}

// NewReader creates a Reader positioned at the first bit of data.
// Empty or nil buffers set the error flag.
func NewReader(data []byte) *Reader {
	return &Reader{
		buffer: data,
		err:    len(data) == 0,
	}
}

// Error returns true if a read ran past the end of the buffer.
func (r *Reader) Error() bool {
	return r.err
}

// BitsLeft returns the number of unread bits.
func (r *Reader) BitsLeft() uint {
	total := uint(len(r.buffer)) * 8
	if r.pos >= total {
		return 0
	}
	return total - r.pos
}

// GetProcessedBits returns the number of bits consumed so far.
func (r *Reader) GetProcessedBits() uint {
	return r.pos
}

// ShowBits returns the next n bits without consuming them.
// n must be 0-32. Bits past the end of the buffer read as zero.
func (r *Reader) ShowBits(n uint) uint32 {
	var v uint32
	for i := uint(0); i < n; i++ {
		v = v<<1 | uint32(r.bitAt(r.pos+i))
	}
	return v
}

func (r *Reader) bitAt(p uint) uint8 {
	idx := p >> 3
	if idx >= uint(len(r.buffer)) {
		return 0
	}
	return (r.buffer[idx] >> (7 - p&7)) & 1
}

// SkipBits discards n bits.
func (r *Reader) SkipBits(n uint) {
	if n > r.BitsLeft() {
		r.err = true
	}
	r.pos += n
}

// GetBits reads and returns n bits. n must be 0-32.
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	ret := r.ShowBits(n)
	r.SkipBits(n)
	return ret
}

// Get1Bit reads a single bit.
func (r *Reader) Get1Bit() uint8 {
	if r.BitsLeft() == 0 {
		r.err = true
		r.pos++
		return 0
	}
	b := r.bitAt(r.pos)
	r.pos++
	return b
}

// GetBool reads a single bit as a flag.
func (r *Reader) GetBool() bool {
	return r.Get1Bit() == 1
}
