package bits

// Writer packs bits MSB-first into a fixed-size buffer.
// Bits written past the end of the buffer are dropped.
type Writer struct {
	data []byte
	pos  uint
}

// NewWriter creates a Writer over a zeroed buffer of size bytes.
func NewWriter(size int) *Writer {
	return &Writer{data: make([]byte, size)}
}

// PutBits writes the low n bits of v. n must be 0-32.
func (w *Writer) PutBits(n uint, v uint32) {
	for i := int(n) - 1; i >= 0; i-- {
		w.PutBool((v>>uint(i))&1 == 1)
	}
}

// PutBool writes a single bit.
func (w *Writer) PutBool(b bool) {
	if w.pos >= uint(len(w.data))*8 {
		return
	}
	if b {
		w.data[w.pos>>3] |= 1 << (7 - w.pos&7)
	}
	w.pos++
}

// Bytes returns the underlying buffer.
func (w *Writer) Bytes() []byte {
	return w.data
}
