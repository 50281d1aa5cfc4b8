package wire

// Writer builds a command payload.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Uint8 appends one byte.
func (w *Writer) Uint8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

// Uint16 appends a big-endian 16-bit value.
func (w *Writer) Uint16(v uint16) *Writer {
	w.buf = append(w.buf, byte(v>>8), byte(v))
	return w
}

// Uint24 appends the low 24 bits of v, big-endian.
func (w *Writer) Uint24(v uint32) *Writer {
	w.buf = append(w.buf, byte(v>>16), byte(v>>8), byte(v))
	return w
}

// Uint32 appends a big-endian 32-bit value.
func (w *Writer) Uint32(v uint32) *Writer {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return w
}

// Int appends a signed value using size bytes (1, 2 or 4).
func (w *Writer) Int(v int32, size int) *Writer {
	switch size {
	case 1:
		return w.Uint8(uint8(v))
	case 2:
		return w.Uint16(uint16(v))
	default:
		return w.Uint32(uint32(v))
	}
}

// Bytes appends raw bytes.
func (w *Writer) Bytes(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Payload returns the written bytes.
func (w *Writer) Payload() []byte {
	return w.buf
}
