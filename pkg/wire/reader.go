package wire

import "fmt"

// Reader is a bounds-checked cursor over a command payload.
//
// Every read either returns a value or an error wrapping ErrShortPayload.
// A Reader never panics on short input.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a Reader over payload.
func NewReader(payload []byte) *Reader {
	return &Reader{data: payload}
}

// Len returns the total payload length.
func (r *Reader) Len() int {
	return len(r.data)
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

func (r *Reader) need(n int, field string) error {
	if n < 0 || r.Remaining() < n {
		return fmt.Errorf("%w: %s needs %d bytes at offset %d, %d left",
			ErrShortPayload, field, n, r.off, r.Remaining())
	}
	return nil
}

// Uint8 reads one byte.
func (r *Reader) Uint8(field string) (uint8, error) {
	if err := r.need(1, field); err != nil {
		return 0, err
	}
	v := r.data[r.off]
	r.off++
	return v, nil
}

// Uint16 reads a big-endian 16-bit value.
func (r *Reader) Uint16(field string) (uint16, error) {
	if err := r.need(2, field); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.off])<<8 | uint16(r.data[r.off+1])
	r.off += 2
	return v, nil
}

// Uint24 reads a big-endian 24-bit value.
func (r *Reader) Uint24(field string) (uint32, error) {
	if err := r.need(3, field); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.off])<<16 | uint32(r.data[r.off+1])<<8 | uint32(r.data[r.off+2])
	r.off += 3
	return v, nil
}

// Uint32 reads a big-endian 32-bit value.
func (r *Reader) Uint32(field string) (uint32, error) {
	if err := r.need(4, field); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.off])<<24 | uint32(r.data[r.off+1])<<16 |
		uint32(r.data[r.off+2])<<8 | uint32(r.data[r.off+3])
	r.off += 4
	return v, nil
}

// Int reads a signed big-endian integer of size 1, 2 or 4 bytes.
func (r *Reader) Int(size int, field string) (int32, error) {
	switch size {
	case 1:
		v, err := r.Uint8(field)
		return int32(int8(v)), err
	case 2:
		v, err := r.Uint16(field)
		return int32(int16(v)), err
	case 4:
		v, err := r.Uint32(field)
		return int32(v), err
	default:
		return 0, fmt.Errorf("%w: %s size %d", ErrInvalidValue, field, size)
	}
}

// Bytes reads exactly n bytes. The returned slice is a copy.
func (r *Reader) Bytes(n int, field string) ([]byte, error) {
	if err := r.need(n, field); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.off:r.off+n])
	r.off += n
	return out, nil
}

// Rest reads all remaining bytes. The returned slice is a copy.
func (r *Reader) Rest() []byte {
	out := make([]byte, r.Remaining())
	copy(out, r.data[r.off:])
	r.off = len(r.data)
	return out
}

// Records splits the remaining bytes into records of elemSize bytes.
// A trailing partial record is an error.
func (r *Reader) Records(elemSize int, field string) ([][]byte, error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("%w: %s element size %d", ErrInvalidValue, field, elemSize)
	}
	n := r.Remaining()
	if n%elemSize != 0 {
		return nil, fmt.Errorf("%w: %s has %d trailing bytes, not a multiple of %d",
			ErrShortPayload, field, n, elemSize)
	}
	out := make([][]byte, 0, n/elemSize)
	for r.Remaining() > 0 {
		rec, err := r.Bytes(elemSize, field)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Done reports an error if unread bytes remain.
func (r *Reader) Done() error {
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingBytes, r.Remaining(), r.off)
	}
	return nil
}
