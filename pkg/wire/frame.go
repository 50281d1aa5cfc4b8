package wire

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// Frame size limits.
const (
	// HeaderSize is the size of the class and command header.
	HeaderSize = 2

	// MaxFrameSize bounds a single application command, header included.
	MaxFrameSize = 255

	// MaxPayloadSize is the largest payload a frame can carry.
	MaxPayloadSize = MaxFrameSize - HeaderSize
)

// ClassID identifies a command class.
type ClassID uint8

// String returns the class ID in hex notation.
func (c ClassID) String() string {
	return fmt.Sprintf("0x%02X", uint8(c))
}

// CommandID identifies a command within its command class.
type CommandID uint8

// String returns the command ID in hex notation.
func (c CommandID) String() string {
	return fmt.Sprintf("0x%02X", uint8(c))
}

// Key packs a class and command pair into a single lookup key.
func Key(class ClassID, cmd CommandID) uint16 {
	return uint16(class)<<8 | uint16(cmd)
}

// Frame is a single application command as delivered by the transport layer.
// Frames are read-only once parsed.
type Frame struct {
	ClassID   ClassID
	CommandID CommandID
	Payload   []byte
}

// ParseFrame splits raw application bytes into header and payload.
// The returned frame shares the payload slice with data.
func ParseFrame(data []byte) (Frame, error) {
	if len(data) < HeaderSize {
		return Frame{}, fmt.Errorf("%w: got %d bytes", ErrFrameTooShort, len(data))
	}
	if len(data) > MaxFrameSize {
		return Frame{}, fmt.Errorf("%w: got %d bytes, max %d", ErrFrameTooLong, len(data), MaxFrameSize)
	}
	return Frame{
		ClassID:   ClassID(data[0]),
		CommandID: CommandID(data[1]),
		Payload:   data[HeaderSize:],
	}, nil
}

// ParseHex parses a frame from a hex string. Bytes may be separated by
// whitespace, colons or dashes, and each token may carry a 0x prefix, so
// "85 03 01", "85:03:01", "0x850301" and "0x85 0x03 0x01" are equivalent.
func ParseHex(s string) (Frame, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ':' || r == '-'
	})
	var b strings.Builder
	for _, tok := range tokens {
		tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		b.WriteString(tok)
	}

	data, err := hex.DecodeString(b.String())
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return ParseFrame(data)
}

// NewFrame builds a frame for the given identity and payload.
func NewFrame(class ClassID, cmd CommandID, payload []byte) (Frame, error) {
	if len(payload) > MaxPayloadSize {
		return Frame{}, fmt.Errorf("%w: payload %d bytes, max %d", ErrFrameTooLong, len(payload), MaxPayloadSize)
	}
	return Frame{ClassID: class, CommandID: cmd, Payload: payload}, nil
}

// Key returns the lookup key of the frame's identity.
func (f Frame) Key() uint16 {
	return Key(f.ClassID, f.CommandID)
}

// Bytes returns the frame in wire order.
func (f Frame) Bytes() []byte {
	out := make([]byte, 0, HeaderSize+len(f.Payload))
	out = append(out, byte(f.ClassID), byte(f.CommandID))
	return append(out, f.Payload...)
}

// String returns the frame as space-separated hex bytes.
func (f Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02X %02X", uint8(f.ClassID), uint8(f.CommandID))
	for _, p := range f.Payload {
		fmt.Fprintf(&b, " %02X", p)
	}
	return b.String()
}
