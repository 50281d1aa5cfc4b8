package log

import (
	"time"
)

// MaxCapturedFrame is the number of frame bytes kept in an event.
const MaxCapturedFrame = 64

// Event is a single capture record. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the dispatcher instance that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction is In for decoded frames and Out for encoded ones.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// ClassID and CommandID identify the command.
	ClassID   uint8 `cbor:"5,keyasint"`
	CommandID uint8 `cbor:"6,keyasint"`

	// Type-specific payload.
	Frame   *FrameEvent     `cbor:"7,keyasint,omitempty"`
	Command *CommandEvent   `cbor:"8,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"9,keyasint,omitempty"`
}

// Direction indicates which way a frame travelled.
type Direction uint8

const (
	// DirectionIn is a frame received from a device.
	DirectionIn Direction = 0
	// DirectionOut is a frame encoded for sending.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies events.
type Category uint8

const (
	// CategoryCommand is a successfully decoded or encoded command.
	CategoryCommand Category = 0
	// CategoryNoReply is a recognized command with nothing to decode.
	CategoryNoReply Category = 1
	// CategoryError is a failed decode or encode.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryNoReply:
		return "NO_REPLY"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent holds the raw frame bytes.
type FrameEvent struct {
	// Size is the full frame size in bytes, header included.
	Size int `cbor:"1,keyasint"`

	// Data is the frame, truncated to MaxCapturedFrame bytes.
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates Data is shorter than Size.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// NewFrameEvent captures data, truncating long frames.
func NewFrameEvent(data []byte) *FrameEvent {
	fe := &FrameEvent{Size: len(data)}
	n := len(data)
	if n > MaxCapturedFrame {
		n = MaxCapturedFrame
		fe.Truncated = true
	}
	fe.Data = make([]byte, n)
	copy(fe.Data, data[:n])
	return fe
}

// CommandEvent describes a decoded or encoded command.
type CommandEvent struct {
	// Name is the command display name, e.g. "Association Report".
	Name string `cbor:"1,keyasint"`

	// Version is the command class version that introduced the command.
	Version uint8 `cbor:"2,keyasint,omitempty"`

	// Value is the decoded value. Omitted for NoReply results.
	Value any `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData describes a failed operation.
type ErrorEventData struct {
	// Kind is the dispatch error kind, e.g. "MALFORMED_PAYLOAD".
	Kind string `cbor:"1,keyasint"`

	// Message is the full error text.
	Message string `cbor:"2,keyasint"`

	// PayloadLen is the payload length for payload errors.
	PayloadLen int `cbor:"3,keyasint,omitempty"`
}
