package model

import (
	"errors"
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Command errors.
var (
	ErrInvalidDescriptor = errors.New("invalid command descriptor")
	ErrTypeMismatch      = errors.New("value type does not match command")
)

// DecodeFunc decodes a command payload into a typed value.
// Implementations must be pure and must not retain payload.
type DecodeFunc func(payload []byte) (any, error)

// EncodeFunc encodes a typed value into a command payload.
type EncodeFunc func(value any) ([]byte, error)

// Identity names a command by its class and command IDs.
type Identity struct {
	ClassID   wire.ClassID
	CommandID wire.CommandID
}

// Key returns the registry lookup key.
func (i Identity) Key() uint16 {
	return wire.Key(i.ClassID, i.CommandID)
}

// String returns the identity as "class/command" in hex.
func (i Identity) String() string {
	return fmt.Sprintf("%s/%s", i.ClassID, i.CommandID)
}

// Descriptor is the static metadata of one command.
//
// Decode is nil for commands that are never decoded on receipt, such as Get
// commands whose answer arrives as a separate Report. Encode is nil for
// commands the controller never sends.
type Descriptor struct {
	// ClassID is the command class identifier.
	ClassID wire.ClassID

	// CommandID is the command identifier within the class.
	CommandID wire.CommandID

	// Name is the human-readable command name.
	Name string

	// ClassName is the human-readable command class name.
	ClassName string

	// Version is the command class version that introduced the command.
	Version uint8

	// Decode parses a received payload. Optional.
	Decode DecodeFunc

	// Encode builds a payload for sending. Optional.
	Encode EncodeFunc
}

// Identity returns the descriptor's identity.
func (d *Descriptor) Identity() Identity {
	return Identity{ClassID: d.ClassID, CommandID: d.CommandID}
}

// CanDecode reports whether the command has a decoder.
func (d *Descriptor) CanDecode() bool {
	return d.Decode != nil
}

// CanEncode reports whether the command has an encoder.
func (d *Descriptor) CanEncode() bool {
	return d.Encode != nil
}

// FullName returns "ClassName Name", or Name alone when the class is unnamed.
func (d *Descriptor) FullName() string {
	if d.ClassName == "" {
		return d.Name
	}
	return d.ClassName + " " + d.Name
}

// String returns "ClassName Name (class/command)".
func (d *Descriptor) String() string {
	if d.ClassName == "" {
		return fmt.Sprintf("%s (%s)", d.Name, d.Identity())
	}
	return fmt.Sprintf("%s %s (%s)", d.ClassName, d.Name, d.Identity())
}

// Validate checks the descriptor's static fields.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: %s has no name", ErrInvalidDescriptor, d.Identity())
	}
	if d.Version == 0 {
		return fmt.Errorf("%w: %s has version 0", ErrInvalidDescriptor, d.Identity())
	}
	return nil
}

// Decoder adapts a typed decode function to a DecodeFunc. The function
// receives a Reader over the payload; bytes left unread after it returns
// are ignored, since newer command class versions append fields.
func Decoder[T any](fn func(r *wire.Reader) (T, error)) DecodeFunc {
	return func(payload []byte) (any, error) {
		v, err := fn(wire.NewReader(payload))
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Encoder adapts a typed encode function to an EncodeFunc. Both T and *T
// values are accepted; anything else yields ErrTypeMismatch.
func Encoder[T any](fn func(w *wire.Writer, v T) error) EncodeFunc {
	return func(value any) ([]byte, error) {
		var v T
		switch tv := value.(type) {
		case T:
			v = tv
		case *T:
			if tv == nil {
				return nil, fmt.Errorf("%w: nil %T", ErrTypeMismatch, value)
			}
			v = *tv
		default:
			return nil, fmt.Errorf("%w: got %T, want %T", ErrTypeMismatch, value, v)
		}
		w := wire.NewWriter(8)
		if err := fn(w, v); err != nil {
			return nil, err
		}
		return w.Payload(), nil
	}
}

// EmptyEncoder returns an EncodeFunc for commands without payload. Any value,
// including nil, is accepted.
func EmptyEncoder() EncodeFunc {
	return func(any) ([]byte, error) {
		return []byte{}, nil
	}
}
