package wire

import "errors"

// Frame and payload errors.
var (
	ErrFrameTooShort = errors.New("frame shorter than class and command header")
	ErrFrameTooLong  = errors.New("frame exceeds maximum size")
	ErrShortPayload  = errors.New("payload too short")
	ErrTrailingBytes = errors.New("unexpected trailing bytes")
	ErrInvalidValue  = errors.New("invalid field value")
	ErrInvalidHex    = errors.New("invalid hex input")
)
