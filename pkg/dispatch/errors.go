package dispatch

import (
	"errors"
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Sentinel errors matched by errors.Is against a *Error.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrNotEncodable     = errors.New("command not encodable")

	errNotRegistered = errors.New("not registered")
)

// ErrorKind classifies dispatch failures.
type ErrorKind uint8

const (
	// KindUnknownCommand means the (class, command) pair is not registered.
	// Expected for unsupported devices and firmware; callers log and drop.
	KindUnknownCommand ErrorKind = iota + 1

	// KindMalformedPayload means the payload failed structural validation.
	// The frame should be dropped; retrying cannot succeed.
	KindMalformedPayload

	// KindNotEncodable means the command is unregistered, has no encoder, or
	// was given a value of the wrong type. This is a bug at the call site.
	KindNotEncodable
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnknownCommand:
		return "UNKNOWN_COMMAND"
	case KindMalformedPayload:
		return "MALFORMED_PAYLOAD"
	case KindNotEncodable:
		return "NOT_ENCODABLE"
	default:
		return "UNKNOWN"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnknownCommand:
		return ErrUnknownCommand
	case KindMalformedPayload:
		return ErrMalformedPayload
	case KindNotEncodable:
		return ErrNotEncodable
	default:
		return nil
	}
}

// Error is returned by Dispatcher operations. It identifies the command
// involved and, for payload failures, the payload length.
type Error struct {
	Kind       ErrorKind
	ClassID    wire.ClassID
	CommandID  wire.CommandID
	PayloadLen int

	// Reason is the underlying cause, if any.
	Reason error
}

// Error implements error.
func (e *Error) Error() string {
	what := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		what = s.Error()
	}
	msg := fmt.Sprintf("%s %s/%s", what, e.ClassID, e.CommandID)
	if e.Kind == KindMalformedPayload {
		msg += fmt.Sprintf(" (%d bytes)", e.PayloadLen)
	}
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	return msg
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Reason
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsRecoverable reports whether err is a payload-driven failure that a
// caller should log and drop rather than treat as fatal.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrMalformedPayload)
}
