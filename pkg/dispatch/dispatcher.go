package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zwave-protocol/zwave-go/pkg/log"
	"github.com/zwave-protocol/zwave-go/pkg/model"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Dispatcher routes frames to the codec registered for their identity.
//
// A Dispatcher holds no mutable state after construction and is safe for
// concurrent use. Decode and Encode never block and never perform I/O
// other than handing events to the configured capture logger.
type Dispatcher struct {
	registry  *model.Registry
	logger    *slog.Logger
	capture   log.Logger
	sessionID string
	now       func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSlog sets the operational logger. Unknown commands are logged at
// Debug, malformed payloads at Warn.
func WithSlog(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithCapture sets the protocol capture logger.
func WithCapture(capture log.Logger) Option {
	return func(d *Dispatcher) {
		d.capture = capture
	}
}

// WithSessionID overrides the generated capture session ID.
func WithSessionID(id string) Option {
	return func(d *Dispatcher) {
		d.sessionID = id
	}
}

// New creates a Dispatcher over a built registry.
func New(registry *model.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sessionID == "" {
		d.sessionID = uuid.NewString()
	}
	return d
}

// Registry returns the registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *model.Registry {
	return d.registry
}

// SessionID returns the capture session ID.
func (d *Dispatcher) SessionID() string {
	return d.sessionID
}

// Decode resolves the frame's descriptor and decodes its payload.
//
// Unknown commands yield an error matching ErrUnknownCommand. Commands
// without a decoder yield a ResultNoReply result. Decoder failures, including
// panics, yield an error matching ErrMalformedPayload.
func (d *Dispatcher) Decode(frame wire.Frame) (DecodedCommand, error) {
	desc, ok := d.registry.Lookup(frame.ClassID, frame.CommandID)
	if !ok {
		err := &Error{
			Kind:       KindUnknownCommand,
			ClassID:    frame.ClassID,
			CommandID:  frame.CommandID,
			PayloadLen: len(frame.Payload),
		}
		d.logger.Debug("unknown command",
			"class", frame.ClassID.String(),
			"command", frame.CommandID.String(),
			"payload_len", len(frame.Payload))
		d.captureError(log.DirectionIn, frame, err)
		return DecodedCommand{}, err
	}

	if desc.Decode == nil {
		result := DecodedCommand{
			Kind:       ResultNoReply,
			Identity:   desc.Identity(),
			Descriptor: desc,
		}
		d.captureResult(log.DirectionIn, frame, result)
		return result, nil
	}

	value, reason := safeDecode(desc.Decode, frame.Payload)
	if reason != nil {
		err := &Error{
			Kind:       KindMalformedPayload,
			ClassID:    frame.ClassID,
			CommandID:  frame.CommandID,
			PayloadLen: len(frame.Payload),
			Reason:     reason,
		}
		d.logger.Warn("malformed payload",
			"class", frame.ClassID.String(),
			"command", frame.CommandID.String(),
			"name", desc.String(),
			"payload_len", len(frame.Payload),
			"error", reason)
		d.captureError(log.DirectionIn, frame, err)
		return DecodedCommand{}, err
	}

	result := DecodedCommand{
		Kind:       ResultValue,
		Identity:   desc.Identity(),
		Descriptor: desc,
		Value:      value,
	}
	d.captureResult(log.DirectionIn, frame, result)
	return result, nil
}

// DecodeBytes parses raw application bytes into a frame and decodes it.
// Frames too short to carry a header are reported as malformed.
func (d *Dispatcher) DecodeBytes(data []byte) (DecodedCommand, error) {
	frame, reason := wire.ParseFrame(data)
	if reason != nil {
		err := &Error{Kind: KindMalformedPayload, PayloadLen: len(data), Reason: reason}
		if len(data) > 0 {
			err.ClassID = wire.ClassID(data[0])
		}
		if len(data) > 1 {
			err.CommandID = wire.CommandID(data[1])
		}
		d.logger.Warn("malformed frame",
			"class", err.ClassID.String(),
			"command", err.CommandID.String(),
			"frame_len", len(data),
			"error", reason)
		d.captureRawError(log.DirectionIn, data, err)
		return DecodedCommand{}, err
	}
	return d.Decode(frame)
}

// Encode produces the payload for a command value. The identity must be
// registered with an encoder and value must be of the command's type.
func (d *Dispatcher) Encode(class wire.ClassID, cmd wire.CommandID, value any) ([]byte, error) {
	desc, ok := d.registry.Lookup(class, cmd)
	if !ok {
		return nil, d.encodeError(class, cmd, errNotRegistered)
	}
	if desc.Encode == nil {
		return nil, d.encodeError(class, cmd, fmt.Errorf("%s has no encoder", desc.String()))
	}

	payload, err := safeEncode(desc.Encode, value)
	if err != nil {
		return nil, d.encodeError(class, cmd, err)
	}
	if len(payload) > wire.MaxPayloadSize {
		return nil, d.encodeError(class, cmd, fmt.Errorf("%w: %d bytes", wire.ErrFrameTooLong, len(payload)))
	}

	d.captureResult(log.DirectionOut, wire.Frame{ClassID: class, CommandID: cmd, Payload: payload}, DecodedCommand{
		Kind:       ResultValue,
		Identity:   desc.Identity(),
		Descriptor: desc,
		Value:      value,
	})
	return payload, nil
}

// EncodeFrame is like Encode but returns a complete frame.
func (d *Dispatcher) EncodeFrame(class wire.ClassID, cmd wire.CommandID, value any) (wire.Frame, error) {
	payload, err := d.Encode(class, cmd, value)
	if err != nil {
		return wire.Frame{}, err
	}
	return wire.Frame{ClassID: class, CommandID: cmd, Payload: payload}, nil
}

// Send encodes a command and hands the frame to sink.
func (d *Dispatcher) Send(ctx context.Context, sink FrameSink, class wire.ClassID, cmd wire.CommandID, value any) error {
	frame, err := d.EncodeFrame(class, cmd, value)
	if err != nil {
		return err
	}
	return sink.SendFrame(ctx, frame)
}

func (d *Dispatcher) encodeError(class wire.ClassID, cmd wire.CommandID, reason error) error {
	err := &Error{Kind: KindNotEncodable, ClassID: class, CommandID: cmd, Reason: reason}
	d.logger.Error("encode failed",
		"class", class.String(),
		"command", cmd.String(),
		"error", reason)
	d.captureError(log.DirectionOut, wire.Frame{ClassID: class, CommandID: cmd}, err)
	return err
}

// safeDecode runs fn, converting a panic into an error so that no payload
// can crash the caller.
func safeDecode(fn model.DecodeFunc, payload []byte) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return fn(payload)
}

func safeEncode(fn model.EncodeFunc, value any) (payload []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("encoder panic: %v", r)
		}
	}()
	return fn(value)
}

func (d *Dispatcher) captureResult(dir log.Direction, frame wire.Frame, result DecodedCommand) {
	if d.capture == nil {
		return
	}
	ev := d.newEvent(dir, frame)
	ev.Category = log.CategoryCommand
	if result.Kind == ResultNoReply {
		ev.Category = log.CategoryNoReply
	}
	ev.Command = &log.CommandEvent{
		Name:    result.Descriptor.FullName(),
		Version: result.Descriptor.Version,
		Value:   result.Value,
	}
	d.capture.Log(ev)
}

func (d *Dispatcher) captureError(dir log.Direction, frame wire.Frame, err *Error) {
	d.captureRawError(dir, frame.Bytes(), err)
}

// captureRawError records an error for bytes that may not form a frame.
func (d *Dispatcher) captureRawError(dir log.Direction, data []byte, err *Error) {
	if d.capture == nil {
		return
	}
	ev := d.newRawEvent(dir, uint8(err.ClassID), uint8(err.CommandID), data)
	ev.Category = log.CategoryError
	ev.Error = &log.ErrorEventData{
		Kind:       err.Kind.String(),
		Message:    err.Error(),
		PayloadLen: err.PayloadLen,
	}
	d.capture.Log(ev)
}

func (d *Dispatcher) newEvent(dir log.Direction, frame wire.Frame) log.Event {
	return d.newRawEvent(dir, uint8(frame.ClassID), uint8(frame.CommandID), frame.Bytes())
}

func (d *Dispatcher) newRawEvent(dir log.Direction, class, cmd uint8, data []byte) log.Event {
	return log.Event{
		Timestamp: d.now(),
		SessionID: d.sessionID,
		Direction: dir,
		ClassID:   class,
		CommandID: cmd,
		Frame:     log.NewFrameEvent(data),
	}
}
