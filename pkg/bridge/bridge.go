package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/zwave-protocol/zwave-go/pkg/dispatch"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Message is the JSON document published on a node's decoded topic.
type Message struct {
	Node    uint8  `json:"node"`
	Class   string `json:"class"`
	Command string `json:"command"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Value   any    `json:"value,omitempty"`
}

// Bridge decodes frames arriving on rx topics and publishes the results.
type Bridge struct {
	broker     Broker
	dispatcher *dispatch.Dispatcher
	topics     Topics
	qos        byte
	logger     *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithTopicRoot sets the topic root. The default is "zwave".
func WithTopicRoot(root string) Option {
	return func(b *Bridge) { b.topics.Root = root }
}

// WithQoS sets the QoS used for subscriptions and publishes.
func WithQoS(qos byte) Option {
	return func(b *Bridge) { b.qos = qos }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a Bridge. Call Start to subscribe.
func New(broker Broker, d *dispatch.Dispatcher, opts ...Option) *Bridge {
	b := &Bridge{
		broker:     broker,
		dispatcher: d,
		topics:     Topics{Root: "zwave"},
		qos:        1,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Topics returns the bridge's topic layout.
func (b *Bridge) Topics() Topics {
	return b.topics
}

// Start subscribes to every node's rx topic.
func (b *Bridge) Start() error {
	topic := b.topics.AllRX()
	if err := b.broker.Subscribe(topic, b.qos, b.HandleRX); err != nil {
		return fmt.Errorf("subscribing %s: %w", topic, err)
	}
	b.logger.Info("bridge started", "topic", topic)
	return nil
}

// HandleRX decodes one received frame and publishes the result. Unknown
// commands and malformed payloads are logged and dropped without error.
func (b *Bridge) HandleRX(topic string, payload []byte) error {
	node, suffix, err := b.topics.ParseNode(topic)
	if err != nil {
		return err
	}
	if suffix != SuffixRX {
		return fmt.Errorf("%w: %q is not an rx topic", ErrInvalidTopic, topic)
	}

	result, err := b.dispatcher.DecodeBytes(payload)
	if err != nil {
		if dispatch.IsRecoverable(err) {
			b.logger.Debug("dropping frame", "node", node, "error", err)
			return nil
		}
		return err
	}

	msg := Message{
		Node:    node,
		Class:   result.Identity.ClassID.String(),
		Command: result.Identity.CommandID.String(),
		Name:    result.Descriptor.FullName(),
		Kind:    result.Kind.String(),
		Value:   result.Value,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", result.Descriptor, err)
	}
	return b.broker.Publish(b.topics.Decoded(node), data, b.qos, false)
}

// Sink returns a FrameSink that publishes frames to node's tx topic.
func (b *Bridge) Sink(node uint8) dispatch.FrameSink {
	return dispatch.FrameSinkFunc(func(ctx context.Context, frame wire.Frame) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return b.broker.Publish(b.topics.TX(node), frame.Bytes(), b.qos, false)
	})
}
