package bridge

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/zwave-protocol/zwave-go/pkg/config"
)

// MessageHandler is called for each received message. Handlers run on
// paho's goroutines; a returned error is logged.
type MessageHandler func(topic string, payload []byte) error

// Broker is the subset of an MQTT client the bridge needs.
type Broker interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	Subscribe(topic string, qos byte, handler MessageHandler) error
}

// Client wraps a paho MQTT client. It is safe for concurrent use and
// restores subscriptions after a reconnect.
type Client struct {
	client pahomqtt.Client
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[string]subscription
}

type subscription struct {
	qos     byte
	handler MessageHandler
}

// Connect connects to the broker named in cfg.
func Connect(cfg config.MQTTConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Client{
		logger: logger,
		subs:   make(map[string]subscription),
	}

	opts := buildClientOptions(cfg)
	opts.SetOnConnectHandler(func(pahomqtt.Client) { c.restoreSubscriptions() })
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		c.logger.Warn("mqtt connection lost", "error", err)
	})

	c.client = pahomqtt.NewClient(opts)
	token := c.client.Connect()
	if !token.WaitTimeout(cfg.ConnectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, cfg.ConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	logger.Info("mqtt connected", "broker", cfg.Broker, "client_id", cfg.ClientID)
	return c, nil
}

// IsConnected reports whether the client is currently connected.
func (c *Client) IsConnected() bool {
	return c.client != nil && c.client.IsConnected()
}

// Publish sends payload to topic and waits for the broker to accept it.
func (c *Client) Publish(topic string, payload []byte, qos byte, retained bool) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// Subscribe registers handler for topic, which may contain wildcards.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", ErrSubscribeFailed)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Subscribe(topic, qos, c.wrapHandler(handler))
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrSubscribeFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}

	c.mu.Lock()
	c.subs[topic] = subscription{qos: qos, handler: handler}
	c.mu.Unlock()
	return nil
}

// Close disconnects from the broker.
func (c *Client) Close() error {
	if c.client != nil {
		c.client.Disconnect(defaultDisconnectQuiesce)
	}
	return nil
}

func (c *Client) restoreSubscriptions() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for topic, sub := range c.subs {
		c.client.Subscribe(topic, sub.qos, c.wrapHandler(sub.handler))
	}
}

func (c *Client) wrapHandler(handler MessageHandler) pahomqtt.MessageHandler {
	return func(_ pahomqtt.Client, msg pahomqtt.Message) {
		handleMessage(c.logger, handler, msg.Topic(), msg.Payload())
	}
}

// handleMessage runs handler, logging its error and recovering a panic.
func handleMessage(logger *slog.Logger, handler MessageHandler, topic string, payload []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("mqtt handler panic recovered", "topic", topic, "panic", r)
		}
	}()
	if err := handler(topic, payload); err != nil {
		logger.Warn("mqtt handler returned error", "topic", topic, "error", err)
	}
}
