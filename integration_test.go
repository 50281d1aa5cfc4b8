package zwave_test

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/zwave-protocol/zwave-go/pkg/bridge"
	"github.com/zwave-protocol/zwave-go/pkg/commandclass"
	"github.com/zwave-protocol/zwave-go/pkg/dispatch"
	"github.com/zwave-protocol/zwave-go/pkg/layout"
	"github.com/zwave-protocol/zwave-go/pkg/log"
)

// memoryBroker delivers publications to matching in-process subscribers.
type memoryBroker struct {
	mu        sync.Mutex
	published map[string][][]byte
	handlers  map[string]bridge.MessageHandler
}

func newMemoryBroker() *memoryBroker {
	return &memoryBroker{
		published: make(map[string][][]byte),
		handlers:  make(map[string]bridge.MessageHandler),
	}
}

func (m *memoryBroker) Publish(topic string, payload []byte, _ byte, _ bool) error {
	m.mu.Lock()
	m.published[topic] = append(m.published[topic], payload)
	m.mu.Unlock()
	return nil
}

func (m *memoryBroker) Subscribe(topic string, _ byte, handler bridge.MessageHandler) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[topic] = handler
	return nil
}

func (m *memoryBroker) deliver(t *testing.T, pattern, topic string, payload []byte) {
	t.Helper()
	m.mu.Lock()
	handler := m.handlers[pattern]
	m.mu.Unlock()
	if handler == nil {
		t.Fatalf("no subscriber for %s", pattern)
	}
	if err := handler(topic, payload); err != nil {
		t.Fatalf("handler(%s) failed: %v", topic, err)
	}
}

func (m *memoryBroker) messages(topic string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.published[topic]
}

// TestE2E_BridgeCapture feeds frames through the bridge and checks both the
// decoded publications and the capture file.
func TestE2E_BridgeCapture(t *testing.T) {
	capturePath := filepath.Join(t.TempDir(), "session.zlog")
	capture, err := log.NewFileLogger(capturePath)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	d := dispatch.New(commandclass.DefaultRegistry(), dispatch.WithCapture(capture))
	broker := newMemoryBroker()
	b := bridge.New(broker, d)
	if err := b.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	topics := b.Topics()

	// Association Report from node 12, then an unknown class and a truncated
	// multi channel report, both of which are dropped.
	broker.deliver(t, topics.AllRX(), topics.RX(12), []byte{0x85, 0x03, 0x01, 0x04, 0x00, 0x05, 0x07})
	broker.deliver(t, topics.AllRX(), topics.RX(12), []byte{0xFF, 0x01})
	broker.deliver(t, topics.AllRX(), topics.RX(12), []byte{0x8E, 0x03, 0x01, 0x04, 0x00, 0x05, 0x00, 0x07})

	// Basic Set to node 12.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Send(ctx, b.Sink(12), commandclass.ClassBasic, commandclass.BasicCmdSet, commandclass.BasicSet{Value: 0xFF}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if err := capture.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	decoded := broker.messages(topics.Decoded(12))
	if len(decoded) != 1 {
		t.Fatalf("expected 1 decoded message, got %d", len(decoded))
	}
	var msg bridge.Message
	if err := json.Unmarshal(decoded[0], &msg); err != nil {
		t.Fatalf("decoded message is not JSON: %v", err)
	}
	if msg.Node != 12 || msg.Name != "Association Report" {
		t.Errorf("unexpected message: %+v", msg)
	}

	tx := broker.messages(topics.TX(12))
	if len(tx) != 1 || string(tx[0]) != string([]byte{0x20, 0x01, 0xFF}) {
		t.Errorf("unexpected tx frames: %x", tx)
	}

	r, err := log.NewReader(capturePath)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	var categories []log.Category
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ev.SessionID != d.SessionID() {
			t.Errorf("session %q, want %q", ev.SessionID, d.SessionID())
		}
		categories = append(categories, ev.Category)
	}

	want := []log.Category{log.CategoryCommand, log.CategoryError, log.CategoryError, log.CategoryCommand}
	if len(categories) != len(want) {
		t.Fatalf("captured %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("event %d: %s, want %s", i, categories[i], want[i])
		}
	}
}

// TestE2E_ExtensionCatalog decodes a class that only an extension catalog
// describes.
func TestE2E_ExtensionCatalog(t *testing.T) {
	ext, err := layout.LoadAll([]string{filepath.Join("docs", "catalog", "extensions", "door-lock.yaml")})
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	reg, err := commandclass.NewRegistry(ext)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	d := dispatch.New(reg)

	result, err := d.DecodeBytes([]byte{0x62, 0x03, 0xFF, 0x00, 0x02, 0xFE, 0xFE})
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if got := result.Descriptor.FullName(); got != "Door Lock Operation Report" {
		t.Errorf("FullName = %q", got)
	}

	data, err := json.Marshal(result.Value)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if string(fields["timeoutMinutes"]) != "254" {
		t.Errorf("timeoutMinutes = %s", fields["timeoutMinutes"])
	}

	// Built-in classes still resolve alongside the extension.
	if _, err := d.DecodeBytes([]byte{0x80, 0x03, 0x64}); err != nil {
		t.Errorf("built-in Battery Report failed: %v", err)
	}
}
