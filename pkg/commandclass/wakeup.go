package commandclass

import (
	"fmt"
	"time"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// MaxWakeUpInterval is the largest interval the 24-bit field can carry.
const MaxWakeUpInterval = 1<<24 - 1

// WakeUpInterval is the payload of Wake Up Interval Set and Interval Report:
// the interval in seconds and the node that receives Notification commands.
type WakeUpInterval struct {
	Seconds uint32
	NodeID  uint8
}

// Interval returns the wake-up interval as a time.Duration.
func (w WakeUpInterval) Interval() time.Duration {
	return time.Duration(w.Seconds) * time.Second
}

// WakeUpCapabilities is the payload of Interval Capabilities Report. All
// values are in seconds.
type WakeUpCapabilities struct {
	Min     uint32
	Max     uint32
	Default uint32
	Step    uint32
}

// Allows reports whether seconds is a valid interval for the device.
// Zero is always allowed and disables periodic wake-up.
func (c WakeUpCapabilities) Allows(seconds uint32) bool {
	if seconds == 0 {
		return true
	}
	if seconds < c.Min || seconds > c.Max {
		return false
	}
	return c.Step == 0 || (seconds-c.Min)%c.Step == 0
}

func decodeWakeUpInterval(r *wire.Reader) (WakeUpInterval, error) {
	secs, err := r.Uint24("interval")
	if err != nil {
		return WakeUpInterval{}, err
	}
	node, err := r.Uint8("node id")
	if err != nil {
		return WakeUpInterval{}, err
	}
	return WakeUpInterval{Seconds: secs, NodeID: node}, nil
}

func encodeWakeUpInterval(w *wire.Writer, v WakeUpInterval) error {
	if v.Seconds > MaxWakeUpInterval {
		return fmt.Errorf("%w: interval %ds exceeds 24 bits", wire.ErrInvalidValue, v.Seconds)
	}
	w.Uint24(v.Seconds).Uint8(v.NodeID)
	return nil
}

func decodeWakeUpCapabilities(r *wire.Reader) (WakeUpCapabilities, error) {
	var c WakeUpCapabilities
	for _, f := range []struct {
		dst  *uint32
		name string
	}{
		{&c.Min, "minimum interval"},
		{&c.Max, "maximum interval"},
		{&c.Default, "default interval"},
		{&c.Step, "interval step"},
	} {
		v, err := r.Uint24(f.name)
		if err != nil {
			return WakeUpCapabilities{}, err
		}
		*f.dst = v
	}
	if c.Min > c.Max {
		return WakeUpCapabilities{}, fmt.Errorf("%w: minimum %d above maximum %d", wire.ErrInvalidValue, c.Min, c.Max)
	}
	return c, nil
}

func encodeWakeUpCapabilities(w *wire.Writer, v WakeUpCapabilities) error {
	for _, s := range []uint32{v.Min, v.Max, v.Default, v.Step} {
		if s > MaxWakeUpInterval {
			return fmt.Errorf("%w: interval %ds exceeds 24 bits", wire.ErrInvalidValue, s)
		}
	}
	if v.Min > v.Max {
		return fmt.Errorf("%w: minimum %d above maximum %d", wire.ErrInvalidValue, v.Min, v.Max)
	}
	w.Uint24(v.Min).Uint24(v.Max).Uint24(v.Default).Uint24(v.Step)
	return nil
}
