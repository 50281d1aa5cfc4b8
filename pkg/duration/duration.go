package duration

import (
	"errors"
	"fmt"
	"time"
)

// Duration errors.
var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrReservedValue   = errors.New("reserved duration value")
)

// Encoding limits.
const (
	// MaxSeconds is the longest duration expressible in seconds resolution.
	MaxSeconds = 127 * time.Second

	// MaxMinutes is the longest duration expressible at all.
	MaxMinutes = 126 * time.Minute

	byteInstant = 0x00
	byteMinutes = 0x80
	byteUnknown = 0xFE
	byteDefault = 0xFF
)

// Duration is a decoded transition duration.
type Duration struct {
	// Value is the duration. Zero with Unknown or Default unset means instant.
	Value time.Duration

	// Unknown is set when the device reports an unknown duration.
	Unknown bool

	// Default requests the device's factory default duration.
	Default bool
}

// Instant is the zero-length duration.
var Instant = Duration{}

// Unknown is the "unknown duration" marker used in reports.
var Unknown = Duration{Unknown: true}

// FactoryDefault requests the device default in Set commands.
var FactoryDefault = Duration{Default: true}

// Of returns a known duration.
func Of(d time.Duration) Duration {
	return Duration{Value: d}
}

// String returns a human-readable duration.
func (d Duration) String() string {
	switch {
	case d.Unknown:
		return "unknown"
	case d.Default:
		return "default"
	case d.Value == 0:
		return "instant"
	default:
		return d.Value.String()
	}
}

// Encode converts a duration to its wire byte. Known durations must be
// whole seconds up to 127s or whole minutes up to 126 minutes; anything else
// is ErrInvalidDuration. Use Round to bring a duration onto that grid.
func Encode(d Duration) (byte, error) {
	switch {
	case d.Unknown:
		return byteUnknown, nil
	case d.Default:
		return byteDefault, nil
	case d.Value < 0:
		return 0, fmt.Errorf("%w: negative %s", ErrInvalidDuration, d.Value)
	case d.Value == 0:
		return byteInstant, nil
	case d.Value > MaxMinutes:
		return 0, fmt.Errorf("%w: %s exceeds %s", ErrInvalidDuration, d.Value, MaxMinutes)
	case d.Value <= MaxSeconds && d.Value%time.Second == 0:
		return byte(d.Value / time.Second), nil
	case d.Value > MaxSeconds && d.Value%time.Minute == 0:
		return byte(byteMinutes + d.Value/time.Minute - 1), nil
	default:
		return 0, fmt.Errorf("%w: %s is not a whole number of %s", ErrInvalidDuration, d.Value, resolution(d.Value))
	}
}

// Round returns the shortest encodable duration not below d: whole seconds
// up to 127s, whole minutes above. Markers and out-of-range values are
// returned unchanged.
func Round(d Duration) Duration {
	if d.Unknown || d.Default || d.Value <= 0 || d.Value > MaxMinutes {
		return d
	}
	if d.Value <= MaxSeconds {
		return Of((d.Value + time.Second - 1) / time.Second * time.Second)
	}
	return Of((d.Value + time.Minute - 1) / time.Minute * time.Minute)
}

func resolution(v time.Duration) string {
	if v <= MaxSeconds {
		return "seconds"
	}
	return "minutes"
}

// DecodeReport decodes a duration byte from a Report command.
func DecodeReport(b byte) (Duration, error) {
	if b == byteDefault {
		return Duration{}, fmt.Errorf("%w: 0x%02X", ErrReservedValue, b)
	}
	return decode(b), nil
}

// DecodeSet decodes a duration byte from a Set command, where 0xFF selects
// the factory default.
func DecodeSet(b byte) Duration {
	if b == byteDefault {
		return FactoryDefault
	}
	return decode(b)
}

func decode(b byte) Duration {
	switch {
	case b == byteInstant:
		return Instant
	case b < byteMinutes:
		return Of(time.Duration(b) * time.Second)
	case b < byteUnknown:
		return Of(time.Duration(b-byteMinutes+1) * time.Minute)
	default:
		return Unknown
	}
}
