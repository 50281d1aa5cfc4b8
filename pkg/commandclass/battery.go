package commandclass

import (
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// BatteryLowWarning is reported instead of a percentage when the battery is
// nearly exhausted.
const BatteryLowWarning uint8 = 0xFF

// BatteryReport is a battery level in percent, or BatteryLowWarning.
// Fields appended by later versions are ignored.
type BatteryReport struct {
	Level uint8
}

// IsLow reports whether the device sent the low-battery warning.
func (b BatteryReport) IsLow() bool {
	return b.Level == BatteryLowWarning
}

func validBatteryLevel(v uint8) bool {
	return v <= 100 || v == BatteryLowWarning
}

func decodeBatteryReport(r *wire.Reader) (BatteryReport, error) {
	v, err := r.Uint8("battery level")
	if err != nil {
		return BatteryReport{}, err
	}
	if !validBatteryLevel(v) {
		return BatteryReport{}, fmt.Errorf("%w: battery level 0x%02X", wire.ErrInvalidValue, v)
	}
	return BatteryReport{Level: v}, nil
}

func encodeBatteryReport(w *wire.Writer, v BatteryReport) error {
	if !validBatteryLevel(v.Level) {
		return fmt.Errorf("%w: battery level 0x%02X", wire.ErrInvalidValue, v.Level)
	}
	w.Uint8(v.Level)
	return nil
}
