package commandclass

import (
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/duration"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// SwitchBinarySet switches a device on (any non-zero Value) or off.
// Duration is a version 2 field; nil omits it. Controllers also observe Sets
// sent by other nodes, so it is decoded as well as encoded.
type SwitchBinarySet struct {
	Value    uint8
	Duration *duration.Duration
}

// SwitchBinaryReport is the state of a binary switch. TargetValue and
// Duration are present from version 2 and are either both set or both nil.
type SwitchBinaryReport struct {
	CurrentValue uint8
	TargetValue  *uint8
	Duration     *duration.Duration
}

// On reports whether the switch is on. Unknown state reports false.
func (r SwitchBinaryReport) On() bool {
	return r.CurrentValue != LevelOff && r.CurrentValue != LevelUnknown
}

func encodeSwitchBinarySet(w *wire.Writer, v SwitchBinarySet) error {
	if !validSetLevel(v.Value) {
		return fmt.Errorf("%w: value 0x%02X", wire.ErrInvalidValue, v.Value)
	}
	w.Uint8(v.Value)
	if v.Duration != nil {
		b, err := duration.Encode(*v.Duration)
		if err != nil {
			return err
		}
		w.Uint8(b)
	}
	return nil
}

func decodeSwitchBinarySet(r *wire.Reader) (SwitchBinarySet, error) {
	v, err := r.Uint8("value")
	if err != nil {
		return SwitchBinarySet{}, err
	}
	if !validSetLevel(v) {
		return SwitchBinarySet{}, fmt.Errorf("%w: value 0x%02X", wire.ErrInvalidValue, v)
	}
	set := SwitchBinarySet{Value: v}
	if r.Remaining() > 0 {
		raw, err := r.Uint8("duration")
		if err != nil {
			return SwitchBinarySet{}, err
		}
		dur := duration.DecodeSet(raw)
		set.Duration = &dur
	}
	return set, nil
}

func decodeSwitchBinaryReport(r *wire.Reader) (SwitchBinaryReport, error) {
	cur, target, dur, err := decodeLevelReport(r, validReportLevel)
	if err != nil {
		return SwitchBinaryReport{}, err
	}
	return SwitchBinaryReport{CurrentValue: cur, TargetValue: target, Duration: dur}, nil
}

func encodeSwitchBinaryReport(w *wire.Writer, v SwitchBinaryReport) error {
	return encodeLevelReport(w, v.CurrentValue, v.TargetValue, v.Duration, validReportLevel)
}
