package commandclass

import (
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/duration"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Level values shared by Basic and multilevel-style commands.
const (
	LevelOff     uint8 = 0x00
	LevelMax     uint8 = 0x63 // 99%
	LevelUnknown uint8 = 0xFE
	LevelOn      uint8 = 0xFF // restore last non-zero level
)

// BasicSet sets the device's primary function to Value. Devices also send it
// to their association targets, so it is decoded as well as encoded.
type BasicSet struct {
	Value uint8
}

// BasicReport is the current level of a device. TargetValue and Duration are
// present from version 2 and are either both set or both nil.
type BasicReport struct {
	CurrentValue uint8
	TargetValue  *uint8
	Duration     *duration.Duration
}

func validSetLevel(v uint8) bool {
	return v <= LevelMax || v == LevelOn
}

func validReportLevel(v uint8) bool {
	return v <= LevelMax || v == LevelUnknown || v == LevelOn
}

func decodeBasicSet(r *wire.Reader) (BasicSet, error) {
	v, err := r.Uint8("value")
	if err != nil {
		return BasicSet{}, err
	}
	if !validSetLevel(v) {
		return BasicSet{}, fmt.Errorf("%w: value 0x%02X", wire.ErrInvalidValue, v)
	}
	return BasicSet{Value: v}, nil
}

func encodeBasicSet(w *wire.Writer, v BasicSet) error {
	if !validSetLevel(v.Value) {
		return fmt.Errorf("%w: value 0x%02X", wire.ErrInvalidValue, v.Value)
	}
	w.Uint8(v.Value)
	return nil
}

func decodeBasicReport(r *wire.Reader) (BasicReport, error) {
	cur, target, dur, err := decodeLevelReport(r, validReportLevel)
	if err != nil {
		return BasicReport{}, err
	}
	return BasicReport{CurrentValue: cur, TargetValue: target, Duration: dur}, nil
}

func encodeBasicReport(w *wire.Writer, v BasicReport) error {
	return encodeLevelReport(w, v.CurrentValue, v.TargetValue, v.Duration, validReportLevel)
}

// decodeLevelReport reads "current [target duration]". A version 1 report
// stops after current; a version 2 report must carry both trailing fields.
func decodeLevelReport(r *wire.Reader, valid func(uint8) bool) (uint8, *uint8, *duration.Duration, error) {
	cur, err := r.Uint8("current value")
	if err != nil {
		return 0, nil, nil, err
	}
	if !valid(cur) {
		return 0, nil, nil, fmt.Errorf("%w: current value 0x%02X", wire.ErrInvalidValue, cur)
	}
	if r.Remaining() == 0 {
		return cur, nil, nil, nil
	}

	target, err := r.Uint8("target value")
	if err != nil {
		return 0, nil, nil, err
	}
	if !valid(target) {
		return 0, nil, nil, fmt.Errorf("%w: target value 0x%02X", wire.ErrInvalidValue, target)
	}
	raw, err := r.Uint8("duration")
	if err != nil {
		return 0, nil, nil, err
	}
	dur, err := duration.DecodeReport(raw)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %w", wire.ErrInvalidValue, err)
	}
	return cur, &target, &dur, nil
}

func encodeLevelReport(w *wire.Writer, cur uint8, target *uint8, dur *duration.Duration, valid func(uint8) bool) error {
	if !valid(cur) {
		return fmt.Errorf("%w: current value 0x%02X", wire.ErrInvalidValue, cur)
	}
	if (target == nil) != (dur == nil) {
		return fmt.Errorf("%w: target value and duration must be set together", wire.ErrInvalidValue)
	}
	w.Uint8(cur)
	if target == nil {
		return nil
	}
	if !valid(*target) {
		return fmt.Errorf("%w: target value 0x%02X", wire.ErrInvalidValue, *target)
	}
	if dur.Default {
		return fmt.Errorf("%w: factory default duration in report", wire.ErrInvalidValue)
	}
	b, err := duration.Encode(*dur)
	if err != nil {
		return err
	}
	w.Uint8(*target).Uint8(b)
	return nil
}
