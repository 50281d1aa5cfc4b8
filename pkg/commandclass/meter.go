package commandclass

import (
	"fmt"
	"math"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// MeterType identifies what a meter measures.
type MeterType uint8

// Meter types.
const (
	MeterElectric MeterType = 0x01
	MeterGas      MeterType = 0x02
	MeterWater    MeterType = 0x03
	MeterHeating  MeterType = 0x04
	MeterCooling  MeterType = 0x05
)

// String returns the meter type name.
func (t MeterType) String() string {
	switch t {
	case MeterElectric:
		return "Electric"
	case MeterGas:
		return "Gas"
	case MeterWater:
		return "Water"
	case MeterHeating:
		return "Heating"
	case MeterCooling:
		return "Cooling"
	default:
		return fmt.Sprintf("MeterType(%d)", uint8(t))
	}
}

// RateType tells whether a reading is consumed or produced energy.
type RateType uint8

// Rate types.
const (
	RateUnspecified RateType = 0x00
	RateImport      RateType = 0x01
	RateExport      RateType = 0x02
)

// String returns the rate type name.
func (r RateType) String() string {
	switch r {
	case RateUnspecified:
		return "Unspecified"
	case RateImport:
		return "Import"
	case RateExport:
		return "Export"
	default:
		return fmt.Sprintf("RateType(%d)", uint8(r))
	}
}

var meterUnits = map[MeterType][]string{
	MeterElectric: {"kWh", "kVAh", "W", "pulses", "V", "A", "PF"},
	MeterGas:      {"m³", "ft³", "", "pulses"},
	MeterWater:    {"m³", "ft³", "US gal", "pulses"},
	MeterHeating:  {"kWh"},
	MeterCooling:  {"kWh"},
}

// MeterGet requests a reading. Scale is a version 2 field; nil requests the
// default scale.
type MeterGet struct {
	Scale *uint8
}

// MeterReport is a meter reading. Value is the raw integer; the reading is
// Value / 10^Precision in the unit selected by Type and Scale.
//
// DeltaTime and PreviousValue are version 2 fields. DeltaTime is the number
// of seconds since PreviousValue was measured; zero means no previous value.
type MeterReport struct {
	Type          MeterType
	RateType      RateType
	Scale         uint8
	Precision     uint8
	Size          uint8
	Value         int32
	DeltaTime     uint16
	PreviousValue *int32
}

// Float returns the reading scaled by its precision.
func (m MeterReport) Float() float64 {
	return scaled(m.Value, m.Precision)
}

// PreviousFloat returns the previous reading scaled by its precision.
func (m MeterReport) PreviousFloat() (float64, bool) {
	if m.PreviousValue == nil {
		return 0, false
	}
	return scaled(*m.PreviousValue, m.Precision), true
}

// Unit returns the unit of the reading, or "" if unknown.
func (m MeterReport) Unit() string {
	units := meterUnits[m.Type]
	if int(m.Scale) < len(units) {
		return units[m.Scale]
	}
	return ""
}

func scaled(v int32, precision uint8) float64 {
	return float64(v) / math.Pow10(int(precision))
}

// MeterSupportedReport lists the scales a meter supports.
type MeterSupportedReport struct {
	ResetSupported bool
	Type           MeterType
	RateType       RateType
	ScaleMask      uint8
}

// SupportsScale reports whether scale is set in the scale mask.
func (m MeterSupportedReport) SupportsScale(scale uint8) bool {
	return scale < 7 && m.ScaleMask&(1<<scale) != 0
}

func encodeMeterGet(w *wire.Writer, v MeterGet) error {
	if v.Scale == nil {
		return nil
	}
	if *v.Scale > 7 {
		return fmt.Errorf("%w: scale %d", wire.ErrInvalidValue, *v.Scale)
	}
	w.Uint8(*v.Scale << 3)
	return nil
}

func validValueSize(size uint8) bool {
	return size == 1 || size == 2 || size == 4
}

func fitsSize(v int32, size uint8) bool {
	switch size {
	case 1:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 2:
		return v >= math.MinInt16 && v <= math.MaxInt16
	default:
		return true
	}
}

func decodeMeterReport(r *wire.Reader) (MeterReport, error) {
	b0, err := r.Uint8("meter type")
	if err != nil {
		return MeterReport{}, err
	}
	b1, err := r.Uint8("precision/scale/size")
	if err != nil {
		return MeterReport{}, err
	}

	m := MeterReport{
		Type:      MeterType(b0 & 0x1F),
		RateType:  RateType(b0 >> 5 & 0x03),
		Scale:     b0>>5&0x04 | b1>>3&0x03,
		Precision: b1 >> 5,
		Size:      b1 & 0x07,
	}
	if m.Type == 0 {
		return MeterReport{}, fmt.Errorf("%w: meter type 0", wire.ErrInvalidValue)
	}
	if m.RateType > RateExport {
		return MeterReport{}, fmt.Errorf("%w: rate type %d", wire.ErrInvalidValue, m.RateType)
	}
	if !validValueSize(m.Size) {
		return MeterReport{}, fmt.Errorf("%w: value size %d", wire.ErrInvalidValue, m.Size)
	}

	if m.Value, err = r.Int(int(m.Size), "meter value"); err != nil {
		return MeterReport{}, err
	}
	if r.Remaining() == 0 {
		return m, nil
	}

	if m.DeltaTime, err = r.Uint16("delta time"); err != nil {
		return MeterReport{}, err
	}
	if m.DeltaTime != 0 {
		prev, err := r.Int(int(m.Size), "previous value")
		if err != nil {
			return MeterReport{}, err
		}
		m.PreviousValue = &prev
	}
	return m, nil
}

func encodeMeterReport(w *wire.Writer, v MeterReport) error {
	switch {
	case v.Type == 0 || v.Type > 0x1F:
		return fmt.Errorf("%w: meter type %d", wire.ErrInvalidValue, v.Type)
	case v.RateType > RateExport:
		return fmt.Errorf("%w: rate type %d", wire.ErrInvalidValue, v.RateType)
	case v.Scale > 7:
		return fmt.Errorf("%w: scale %d", wire.ErrInvalidValue, v.Scale)
	case v.Precision > 7:
		return fmt.Errorf("%w: precision %d", wire.ErrInvalidValue, v.Precision)
	case !validValueSize(v.Size):
		return fmt.Errorf("%w: value size %d", wire.ErrInvalidValue, v.Size)
	case !fitsSize(v.Value, v.Size):
		return fmt.Errorf("%w: value %d does not fit %d bytes", wire.ErrInvalidValue, v.Value, v.Size)
	case (v.DeltaTime == 0) != (v.PreviousValue == nil):
		return fmt.Errorf("%w: delta time and previous value must be set together", wire.ErrInvalidValue)
	case v.PreviousValue != nil && !fitsSize(*v.PreviousValue, v.Size):
		return fmt.Errorf("%w: previous value %d does not fit %d bytes", wire.ErrInvalidValue, *v.PreviousValue, v.Size)
	}

	w.Uint8(uint8(v.Type) | uint8(v.RateType)<<5 | (v.Scale&0x04)<<5)
	w.Uint8(v.Precision<<5 | (v.Scale&0x03)<<3 | v.Size)
	w.Int(v.Value, int(v.Size))
	w.Uint16(v.DeltaTime)
	if v.PreviousValue != nil {
		w.Int(*v.PreviousValue, int(v.Size))
	}
	return nil
}

func decodeMeterSupportedReport(r *wire.Reader) (MeterSupportedReport, error) {
	b0, err := r.Uint8("meter type")
	if err != nil {
		return MeterSupportedReport{}, err
	}
	mask, err := r.Uint8("scale mask")
	if err != nil {
		return MeterSupportedReport{}, err
	}
	m := MeterSupportedReport{
		ResetSupported: b0&0x80 != 0,
		Type:           MeterType(b0 & 0x1F),
		RateType:       RateType(b0 >> 5 & 0x03),
		ScaleMask:      mask,
	}
	if m.Type == 0 {
		return MeterSupportedReport{}, fmt.Errorf("%w: meter type 0", wire.ErrInvalidValue)
	}
	return m, nil
}

func encodeMeterSupportedReport(w *wire.Writer, v MeterSupportedReport) error {
	if v.Type == 0 || v.Type > 0x1F {
		return fmt.Errorf("%w: meter type %d", wire.ErrInvalidValue, v.Type)
	}
	if v.RateType > 0x03 {
		return fmt.Errorf("%w: rate type %d", wire.ErrInvalidValue, v.RateType)
	}
	b0 := uint8(v.Type) | uint8(v.RateType)<<5
	if v.ResetSupported {
		b0 |= 0x80
	}
	w.Uint8(b0).Uint8(v.ScaleMask)
	return nil
}
