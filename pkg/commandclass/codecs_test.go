package commandclass

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zwave-protocol/zwave-go/pkg/duration"
	"github.com/zwave-protocol/zwave-go/pkg/model"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

func TestBasic(t *testing.T) {
	got, err := decodePayload(t, ClassBasic, BasicCmdSet, []byte{0x63})
	require.NoError(t, err)
	assert.Equal(t, BasicSet{Value: 0x63}, got)

	_, err = decodePayload(t, ClassBasic, BasicCmdSet, []byte{0x64})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	got, err = decodePayload(t, ClassBasic, BasicCmdReport, []byte{0x20})
	require.NoError(t, err)
	assert.Equal(t, BasicReport{CurrentValue: 0x20}, got)

	got, err = decodePayload(t, ClassBasic, BasicCmdReport, []byte{0x00, 0x63, 0x05})
	require.NoError(t, err)
	assert.Equal(t, BasicReport{
		CurrentValue: 0x00,
		TargetValue:  ptr(uint8(0x63)),
		Duration:     ptr(duration.Of(5 * time.Second)),
	}, got)

	got, err = decodePayload(t, ClassBasic, BasicCmdReport, []byte{0xFE, 0xFE, 0xFE})
	require.NoError(t, err)
	assert.True(t, got.(BasicReport).Duration.Unknown)
}

func TestBasicReportMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"empty", nil, wire.ErrShortPayload},
		{"target without duration", []byte{0x00, 0x63}, wire.ErrShortPayload},
		{"current out of range", []byte{0x80}, wire.ErrInvalidValue},
		{"target out of range", []byte{0x00, 0x70, 0x00}, wire.ErrInvalidValue},
		{"reserved duration", []byte{0x00, 0x63, 0xFF}, wire.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePayload(t, ClassBasic, BasicCmdReport, tt.payload)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBasicEncodeInvalid(t *testing.T) {
	_, err := encodeValue(t, ClassBasic, BasicCmdSet, BasicSet{Value: 0xFE})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = encodeValue(t, ClassBasic, BasicCmdReport, BasicReport{TargetValue: ptr(uint8(1))})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = encodeValue(t, ClassBasic, BasicCmdReport, BasicReport{
		TargetValue: ptr(uint8(1)),
		Duration:    ptr(duration.FactoryDefault),
	})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = encodeValue(t, ClassBasic, BasicCmdSet, SwitchBinarySet{})
	assert.ErrorIs(t, err, model.ErrTypeMismatch)
}

func TestSwitchBinary(t *testing.T) {
	got, err := encodeValue(t, ClassSwitchBinary, SwitchBinaryCmdSet, SwitchBinarySet{Value: LevelOn})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF}, got)

	got, err = encodeValue(t, ClassSwitchBinary, SwitchBinaryCmdSet, SwitchBinarySet{
		Value:    LevelOff,
		Duration: ptr(duration.FactoryDefault),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF}, got)

	dec, err := decodePayload(t, ClassSwitchBinary, SwitchBinaryCmdReport, []byte{0xFF})
	require.NoError(t, err)
	assert.True(t, dec.(SwitchBinaryReport).On())

	dec, err = decodePayload(t, ClassSwitchBinary, SwitchBinaryCmdReport, []byte{0xFE})
	require.NoError(t, err)
	assert.False(t, dec.(SwitchBinaryReport).On())

	assert.False(t, lookup(t, ClassSwitchBinary, SwitchBinaryCmdGet).CanDecode())

	dec, err = decodePayload(t, ClassSwitchBinary, SwitchBinaryCmdSet, []byte{0x00, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, SwitchBinarySet{Value: LevelOff, Duration: ptr(duration.FactoryDefault)}, dec)

	dec, err = decodePayload(t, ClassSwitchBinary, SwitchBinaryCmdSet, []byte{0xFF, 0x83})
	require.NoError(t, err)
	assert.Equal(t, SwitchBinarySet{Value: LevelOn, Duration: ptr(duration.Of(4 * time.Minute))}, dec)

	_, err = decodePayload(t, ClassSwitchBinary, SwitchBinaryCmdSet, []byte{0x64})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestBattery(t *testing.T) {
	got, err := decodePayload(t, ClassBattery, BatteryCmdReport, []byte{0x64})
	require.NoError(t, err)
	assert.Equal(t, BatteryReport{Level: 100}, got)
	assert.False(t, got.(BatteryReport).IsLow())

	got, err = decodePayload(t, ClassBattery, BatteryCmdReport, []byte{0xFF})
	require.NoError(t, err)
	assert.True(t, got.(BatteryReport).IsLow())

	// Version 2 fields after the level are ignored.
	got, err = decodePayload(t, ClassBattery, BatteryCmdReport, []byte{0x50, 0x0C, 0x00})
	require.NoError(t, err)
	assert.Equal(t, BatteryReport{Level: 80}, got)

	_, err = decodePayload(t, ClassBattery, BatteryCmdReport, []byte{0x65})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = decodePayload(t, ClassBattery, BatteryCmdReport, []byte{})
	assert.ErrorIs(t, err, wire.ErrShortPayload)
}

func TestWakeUp(t *testing.T) {
	got, err := decodePayload(t, ClassWakeUp, WakeUpCmdIntervalReport, []byte{0x00, 0x0E, 0x10, 0x01})
	require.NoError(t, err)
	iv := got.(WakeUpInterval)
	assert.Equal(t, WakeUpInterval{Seconds: 3600, NodeID: 1}, iv)
	assert.Equal(t, time.Hour, iv.Interval())

	_, err = decodePayload(t, ClassWakeUp, WakeUpCmdIntervalReport, []byte{0x00, 0x0E, 0x10})
	assert.ErrorIs(t, err, wire.ErrShortPayload)

	enc, err := encodeValue(t, ClassWakeUp, WakeUpCmdIntervalSet, WakeUpInterval{Seconds: 300, NodeID: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x2C, 0x01}, enc)

	_, err = encodeValue(t, ClassWakeUp, WakeUpCmdIntervalSet, WakeUpInterval{Seconds: MaxWakeUpInterval + 1})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	notification := lookup(t, ClassWakeUp, WakeUpCmdNotification)
	assert.False(t, notification.CanDecode())
	assert.False(t, notification.CanEncode())
}

func TestWakeUpCapabilities(t *testing.T) {
	payload := []byte{
		0x00, 0x00, 0x3C, // min 60
		0x01, 0x51, 0x80, // max 86400
		0x00, 0x0E, 0x10, // default 3600
		0x00, 0x00, 0x3C, // step 60
	}
	got, err := decodePayload(t, ClassWakeUp, WakeUpCmdIntervalCapabilitiesReport, payload)
	require.NoError(t, err)
	caps := got.(WakeUpCapabilities)
	assert.Equal(t, WakeUpCapabilities{Min: 60, Max: 86400, Default: 3600, Step: 60}, caps)

	assert.True(t, caps.Allows(0))
	assert.True(t, caps.Allows(120))
	assert.False(t, caps.Allows(90))
	assert.False(t, caps.Allows(30))
	assert.False(t, caps.Allows(86460))

	_, err = decodePayload(t, ClassWakeUp, WakeUpCmdIntervalCapabilitiesReport, payload[:11])
	assert.ErrorIs(t, err, wire.ErrShortPayload)

	inverted := append([]byte{0x01, 0x51, 0x80, 0x00, 0x00, 0x3C}, payload[6:]...)
	_, err = decodePayload(t, ClassWakeUp, WakeUpCmdIntervalCapabilitiesReport, inverted)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestVersionReport(t *testing.T) {
	got, err := decodePayload(t, ClassVersion, VersionCmdReport, []byte{0x03, 0x07, 0x0F, 0x01, 0x02})
	require.NoError(t, err)
	rep := got.(VersionReport)
	assert.Equal(t, VersionReport{
		LibraryType: 3,
		Protocol:    FirmwareVersion{Version: 7, SubVersion: 15},
		Firmware:    FirmwareVersion{Version: 1, SubVersion: 2},
	}, rep)
	assert.Equal(t, "7.15", rep.Protocol.String())
	assert.Equal(t, "1.02", rep.Firmware.String())

	got, err = decodePayload(t, ClassVersion, VersionCmdReport, []byte{0x03, 0x07, 0x0F, 0x01, 0x02, 0x05, 0x01, 0x02, 0x03})
	require.NoError(t, err)
	rep = got.(VersionReport)
	require.NotNil(t, rep.HardwareVersion)
	assert.Equal(t, uint8(5), *rep.HardwareVersion)
	assert.Equal(t, []FirmwareVersion{{Version: 2, SubVersion: 3}}, rep.FirmwareTargets)

	_, err = decodePayload(t, ClassVersion, VersionCmdReport, []byte{0x03, 0x07, 0x0F, 0x01, 0x02, 0x05, 0x02, 0x02, 0x03})
	assert.ErrorIs(t, err, wire.ErrShortPayload, "declared two targets, carries one")

	_, err = decodePayload(t, ClassVersion, VersionCmdReport, []byte{0x03, 0x07, 0x0F, 0x01, 0x02, 0x05})
	assert.ErrorIs(t, err, wire.ErrShortPayload)

	_, err = decodePayload(t, ClassVersion, VersionCmdReport, []byte{0x03, 0x07})
	assert.ErrorIs(t, err, wire.ErrShortPayload)

	_, err = encodeValue(t, ClassVersion, VersionCmdReport, VersionReport{FirmwareTargets: []FirmwareVersion{{}}})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestVersionCommandClass(t *testing.T) {
	enc, err := encodeValue(t, ClassVersion, VersionCmdCommandClassGet, VersionCommandClassGet{Class: ClassAssociation})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x85}, enc)

	got, err := decodePayload(t, ClassVersion, VersionCmdCommandClassReport, []byte{0x85, 0x02})
	require.NoError(t, err)
	rep := got.(VersionCommandClassReport)
	assert.Equal(t, VersionCommandClassReport{Class: ClassAssociation, Version: 2}, rep)
	assert.True(t, rep.Supported())
	assert.False(t, VersionCommandClassReport{Class: 0x62}.Supported())
}
