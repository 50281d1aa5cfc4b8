package commandclass

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zwave-protocol/zwave-go/pkg/duration"
	"github.com/zwave-protocol/zwave-go/pkg/model"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// roundTripValues holds representative values for every command that both
// decodes and encodes.
var roundTripValues = map[model.Identity][]any{
	{ClassID: ClassBasic, CommandID: BasicCmdSet}: {
		BasicSet{Value: 0}, BasicSet{Value: 0x63}, BasicSet{Value: LevelOn},
	},
	{ClassID: ClassBasic, CommandID: BasicCmdReport}: {
		BasicReport{CurrentValue: 0x32},
		BasicReport{CurrentValue: 0, TargetValue: ptr(uint8(0x63)), Duration: ptr(duration.Of(10 * time.Second))},
		BasicReport{CurrentValue: LevelUnknown, TargetValue: ptr(LevelUnknown), Duration: ptr(duration.Unknown)},
		BasicReport{CurrentValue: 1, TargetValue: ptr(uint8(2)), Duration: ptr(duration.Of(5 * time.Minute))},
	},
	{ClassID: ClassSwitchBinary, CommandID: SwitchBinaryCmdSet}: {
		SwitchBinarySet{Value: LevelOn},
		SwitchBinarySet{Value: LevelOff, Duration: ptr(duration.Of(30 * time.Second))},
		SwitchBinarySet{Value: LevelOn, Duration: ptr(duration.FactoryDefault)},
	},
	{ClassID: ClassSwitchBinary, CommandID: SwitchBinaryCmdReport}: {
		SwitchBinaryReport{CurrentValue: LevelOn},
		SwitchBinaryReport{CurrentValue: LevelOff, TargetValue: ptr(LevelOn), Duration: ptr(duration.Instant)},
	},
	{ClassID: ClassMeter, CommandID: MeterCmdReport}: {
		MeterReport{Type: MeterElectric, Precision: 2, Size: 4, Value: 12345},
		MeterReport{Type: MeterGas, RateType: RateImport, Scale: 1, Precision: 3, Size: 2, Value: -300, DeltaTime: 900, PreviousValue: ptr(int32(-310))},
		MeterReport{Type: MeterElectric, RateType: RateExport, Scale: 6, Size: 1, Value: 99},
	},
	{ClassID: ClassMeter, CommandID: MeterCmdSupportedReport}: {
		MeterSupportedReport{ResetSupported: true, Type: MeterWater, RateType: 3, ScaleMask: 0x0F},
		MeterSupportedReport{Type: MeterElectric, ScaleMask: 0x01},
	},
	{ClassID: ClassBattery, CommandID: BatteryCmdReport}: {
		BatteryReport{Level: 0}, BatteryReport{Level: 100}, BatteryReport{Level: BatteryLowWarning},
	},
	{ClassID: ClassWakeUp, CommandID: WakeUpCmdIntervalSet}: {
		WakeUpInterval{Seconds: 0, NodeID: 1}, WakeUpInterval{Seconds: MaxWakeUpInterval, NodeID: 232},
	},
	{ClassID: ClassWakeUp, CommandID: WakeUpCmdIntervalReport}: {
		WakeUpInterval{Seconds: 3600, NodeID: 1},
	},
	{ClassID: ClassWakeUp, CommandID: WakeUpCmdIntervalCapabilitiesReport}: {
		WakeUpCapabilities{Min: 60, Max: 86400, Default: 3600, Step: 60},
	},
	{ClassID: ClassAssociation, CommandID: AssociationCmdReport}: {
		AssociationReport{GroupID: 1, MaxAssociations: 4, NodeIDs: []uint8{5, 7}},
		AssociationReport{GroupID: 2, MaxAssociations: 1, NodeIDs: NodeList{}},
		AssociationReport{GroupID: 255, MaxAssociations: 232, ReportsToFollow: 3, NodeIDs: []uint8{1}},
	},
	{ClassID: ClassAssociation, CommandID: AssociationCmdGroupingsReport}: {
		GroupingsReport{SupportedGroupings: 3},
	},
	{ClassID: ClassAssociation, CommandID: AssociationCmdSpecificGroupReport}: {
		SpecificGroupReport{GroupID: 0}, SpecificGroupReport{GroupID: 4},
	},
	{ClassID: ClassVersion, CommandID: VersionCmdReport}: {
		VersionReport{LibraryType: 3, Protocol: FirmwareVersion{7, 15}, Firmware: FirmwareVersion{1, 2}},
		VersionReport{
			LibraryType: 1, Protocol: FirmwareVersion{6, 4}, Firmware: FirmwareVersion{2, 0},
			HardwareVersion: ptr(uint8(1)),
		},
		VersionReport{
			LibraryType: 1, Protocol: FirmwareVersion{6, 4}, Firmware: FirmwareVersion{2, 0},
			HardwareVersion: ptr(uint8(1)),
			FirmwareTargets: []FirmwareVersion{{1, 0}, {3, 7}},
		},
	},
	{ClassID: ClassVersion, CommandID: VersionCmdCommandClassReport}: {
		VersionCommandClassReport{Class: ClassMeter, Version: 5},
		VersionCommandClassReport{Class: 0x62},
	},
	{ClassID: ClassMultiChannelAssociation, CommandID: MultiChannelAssociationCmdReport}: {
		MultiChannelAssociationReport{GroupID: 1, MaxAssociations: 4, NodeIDs: []uint8{5, 7}},
		MultiChannelAssociationReport{
			GroupID: 1, MaxAssociations: 4,
			NodeIDs:   []uint8{5},
			EndPoints: []EndPointDestination{{NodeID: 7, EndPoint: 1}},
		},
		MultiChannelAssociationReport{GroupID: 3, MaxAssociations: 2, NodeIDs: NodeList{}},
		MultiChannelAssociationReport{GroupID: 3, MaxAssociations: 2, NodeIDs: NodeList{}, EndPoints: []EndPointDestination{}},
	},
	{ClassID: ClassMultiChannelAssociation, CommandID: MultiChannelAssociationCmdGroupingsReport}: {
		GroupingsReport{SupportedGroupings: 1},
	},
}

func TestRoundTrip(t *testing.T) {
	for _, d := range DefaultRegistry().Descriptors() {
		if !d.CanDecode() || !d.CanEncode() {
			continue
		}
		values, ok := roundTripValues[d.Identity()]
		if !assert.True(t, ok, "no round-trip values for %s", d) {
			continue
		}
		t.Run(d.String(), func(t *testing.T) {
			for _, v := range values {
				payload, err := d.Encode(v)
				require.NoError(t, err, "%+v", v)

				got, err := d.Decode(payload)
				require.NoError(t, err, "payload % X", payload)
				assert.Equal(t, v, got)
			}
		})
	}
}

func TestLossyDurationRejected(t *testing.T) {
	for _, d := range []time.Duration{150 * time.Second, 1500 * time.Millisecond} {
		_, err := encodeValue(t, ClassBasic, BasicCmdReport, BasicReport{
			CurrentValue: 1, TargetValue: ptr(uint8(2)), Duration: ptr(duration.Of(d)),
		})
		assert.ErrorIs(t, err, duration.ErrInvalidDuration, "%s", d)

		_, err = encodeValue(t, ClassSwitchBinary, SwitchBinaryCmdSet, SwitchBinarySet{
			Value: LevelOn, Duration: ptr(duration.Of(d)),
		})
		assert.ErrorIs(t, err, duration.ErrInvalidDuration, "%s", d)

		want := BasicReport{CurrentValue: 1, TargetValue: ptr(uint8(2)), Duration: ptr(duration.Round(duration.Of(d)))}
		payload, err := encodeValue(t, ClassBasic, BasicCmdReport, want)
		require.NoError(t, err)
		got, err := decodePayload(t, ClassBasic, BasicCmdReport, payload)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEmptyListsRoundTrip(t *testing.T) {
	payload, err := encodeValue(t, ClassAssociation, AssociationCmdReport, AssociationReport{GroupID: 1, NodeIDs: NodeList{}})
	require.NoError(t, err)
	got, err := decodePayload(t, ClassAssociation, AssociationCmdReport, payload)
	require.NoError(t, err)
	assert.NotNil(t, got.(AssociationReport).NodeIDs)
	assert.Empty(t, got.(AssociationReport).NodeIDs)

	// A nil node list encodes like an empty one and decodes as empty.
	payload, err = encodeValue(t, ClassAssociation, AssociationCmdReport, AssociationReport{GroupID: 1})
	require.NoError(t, err)
	got, err = decodePayload(t, ClassAssociation, AssociationCmdReport, payload)
	require.NoError(t, err)
	assert.Equal(t, NodeList{}, got.(AssociationReport).NodeIDs)

	payload, err = encodeValue(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdReport, MultiChannelAssociationReport{
		GroupID: 1, NodeIDs: NodeList{}, EndPoints: []EndPointDestination{},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, multiChannelMarker}, payload)
	got, err = decodePayload(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdReport, payload)
	require.NoError(t, err)
	assert.Equal(t, []EndPointDestination{}, got.(MultiChannelAssociationReport).EndPoints)
}

// TestRandomPayloadsNeverPanic feeds every decoder random payloads of every
// length up to 32 bytes. Decoders must return a value or an error.
func TestRandomPayloadsNeverPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, d := range DefaultRegistry().Descriptors() {
		if !d.CanDecode() {
			continue
		}
		for n := 0; n <= 32; n++ {
			for i := 0; i < 50; i++ {
				payload := make([]byte, n)
				rng.Read(payload)
				assert.NotPanics(t, func() {
					v, err := d.Decode(payload)
					if err == nil {
						assert.NotNil(t, v, "%s decoded % X to nil", d, payload)
					}
				})
			}
		}
	}
}

func TestFullSizePayloads(t *testing.T) {
	nodes := make([]uint8, wire.MaxPayloadSize-3)
	for i := range nodes {
		nodes[i] = uint8(i%232 + 1)
	}
	d := lookup(t, ClassAssociation, AssociationCmdReport)
	payload, err := d.Encode(AssociationReport{GroupID: 1, MaxAssociations: 255, NodeIDs: nodes})
	require.NoError(t, err)
	assert.Len(t, payload, wire.MaxPayloadSize)

	got, err := d.Decode(payload)
	require.NoError(t, err)
	assert.Len(t, got.(AssociationReport).NodeIDs, len(nodes))
}
