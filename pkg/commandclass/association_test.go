package commandclass

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

func TestDecodeAssociationReport(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    AssociationReport
	}{
		{
			name:    "two nodes",
			payload: []byte{0x01, 0x04, 0x00, 0x05, 0x07},
			want:    AssociationReport{GroupID: 1, MaxAssociations: 4, NodeIDs: []uint8{5, 7}},
		},
		{
			name:    "one node",
			payload: []byte{0x01, 0x04, 0x00, 0x05},
			want:    AssociationReport{GroupID: 1, MaxAssociations: 4, NodeIDs: []uint8{5}},
		},
		{
			name:    "empty group",
			payload: []byte{0x02, 0x05, 0x00},
			want:    AssociationReport{GroupID: 2, MaxAssociations: 5, NodeIDs: NodeList{}},
		},
		{
			name:    "reports to follow",
			payload: []byte{0x01, 0x0A, 0x01, 0x02, 0x03, 0x04},
			want:    AssociationReport{GroupID: 1, MaxAssociations: 10, ReportsToFollow: 1, NodeIDs: []uint8{2, 3, 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePayload(t, ClassAssociation, AssociationCmdReport, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAssociationReportMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"empty", nil, wire.ErrShortPayload},
		{"group only", []byte{0x01}, wire.ErrShortPayload},
		{"missing reports to follow", []byte{0x01, 0x04}, wire.ErrShortPayload},
		{"group zero", []byte{0x00, 0x04, 0x00, 0x05}, wire.ErrInvalidValue},
		{"node zero", []byte{0x01, 0x04, 0x00, 0x05, 0x00}, wire.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePayload(t, ClassAssociation, AssociationCmdReport, tt.payload)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeAssociationReportDoesNotAliasPayload(t *testing.T) {
	payload := []byte{0x01, 0x04, 0x00, 0x05, 0x07}
	got, err := decodePayload(t, ClassAssociation, AssociationCmdReport, payload)
	require.NoError(t, err)

	payload[3] = 0x09
	assert.Equal(t, NodeList{5, 7}, got.(AssociationReport).NodeIDs)
}

func TestEncodeAssociationCommands(t *testing.T) {
	tests := []struct {
		name  string
		cmd   wire.CommandID
		value any
		want  []byte
	}{
		{"get", AssociationCmdGet, AssociationGet{GroupID: 1}, []byte{0x01}},
		{"get pointer", AssociationCmdGet, &AssociationGet{GroupID: 3}, []byte{0x03}},
		{"set", AssociationCmdSet, AssociationSet{GroupID: 1, NodeIDs: []uint8{1, 5}}, []byte{0x01, 0x01, 0x05}},
		{"remove all groups", AssociationCmdRemove, AssociationRemove{NodeIDs: []uint8{5}}, []byte{0x00, 0x05}},
		{"remove group", AssociationCmdRemove, AssociationRemove{GroupID: 2}, []byte{0x02}},
		{"groupings get", AssociationCmdGroupingsGet, nil, []byte{}},
		{"specific group get", AssociationCmdSpecificGroupGet, nil, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeValue(t, ClassAssociation, tt.cmd, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeAssociationInvalid(t *testing.T) {
	_, err := encodeValue(t, ClassAssociation, AssociationCmdGet, AssociationGet{})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = encodeValue(t, ClassAssociation, AssociationCmdSet, AssociationSet{GroupID: 1, NodeIDs: []uint8{0}})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = encodeValue(t, ClassAssociation, AssociationCmdReport, AssociationReport{})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestDecodeGroupings(t *testing.T) {
	got, err := decodePayload(t, ClassAssociation, AssociationCmdGroupingsReport, []byte{0x05})
	require.NoError(t, err)
	assert.Equal(t, GroupingsReport{SupportedGroupings: 5}, got)

	got, err = decodePayload(t, ClassAssociation, AssociationCmdSpecificGroupReport, []byte{0x02})
	require.NoError(t, err)
	assert.Equal(t, SpecificGroupReport{GroupID: 2}, got)

	_, err = decodePayload(t, ClassAssociation, AssociationCmdGroupingsReport, nil)
	assert.ErrorIs(t, err, wire.ErrShortPayload)
}

func TestDecodeMultiChannelAssociationReport(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    MultiChannelAssociationReport
	}{
		{
			name:    "nodes only",
			payload: []byte{0x01, 0x04, 0x00, 0x05, 0x07},
			want:    MultiChannelAssociationReport{GroupID: 1, MaxAssociations: 4, NodeIDs: []uint8{5, 7}},
		},
		{
			name:    "nodes and end points",
			payload: []byte{0x01, 0x04, 0x00, 0x05, 0x00, 0x07, 0x01, 0x08, 0x82},
			want: MultiChannelAssociationReport{
				GroupID: 1, MaxAssociations: 4,
				NodeIDs:   []uint8{5},
				EndPoints: []EndPointDestination{{NodeID: 7, EndPoint: 1}, {NodeID: 8, EndPoint: EndPointBitAddress | 0x02}},
			},
		},
		{
			name:    "end points only",
			payload: []byte{0x02, 0x04, 0x00, 0x00, 0x07, 0x02},
			want: MultiChannelAssociationReport{
				GroupID: 2, MaxAssociations: 4,
				NodeIDs:   NodeList{},
				EndPoints: []EndPointDestination{{NodeID: 7, EndPoint: 2}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePayload(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdReport, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeMultiChannelAssociationReportPartialRecord(t *testing.T) {
	// One byte after the marker cannot form a node/end point record.
	payload := []byte{0x01, 0x04, 0x00, 0x05, 0x00, 0x07}
	_, err := decodePayload(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdReport, payload)
	assert.ErrorIs(t, err, wire.ErrShortPayload)

	payload = []byte{0x01, 0x04, 0x00, 0x00, 0x00, 0x01}
	_, err = decodePayload(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdReport, payload)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestEncodeMultiChannelAssociationSet(t *testing.T) {
	got, err := encodeValue(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdSet, MultiChannelAssociationSet{
		GroupID:   1,
		NodeIDs:   []uint8{1},
		EndPoints: []EndPointDestination{{NodeID: 5, EndPoint: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0x00, 0x05, 0x02}, got)

	got, err = encodeValue(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdGet, MultiChannelAssociationGet{GroupID: 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02}, got)

	_, err = encodeValue(t, ClassMultiChannelAssociation, MultiChannelAssociationCmdRemove, MultiChannelAssociationRemove{
		EndPoints: []EndPointDestination{{NodeID: 0, EndPoint: 1}},
	})
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestNodeListMarshalJSON(t *testing.T) {
	data, err := json.Marshal(AssociationReport{GroupID: 1, MaxAssociations: 4, NodeIDs: NodeList{5, 7}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"GroupID":1,"MaxAssociations":4,"ReportsToFollow":0,"NodeIDs":[5,7]}`, string(data))

	data, err = json.Marshal(AssociationReport{GroupID: 1})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"NodeIDs":null`)
}
