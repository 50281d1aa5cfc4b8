package commandclass

import (
	"encoding/json"
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// NodeList is a list of node IDs. It marshals to JSON as an array of
// numbers rather than a base64 string. Decoded lists are never nil; an empty
// list on the wire decodes as an empty NodeList.
type NodeList []uint8

// MarshalJSON implements json.Marshaler.
func (l NodeList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	ids := make([]int, len(l))
	for i, id := range l {
		ids[i] = int(id)
	}
	return json.Marshal(ids)
}

// AssociationGet requests the members of a group. It has no decoder: the
// answer is a separate AssociationReport.
type AssociationGet struct {
	GroupID uint8
}

// AssociationSet adds nodes to a group.
type AssociationSet struct {
	GroupID uint8
	NodeIDs NodeList
}

// AssociationRemove removes nodes from a group. From version 2 a zero
// GroupID removes the nodes from all groups, and an empty node list clears
// the group.
type AssociationRemove struct {
	GroupID uint8
	NodeIDs NodeList
}

// AssociationReport lists the members of a group. The node list has no
// count field; it runs to the end of the payload.
type AssociationReport struct {
	GroupID         uint8
	MaxAssociations uint8
	ReportsToFollow uint8
	NodeIDs         NodeList
}

// GroupingsReport is the number of association groups a node supports.
type GroupingsReport struct {
	SupportedGroupings uint8
}

// SpecificGroupReport is the group of the last activated button, or 0.
type SpecificGroupReport struct {
	GroupID uint8
}

func encodeAssociationGet(w *wire.Writer, v AssociationGet) error {
	if v.GroupID == 0 {
		return fmt.Errorf("%w: group id 0", wire.ErrInvalidValue)
	}
	w.Uint8(v.GroupID)
	return nil
}

func encodeAssociationSet(w *wire.Writer, v AssociationSet) error {
	if v.GroupID == 0 {
		return fmt.Errorf("%w: group id 0", wire.ErrInvalidValue)
	}
	if err := checkNodeIDs(v.NodeIDs); err != nil {
		return err
	}
	w.Uint8(v.GroupID).Bytes(v.NodeIDs)
	return nil
}

func encodeAssociationRemove(w *wire.Writer, v AssociationRemove) error {
	if err := checkNodeIDs(v.NodeIDs); err != nil {
		return err
	}
	w.Uint8(v.GroupID).Bytes(v.NodeIDs)
	return nil
}

func decodeAssociationReport(r *wire.Reader) (AssociationReport, error) {
	var rep AssociationReport
	var err error
	if rep.GroupID, err = r.Uint8("group id"); err != nil {
		return AssociationReport{}, err
	}
	if rep.MaxAssociations, err = r.Uint8("max associations"); err != nil {
		return AssociationReport{}, err
	}
	if rep.ReportsToFollow, err = r.Uint8("reports to follow"); err != nil {
		return AssociationReport{}, err
	}
	if rep.GroupID == 0 {
		return AssociationReport{}, fmt.Errorf("%w: group id 0", wire.ErrInvalidValue)
	}

	rest := r.Rest()
	if err := checkNodeIDs(rest); err != nil {
		return AssociationReport{}, err
	}
	rep.NodeIDs = rest
	return rep, nil
}

func encodeAssociationReport(w *wire.Writer, v AssociationReport) error {
	if v.GroupID == 0 {
		return fmt.Errorf("%w: group id 0", wire.ErrInvalidValue)
	}
	if err := checkNodeIDs(v.NodeIDs); err != nil {
		return err
	}
	w.Uint8(v.GroupID).Uint8(v.MaxAssociations).Uint8(v.ReportsToFollow).Bytes(v.NodeIDs)
	return nil
}

func decodeGroupingsReport(r *wire.Reader) (GroupingsReport, error) {
	n, err := r.Uint8("supported groupings")
	if err != nil {
		return GroupingsReport{}, err
	}
	return GroupingsReport{SupportedGroupings: n}, nil
}

func encodeGroupingsReport(w *wire.Writer, v GroupingsReport) error {
	w.Uint8(v.SupportedGroupings)
	return nil
}

func decodeSpecificGroupReport(r *wire.Reader) (SpecificGroupReport, error) {
	g, err := r.Uint8("group")
	if err != nil {
		return SpecificGroupReport{}, err
	}
	return SpecificGroupReport{GroupID: g}, nil
}

func encodeSpecificGroupReport(w *wire.Writer, v SpecificGroupReport) error {
	w.Uint8(v.GroupID)
	return nil
}

// checkNodeIDs rejects node ID 0, which is never a valid destination.
func checkNodeIDs(ids []uint8) error {
	for i, id := range ids {
		if id == 0 {
			return fmt.Errorf("%w: node id 0 at index %d", wire.ErrInvalidValue, i)
		}
	}
	return nil
}
