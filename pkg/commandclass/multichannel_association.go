package commandclass

import (
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// multiChannelMarker separates plain node IDs from end point records.
const multiChannelMarker = 0x00

// EndPointBitAddress marks an EndPoint value as a bit mask of end points
// 1 to 7 instead of a single end point number.
const EndPointBitAddress uint8 = 0x80

// EndPointDestination is a node end point in a multi channel group.
type EndPointDestination struct {
	NodeID   uint8
	EndPoint uint8
}

// MultiChannelAssociationGet requests the members of a group.
type MultiChannelAssociationGet = AssociationGet

// MultiChannelAssociationSet adds plain nodes and end points to a group.
type MultiChannelAssociationSet struct {
	GroupID   uint8
	NodeIDs   NodeList
	EndPoints []EndPointDestination
}

// MultiChannelAssociationRemove removes plain nodes and end points from a
// group. A zero GroupID removes them from all groups.
type MultiChannelAssociationRemove struct {
	GroupID   uint8
	NodeIDs   NodeList
	EndPoints []EndPointDestination
}

// MultiChannelAssociationReport lists the members of a group. Plain node IDs
// run up to a marker byte; after it the payload is a sequence of two-byte
// end point records. EndPoints is nil when the marker is absent and empty
// when the marker carries no records.
type MultiChannelAssociationReport struct {
	GroupID         uint8
	MaxAssociations uint8
	ReportsToFollow uint8
	NodeIDs         NodeList
	EndPoints       []EndPointDestination
}

func decodeMultiChannelAssociationReport(r *wire.Reader) (MultiChannelAssociationReport, error) {
	var rep MultiChannelAssociationReport
	var err error
	if rep.GroupID, err = r.Uint8("group id"); err != nil {
		return MultiChannelAssociationReport{}, err
	}
	if rep.MaxAssociations, err = r.Uint8("max associations"); err != nil {
		return MultiChannelAssociationReport{}, err
	}
	if rep.ReportsToFollow, err = r.Uint8("reports to follow"); err != nil {
		return MultiChannelAssociationReport{}, err
	}
	if rep.GroupID == 0 {
		return MultiChannelAssociationReport{}, fmt.Errorf("%w: group id 0", wire.ErrInvalidValue)
	}

	rep.NodeIDs, rep.EndPoints, err = readDestinations(r)
	if err != nil {
		return MultiChannelAssociationReport{}, err
	}
	return rep, nil
}

func readDestinations(r *wire.Reader) ([]uint8, []EndPointDestination, error) {
	nodes := []uint8{}
	for r.Remaining() > 0 {
		id, err := r.Uint8("node id")
		if err != nil {
			return nil, nil, err
		}
		if id == multiChannelMarker {
			records, err := r.Records(2, "end point destinations")
			if err != nil {
				return nil, nil, err
			}
			eps := make([]EndPointDestination, 0, len(records))
			for _, rec := range records {
				if rec[0] == 0 {
					return nil, nil, fmt.Errorf("%w: end point destination node id 0", wire.ErrInvalidValue)
				}
				eps = append(eps, EndPointDestination{NodeID: rec[0], EndPoint: rec[1]})
			}
			return nodes, eps, nil
		}
		nodes = append(nodes, id)
	}
	return nodes, nil, nil
}

func writeDestinations(w *wire.Writer, nodes []uint8, eps []EndPointDestination) error {
	if err := checkNodeIDs(nodes); err != nil {
		return err
	}
	w.Bytes(nodes)
	if eps == nil {
		return nil
	}
	w.Uint8(multiChannelMarker)
	for _, ep := range eps {
		if ep.NodeID == 0 {
			return fmt.Errorf("%w: end point destination node id 0", wire.ErrInvalidValue)
		}
		w.Uint8(ep.NodeID).Uint8(ep.EndPoint)
	}
	return nil
}

func encodeMultiChannelAssociationSet(w *wire.Writer, v MultiChannelAssociationSet) error {
	if v.GroupID == 0 {
		return fmt.Errorf("%w: group id 0", wire.ErrInvalidValue)
	}
	w.Uint8(v.GroupID)
	return writeDestinations(w, v.NodeIDs, v.EndPoints)
}

func encodeMultiChannelAssociationRemove(w *wire.Writer, v MultiChannelAssociationRemove) error {
	w.Uint8(v.GroupID)
	return writeDestinations(w, v.NodeIDs, v.EndPoints)
}

func encodeMultiChannelAssociationReport(w *wire.Writer, v MultiChannelAssociationReport) error {
	if v.GroupID == 0 {
		return fmt.Errorf("%w: group id 0", wire.ErrInvalidValue)
	}
	w.Uint8(v.GroupID).Uint8(v.MaxAssociations).Uint8(v.ReportsToFollow)
	return writeDestinations(w, v.NodeIDs, v.EndPoints)
}
