package dispatch

import (
	"github.com/zwave-protocol/zwave-go/pkg/model"
)

// ResultKind distinguishes the two successful decode outcomes.
type ResultKind uint8

const (
	// ResultNoReply means the command is recognized but carries nothing to
	// extract, because its descriptor declares no decoder.
	ResultNoReply ResultKind = iota + 1

	// ResultValue means the payload was decoded into Value.
	ResultValue
)

// String returns the result kind name.
func (k ResultKind) String() string {
	switch k {
	case ResultNoReply:
		return "NO_REPLY"
	case ResultValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// DecodedCommand is the outcome of a successful Decode.
//
// Value holds the command-specific type (for example
// commandclass.AssociationReport) and is nil for ResultNoReply. Callers
// switch on Identity or on the Value's dynamic type to interpret it.
type DecodedCommand struct {
	Kind       ResultKind
	Identity   model.Identity
	Descriptor *model.Descriptor
	Value      any
}

// Name returns the display name of the decoded command, such as
// "Association Get".
func (c DecodedCommand) Name() string {
	if c.Descriptor == nil {
		return ""
	}
	return c.Descriptor.FullName()
}

// HasValue reports whether the result carries a decoded value.
func (c DecodedCommand) HasValue() bool {
	return c.Kind == ResultValue
}
