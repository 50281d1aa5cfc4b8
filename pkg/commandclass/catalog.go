package commandclass

import (
	"sync"

	"github.com/zwave-protocol/zwave-go/pkg/model"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

type direction uint8

const (
	dirIn direction = iota + 1
	dirOut
	dirBoth
)

func (d direction) decodes() bool { return d == dirIn || d == dirBoth }
func (d direction) encodes() bool { return d == dirOut || d == dirBoth }

type classEntry struct {
	ID      wire.ClassID
	Name    string
	Version uint8
}

type commandEntry struct {
	Class     wire.ClassID
	Command   wire.CommandID
	Name      string
	Since     uint8
	Direction direction
}

// binding attaches codecs to a generated command entry. A command without a
// binding, or with a nil decode, is reported as NoReply when received.
type binding struct {
	id     model.Identity
	decode model.DecodeFunc
	encode model.EncodeFunc
}

func bind(class wire.ClassID, cmd wire.CommandID, decode model.DecodeFunc, encode model.EncodeFunc) binding {
	return binding{id: model.Identity{ClassID: class, CommandID: cmd}, decode: decode, encode: encode}
}

var bindings = []binding{
	bind(ClassBasic, BasicCmdSet, model.Decoder(decodeBasicSet), model.Encoder(encodeBasicSet)),
	bind(ClassBasic, BasicCmdGet, nil, model.EmptyEncoder()),
	bind(ClassBasic, BasicCmdReport, model.Decoder(decodeBasicReport), model.Encoder(encodeBasicReport)),

	bind(ClassSwitchBinary, SwitchBinaryCmdSet, model.Decoder(decodeSwitchBinarySet), model.Encoder(encodeSwitchBinarySet)),
	bind(ClassSwitchBinary, SwitchBinaryCmdGet, nil, model.EmptyEncoder()),
	bind(ClassSwitchBinary, SwitchBinaryCmdReport, model.Decoder(decodeSwitchBinaryReport), model.Encoder(encodeSwitchBinaryReport)),

	bind(ClassMeter, MeterCmdGet, nil, model.Encoder(encodeMeterGet)),
	bind(ClassMeter, MeterCmdReport, model.Decoder(decodeMeterReport), model.Encoder(encodeMeterReport)),
	bind(ClassMeter, MeterCmdSupportedGet, nil, model.EmptyEncoder()),
	bind(ClassMeter, MeterCmdSupportedReport, model.Decoder(decodeMeterSupportedReport), model.Encoder(encodeMeterSupportedReport)),
	bind(ClassMeter, MeterCmdReset, nil, model.EmptyEncoder()),

	bind(ClassBattery, BatteryCmdGet, nil, model.EmptyEncoder()),
	bind(ClassBattery, BatteryCmdReport, model.Decoder(decodeBatteryReport), model.Encoder(encodeBatteryReport)),

	bind(ClassWakeUp, WakeUpCmdIntervalSet, model.Decoder(decodeWakeUpInterval), model.Encoder(encodeWakeUpInterval)),
	bind(ClassWakeUp, WakeUpCmdIntervalGet, nil, model.EmptyEncoder()),
	bind(ClassWakeUp, WakeUpCmdIntervalReport, model.Decoder(decodeWakeUpInterval), model.Encoder(encodeWakeUpInterval)),
	bind(ClassWakeUp, WakeUpCmdNotification, nil, nil),
	bind(ClassWakeUp, WakeUpCmdNoMoreInformation, nil, model.EmptyEncoder()),
	bind(ClassWakeUp, WakeUpCmdIntervalCapabilitiesGet, nil, model.EmptyEncoder()),
	bind(ClassWakeUp, WakeUpCmdIntervalCapabilitiesReport, model.Decoder(decodeWakeUpCapabilities), model.Encoder(encodeWakeUpCapabilities)),

	bind(ClassAssociation, AssociationCmdSet, nil, model.Encoder(encodeAssociationSet)),
	bind(ClassAssociation, AssociationCmdGet, nil, model.Encoder(encodeAssociationGet)),
	bind(ClassAssociation, AssociationCmdReport, model.Decoder(decodeAssociationReport), model.Encoder(encodeAssociationReport)),
	bind(ClassAssociation, AssociationCmdRemove, nil, model.Encoder(encodeAssociationRemove)),
	bind(ClassAssociation, AssociationCmdGroupingsGet, nil, model.EmptyEncoder()),
	bind(ClassAssociation, AssociationCmdGroupingsReport, model.Decoder(decodeGroupingsReport), model.Encoder(encodeGroupingsReport)),
	bind(ClassAssociation, AssociationCmdSpecificGroupGet, nil, model.EmptyEncoder()),
	bind(ClassAssociation, AssociationCmdSpecificGroupReport, model.Decoder(decodeSpecificGroupReport), model.Encoder(encodeSpecificGroupReport)),

	bind(ClassVersion, VersionCmdGet, nil, model.EmptyEncoder()),
	bind(ClassVersion, VersionCmdReport, model.Decoder(decodeVersionReport), model.Encoder(encodeVersionReport)),
	bind(ClassVersion, VersionCmdCommandClassGet, nil, model.Encoder(encodeVersionCommandClassGet)),
	bind(ClassVersion, VersionCmdCommandClassReport, model.Decoder(decodeVersionCommandClassReport), model.Encoder(encodeVersionCommandClassReport)),

	bind(ClassMultiChannelAssociation, MultiChannelAssociationCmdSet, nil, model.Encoder(encodeMultiChannelAssociationSet)),
	bind(ClassMultiChannelAssociation, MultiChannelAssociationCmdGet, nil, model.Encoder(encodeAssociationGet)),
	bind(ClassMultiChannelAssociation, MultiChannelAssociationCmdReport, model.Decoder(decodeMultiChannelAssociationReport), model.Encoder(encodeMultiChannelAssociationReport)),
	bind(ClassMultiChannelAssociation, MultiChannelAssociationCmdRemove, nil, model.Encoder(encodeMultiChannelAssociationRemove)),
	bind(ClassMultiChannelAssociation, MultiChannelAssociationCmdGroupingsGet, nil, model.EmptyEncoder()),
	bind(ClassMultiChannelAssociation, MultiChannelAssociationCmdGroupingsReport, model.Decoder(decodeGroupingsReport), model.Encoder(encodeGroupingsReport)),
}

// Catalog returns the descriptors of every built-in command.
func Catalog() []model.Descriptor {
	bound := make(map[model.Identity]binding, len(bindings))
	for _, b := range bindings {
		bound[b.id] = b
	}

	out := make([]model.Descriptor, 0, len(commandTable))
	for _, c := range commandTable {
		d := model.Descriptor{
			ClassID:   c.Class,
			CommandID: c.Command,
			Name:      c.Name,
			ClassName: ClassName(c.Class),
			Version:   c.Since,
		}
		if b, ok := bound[d.Identity()]; ok {
			d.Decode = b.decode
			d.Encode = b.encode
		}
		out = append(out, d)
	}
	return out
}

// NewRegistry builds a registry from the built-in catalog plus any extension
// descriptor sets.
func NewRegistry(extensions ...[]model.Descriptor) (*model.Registry, error) {
	b := model.NewRegistryBuilder().RegisterAll(Catalog())
	for _, descs := range extensions {
		b.RegisterAll(descs)
	}
	return b.Build()
}

// MustRegistry is like NewRegistry but panics on error. Use it at startup,
// where a conflicting catalog must abort the process.
func MustRegistry(extensions ...[]model.Descriptor) *model.Registry {
	b := model.NewRegistryBuilder().RegisterAll(Catalog())
	for _, descs := range extensions {
		b.RegisterAll(descs)
	}
	return b.MustBuild()
}

var defaultRegistry = sync.OnceValue(func() *model.Registry {
	return MustRegistry()
})

// DefaultRegistry returns a shared registry of the built-in catalog.
func DefaultRegistry() *model.Registry {
	return defaultRegistry()
}

// ClassName returns the name of a built-in command class, or "" if unknown.
func ClassName(class wire.ClassID) string {
	for _, c := range classTable {
		if c.ID == class {
			return c.Name
		}
	}
	return ""
}

// SupportedVersion returns the highest version of a built-in command class
// this package implements, or 0 if the class is unknown.
func SupportedVersion(class wire.ClassID) uint8 {
	for _, c := range classTable {
		if c.ID == class {
			return c.Version
		}
	}
	return 0
}

// CommandName returns the name of a built-in command, or "" if unknown.
func CommandName(class wire.ClassID, cmd wire.CommandID) string {
	for _, c := range commandTable {
		if c.Class == class && c.Command == cmd {
			return c.Name
		}
	}
	return ""
}

// Classes returns the IDs of all built-in command classes in declaration order.
func Classes() []wire.ClassID {
	out := make([]wire.ClassID, len(classTable))
	for i, c := range classTable {
		out[i] = c.ID
	}
	return out
}
