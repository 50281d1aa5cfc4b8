package commandclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zwave-protocol/zwave-go/pkg/model"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

func TestCatalogBuilds(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, len(commandTable), reg.Len())

	for _, d := range Catalog() {
		assert.NoError(t, d.Validate(), d.String())
		assert.NotEmpty(t, d.ClassName, d.String())
	}
}

func TestEveryClassHasCommands(t *testing.T) {
	reg := DefaultRegistry()
	for _, c := range classTable {
		assert.NotEmpty(t, reg.Class(c.ID), "class %s (%s) has no registered commands", c.Name, c.ID)
		assert.LessOrEqual(t, uint8(1), c.Version, c.Name)
	}
	assert.Len(t, reg.Classes(), len(classTable))
}

func TestBindingsMatchCommandTable(t *testing.T) {
	entries := make(map[model.Identity]commandEntry, len(commandTable))
	for _, c := range commandTable {
		id := model.Identity{ClassID: c.Class, CommandID: c.Command}
		_, dup := entries[id]
		require.False(t, dup, "command %s declared twice", id)
		entries[id] = c
	}

	seen := make(map[model.Identity]bool, len(bindings))
	for _, b := range bindings {
		require.False(t, seen[b.id], "binding %s declared twice", b.id)
		seen[b.id] = true

		c, ok := entries[b.id]
		require.True(t, ok, "binding %s has no catalog entry", b.id)
		if b.decode != nil {
			assert.True(t, c.Direction.decodes(), "%s %s decodes but is not received", ClassName(c.Class), c.Name)
		}
		if b.encode != nil {
			assert.True(t, c.Direction.encodes(), "%s %s encodes but is not sent", ClassName(c.Class), c.Name)
		}
	}

	for id, c := range entries {
		assert.True(t, seen[id], "%s %s has no binding", ClassName(c.Class), c.Name)
	}
}

func TestSentCommandsEncode(t *testing.T) {
	for _, d := range Catalog() {
		entry := commandEntryFor(t, d.Identity())
		if entry.Direction.encodes() {
			assert.True(t, d.CanEncode(), "%s is sent but has no encoder", d.String())
		}
		if entry.Direction == dirOut {
			assert.False(t, d.CanDecode(), "%s is only sent but has a decoder", d.String())
		}
	}
}

func commandEntryFor(t *testing.T, id model.Identity) commandEntry {
	t.Helper()
	for _, c := range commandTable {
		if c.Class == id.ClassID && c.Command == id.CommandID {
			return c
		}
	}
	t.Fatalf("no entry for %s", id)
	return commandEntry{}
}

func TestAssociationGetHasNoDecoder(t *testing.T) {
	d := lookup(t, ClassAssociation, AssociationCmdGet)
	assert.False(t, d.CanDecode())
	assert.True(t, d.CanEncode())
	assert.Equal(t, "Get", d.Name)
	assert.Equal(t, "Association", d.ClassName)
}

func TestNewRegistryWithExtensions(t *testing.T) {
	doorLock := []model.Descriptor{{
		ClassID:   0x62,
		CommandID: 0x03,
		Name:      "Operation Report",
		ClassName: "Door Lock",
		Version:   1,
	}}
	reg, err := NewRegistry(doorLock)
	require.NoError(t, err)
	assert.Equal(t, len(commandTable)+1, reg.Len())

	d, ok := reg.Lookup(0x62, 0x03)
	require.True(t, ok)
	assert.Equal(t, "Operation Report", d.Name)
}

func TestNewRegistryRejectsDuplicateExtension(t *testing.T) {
	clash := []model.Descriptor{{
		ClassID:   ClassAssociation,
		CommandID: AssociationCmdReport,
		Name:      "Report",
		Version:   1,
	}}
	_, err := NewRegistry(clash)
	assert.ErrorIs(t, err, model.ErrDuplicateCommand)

	assert.Panics(t, func() { MustRegistry(clash) })
}

func TestDefaultRegistryShared(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Association", ClassName(ClassAssociation))
	assert.Equal(t, "Multi Channel Association", ClassName(ClassMultiChannelAssociation))
	assert.Equal(t, "", ClassName(0xFF))

	assert.Equal(t, "Report", CommandName(ClassAssociation, AssociationCmdReport))
	assert.Equal(t, "Interval Capabilities Report", CommandName(ClassWakeUp, WakeUpCmdIntervalCapabilitiesReport))
	assert.Equal(t, "", CommandName(ClassAssociation, 0x7F))

	assert.Equal(t, uint8(5), SupportedVersion(ClassMeter))
	assert.Equal(t, uint8(0), SupportedVersion(0xFF))

	assert.Equal(t, []wire.ClassID{
		ClassBasic, ClassSwitchBinary, ClassMeter, ClassBattery,
		ClassWakeUp, ClassAssociation, ClassVersion, ClassMultiChannelAssociation,
	}, Classes())
}
