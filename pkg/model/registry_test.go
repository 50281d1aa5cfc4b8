package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

func testDescriptor(class wire.ClassID, cmd wire.CommandID, name string) Descriptor {
	return Descriptor{
		ClassID:   class,
		CommandID: cmd,
		Name:      name,
		ClassName: "Test",
		Version:   1,
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistryBuilder().
		Register(testDescriptor(0x85, 0x02, "Get")).
		Register(testDescriptor(0x85, 0x03, "Report")).
		Register(testDescriptor(0x20, 0x01, "Set")).
		MustBuild()

	d, ok := reg.Lookup(0x85, 0x03)
	require.True(t, ok)
	assert.Equal(t, "Report", d.Name)
	assert.Equal(t, Identity{ClassID: 0x85, CommandID: 0x03}, d.Identity())

	assert.Equal(t, 3, reg.Len())
	assert.True(t, reg.HasClass(0x85))
	assert.False(t, reg.HasClass(0x86))
}

func TestRegistryLookupUnknownIsTotal(t *testing.T) {
	reg := NewRegistryBuilder().Register(testDescriptor(0x85, 0x02, "Get")).MustBuild()

	for class := 0; class <= 0xFF; class++ {
		for cmd := 0; cmd <= 0xFF; cmd++ {
			if class == 0x85 && cmd == 0x02 {
				continue
			}
			d, ok := reg.Lookup(wire.ClassID(class), wire.CommandID(cmd))
			if ok || d != nil {
				t.Fatalf("Lookup(0x%02X, 0x%02X) = %v, %v; want nil, false", class, cmd, d, ok)
			}
		}
	}
}

func TestRegistryDuplicateRejected(t *testing.T) {
	b := NewRegistryBuilder().
		Register(testDescriptor(0x85, 0x02, "Get")).
		Register(testDescriptor(0x85, 0x02, "Get Again"))

	reg, err := b.Build()
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.Contains(t, err.Error(), "Get Again")
}

func TestRegistryDuplicateRejectedDeterministically(t *testing.T) {
	for i := 0; i < 20; i++ {
		_, err := NewRegistryBuilder().
			RegisterAll([]Descriptor{
				testDescriptor(0x20, 0x01, "Set"),
				testDescriptor(0x20, 0x02, "Get"),
				testDescriptor(0x20, 0x01, "Set"),
			}).
			Build()
		require.ErrorIs(t, err, ErrDuplicateCommand)
	}
}

func TestRegistryMustBuildPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistryBuilder().
			Register(testDescriptor(0x85, 0x02, "Get")).
			Register(testDescriptor(0x85, 0x02, "Get")).
			MustBuild()
	})
}

func TestRegistryRejectsInvalidDescriptor(t *testing.T) {
	_, err := NewRegistryBuilder().Register(Descriptor{ClassID: 0x20, CommandID: 0x01, Version: 1}).Build()
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	_, err = NewRegistryBuilder().Register(Descriptor{ClassID: 0x20, CommandID: 0x01, Name: "Set"}).Build()
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestRegistryBuilderSingleUse(t *testing.T) {
	b := NewRegistryBuilder().Register(testDescriptor(0x20, 0x01, "Set"))
	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrRegistryBuilt)

	b.Register(testDescriptor(0x20, 0x02, "Get"))
	assert.Len(t, b.errs, 1)
}

func TestRegistryDescriptorsOrdered(t *testing.T) {
	reg := NewRegistryBuilder().
		Register(testDescriptor(0x85, 0x03, "Report")).
		Register(testDescriptor(0x20, 0x03, "Report")).
		Register(testDescriptor(0x85, 0x01, "Set")).
		Register(testDescriptor(0x20, 0x01, "Set")).
		MustBuild()

	assert.Equal(t, []wire.ClassID{0x20, 0x85}, reg.Classes())

	var ids []Identity
	for _, d := range reg.Descriptors() {
		ids = append(ids, d.Identity())
	}
	assert.Equal(t, []Identity{
		{0x20, 0x01}, {0x20, 0x03}, {0x85, 0x01}, {0x85, 0x03},
	}, ids)

	cmds := reg.Class(0x85)
	require.Len(t, cmds, 2)
	assert.Equal(t, wire.CommandID(0x01), cmds[0].CommandID)
}

func TestRegistryConcurrentLookup(t *testing.T) {
	reg := NewRegistryBuilder().
		Register(testDescriptor(0x85, 0x02, "Get")).
		Register(testDescriptor(0x85, 0x03, "Report")).
		MustBuild()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_, ok := reg.Lookup(0x85, wire.CommandID(2+(i+j)%2))
				if !ok {
					t.Error("lookup failed")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
