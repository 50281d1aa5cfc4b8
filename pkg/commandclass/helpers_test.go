package commandclass

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zwave-protocol/zwave-go/pkg/model"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

func lookup(t *testing.T, class wire.ClassID, cmd wire.CommandID) *model.Descriptor {
	t.Helper()
	d, ok := DefaultRegistry().Lookup(class, cmd)
	require.True(t, ok, "%s/%s not registered", class, cmd)
	return d
}

func decodePayload(t *testing.T, class wire.ClassID, cmd wire.CommandID, payload []byte) (any, error) {
	t.Helper()
	d := lookup(t, class, cmd)
	require.True(t, d.CanDecode(), "%s has no decoder", d)
	return d.Decode(payload)
}

func encodeValue(t *testing.T, class wire.ClassID, cmd wire.CommandID, value any) ([]byte, error) {
	t.Helper()
	d := lookup(t, class, cmd)
	require.True(t, d.CanEncode(), "%s has no encoder", d)
	return d.Encode(value)
}

func ptr[T any](v T) *T {
	return &v
}
