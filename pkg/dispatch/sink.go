package dispatch

import (
	"context"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// FrameSink accepts encoded outbound frames. The transport layer behind it
// adds addressing, framing and checksums.
type FrameSink interface {
	SendFrame(ctx context.Context, frame wire.Frame) error
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(ctx context.Context, frame wire.Frame) error

// SendFrame calls f.
func (f FrameSinkFunc) SendFrame(ctx context.Context, frame wire.Frame) error {
	return f(ctx, frame)
}
