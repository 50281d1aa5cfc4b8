// Package log provides protocol capture for the command codec.
//
// Capture is separate from operational logging (slog). Every Decode and
// Encode performed by a dispatcher can be recorded as an Event holding the
// raw frame, the decode outcome and any error, giving a machine-readable
// trace of device traffic for later analysis.
//
// # Basic Usage
//
//	// Development: print events through slog
//	d := dispatch.New(reg, dispatch.WithCapture(log.NewSlogAdapter(slog.Default())))
//
//	// Production: append to a capture file
//	fl, _ := log.NewFileLogger("/var/log/zwave/hub.zlog")
//	d := dispatch.New(reg, dispatch.WithCapture(fl))
//
//	// Both
//	d := dispatch.New(reg, dispatch.WithCapture(log.NewMultiLogger(a, fl)))
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with integer keys
// (.zlog). The zwave-log tool views, summarizes and exports them.
package log
