package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/zwave-protocol/zwave-go/pkg/commandclass"
	"github.com/zwave-protocol/zwave-go/pkg/log"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// RunView writes matching events in human-readable form.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
//
//	2026-03-01T12:00:00.123456Z [session:5f1c0e7e] IN  COMMAND 0x85/0x03 Association Report
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	class := wire.ClassID(event.ClassID)
	cmd := wire.CommandID(event.CommandID)

	fmt.Fprintf(w, "%s [session:%s] %-3s %s %s/%s %s\n",
		ts, shortenSessionID(event.SessionID), event.Direction, event.Category, class, cmd, commandLabel(event))

	if event.Frame != nil {
		formatFrameDetails(w, event.Frame)
	}
	switch {
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// commandLabel names the command, falling back to the built-in catalog
// for error events that carry no name.
func commandLabel(event log.Event) string {
	if event.Command != nil && event.Command.Name != "" {
		return event.Command.Name
	}
	class := wire.ClassID(event.ClassID)
	name := commandclass.ClassName(class)
	if cmdName := commandclass.CommandName(class, wire.CommandID(event.CommandID)); cmdName != "" {
		return name + " " + cmdName
	}
	return name
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	if cmd.Version > 0 {
		fmt.Fprintf(w, "  Since: v%d\n", cmd.Version)
	}
	if cmd.Value != nil {
		data, err := json.Marshal(jsonValue(cmd.Value))
		if err != nil {
			fmt.Fprintf(w, "  Value: %v\n", cmd.Value)
			return
		}
		fmt.Fprintf(w, "  Value: %s\n", data)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Kind: %s\n", e.Kind)
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.PayloadLen > 0 {
		fmt.Fprintf(w, "  Payload: %d bytes\n", e.PayloadLen)
	}
}

// jsonValue rewrites byte strings decoded from CBOR as number arrays so
// node lists read naturally.
func jsonValue(v any) any {
	switch v := v.(type) {
	case []byte:
		out := make([]int, len(v))
		for i, b := range v {
			out[i] = int(b)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = jsonValue(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = jsonValue(e)
		}
		return out
	default:
		return v
	}
}
