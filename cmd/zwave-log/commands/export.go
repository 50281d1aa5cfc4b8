package commands

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/zwave-protocol/zwave-go/pkg/log"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// ExportRecord is the JSON form of one capture event.
type ExportRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	SessionID  string    `json:"session_id"`
	Direction  string    `json:"direction"`
	Category   string    `json:"category"`
	Class      string    `json:"class"`
	Command    string    `json:"command"`
	Name       string    `json:"name,omitempty"`
	Frame      string    `json:"frame,omitempty"`
	Truncated  bool      `json:"truncated,omitempty"`
	Value      any       `json:"value,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	PayloadLen int       `json:"payload_len,omitempty"`
}

// NewExportRecord flattens an event for export.
func NewExportRecord(event log.Event) ExportRecord {
	rec := ExportRecord{
		Timestamp: event.Timestamp.UTC(),
		SessionID: event.SessionID,
		Direction: event.Direction.String(),
		Category:  event.Category.String(),
		Class:     wire.ClassID(event.ClassID).String(),
		Command:   wire.CommandID(event.CommandID).String(),
		Name:      commandLabel(event),
	}
	if event.Frame != nil {
		rec.Frame = hex.EncodeToString(event.Frame.Data)
		rec.Truncated = event.Frame.Truncated
	}
	if event.Command != nil {
		rec.Value = jsonValue(event.Command.Value)
	}
	if event.Error != nil {
		rec.ErrorKind = event.Error.Kind
		rec.Error = event.Error.Message
		rec.PayloadLen = event.Error.PayloadLen
	}
	return rec
}

// RunExport exports matching events in the given format to output, or to
// stdout when output is empty.
func RunExport(path, format, output string, filter log.Filter) error {
	var export func(*log.Reader, io.Writer) error
	switch format {
	case "jsonl":
		export = exportJSONL
	case "csv":
		export = exportCSV
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return export(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(NewExportRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp", "session_id", "direction", "category", "class", "command", "name", "frame", "error_kind", "payload_len"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		rec := NewExportRecord(event)
		payloadLen := ""
		if rec.PayloadLen > 0 {
			payloadLen = strconv.Itoa(rec.PayloadLen)
		}
		row := []string{
			rec.Timestamp.Format("2006-01-02T15:04:05.000000Z"),
			rec.SessionID,
			rec.Direction,
			rec.Category,
			rec.Class,
			rec.Command,
			rec.Name,
			rec.Frame,
			rec.ErrorKind,
			payloadLen,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
