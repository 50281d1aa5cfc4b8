package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/zwave-protocol/zwave-go/pkg/commandclass"
	"github.com/zwave-protocol/zwave-go/pkg/log"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Stats holds aggregate statistics about a capture file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	EventsByCommand   map[uint16]int
	ErrorsByKind      map[string]int
	Sessions          map[string]*SessionStats
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single dispatcher session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Errors    int
}

// Collect reads every matching event from path into Stats.
func Collect(path string, filter log.Filter) (*Stats, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		EventsByCommand:   make(map[uint16]int),
		ErrorsByKind:      make(map[string]int),
		Sessions:          make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.EventsByDirection[event.Direction]++
		stats.EventsByCommand[wire.Key(wire.ClassID(event.ClassID), wire.CommandID(event.CommandID))]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}

		if event.Error != nil {
			stats.ErrorsByKind[event.Error.Kind]++
			sess.Errors++
		}
	}
	return stats, nil
}

// RunStats analyzes the capture file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	stats, err := Collect(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Z-Wave Capture Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryCommand, log.CategoryNoReply, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.EventsByCommand) > 0 {
		keys := make([]uint16, 0, len(stats.EventsByCommand))
		for k := range stats.EventsByCommand {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		fmt.Fprintln(w, "Events by Command:")
		for _, k := range keys {
			class, cmd := wire.ClassID(k>>8), wire.CommandID(k)
			name := commandclass.CommandName(class, cmd)
			if cn := commandclass.ClassName(class); cn != "" && name != "" {
				name = cn + " " + name
			}
			fmt.Fprintf(w, "  %s/%s %-32s %d\n", class, cmd, name, stats.EventsByCommand[k])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d errors, duration %s\n",
				shortenSessionID(s.id), s.stats.Events, s.stats.Errors, duration)
		}
	}

	if len(stats.ErrorsByKind) > 0 {
		kinds := make([]string, 0, len(stats.ErrorsByKind))
		for k := range stats.ErrorsByKind {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors:")
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-20s %d\n", k+":", stats.ErrorsByKind[k])
		}
	}
}
