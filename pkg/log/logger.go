package log

// Logger receives capture events. Implementations must be safe for
// concurrent use: a dispatcher may be shared by many goroutines.
type Logger interface {
	// Log records one event. It must not block for long.
	Log(event Event)
}

// NoopLogger drops every event. The zero value is ready to use.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
