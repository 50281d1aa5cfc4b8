// Package dispatch decodes received command frames and encodes outgoing
// commands through a command registry.
//
// # Decode
//
//	frame ──► Registry.Lookup(class, command)
//	            │
//	            ├─ not found ─────────► *Error{KindUnknownCommand}
//	            ├─ no decoder ────────► DecodedCommand{ResultNoReply}
//	            ├─ decoder fails ─────► *Error{KindMalformedPayload}
//	            └─ decoder succeeds ──► DecodedCommand{ResultValue, Value}
//
// UnknownCommand and MalformedPayload are recoverable: the caller logs the
// frame and drops it. Use errors.Is with ErrUnknownCommand and
// ErrMalformedPayload, or AsError to reach the identity and payload length.
//
// # Encode
//
// Encode looks up the descriptor and runs its encoder. Unregistered
// commands, commands without an encoder and values of the wrong type all
// yield *Error{KindNotEncodable}, which indicates a bug at the call site.
//
// # Concurrency
//
// A Dispatcher is immutable after New and may be shared by any number of
// goroutines. Decoders are pure; there is no cancellation inside a call.
package dispatch
