// Package wire defines the frame layout and payload primitives of the
// Z-Wave application command layer.
//
// A command frame is the application payload handed up by the transport
// layer once framing, checksums and multi-packet reassembly have been dealt
// with:
//
//	+---------+-----------+-----------------------+
//	| ClassID | CommandID | Payload (0..n bytes)  |
//	+---------+-----------+-----------------------+
//
// Payload bytes originate from devices and must be treated as untrusted.
// Codecs never index into a payload directly; they read it through a Reader,
// which reports ErrShortPayload instead of running past the end.
//
// # Multi-byte Fields
//
// All multi-byte integers on the wire are big-endian (MSB first).
package wire
