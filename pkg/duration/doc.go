// Package duration implements the one-byte transition duration encoding
// used by actuator command classes (Basic, Switch Binary, Switch Multilevel).
//
// # Encoding
//
//	0x00        instantly
//	0x01..0x7F  1 to 127 seconds
//	0x80..0xFD  1 to 126 minutes
//	0xFE        unknown duration
//	0xFF        factory default (Set commands only)
//
// Reports use 0xFE for an unknown remaining duration. 0xFF is reserved in
// reports and decodes to an error.
package duration
