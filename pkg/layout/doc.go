// Package layout builds command descriptors from field layouts declared in
// catalog YAML, so that command classes without a hand-written codec can be
// added at startup.
//
// Field types:
//
//	uint8 uint16 uint24 uint32   unsigned big-endian integers
//	int8 int16 int32             signed big-endian integers
//	enum                         one byte restricted to the declared values
//	bitmask                      one byte with named bits
//	list                         elements of type elem up to the end of the payload
//	bytes                        size bytes, or the rest of the payload if size is 0
//
// list and variable-length bytes fields must be last. A list whose remaining
// length is not a multiple of its element size is malformed.
//
// Decoded values are Records; encoders accept a Record or a map[string]any
// keyed by field name. A command without fields has no decoder and, if the
// controller sends it, an empty encoder.
package layout
