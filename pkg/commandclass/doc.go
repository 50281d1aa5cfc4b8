// Package commandclass holds the built-in command catalog: class and command
// IDs generated from docs/catalog/command-classes.yaml, the typed values each
// command carries, and the codecs that translate between values and payloads.
//
// Catalog returns the descriptors in declaration order. NewRegistry builds a
// registry from them, optionally merged with extension descriptors; a
// duplicate (class, command) pair anywhere fails the build.
//
//	reg := commandclass.MustRegistry()
//	d := dispatch.New(reg)
//	cmd, err := d.Decode(frame)
//
// Commands the controller only sends, such as Association Get, have no
// decoder. Their answer arrives as a separate Report.
package commandclass

//go:generate go run ../../cmd/zwave-catgen -catalog ../../docs/catalog/command-classes.yaml -out .
