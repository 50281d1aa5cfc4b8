// Package model defines command descriptors and the command registry.
//
// # Command Hierarchy
//
// Z-Wave groups commands into command classes:
//
//	Command Class (Association, 0x85)
//	├── Set               0x01
//	├── Get               0x02  (no decoder: answered by Report)
//	├── Report            0x03
//	└── Remove            0x04
//
// Every command is described by a Descriptor carrying its identity, its
// display name, the class version that introduced it, and optional decode
// and encode functions.
//
// # Registration
//
// Descriptors are collected by a RegistryBuilder from a declarative catalog
// at process start. Build rejects duplicate (class, command) pairs; MustBuild
// panics instead, aborting startup on a catalog bug. The resulting Registry
// is read-only and shared by all goroutines without locking.
//
// # Typed Codecs
//
// Decoder and Encoder adapt typed functions working on wire.Reader and
// wire.Writer to the untyped DecodeFunc and EncodeFunc stored in a
// Descriptor, so each command implementation deals only in its own types.
package model
