package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Registry errors.
var (
	ErrDuplicateCommand = errors.New("duplicate command registration")
	ErrRegistryBuilt    = errors.New("registry already built")
)

// Registry maps (class, command) pairs to their descriptors.
//
// A Registry is immutable once built and safe for concurrent use without
// locking. Lookup of an unregistered pair reports false; it never fails.
type Registry struct {
	byKey   map[uint16]*Descriptor
	classes map[wire.ClassID][]*Descriptor
}

// Lookup returns the descriptor for the given pair.
func (r *Registry) Lookup(class wire.ClassID, cmd wire.CommandID) (*Descriptor, bool) {
	d, ok := r.byKey[wire.Key(class, cmd)]
	return d, ok
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.byKey)
}

// HasClass reports whether any command of the class is registered.
func (r *Registry) HasClass(class wire.ClassID) bool {
	return len(r.classes[class]) > 0
}

// Class returns the commands of a class ordered by command ID.
// The returned slice must not be modified.
func (r *Registry) Class(class wire.ClassID) []*Descriptor {
	return r.classes[class]
}

// Classes returns the registered class IDs in ascending order.
func (r *Registry) Classes() []wire.ClassID {
	ids := make([]wire.ClassID, 0, len(r.classes))
	for id := range r.classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Descriptors returns every registered descriptor ordered by class, then command.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.byKey))
	for _, id := range r.Classes() {
		out = append(out, r.classes[id]...)
	}
	return out
}

// RegistryBuilder collects descriptors during initialization.
// It is not safe for concurrent use.
type RegistryBuilder struct {
	byKey map[uint16]*Descriptor
	errs  []error
	built bool
}

// NewRegistryBuilder creates an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{byKey: make(map[uint16]*Descriptor)}
}

// Register adds a descriptor. Registering a pair twice is recorded as an
// error and reported by Build.
func (b *RegistryBuilder) Register(d Descriptor) *RegistryBuilder {
	if b.built {
		b.errs = append(b.errs, fmt.Errorf("%w: register %s", ErrRegistryBuilt, d.Identity()))
		return b
	}
	if err := d.Validate(); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	key := d.Identity().Key()
	if prev, ok := b.byKey[key]; ok {
		b.errs = append(b.errs, fmt.Errorf("%w: %s conflicts with %s", ErrDuplicateCommand, d.String(), prev.String()))
		return b
	}
	b.byKey[key] = &d
	return b
}

// RegisterAll adds every descriptor in descs.
func (b *RegistryBuilder) RegisterAll(descs []Descriptor) *RegistryBuilder {
	for _, d := range descs {
		b.Register(d)
	}
	return b
}

// Build freezes the builder into a Registry. It returns all registration
// errors joined together if any occurred. The builder cannot be reused.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if b.built {
		return nil, ErrRegistryBuilt
	}
	b.built = true
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	r := &Registry{
		byKey:   b.byKey,
		classes: make(map[wire.ClassID][]*Descriptor),
	}
	for _, d := range b.byKey {
		r.classes[d.ClassID] = append(r.classes[d.ClassID], d)
	}
	for _, cmds := range r.classes {
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].CommandID < cmds[j].CommandID })
	}
	b.byKey = nil
	return r, nil
}

// MustBuild is like Build but panics on error. Use it at process start,
// where a duplicate registration is a catalog bug and must abort startup.
func (b *RegistryBuilder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("command registry: %v", err))
	}
	return r
}
