package layout

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/zwave-protocol/zwave-go/pkg/model"
	"github.com/zwave-protocol/zwave-go/pkg/specparse"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// Layout errors.
var (
	ErrInvalidLayout = errors.New("invalid field layout")
	ErrMissingField  = errors.New("missing field")
)

type kind uint8

const (
	kindUint kind = iota + 1
	kindInt
	kindEnum
	kindBitmask
	kindList
	kindBytes
)

type field struct {
	name   string
	kind   kind
	size   int // integer width; fixed length for bytes, 0 meaning the rest
	elem   *field
	values map[uint8]string
	byName map[string]uint8
	bits   []string
}

type command struct {
	fields []*field
}

func scalarType(typ string) (kind, int, bool) {
	switch typ {
	case "uint8":
		return kindUint, 1, true
	case "uint16":
		return kindUint, 2, true
	case "uint24":
		return kindUint, 3, true
	case "uint32":
		return kindUint, 4, true
	case "int8":
		return kindInt, 1, true
	case "int16":
		return kindInt, 2, true
	case "int32":
		return kindInt, 4, true
	default:
		return 0, 0, false
	}
}

func compileField(raw specparse.RawField, last bool) (*field, error) {
	if raw.Name == "" {
		return nil, fmt.Errorf("%w: field without name", ErrInvalidLayout)
	}
	f := &field{name: raw.Name}
	if k, size, ok := scalarType(raw.Type); ok {
		f.kind, f.size = k, size
		return f, nil
	}

	switch raw.Type {
	case "enum":
		if len(raw.Values) == 0 {
			return nil, fmt.Errorf("%w: enum %s has no values", ErrInvalidLayout, raw.Name)
		}
		f.kind, f.size = kindEnum, 1
		f.values = raw.Values
		f.byName = make(map[string]uint8, len(raw.Values))
		for v, name := range raw.Values {
			if _, dup := f.byName[name]; dup {
				return nil, fmt.Errorf("%w: enum %s repeats name %q", ErrInvalidLayout, raw.Name, name)
			}
			f.byName[name] = v
		}
	case "bitmask":
		if len(raw.Bits) > 8 {
			return nil, fmt.Errorf("%w: bitmask %s has %d bits", ErrInvalidLayout, raw.Name, len(raw.Bits))
		}
		f.kind, f.size = kindBitmask, 1
		f.bits = raw.Bits
	case "list":
		k, size, ok := scalarType(raw.Elem)
		if !ok {
			return nil, fmt.Errorf("%w: list %s has element type %q", ErrInvalidLayout, raw.Name, raw.Elem)
		}
		if !last {
			return nil, fmt.Errorf("%w: list %s must be the last field", ErrInvalidLayout, raw.Name)
		}
		f.kind = kindList
		f.elem = &field{name: raw.Name, kind: k, size: size}
	case "bytes":
		if raw.Size < 0 {
			return nil, fmt.Errorf("%w: bytes %s has size %d", ErrInvalidLayout, raw.Name, raw.Size)
		}
		if raw.Size == 0 && !last {
			return nil, fmt.Errorf("%w: variable bytes %s must be the last field", ErrInvalidLayout, raw.Name)
		}
		f.kind, f.size = kindBytes, raw.Size
	default:
		return nil, fmt.Errorf("%w: field %s has type %q", ErrInvalidLayout, raw.Name, raw.Type)
	}
	return f, nil
}

func compileCommand(raw specparse.RawCommand) (*command, error) {
	c := &command{}
	seen := make(map[string]bool, len(raw.Fields))
	for i, rf := range raw.Fields {
		if seen[rf.Name] {
			return nil, fmt.Errorf("%w: duplicate field %s", ErrInvalidLayout, rf.Name)
		}
		seen[rf.Name] = true
		f, err := compileField(rf, i == len(raw.Fields)-1)
		if err != nil {
			return nil, err
		}
		c.fields = append(c.fields, f)
	}
	return c, nil
}

// FromCatalog builds descriptors for every command in cat.
func FromCatalog(cat *specparse.RawCatalog) ([]model.Descriptor, error) {
	var out []model.Descriptor
	for _, cc := range cat.CommandClasses {
		for _, raw := range cc.Commands {
			c, err := compileCommand(raw)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", cc.Name, raw.Name, err)
			}
			d := model.Descriptor{
				ClassID:   wire.ClassID(cc.ID),
				CommandID: wire.CommandID(raw.ID),
				Name:      raw.Name,
				ClassName: cc.Name,
				Version:   raw.Since,
			}
			switch {
			case len(c.fields) == 0:
				if raw.Encodes() {
					d.Encode = model.EmptyEncoder()
				}
			default:
				if raw.Decodes() {
					d.Decode = c.decode
				}
				if raw.Encodes() {
					d.Encode = c.encode
				}
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// Parse builds descriptors from catalog YAML bytes.
func Parse(data []byte) ([]model.Descriptor, error) {
	cat, err := specparse.ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	return FromCatalog(cat)
}

// Load builds descriptors from a catalog file.
func Load(path string) ([]model.Descriptor, error) {
	cat, err := specparse.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	descs, err := FromCatalog(cat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descs, nil
}

// LoadAll loads every catalog in paths, in order.
func LoadAll(paths []string) ([]model.Descriptor, error) {
	var out []model.Descriptor
	for _, p := range paths {
		descs, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, descs...)
	}
	return out, nil
}

func (c *command) decode(payload []byte) (any, error) {
	r := wire.NewReader(payload)
	rec := make(Record, 0, len(c.fields))
	for _, f := range c.fields {
		v, err := f.read(r)
		if err != nil {
			return nil, err
		}
		rec = append(rec, Field{Name: f.name, Value: v})
	}
	return rec, nil
}

func (f *field) read(r *wire.Reader) (any, error) {
	switch f.kind {
	case kindUint:
		return readUint(r, f.size, f.name)
	case kindInt:
		v, err := r.Int(f.size, f.name)
		return int64(v), err
	case kindEnum:
		v, err := r.Uint8(f.name)
		if err != nil {
			return nil, err
		}
		name, ok := f.values[v]
		if !ok {
			return nil, fmt.Errorf("%w: %s value 0x%02X", wire.ErrInvalidValue, f.name, v)
		}
		return Enum{Raw: v, Name: name}, nil
	case kindBitmask:
		v, err := r.Uint8(f.name)
		if err != nil {
			return nil, err
		}
		bm := Bitmask{Raw: v, Set: []string{}}
		for i, name := range f.bits {
			if name != "" && v&(1<<i) != 0 {
				bm.Set = append(bm.Set, name)
			}
		}
		return bm, nil
	case kindList:
		recs, err := r.Records(f.elem.size, f.name)
		if err != nil {
			return nil, err
		}
		out := make([]int64, 0, len(recs))
		for _, rec := range recs {
			v, err := f.elem.read(wire.NewReader(rec))
			if err != nil {
				return nil, err
			}
			out = append(out, v.(int64))
		}
		return out, nil
	case kindBytes:
		if f.size == 0 {
			return r.Rest(), nil
		}
		return r.Bytes(f.size, f.name)
	default:
		return nil, fmt.Errorf("%w: field %s", ErrInvalidLayout, f.name)
	}
}

func readUint(r *wire.Reader, size int, name string) (int64, error) {
	var v uint32
	var err error
	switch size {
	case 1:
		var b uint8
		b, err = r.Uint8(name)
		v = uint32(b)
	case 2:
		var w uint16
		w, err = r.Uint16(name)
		v = uint32(w)
	case 3:
		v, err = r.Uint24(name)
	default:
		v, err = r.Uint32(name)
	}
	return int64(v), err
}

func (c *command) encode(value any) ([]byte, error) {
	get, err := fieldGetter(value)
	if err != nil {
		return nil, err
	}
	w := wire.NewWriter(8)
	for _, f := range c.fields {
		v, ok := get(f.name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
		if err := f.write(w, v); err != nil {
			return nil, err
		}
	}
	return w.Payload(), nil
}

func fieldGetter(value any) (func(string) (any, bool), error) {
	switch v := value.(type) {
	case Record:
		return v.Get, nil
	case *Record:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *layout.Record", model.ErrTypeMismatch)
		}
		return v.Get, nil
	case map[string]any:
		return func(name string) (any, bool) {
			fv, ok := v[name]
			return fv, ok
		}, nil
	default:
		return nil, fmt.Errorf("%w: got %T, want layout.Record or map[string]any", model.ErrTypeMismatch, value)
	}
}

func (f *field) write(w *wire.Writer, v any) error {
	switch f.kind {
	case kindUint, kindInt:
		n, ok := toInt64(v)
		if !ok {
			return fmt.Errorf("%w: %s is %T, want integer", wire.ErrInvalidValue, f.name, v)
		}
		if !f.fits(n) {
			return fmt.Errorf("%w: %s value %d out of range", wire.ErrInvalidValue, f.name, n)
		}
		writeInt(w, n, f.size)
	case kindEnum:
		raw, err := f.enumValue(v)
		if err != nil {
			return err
		}
		w.Uint8(raw)
	case kindBitmask:
		raw, err := f.bitmaskValue(v)
		if err != nil {
			return err
		}
		w.Uint8(raw)
	case kindList:
		rv := reflect.ValueOf(v)
		if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return fmt.Errorf("%w: %s is %T, want list", wire.ErrInvalidValue, f.name, v)
		}
		for i := 0; i < rv.Len(); i++ {
			if err := f.elem.write(w, rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("%s[%d]: %w", f.name, i, err)
			}
		}
	case kindBytes:
		b, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("%w: %s is %T, want []byte", wire.ErrInvalidValue, f.name, v)
		}
		if f.size > 0 && len(b) != f.size {
			return fmt.Errorf("%w: %s has %d bytes, want %d", wire.ErrInvalidValue, f.name, len(b), f.size)
		}
		w.Bytes(b)
	}
	return nil
}

func (f *field) fits(n int64) bool {
	bits := uint(8 * f.size)
	if f.kind == kindUint {
		return n >= 0 && n < 1<<bits
	}
	return n >= -(1<<(bits-1)) && n < 1<<(bits-1)
}

func writeInt(w *wire.Writer, n int64, size int) {
	switch size {
	case 1:
		w.Uint8(uint8(n))
	case 2:
		w.Uint16(uint16(n))
	case 3:
		w.Uint24(uint32(n))
	default:
		w.Uint32(uint32(n))
	}
}

func (f *field) enumValue(v any) (uint8, error) {
	switch ev := v.(type) {
	case Enum:
		v = ev.Raw
	case string:
		raw, ok := f.byName[ev]
		if !ok {
			return 0, fmt.Errorf("%w: %s has no value %q", wire.ErrInvalidValue, f.name, ev)
		}
		return raw, nil
	}
	n, ok := toInt64(v)
	if !ok || n < 0 || n > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %s is %v", wire.ErrInvalidValue, f.name, v)
	}
	if _, ok := f.values[uint8(n)]; !ok {
		return 0, fmt.Errorf("%w: %s value 0x%02X not declared", wire.ErrInvalidValue, f.name, n)
	}
	return uint8(n), nil
}

func (f *field) bitmaskValue(v any) (uint8, error) {
	switch bv := v.(type) {
	case Bitmask:
		return bv.Raw, nil
	case []string:
		var raw uint8
		for _, name := range bv {
			i := indexOf(f.bits, name)
			if i < 0 {
				return 0, fmt.Errorf("%w: %s has no bit %q", wire.ErrInvalidValue, f.name, name)
			}
			raw |= 1 << i
		}
		return raw, nil
	}
	n, ok := toInt64(v)
	if !ok || n < 0 || n > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %s is %v", wire.ErrInvalidValue, f.name, v)
	}
	return uint8(n), nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name && n != "" {
			return i
		}
	}
	return -1
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), n <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
