package layout

import (
	"bytes"
	"encoding/json"
)

// Field is one decoded field.
type Field struct {
	Name  string
	Value any
}

// Record is a decoded payload with fields in wire order.
type Record []Field

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Map returns the record as a map keyed by field name.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, f := range r {
		m[f.Name] = f.Value
	}
	return m
}

// MarshalJSON encodes the record as a JSON object, keeping field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Enum is a decoded enum field.
type Enum struct {
	Raw  uint8  `json:"raw"`
	Name string `json:"name"`
}

// Bitmask is a decoded bitmask field. Set lists the names of the set bits,
// least significant first; unnamed bits appear only in Raw.
type Bitmask struct {
	Raw uint8    `json:"raw"`
	Set []string `json:"set"`
}
