package specparse

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog document is structurally invalid.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Command directions.
const (
	DirectionIn   = "in"   // received from devices only
	DirectionOut  = "out"  // sent by the controller only
	DirectionBoth = "both" // sent and received
)

// RawCatalog is a catalog document loaded from YAML.
type RawCatalog struct {
	Version        string            `yaml:"version"`
	CommandClasses []RawCommandClass `yaml:"commandClasses"`
}

// RawCommandClass represents a command class definition.
type RawCommandClass struct {
	Name        string       `yaml:"name"`
	ID          uint8        `yaml:"id"`
	Version     uint8        `yaml:"version"` // highest version described
	Description string       `yaml:"description"`
	Commands    []RawCommand `yaml:"commands"`
}

// RawCommand represents a command definition.
type RawCommand struct {
	Name        string     `yaml:"name"`
	ID          uint8      `yaml:"id"`
	Since       uint8      `yaml:"since"`     // class version that introduced the command
	Direction   string     `yaml:"direction"` // "in", "out", "both"
	Description string     `yaml:"description"`
	Fields      []RawField `yaml:"fields"`
}

// RawField describes one payload field.
type RawField struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "uint8", "uint16", "uint24", "uint32", "int8", "int16", "int32", "enum", "bitmask", "list", "bytes"
	Elem string `yaml:"elem"` // list element type
	Size int    `yaml:"size"` // bytes: fixed length, 0 consumes the rest

	// Values maps allowed raw values to names for enum fields.
	Values map[uint8]string `yaml:"values"`

	// Bits names the bits of a bitmask field, least significant first.
	Bits []string `yaml:"bits"`

	Description string `yaml:"description"`
}

// Decodes reports whether the command is received from devices.
func (c *RawCommand) Decodes() bool {
	return c.Direction == DirectionIn || c.Direction == DirectionBoth
}

// Encodes reports whether the command is sent by the controller.
func (c *RawCommand) Encodes() bool {
	return c.Direction == DirectionOut || c.Direction == DirectionBoth
}

// ParseCatalog parses and validates a catalog from YAML bytes.
func ParseCatalog(data []byte) (*RawCatalog, error) {
	var cat RawCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// LoadCatalog loads and parses a catalog from a file.
func LoadCatalog(path string) (*RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Validate checks names, versions, directions and ID uniqueness. Missing
// class versions default to 1 and missing command versions to 1.
func (c *RawCatalog) Validate() error {
	classIDs := make(map[uint8]string, len(c.CommandClasses))
	for i := range c.CommandClasses {
		cc := &c.CommandClasses[i]
		if cc.Name == "" {
			return fmt.Errorf("%w: command class 0x%02X has no name", ErrInvalidCatalog, cc.ID)
		}
		if prev, dup := classIDs[cc.ID]; dup {
			return fmt.Errorf("%w: class id 0x%02X used by %s and %s", ErrInvalidCatalog, cc.ID, prev, cc.Name)
		}
		classIDs[cc.ID] = cc.Name
		if cc.Version == 0 {
			cc.Version = 1
		}
		if len(cc.Commands) == 0 {
			return fmt.Errorf("%w: %s declares no commands", ErrInvalidCatalog, cc.Name)
		}

		cmdIDs := make(map[uint8]string, len(cc.Commands))
		for j := range cc.Commands {
			cmd := &cc.Commands[j]
			if cmd.Name == "" {
				return fmt.Errorf("%w: %s command 0x%02X has no name", ErrInvalidCatalog, cc.Name, cmd.ID)
			}
			if prev, dup := cmdIDs[cmd.ID]; dup {
				return fmt.Errorf("%w: %s command id 0x%02X used by %s and %s",
					ErrInvalidCatalog, cc.Name, cmd.ID, prev, cmd.Name)
			}
			cmdIDs[cmd.ID] = cmd.Name
			if cmd.Since == 0 {
				cmd.Since = 1
			}
			if cmd.Since > cc.Version {
				return fmt.Errorf("%w: %s %s since version %d exceeds class version %d",
					ErrInvalidCatalog, cc.Name, cmd.Name, cmd.Since, cc.Version)
			}
			switch cmd.Direction {
			case DirectionIn, DirectionOut, DirectionBoth:
			case "":
				cmd.Direction = DirectionBoth
			default:
				return fmt.Errorf("%w: %s %s has direction %q", ErrInvalidCatalog, cc.Name, cmd.Name, cmd.Direction)
			}
		}
	}
	return nil
}

// Class returns the command class with the given ID.
func (c *RawCatalog) Class(id uint8) (*RawCommandClass, bool) {
	for i := range c.CommandClasses {
		if c.CommandClasses[i].ID == id {
			return &c.CommandClasses[i], true
		}
	}
	return nil, false
}
