package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zwave-protocol/zwave-go/pkg/specparse"
)

// classSlug converts "Multi Channel Association" to "multi-channel-association".
func classSlug(name string) string {
	return strings.ReplaceAll(specparse.FileName(name), "_", "-")
}

// hexByte formats a value as 0x02.
func hexByte(v uint8) string {
	return fmt.Sprintf("0x%02X", v)
}

func directionLabel(dir string) string {
	switch dir {
	case specparse.DirectionIn:
		return "Device to controller"
	case specparse.DirectionOut:
		return "Controller to device"
	default:
		return "Both"
	}
}

// formatFieldType renders a field type for documentation.
func formatFieldType(f specparse.RawField) string {
	switch f.Type {
	case "list":
		return fmt.Sprintf("[]%s", f.Elem)
	case "bytes":
		if f.Size > 0 {
			return fmt.Sprintf("bytes[%d]", f.Size)
		}
		return "bytes (rest)"
	}
	return f.Type
}

// formatFieldDetail lists enum values or bitmask bits.
func formatFieldDetail(f specparse.RawField) string {
	switch f.Type {
	case "enum":
		keys := make([]int, 0, len(f.Values))
		for k := range f.Values {
			keys = append(keys, int(k))
		}
		sort.Ints(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s `%s`", hexByte(uint8(k)), f.Values[uint8(k)]))
		}
		return strings.Join(parts, ", ")
	case "bitmask":
		parts := make([]string, 0, len(f.Bits))
		for i, bit := range f.Bits {
			if bit == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("bit %d `%s`", i, bit))
		}
		return strings.Join(parts, ", ")
	}
	return f.Description
}
