package specparse

import (
	"strings"
	"unicode"
)

// GoName converts a catalog name to an exported Go identifier:
// "Switch Binary" to "SwitchBinary", "Interval Set" to "IntervalSet",
// "groupId" to "GroupID".
func GoName(name string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}) {
		for _, part := range splitCamel(word) {
			if up := strings.ToUpper(part); initialisms[up] {
				b.WriteString(up)
				continue
			}
			runes := []rune(part)
			runes[0] = unicode.ToUpper(runes[0])
			b.WriteString(string(runes))
		}
	}
	return b.String()
}

// FileName converts "Switch Binary" to "switch_binary".
func FileName(name string) string {
	var parts []string
	for _, word := range strings.Fields(name) {
		for _, part := range splitCamel(word) {
			parts = append(parts, strings.ToLower(part))
		}
	}
	return strings.Join(parts, "_")
}

var initialisms = map[string]bool{
	"ID": true, "CC": true, "RF": true,
}

func splitCamel(s string) []string {
	var parts []string
	start := 0
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}
