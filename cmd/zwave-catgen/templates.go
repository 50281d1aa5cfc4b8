package main

import (
	"fmt"
	"text/template"
)

var fileTmpl = template.Must(template.New("ids").Funcs(template.FuncMap{
	"hexByte": func(v uint8) string { return fmt.Sprintf("0x%02X", v) },
	"quote":   func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(`// Code generated by zwave-catgen. DO NOT EDIT.

package {{.Package}}

import "github.com/zwave-protocol/zwave-go/pkg/wire"

// Command class IDs.
const (
{{- range .Classes}}
	// {{.Const}}: {{.Comment}}
	{{.Const}} wire.ClassID = {{hexByte .ID}}
{{- end}}
)
{{range .Classes}}
// {{.GoName}} command IDs.
const (
{{- range .Commands}}
	{{.Const}} wire.CommandID = {{hexByte .ID}}
{{- end}}
)
{{end}}
var classTable = []classEntry{
{{- range .Classes}}
	{ID: {{.Const}}, Name: {{quote .Name}}, Version: {{.Version}}},
{{- end}}
}

var commandTable = []commandEntry{
{{- range $c := .Classes}}{{range .Commands}}
	{Class: {{$c.Const}}, Command: {{.Const}}, Name: {{quote .Name}}, Since: {{.Since}}, Direction: {{.Direction}}},
{{- end}}{{end}}
}
`))
