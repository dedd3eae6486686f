package gen

import "text/template"

var templateFuncs = template.FuncMap{
	"comment": comment,
	"tag":     structTag,
}

var enumTemplate = template.Must(template.New("enum").Funcs(templateFuncs).Parse(`// Code generated by enumevent-generator. DO NOT EDIT.

{{if .PackageDoc}}{{comment .PackageDoc}}
{{end}}package {{.PackageName}}

import (
	"{{.RuntimeImport}}"
{{range .Imports}}	"{{.}}"
{{end}})
{{range .Types}}{{$t := .}}
{{if .Doc}}{{comment .Doc}}
{{end}}{{if .IsEmpty}}type {{.Name}}{{$.TypeParams}} struct{}
{{else}}type {{.Name}}{{$.TypeParams}} struct {
{{if .Phantom}}	_ {{.Phantom}}
{{end}}{{range .Fields}}{{if .Doc}}{{comment .Doc}}
{{end}}	{{.GoName}} {{.Type}}{{if .Tag}} {{tag .Tag}}{{end}}
{{end}}}
{{end}}
{{if $.GenerateComments}}// {{.Constructor}} returns a new {{.Name}}.
{{end}}func {{.Constructor}}{{$.TypeParams}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) {{.Ref}} {
	return {{.Ref}}{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.GoName}}: {{$f.Param}}{{end -}} }
}

{{if $.GenerateComments}}// EventName returns "{{.EventName}}".
{{end}}func ({{.Ref}}) EventName() string { return "{{.EventName}}" }
{{with .Unwrap}}
{{if $.GenerateComments}}// Value returns {{.GoName}}.
{{end}}func (ev {{$t.Ref}}) Value() {{.Type}} { return ev.{{.GoName}} }

{{if $.GenerateComments}}// SetValue replaces {{.GoName}}.
{{end}}func (ev *{{$t.Ref}}) SetValue(v {{.Type}}) { ev.{{.GoName}} = v }
{{end}}{{with .Target}}
{{if $.GenerateComments}}// EventTarget returns {{.GoName}}, the entity the event targets.
{{end}}func (ev {{$t.Ref}}) EventTarget() {{$.EntityType}} { return ev.{{.GoName}} }
{{end}}{{if .Propagates}}
{{if $.GenerateComments}}// Traversal returns the relationship the event propagates along.
{{end}}func ({{.Ref}}) Traversal() {{$.RuntimeAlias}}.Relationship {
	{{.Traversal}}
}

{{if $.GenerateComments}}// AutoPropagate reports whether the event propagates without being asked to.
{{end}}func ({{.Ref}}) AutoPropagate() bool { return {{.Auto}} }
{{end}}{{end}}{{if .Assertions}}
var (
{{range .Assertions}}	_ {{.Iface}} = {{.Value}}
{{end}})
{{end}}`))
