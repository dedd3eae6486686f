package decl

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"enumevent-generator/naming"
)

// File represents the root of a YAML declaration file.
type File struct {
	// Version of the declaration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Options are generation defaults shared by every enum in the file.
	Options Options `yaml:"options,omitempty"`

	// Enums is the list of tagged-union declarations.
	Enums []Enum `yaml:"enums"`
}

// Options holds the generation settings a declaration file may carry.
// Empty values fall back to the CLI configuration.
type Options struct {
	// PackagePath is the import path that corresponds to OutputDir.
	PackagePath string `yaml:"package_path,omitempty"`
	// RuntimeImport is the import path of the event contract package.
	RuntimeImport string `yaml:"runtime_import,omitempty"`
	// EntityType is the Go type of entity targets (e.g. "event.Entity").
	EntityType string `yaml:"entity_type,omitempty"`
	// OutputDir is the directory generated packages are written under.
	OutputDir string `yaml:"output_dir,omitempty"`
}

//go:generate go tool stringer -type=Mode -linecomment -output=mode_string.go

// Mode selects which transformation an enum goes through.
type Mode int

const (
	ModeEvent  Mode = iota // event
	ModeEntity             // entity
)

// Enum is a tagged-union declaration.
type Enum struct {
	// Name of the enum; the generated package is naming.ModuleIdent(Name).
	Name string `yaml:"name"`
	// Mode is "event" (default) or "entity".
	Mode Mode `yaml:"mode,omitempty"`
	// Doc is copied onto the generated package clause.
	Doc string `yaml:"doc,omitempty"`
	// Imports are extra import paths field types refer to.
	Imports []string `yaml:"imports,omitempty"`
	// TypeParams are the enum's ordered type parameters.
	TypeParams []TypeParam `yaml:"type_params,omitempty"`
	// Where lists extra constraints on declared type parameters.
	Where []Predicate `yaml:"where,omitempty"`
	// Directives are the enum-level defaults.
	Directives Directives `yaml:"directives,omitempty"`
	// Variants in declaration order.
	Variants []Variant `yaml:"variants"`
}

// TypeParam is one generic parameter of an enum.
type TypeParam struct {
	Name string `yaml:"name"`
	// Constraint defaults to "any".
	Constraint string `yaml:"constraint,omitempty"`
}

// Predicate is a where-clause entry: Param must also satisfy Constraint.
type Predicate struct {
	Param      string `yaml:"param"`
	Constraint string `yaml:"constraint"`
}

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the shape of a variant.
type Kind int

const (
	KindUnit Kind = iota
	KindPositional
	KindNamed
)

// Variant is one alternative of an enum.
type Variant struct {
	Name       string
	Doc        string
	Directives Directives
	Kind       Kind
	Fields     []Field
}

// Field is a variant field. Positional fields have no Name.
type Field struct {
	// Name is the declared name (empty for positional fields).
	Name string
	// Type is a Go type expression.
	Type string
	// Markers are the field-scope directives (unwrap, target).
	Markers Directives
	// Tag is a struct tag copied verbatim (without backquotes).
	Tag string
	// Doc is copied above the generated field.
	Doc string
	// GoName is the exported Go field name, filled by normalization.
	GoName string
}

// Namespace returns the package name generated for the enum.
func (e *Enum) Namespace() string {
	return naming.ModuleIdent(e.Name)
}

// IsGeneric reports whether the enum declares type parameters.
func (e *Enum) IsGeneric() bool {
	return len(e.TypeParams) > 0
}

// ParamNames returns the declared type parameter names in order.
func (e *Enum) ParamNames() []string {
	names := make([]string, len(e.TypeParams))
	for i, p := range e.TypeParams {
		names[i] = p.Name
	}

	return names
}

// HasRole reports whether the field carries the given marker.
func (f *Field) HasRole(kind DirectiveKind) bool {
	return f.Markers.Has(kind)
}

// Location returns "Variant" or "Variant.field" for diagnostics.
func (v *Variant) Location(field int) string {
	if field < 0 || field >= len(v.Fields) {
		return v.Name
	}

	f := &v.Fields[field]
	if f.Name != "" {
		return v.Name + "." + f.Name
	}

	return v.Name + "." + f.GoName
}

// PositionalName returns the Go field name of the i-th positional field.
func PositionalName(i int) string {
	return "Field" + strconv.Itoa(i)
}

// ExportName upper-cases the first rune of a declared field name.
func ExportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}

// trimDoc normalizes a doc comment: trailing blank lines are dropped.
func trimDoc(doc string) string {
	return strings.TrimRight(doc, " \t\n")
}

// MarshalText renders the mode by name in JSON exports.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// MarshalText renders the kind by name in plan exports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
