package plan

import (
	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/diagnostic"
	"enumevent-generator/internal/generics"
	"enumevent-generator/internal/policy"
)

// EnumPlan is the resolved form of one enum: everything the generator
// needs to write its package.
type EnumPlan struct {
	// Enum is the declared enum name.
	Enum string `json:"enum" yaml:"enum"`
	// Namespace is the generated package name.
	Namespace string `json:"namespace" yaml:"namespace"`
	// Mode is the transformation applied to every variant.
	Mode decl.Mode `json:"mode" yaml:"mode"`
	// Doc is the enum doc comment.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
	// TypeParams is the rendered type parameter list ("" if not generic).
	TypeParams string `json:"type_params,omitempty" yaml:"type_params,omitempty"`
	// TypeArgs instantiates a generated type with its own parameters.
	TypeArgs string `json:"type_args,omitempty" yaml:"type_args,omitempty"`
	// Imports are the extra imports declared by the enum.
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`
	// RuntimeImport is the import path of the event contract package.
	RuntimeImport string `json:"runtime_import" yaml:"runtime_import"`
	// RuntimeAlias is the package name RuntimeImport is referred to by.
	RuntimeAlias string `json:"runtime_alias" yaml:"runtime_alias"`
	// EntityType is the type of entity targets.
	EntityType string `json:"entity_type,omitempty" yaml:"entity_type,omitempty"`
	// Types holds one entry per variant, in declaration order.
	Types []GeneratedType `json:"types" yaml:"types"`
}

// IsGeneric reports whether the generated types take type parameters.
func (p *EnumPlan) IsGeneric() bool {
	return p.TypeParams != ""
}

// IsEntity reports whether the plan is in entity mode.
func (p *EnumPlan) IsEntity() bool {
	return p.Mode == decl.ModeEntity
}

// GeneratedType describes one synthesized variant type.
type GeneratedType struct {
	// Name is the Go type name (the variant name).
	Name string `json:"name" yaml:"name"`
	// QualifiedName is "namespace.Name".
	QualifiedName string `json:"qualified_name" yaml:"qualified_name"`
	// EventName is the value returned by EventName(): "Enum.Variant".
	EventName string `json:"event_name" yaml:"event_name"`
	// Kind is the shape of the source variant.
	Kind decl.Kind `json:"kind" yaml:"kind"`
	// Doc is the variant doc comment.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
	// Fields are the real fields in declaration order.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	// Usage is the variant's type-parameter usage.
	Usage generics.Usage `json:"usage" yaml:"usage"`
	// Phantom is the type of the phantom field, or "".
	Phantom string `json:"phantom,omitempty" yaml:"phantom,omitempty"`
	// Policy is the resolved directive set.
	Policy policy.EffectivePolicy `json:"policy" yaml:"policy"`
}

// Constructor returns the name of the type's constructor.
func (t *GeneratedType) Constructor() string {
	return "New" + t.Name
}

// UnwrapField returns the unwrap field, or nil.
func (t *GeneratedType) UnwrapField() *Field {
	return t.field(t.Policy.Unwrap)
}

// TargetField returns the target field, or nil.
func (t *GeneratedType) TargetField() *Field {
	return t.field(t.Policy.Target)
}

func (t *GeneratedType) field(ref *policy.FieldRef) *Field {
	if ref == nil || ref.Index < 0 || ref.Index >= len(t.Fields) {
		return nil
	}

	return &t.Fields[ref.Index]
}

// Field is a field of a generated type.
type Field struct {
	// Declared is the name in the declaration ("" for positional fields).
	Declared string `json:"declared,omitempty" yaml:"declared,omitempty"`
	// GoName is the exported Go field name.
	GoName string `json:"go_name" yaml:"go_name"`
	// Type is the canonical Go type expression.
	Type string `json:"type" yaml:"type"`
	// Tag is the struct tag without backquotes.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
	// Doc is the field doc comment.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
	// Param is the constructor parameter name.
	Param string `json:"param" yaml:"param"`
}

// Result bundles the plans of a declaration file with its diagnostics.
type Result struct {
	Plans       []*EnumPlan            `json:"plans" yaml:"plans"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics" yaml:"diagnostics"`
}
