package policy

import (
	"fmt"

	"enumevent-generator/internal/common"
	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/diagnostic"
)

// DefaultEntityType is the entity type used when none is configured.
const DefaultEntityType = "event.Entity"

// ImplicitTargetName is the field name picked as target when no field is
// marked explicitly.
const ImplicitTargetName = "entity"

// CodeTargetTypeMismatch warns about an explicit target whose type is
// spelled differently from the entity type. Aliases compile; anything
// else fails in the generated EventTarget method.
const CodeTargetTypeMismatch = "target_type_mismatch"

// Options configure resolution.
type Options struct {
	// EntityType is the Go type expression of entity targets.
	EntityType string
}

// DefaultOptions returns the default resolution options.
func DefaultOptions() Options {
	return Options{EntityType: DefaultEntityType}
}

//go:generate go tool stringer -type=Origin -linecomment -output=origin_string.go

// Origin records why a field or directive was selected.
type Origin int

const (
	OriginNone     Origin = iota // none
	OriginExplicit               // explicit
	OriginImplicit               // implicit
	OriginEnum                   // enum
	OriginVariant                // variant
)

// MarshalText renders the origin by name in plan exports.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// FieldRef points at a field of a variant.
type FieldRef struct {
	// Index is the position of the field in the variant.
	Index int `json:"index" yaml:"index"`
	// GoName is the generated Go field name.
	GoName string `json:"go_name" yaml:"go_name"`
	// Type is the field's Go type expression.
	Type string `json:"type" yaml:"type"`
	// Origin is OriginExplicit for marked fields, OriginImplicit otherwise.
	Origin Origin `json:"origin" yaml:"origin"`
}

// Propagation is the resolved propagate/auto_propagate pair.
type Propagation struct {
	// Relationship is the custom relationship type; empty means the
	// built-in child-of hierarchy.
	Relationship string `json:"relationship,omitempty" yaml:"relationship,omitempty"`
	// Auto reports whether the event propagates without an explicit request.
	Auto bool `json:"auto" yaml:"auto"`
	// Origin is the scope the pair was taken from.
	Origin Origin `json:"origin" yaml:"origin"`
}

// IsDefault reports whether the built-in relationship is used.
func (p *Propagation) IsDefault() bool {
	return p.Relationship == ""
}

// EffectivePolicy is the resolved directive set of one variant.
type EffectivePolicy struct {
	Unwrap      *FieldRef    `json:"unwrap,omitempty" yaml:"unwrap,omitempty"`
	Target      *FieldRef    `json:"target,omitempty" yaml:"target,omitempty"`
	Propagation *Propagation `json:"propagation,omitempty" yaml:"propagation,omitempty"`
}

// HasPropagation reports whether the variant propagates at all.
func (p *EffectivePolicy) HasPropagation() bool {
	return p.Propagation != nil
}

// AutoPropagate reports the effective auto-propagate flag.
func (p *EffectivePolicy) AutoPropagate() bool {
	return p.Propagation != nil && p.Propagation.Auto
}

// Resolve computes the effective policy of variant v of enum e.
// The declaration is expected to be validated; Resolve only reports what
// validation can't decide: a missing entity target (error) and a target
// whose type differs from the entity type (warning).
func Resolve(e *decl.Enum, v *decl.Variant, opts Options) (EffectivePolicy, []diagnostic.Diagnostic) {
	if opts.EntityType == "" {
		opts.EntityType = DefaultEntityType
	}

	var (
		pol   EffectivePolicy
		diags []diagnostic.Diagnostic
	)

	pol.Unwrap = resolveUnwrap(v)

	if e.Mode == decl.ModeEntity {
		pol.Target = resolveTarget(v, opts.EntityType)

		switch {
		case pol.Target != nil && !decl.SameType(pol.Target.Type, opts.EntityType):
			diags = append(diags, diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     CodeTargetTypeMismatch,
				Message: fmt.Sprintf("target field %s has type %s, EventTarget returns %s",
					pol.Target.GoName, pol.Target.Type, opts.EntityType),
				Enum:     e.Name,
				Location: v.Location(pol.Target.Index),
			})
		case pol.Target == nil:
			diags = append(diags, diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeMissingTarget,
				Message: fmt.Sprintf("variant %s has no target: mark a field target or add a field %q of type %s",
					v.Name, ImplicitTargetName, opts.EntityType),
				Enum:     e.Name,
				Location: v.Name,
			})
		}

		pol.Propagation = resolvePropagation(e.Directives, v.Directives)
	}

	return pol, diags
}

func resolveUnwrap(v *decl.Variant) *FieldRef {
	for i := range v.Fields {
		if v.Fields[i].HasRole(decl.DirectiveUnwrap) {
			return fieldRef(v, i, OriginExplicit)
		}
	}

	if common.IsSingle(v.Fields) {
		return fieldRef(v, 0, OriginImplicit)
	}

	return nil
}

func resolveTarget(v *decl.Variant, entityType string) *FieldRef {
	for i := range v.Fields {
		if v.Fields[i].HasRole(decl.DirectiveTarget) {
			return fieldRef(v, i, OriginExplicit)
		}
	}

	for i := range v.Fields {
		f := &v.Fields[i]
		if f.Name == ImplicitTargetName && decl.SameType(f.Type, entityType) {
			return fieldRef(v, i, OriginImplicit)
		}
	}

	return nil
}

func resolvePropagation(enumDirs, variantDirs decl.Directives) *Propagation {
	if d, ok := variantDirs.Get(decl.DirectivePropagate); ok {
		return &Propagation{
			Relationship: d.Relationship,
			Auto:         variantDirs.Has(decl.DirectiveAutoPropagate),
			Origin:       OriginVariant,
		}
	}

	d, ok := enumDirs.Get(decl.DirectivePropagate)
	if !ok {
		return nil
	}

	if variantDirs.Has(decl.DirectiveAutoPropagate) {
		return &Propagation{Relationship: d.Relationship, Auto: true, Origin: OriginVariant}
	}

	return &Propagation{
		Relationship: d.Relationship,
		Auto:         enumDirs.Has(decl.DirectiveAutoPropagate),
		Origin:       OriginEnum,
	}
}

func fieldRef(v *decl.Variant, i int, origin Origin) *FieldRef {
	f := &v.Fields[i]

	return &FieldRef{Index: i, GoName: f.GoName, Type: f.Type, Origin: origin}
}
