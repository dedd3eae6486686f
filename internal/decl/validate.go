package decl

import (
	"fmt"
	"go/token"
	"strings"

	"enumevent-generator/internal/common"
	"enumevent-generator/internal/diagnostic"
)

// Diagnostic codes reported by the validator in addition to the shared ones.
const (
	CodeInvalidName             = "invalid_name"
	CodeInvalidNamespace        = "invalid_namespace"
	CodeDuplicateEnum           = "duplicate_enum"
	CodeNamespaceCollision      = "namespace_collision"
	CodeDuplicateVariant        = "duplicate_variant"
	CodeDuplicateField          = "duplicate_field"
	CodeDuplicateTypeParam      = "duplicate_type_param"
	CodeConstructorCollision    = "constructor_collision"
	CodeReservedFieldName       = "reserved_field_name"
	CodeInvalidFieldType        = "invalid_field_type"
	CodeInvalidConstraint       = "invalid_constraint"
	CodeInvalidTag              = "invalid_tag"
	CodeUnknownTypeParam        = "unknown_type_param"
	CodeUnknownDirective        = "unknown_directive"
	CodeMisplacedDirective      = "misplaced_directive"
	CodeMultipleTargetFields    = "multiple_target_fields"
	CodeTargetOutsideEntityMode = "target_outside_entity_mode"
	CodePropagateOutsideEntity  = "propagate_outside_entity_mode"
	CodeUnreachableRelationship = "unreachable_relationship"
	CodeEmptyEnum               = "empty_enum"
)

// ReservedNames are the methods every generated type carries; no field
// can use them. Methods that depend on the resolved policy of a variant
// (Value, EventTarget, Traversal, ...) are checked by the planner.
var ReservedNames = []string{"EventName"}

// Validate checks the structure of every enum of a declaration file.
// It doesn't resolve directives beyond what the declaration shape alone
// decides; target and unwrap resolution happen in the policy stage.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	seenNames := map[string]struct{}{}
	seenNamespaces := map[string]string{}

	for i := range f.Enums {
		e := &f.Enums[i]

		if _, ok := seenNames[e.Name]; ok {
			res.AddError(CodeDuplicateEnum, fmt.Sprintf("duplicate enum %q", e.Name), e.Name, "")
			continue
		}

		seenNames[e.Name] = struct{}{}

		ns := e.Namespace()
		if other, ok := seenNamespaces[ns]; ok {
			res.AddWarning(CodeNamespaceCollision,
				fmt.Sprintf("enums %q and %q both generate package %q", other, e.Name, ns), e.Name, "")
		} else {
			seenNamespaces[ns] = e.Name
		}

		ValidateEnum(e, res)
	}

	return res
}

// ValidateEnum validates a single enum and appends its diagnostics to res.
func ValidateEnum(e *Enum, res *diagnostic.Diagnostics) {
	if !token.IsIdentifier(e.Name) {
		res.AddError(CodeInvalidName, fmt.Sprintf("enum name %q is not a Go identifier", e.Name), e.Name, "")
		return
	}

	switch ns := e.Namespace(); {
	case token.IsKeyword(ns):
		res.AddError(CodeInvalidNamespace, fmt.Sprintf("generated package name %q is a Go keyword", ns), e.Name, "")
	case ns == "main":
		res.AddError(CodeInvalidNamespace, "generated package name \"main\" cannot be imported", e.Name, "")
	case strings.Trim(ns, "_") == "":
		res.AddError(CodeInvalidNamespace, fmt.Sprintf("generated package name %q is blank", ns), e.Name, "")
	}

	if common.IsEmpty(e.Variants) {
		res.AddWarning(CodeEmptyEnum, "enum has no variants; the generated package is empty", e.Name, "")
	}

	validateTypeParams(res, e)
	validateScopeDirectives(res, e, e.Directives, "")

	if e.Directives.Has(DirectiveAutoPropagate) && !e.Directives.Has(DirectivePropagate) {
		res.AddError(diagnostic.CodeDanglingAutoPropagate,
			"auto_propagate requires propagate at the same scope", e.Name, "")
	}

	seenVariants := map[string]struct{}{}

	for i := range e.Variants {
		v := &e.Variants[i]

		if _, ok := seenVariants[v.Name]; ok {
			res.AddError(CodeDuplicateVariant, fmt.Sprintf("duplicate variant %q", v.Name), e.Name, v.Name)
			continue
		}

		seenVariants[v.Name] = struct{}{}

		validateVariant(res, e, v)
	}

	for i := range e.Variants {
		ctor := "New" + e.Variants[i].Name
		if _, ok := seenVariants[ctor]; ok {
			res.AddError(CodeConstructorCollision,
				fmt.Sprintf("constructor %s of variant %s collides with variant %s", ctor, e.Variants[i].Name, ctor),
				e.Name, e.Variants[i].Name)
		}
	}
}

// validateVariant validates a single variant within an enum.
func validateVariant(res *diagnostic.Diagnostics, e *Enum, v *Variant) {
	if !token.IsIdentifier(v.Name) || !token.IsExported(v.Name) {
		res.AddError(CodeInvalidName, fmt.Sprintf("variant name %q must be an exported Go identifier", v.Name),
			e.Name, v.Name)
		return
	}

	if e.Mode == ModeEntity && v.Kind != KindNamed {
		res.AddError(diagnostic.CodeShapeViolation,
			fmt.Sprintf("entity events require named fields, variant %s is %s", v.Name, v.Kind),
			e.Name, v.Name)
	}

	validateScopeDirectives(res, e, v.Directives, v.Name)

	// auto_propagate alone inherits the enum relationship.
	if v.Directives.Has(DirectiveAutoPropagate) && !v.Directives.Has(DirectivePropagate) &&
		!e.Directives.Has(DirectivePropagate) {
		res.AddError(diagnostic.CodeDanglingAutoPropagate,
			"auto_propagate requires propagate on the variant or the enum", e.Name, v.Name)
	}

	validateFields(res, e, v)
}

// validateFields validates names, types and markers of a variant's fields.
func validateFields(res *diagnostic.Diagnostics, e *Enum, v *Variant) {
	seen := map[string]struct{}{}
	unwraps, targets := 0, 0

	for i := range v.Fields {
		f := &v.Fields[i]
		loc := v.Location(i)

		// Keywords are accepted: the Go field name is exported.
		if v.Kind == KindNamed && !token.IsIdentifier(f.Name) && !token.IsKeyword(f.Name) {
			res.AddError(CodeInvalidName, fmt.Sprintf("field name %q is not a Go identifier", f.Name), e.Name, loc)
			continue
		}

		if !token.IsExported(f.GoName) {
			res.AddError(CodeInvalidName, fmt.Sprintf("field name %q must start with a letter", f.Name), e.Name, loc)
			continue
		}

		if _, ok := seen[f.GoName]; ok {
			res.AddError(CodeDuplicateField, fmt.Sprintf("field %s is declared twice", f.GoName), e.Name, loc)
		}

		seen[f.GoName] = struct{}{}

		if isReserved(f.GoName) {
			res.AddError(CodeReservedFieldName,
				fmt.Sprintf("field %s collides with a generated method", f.GoName), e.Name, loc)
		}

		if _, err := ParseTypeExpr(f.Type); err != nil {
			res.AddError(CodeInvalidFieldType, err.Error(), e.Name, loc)
		}

		if !validTag(f.Tag) {
			res.AddError(CodeInvalidTag, "struct tags cannot contain backquotes", e.Name, loc)
		}

		validateMarkers(res, e, f, loc)

		if f.HasRole(DirectiveUnwrap) {
			unwraps++
		}

		if f.HasRole(DirectiveTarget) {
			targets++
		}
	}

	if unwraps > 1 {
		res.AddError(diagnostic.CodeMultipleUnwrapFields,
			fmt.Sprintf("variant %s marks %d fields unwrap; only one field can be unwrapped", v.Name, unwraps),
			e.Name, v.Name)
	}

	if targets > 1 {
		res.AddError(CodeMultipleTargetFields,
			fmt.Sprintf("variant %s marks %d fields target; exactly one is allowed", v.Name, targets),
			e.Name, v.Name)
	}
}

// validateMarkers validates the field-scope directives of a field.
func validateMarkers(res *diagnostic.Diagnostics, e *Enum, f *Field, loc string) {
	for _, m := range f.Markers {
		switch m.Kind {
		case DirectiveUnknown:
			reportUnknownDirective(res, e.Name, loc, m, FieldDirectives)
		case DirectivePropagate, DirectiveAutoPropagate:
			res.AddError(CodeMisplacedDirective,
				fmt.Sprintf("%s is an enum or variant directive, not a field marker", m.Kind), e.Name, loc)
		case DirectiveTarget:
			if e.Mode != ModeEntity {
				res.AddError(CodeTargetOutsideEntityMode,
					"target markers are only valid for enums in entity mode", e.Name, loc)
			}
		case DirectiveUnwrap:
		}
	}

	for _, kind := range FieldDirectives {
		if f.Markers.Count(kind) > 1 {
			res.AddError(diagnostic.CodeDuplicateDirective, fmt.Sprintf("marker %s repeated", kind), e.Name, loc)
		}
	}

	if f.HasRole(DirectiveUnwrap) && f.HasRole(DirectiveTarget) {
		res.AddError(diagnostic.CodeConflictingFieldRoles,
			"a field cannot be both the unwrap field and the target field", e.Name, loc)
	}
}

// validateScopeDirectives validates enum-level (loc == "") or variant-level directives.
func validateScopeDirectives(res *diagnostic.Diagnostics, e *Enum, ds Directives, loc string) {
	for _, d := range ds {
		switch d.Kind {
		case DirectiveUnknown:
			reportUnknownDirective(res, e.Name, loc, d, ScopeDirectives)
		case DirectiveUnwrap, DirectiveTarget:
			res.AddError(CodeMisplacedDirective,
				fmt.Sprintf("%s is a field marker and cannot be used at enum or variant scope", d.Kind), e.Name, loc)
		case DirectivePropagate:
			if d.Relationship != "" {
				validateRelationship(res, e, d.Relationship, loc)
			}
		case DirectiveAutoPropagate:
		}
	}

	for _, kind := range ScopeDirectives {
		if ds.Count(kind) > 1 {
			res.AddError(diagnostic.CodeDuplicateDirective,
				fmt.Sprintf("%s may appear at most once per scope", kind), e.Name, loc)
		}
	}

	if e.Mode != ModeEntity && ds.HasPropagation() {
		res.AddError(CodePropagateOutsideEntity,
			"propagate and auto_propagate are only valid for enums in entity mode", e.Name, loc)
	}
}

// validateTypeParams validates type parameter names, constraints and where predicates.
func validateTypeParams(res *diagnostic.Diagnostics, e *Enum) {
	seen := map[string]struct{}{}

	for _, p := range e.TypeParams {
		if !token.IsIdentifier(p.Name) {
			res.AddError(CodeInvalidName, fmt.Sprintf("type parameter %q is not a Go identifier", p.Name), e.Name, "")
			continue
		}

		if _, ok := seen[p.Name]; ok {
			res.AddError(CodeDuplicateTypeParam, fmt.Sprintf("type parameter %s declared twice", p.Name), e.Name, "")
		}

		seen[p.Name] = struct{}{}

		if _, err := ParseTypeExpr(p.Constraint); err != nil {
			res.AddError(CodeInvalidConstraint, err.Error(), e.Name, p.Name)
		}
	}

	for _, w := range e.Where {
		if _, ok := seen[w.Param]; !ok {
			res.AddErrorWithSuggestions(CodeUnknownTypeParam,
				fmt.Sprintf("where predicate names undeclared type parameter %q", w.Param), e.Name, w.Param,
				suggest(w.Param, e.ParamNames()))

			continue
		}

		if _, err := ParseTypeExpr(w.Constraint); err != nil {
			res.AddError(CodeInvalidConstraint, err.Error(), e.Name, w.Param)
		}
	}
}
