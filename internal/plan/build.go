package plan

import (
	"fmt"
	"go/token"
	"slices"
	"unicode"
	"unicode/utf8"

	"enumevent-generator/internal/common"
	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/diagnostic"
	"enumevent-generator/internal/generics"
	"enumevent-generator/internal/policy"
)

// DefaultRuntimeImport is the import path of the bundled event contract.
const DefaultRuntimeImport = "enumevent-generator/event"

// Config holds the settings planning depends on.
type Config struct {
	// RuntimeImport is the import path of the event contract package.
	RuntimeImport string
	// EntityType is the Go type of entity targets.
	EntityType string
}

// DefaultConfig returns the default planning configuration.
func DefaultConfig() Config {
	return Config{
		RuntimeImport: DefaultRuntimeImport,
		EntityType:    policy.DefaultEntityType,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.RuntimeImport == "" {
		c.RuntimeImport = def.RuntimeImport
	}

	if c.EntityType == "" {
		c.EntityType = common.PkgAlias(c.RuntimeImport) + ".Entity"
	}

	return c
}

// BuildFile validates a declaration file and plans every valid enum.
// An enum with errors is left out of the result; its siblings are still
// planned.
func BuildFile(f *decl.File, cfg Config) *Result {
	res := &Result{}

	diags := decl.Validate(f)
	res.Diagnostics.Merge(*diags)

	if f == nil {
		return res
	}

	for i := range f.Enums {
		e := &f.Enums[i]

		if enumDiags := diags.ForEnum(e.Name); enumDiags.HasErrors() {
			continue
		}

		p, pd := Build(e, cfg)
		res.Diagnostics.Merge(pd)

		if p != nil {
			res.Plans = append(res.Plans, p)
		}
	}

	return res
}

// Build plans a single, already validated enum. It returns a nil plan
// when any variant can't be generated.
func Build(e *decl.Enum, cfg Config) (*EnumPlan, diagnostic.Diagnostics) {
	cfg = cfg.withDefaults()

	var diags diagnostic.Diagnostics

	p := &EnumPlan{
		Enum:          e.Name,
		Namespace:     e.Namespace(),
		Mode:          e.Mode,
		Doc:           e.Doc,
		TypeParams:    generics.ParamList(e.TypeParams, e.Where),
		TypeArgs:      generics.ArgList(e.TypeParams),
		Imports:       e.Imports,
		RuntimeImport: cfg.RuntimeImport,
		RuntimeAlias:  common.PkgAlias(cfg.RuntimeImport),
	}

	if e.Mode == decl.ModeEntity {
		p.EntityType = decl.CanonicalType(cfg.EntityType)
	}

	opts := policy.Options{EntityType: cfg.EntityType}

	for i := range e.Variants {
		gt, vd := buildType(e, &e.Variants[i], opts)
		for _, d := range vd {
			diags.Add(d)
		}

		if gt != nil {
			p.Types = append(p.Types, *gt)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return p, diags
}

func buildType(e *decl.Enum, v *decl.Variant, opts policy.Options) (*GeneratedType, []diagnostic.Diagnostic) {
	pol, diags := policy.Resolve(e, v, opts)

	methods := policyMethods(e.Mode, &pol)

	for i := range v.Fields {
		if f := &v.Fields[i]; slices.Contains(methods, f.GoName) {
			diags = append(diags, diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     decl.CodeReservedFieldName,
				Message:  fmt.Sprintf("field %s collides with the generated %s method", f.GoName, f.GoName),
				Enum:     e.Name,
				Location: v.Location(i),
			})
		}
	}

	usage, err := generics.AnalyzeVariant(e, v)
	if err != nil {
		diags = append(diags, diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     decl.CodeInvalidFieldType,
			Message:  err.Error(),
			Enum:     e.Name,
			Location: v.Name,
		})
	}

	for _, d := range diags {
		if d.Severity == diagnostic.DiagnosticError {
			return nil, diags
		}
	}

	gt := &GeneratedType{
		Name:          v.Name,
		QualifiedName: e.Namespace() + "." + v.Name,
		EventName:     e.Name + "." + v.Name,
		Kind:          v.Kind,
		Doc:           v.Doc,
		Usage:         usage,
		Phantom:       generics.PhantomType(usage.Unused),
		Policy:        pol,
	}

	reserved := reservedParams(e)

	for i := range v.Fields {
		f := &v.Fields[i]
		param := paramName(f, reserved)
		reserved[param] = struct{}{}

		gt.Fields = append(gt.Fields, Field{
			Declared: f.Name,
			GoName:   f.GoName,
			Type:     decl.CanonicalType(f.Type),
			Tag:      f.Tag,
			Doc:      f.Doc,
			Param:    param,
		})
	}

	return gt, diags
}

// reservedParams are the identifiers a constructor body refers to: the
// variant types and the type parameters.
func reservedParams(e *decl.Enum) map[string]struct{} {
	out := make(map[string]struct{}, len(e.Variants)+len(e.TypeParams))

	for i := range e.Variants {
		out[e.Variants[i].Name] = struct{}{}
	}

	for _, p := range e.TypeParams {
		out[p.Name] = struct{}{}
	}

	return out
}

// policyMethods lists the methods generated for a variant beyond
// EventName, given its resolved policy.
func policyMethods(mode decl.Mode, pol *policy.EffectivePolicy) []string {
	var methods []string

	if pol.Unwrap != nil {
		methods = append(methods, "Value", "SetValue")
	}

	if mode == decl.ModeEntity {
		methods = append(methods, "EventTarget")
	}

	if pol.HasPropagation() {
		methods = append(methods, "Traversal", "AutoPropagate")
	}

	return methods
}

// paramName derives the constructor parameter of a field: the declared
// name, or the lower-cased Go name for positional fields, suffixed with
// "_" while it is a keyword or already taken. Taken names are the
// reserved identifiers and the parameters of earlier fields.
func paramName(f *decl.Field, taken map[string]struct{}) string {
	name := f.Name
	if name == "" {
		name = lowerFirst(f.GoName)
	}

	for {
		if _, ok := taken[name]; !ok && !token.IsKeyword(name) {
			return name
		}

		name += "_"
	}
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToLower(r)) + name[size:]
}

// String summarizes the plan for logs.
func (p *EnumPlan) String() string {
	return fmt.Sprintf("%s -> package %s (%d types, mode %s)", p.Enum, p.Namespace, len(p.Types), p.Mode)
}
