package generics

import (
	"fmt"
	"go/ast"
	"go/parser"
	"slices"

	"enumevent-generator/internal/decl"
)

// Usage is the type-parameter usage of one variant.
type Usage struct {
	// Used are the parameters referenced by at least one field, in
	// declaration order.
	Used []string `json:"used,omitempty" yaml:"used,omitempty"`
	// Unused are the parameters no field references, in declaration order.
	Unused []string `json:"unused,omitempty" yaml:"unused,omitempty"`
}

// NeedsPhantom reports whether the variant needs a phantom marker.
func (u Usage) NeedsPhantom() bool {
	return len(u.Unused) > 0
}

// Analyze reports which of params are referenced by the given field types.
func Analyze(params []decl.TypeParam, fieldTypes []string) (Usage, error) {
	if len(params) == 0 {
		return Usage{}, nil
	}

	names := make(map[string]struct{}, len(params))
	for _, p := range params {
		names[p.Name] = struct{}{}
	}

	seen := map[string]struct{}{}

	for _, typ := range fieldTypes {
		expr, err := parser.ParseExpr(typ)
		if err != nil {
			return Usage{}, fmt.Errorf("field type %q: %w", typ, err)
		}

		collect(expr, names, seen)
	}

	var u Usage

	for _, p := range params {
		if _, ok := seen[p.Name]; ok {
			u.Used = append(u.Used, p.Name)
		} else {
			u.Unused = append(u.Unused, p.Name)
		}
	}

	return u, nil
}

// AnalyzeVariant is Analyze over the field types of a variant.
func AnalyzeVariant(e *decl.Enum, v *decl.Variant) (Usage, error) {
	types := make([]string, len(v.Fields))
	for i := range v.Fields {
		types[i] = v.Fields[i].Type
	}

	u, err := Analyze(e.TypeParams, types)
	if err != nil {
		return Usage{}, fmt.Errorf("variant %s: %w", v.Name, err)
	}

	return u, nil
}

// collect records every identifier of expr that names one of params.
// Only type positions count: the selected name of a qualified identifier
// and the names of struct fields, func parameters and interface methods
// are skipped.
func collect(expr ast.Expr, params, seen map[string]struct{}) {
	ast.Inspect(expr, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.Ident:
			if _, ok := params[x.Name]; ok {
				seen[x.Name] = struct{}{}
			}

		case *ast.SelectorExpr:
			collect(x.X, params, seen)
			return false

		case *ast.Field:
			collect(x.Type, params, seen)
			return false
		}

		return true
	})
}

// Contains reports whether name is one of the used parameters.
func (u Usage) Contains(name string) bool {
	return slices.Contains(u.Used, name)
}
