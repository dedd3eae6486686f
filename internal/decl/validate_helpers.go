package decl

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"enumevent-generator/internal/diagnostic"
	"enumevent-generator/internal/match"
)

const maxSuggestions = 2

func isReserved(goName string) bool {
	return slices.Contains(ReservedNames, goName)
}

func validTag(tag string) bool {
	return !strings.Contains(tag, "`")
}

func suggest(input string, candidates []string) []string {
	return match.Suggest(input, candidates, maxSuggestions)
}

func reportUnknownDirective(res *diagnostic.Diagnostics, enum, loc string, d Directive, allowed []DirectiveKind) {
	res.AddErrorWithSuggestions(CodeUnknownDirective,
		fmt.Sprintf("unknown directive %q (allowed here: %s)", d.Raw, strings.Join(Names(allowed), ", ")),
		enum, loc, suggest(d.Name(), Names(allowed)))
}

// validateRelationship checks that a custom relationship type can be named
// from the generated package. Generated packages declare nothing but the
// variant types, so every identifier must be predeclared, a type
// parameter of the enum, or an exported name qualified by a package.
// Whether the qualified package really exports it is left to the compiler.
func validateRelationship(res *diagnostic.Diagnostics, e *Enum, rel string, loc string) {
	expr, err := ParseTypeExpr(rel)
	if err != nil {
		res.AddError(CodeInvalidFieldType, "propagate: "+err.Error(), e.Name, loc)
		return
	}

	params := e.ParamNames()

	ast.Inspect(expr, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.SelectorExpr:
			if !token.IsExported(x.Sel.Name) {
				res.AddError(CodeUnreachableRelationship,
					fmt.Sprintf("relationship %s refers to unexported %s", rel, types.ExprString(x)), e.Name, loc)
			}

			return false

		case *ast.Ident:
			if slices.Contains(params, x.Name) || types.Universe.Lookup(x.Name) != nil {
				return false
			}

			res.AddError(CodeUnreachableRelationship,
				fmt.Sprintf("relationship %s refers to %s, which is not visible from package %s; qualify it with its package",
					rel, x.Name, e.Namespace()), e.Name, loc)

			return false
		}

		return true
	})
}
