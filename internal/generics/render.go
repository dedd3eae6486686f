package generics

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"enumevent-generator/internal/decl"
)

// PhantomType returns the type of the phantom field carrying the unused
// parameters, or "" when none are unused.
//
//	[0]*P                      one parameter
//	[0]*struct{ _ P; _ Q }     several
func PhantomType(unused []string) string {
	switch len(unused) {
	case 0:
		return ""
	case 1:
		return "[0]*" + unused[0]
	}

	var b strings.Builder

	b.WriteString("[0]*struct{ ")

	for i, p := range unused {
		if i > 0 {
			b.WriteString("; ")
		}

		b.WriteString("_ ")
		b.WriteString(p)
	}

	b.WriteString(" }")

	return b.String()
}

// ParamList renders the type-parameter list of a generated type
// declaration, e.g. "[T any, U interface{ comparable; fmt.Stringer }]".
// Where predicates are merged into the constraint of the parameter they
// name. It returns "" for a non-generic enum.
func ParamList(params []decl.TypeParam, where []decl.Predicate) string {
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + Constraint(p, where)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// ArgList renders the instantiation of a generated type with its own
// parameters, e.g. "[T, U]", or "" for a non-generic enum.
func ArgList(params []decl.TypeParam) string {
	if len(params) == 0 {
		return ""
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}

	return "[" + strings.Join(names, ", ") + "]"
}

// Constraint returns the effective constraint of p: its own bound merged
// with every where predicate naming it.
func Constraint(p decl.TypeParam, where []decl.Predicate) string {
	var terms []string

	if c := strings.TrimSpace(p.Constraint); c != "" && c != "any" {
		terms = append(terms, c)
	}

	for _, w := range where {
		if w.Param == p.Name {
			if c := strings.TrimSpace(w.Constraint); c != "" && c != "any" {
				terms = append(terms, c)
			}
		}
	}

	switch len(terms) {
	case 0:
		return "any"
	case 1:
		if ambiguous(terms[0]) {
			return "interface{ " + terms[0] + " }"
		}

		return terms[0]
	}

	return "interface{ " + strings.Join(terms, "; ") + " }"
}

// ambiguous reports whether a constraint written directly in a type
// parameter list could be read as an array length, as in "[P *C]".
func ambiguous(constraint string) bool {
	expr, err := parser.ParseExpr(constraint)
	if err != nil {
		return false
	}

	return leadsWithStarOrParen(expr)
}

func leadsWithStarOrParen(expr ast.Expr) bool {
	switch x := expr.(type) {
	case *ast.StarExpr, *ast.ParenExpr:
		return true
	case *ast.BinaryExpr:
		return x.Op == token.OR && (leadsWithStarOrParen(x.X) || leadsWithStarOrParen(x.Y))
	}

	return false
}
