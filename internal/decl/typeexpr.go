package decl

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"strings"
)

// ParseTypeExpr parses a Go type (or constraint) expression.
func ParseTypeExpr(s string) (ast.Expr, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty type expression")
	}

	expr, err := parser.ParseExpr(s)
	if err != nil {
		return nil, fmt.Errorf("invalid type expression %q: %w", s, err)
	}

	return expr, nil
}

// CanonicalType returns the gofmt spelling of a type expression, or the
// trimmed input when it does not parse.
func CanonicalType(s string) string {
	expr, err := ParseTypeExpr(s)
	if err != nil {
		return strings.TrimSpace(s)
	}

	return types.ExprString(expr)
}

// SameType reports whether two type expressions are spelled identically
// once formatting differences are removed.
func SameType(a, b string) bool {
	return CanonicalType(a) == CanonicalType(b)
}
