// Package naming converts enum names into the package identifiers that
// hold their generated variant types.
//
// It is exported on purpose: tools that build on top of the generator can
// call ModuleIdent to reference a generated package without re-deriving
// its name.
package naming

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a PascalCase or camelCase identifier to snake_case.
//
// A separator is inserted before an upper-case letter when the previous
// rune is a lower-case letter or a digit, or when the previous rune is
// upper-case and the next one is lower-case (the last letter of an acronym
// starts a new word). Everything else is only lower-cased, so input that
// is already snake_case comes back unchanged.
//
//   - "PlayerState" -> "player_state"
//   - "HTTPServer" -> "http_server"
//   - "MyHTTPSConnection" -> "my_https_connection"
//   - "LifeFSM" -> "life_fsm"
func ToSnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder

	b.Grow(len(s) + len(runes)/2)

	for i, r := range runes {
		if i > 0 && shouldSplitBefore(runes, i) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// ModuleIdent returns the package name generated for the named enum.
func ModuleIdent(enumName string) string {
	return ToSnakeCase(enumName)
}

func shouldSplitBefore(runes []rune, i int) bool {
	r := runes[i]
	if !unicode.IsUpper(r) {
		return false
	}

	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(prev) && hasNextLower
}
