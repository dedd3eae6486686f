package match

import (
	"strings"
	"unicode"
)

// Fold reduces a spelling of a name to its comparable core: words are
// split on CamelCase and separators, then joined lower-case. The
// spellings "autoPropagate", "AutoPropagate", "auto-propagate" and
// "auto_propagate" all fold to "autopropagate".
func Fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, word := range words(s) {
		b.WriteString(strings.ToLower(word))
	}

	return b.String()
}

// words splits s on separators and CamelCase boundaries:
// "getHTTPResponse" -> ["get", "HTTP", "Response"].
func words(s string) []string {
	var (
		out     []string
		current strings.Builder
	)

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				out = append(out, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsWord(runes, i) && current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		out = append(out, current.String())
	}

	return out
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports whether a word starts at runes[i] (i > 0).
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// End of an acronym: "XMLParser" splits before 'P'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
