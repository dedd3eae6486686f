package decl

import (
	"strings"
)

//go:generate go tool stringer -type=DirectiveKind -linecomment -output=directivekind_string.go

// DirectiveKind tags a Directive.
type DirectiveKind int

const (
	DirectiveUnknown       DirectiveKind = iota // unknown
	DirectiveUnwrap                             // unwrap
	DirectiveTarget                             // target
	DirectivePropagate                          // propagate
	DirectiveAutoPropagate                      // auto_propagate
)

// FieldDirectives are the kinds accepted as field markers.
var FieldDirectives = []DirectiveKind{DirectiveUnwrap, DirectiveTarget}

// ScopeDirectives are the kinds accepted at enum and variant scope.
var ScopeDirectives = []DirectiveKind{DirectivePropagate, DirectiveAutoPropagate}

// Directive is a parsed annotation. Relationship is only set for
// "propagate = <Type>"; Raw keeps the original text for diagnostics.
type Directive struct {
	Kind         DirectiveKind
	Relationship string
	Raw          string
}

// Directives is an ordered directive list.
type Directives []Directive

// ParseDirective parses "unwrap", "target", "auto_propagate", "propagate"
// or "propagate = <Type>". Unrecognized names yield DirectiveUnknown.
func ParseDirective(s string) Directive {
	raw := strings.TrimSpace(s)
	name, value, hasValue := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	kind := directiveKindByName(name)
	if hasValue && kind != DirectivePropagate {
		return Directive{Kind: DirectiveUnknown, Raw: raw}
	}

	return Directive{Kind: kind, Relationship: value, Raw: raw}
}

// Name returns the directive keyword; unknown directives return their
// raw keyword so suggestions can be computed against it.
func (d Directive) Name() string {
	if d.Kind != DirectiveUnknown {
		return d.Kind.String()
	}

	name, _, _ := strings.Cut(d.Raw, "=")

	return strings.TrimSpace(name)
}

// String renders the directive in its scalar YAML form.
func (d Directive) String() string {
	if d.Kind == DirectiveUnknown {
		return d.Raw
	}

	if d.Kind == DirectivePropagate && d.Relationship != "" {
		return d.Kind.String() + " = " + d.Relationship
	}

	return d.Kind.String()
}

// Has reports whether any directive has the given kind.
func (ds Directives) Has(kind DirectiveKind) bool {
	return ds.Count(kind) > 0
}

// Count returns how many directives have the given kind.
func (ds Directives) Count(kind DirectiveKind) int {
	n := 0

	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}

	return n
}

// Get returns the first directive of the given kind.
func (ds Directives) Get(kind DirectiveKind) (Directive, bool) {
	for _, d := range ds {
		if d.Kind == kind {
			return d, true
		}
	}

	return Directive{}, false
}

// HasPropagation reports whether the scope sets propagate or auto_propagate.
func (ds Directives) HasPropagation() bool {
	return ds.Has(DirectivePropagate) || ds.Has(DirectiveAutoPropagate)
}

// Names returns the keyword of every known directive kind.
func Names(kinds []DirectiveKind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return names
}

func directiveKindByName(name string) DirectiveKind {
	for _, k := range []DirectiveKind{DirectiveUnwrap, DirectiveTarget, DirectivePropagate, DirectiveAutoPropagate} {
		if k.String() == name {
			return k
		}
	}

	return DirectiveUnknown
}
