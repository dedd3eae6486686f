package analyze

import (
	"slices"

	"enumevent-generator/internal/common"
)

// Capability is a method group a generated type implements.
type Capability int

const (
	CapabilityEvent     Capability = iota // EventName
	CapabilityUnwrap                      // Value and SetValue
	CapabilityTarget                      // EventTarget
	CapabilityPropagate                   // Traversal and AutoPropagate
)

// String returns a human-readable representation of the Capability.
func (c Capability) String() string {
	switch c {
	case CapabilityEvent:
		return "event"
	case CapabilityUnwrap:
		return "unwrap"
	case CapabilityTarget:
		return "target"
	case CapabilityPropagate:
		return "propagate"
	default:
		return common.UnknownStr
	}
}

// MarshalText renders the capability by name.
func (c Capability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// capabilityMethods lists the methods that make up each capability.
var capabilityMethods = map[Capability][]string{
	CapabilityEvent:     {"EventName"},
	CapabilityUnwrap:    {"Value", "SetValue"},
	CapabilityTarget:    {"EventTarget"},
	CapabilityPropagate: {"Traversal", "AutoPropagate"},
}

// PackageReport describes a loaded package.
type PackageReport struct {
	// Path is the import path.
	Path string `json:"path" yaml:"path"`
	// Name is the package name.
	Name string `json:"name" yaml:"name"`
	// Errors are the load, parse and type errors of the package.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	// Types are the exported struct types, sorted by name.
	Types []TypeReport `json:"types,omitempty" yaml:"types,omitempty"`
}

// Type returns the report of the named type, or nil.
func (r *PackageReport) Type(name string) *TypeReport {
	for i := range r.Types {
		if r.Types[i].Name == name {
			return &r.Types[i]
		}
	}

	return nil
}

// OK reports whether the package loaded without errors.
func (r *PackageReport) OK() bool {
	return len(r.Errors) == 0
}

// TypeReport describes one exported struct type of a generated package.
type TypeReport struct {
	Name string `json:"name" yaml:"name"`
	// Generic is true for parameterized types.
	Generic bool `json:"generic,omitempty" yaml:"generic,omitempty"`
	// Capabilities are the method groups the type (or its pointer) has.
	Capabilities []Capability `json:"capabilities" yaml:"capabilities"`
	// Unwrap is the type returned by Value, if any.
	Unwrap string `json:"unwrap,omitempty" yaml:"unwrap,omitempty"`
	// Target is the type returned by EventTarget, if any.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Contract lists the runtime interfaces the type satisfies. It is only
	// filled for non-generic types of packages importing the runtime.
	Contract []string `json:"contract,omitempty" yaml:"contract,omitempty"`
}

// Has reports whether the type implements the capability.
func (t *TypeReport) Has(c Capability) bool {
	return slices.Contains(t.Capabilities, c)
}
