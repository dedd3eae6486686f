// Package generics computes how the variants of a generic enum use the
// enum's type parameters.
//
// Every generated type keeps the enum's full parameter list. A variant
// whose fields leave some parameters unused gets a zero-size phantom field
// that mentions them, so the type stays well-formed and the parameters
// stay part of its identity.
package generics
