// Package plan provides the resolution pipeline that produces an EnumPlan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Load YAML → validate (package decl)
//  2. For each enum and each variant:
//     - Resolve the effective directives (package policy)
//     - Compute type-parameter usage and the phantom marker (package generics)
//  3. Emit one GeneratedType per variant, or diagnostics when a variant
//     can't be generated (missing target)
package plan
