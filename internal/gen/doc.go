// Package gen provides deterministic Go code generation for enum plans.
//
// Generation approach uses text/template + golang.org/x/tools/imports for
// readable, gofmt'ed output with a complete import block.
//
// Codegen patterns, per variant:
//   - Struct with one exported field per declared field (FieldN for
//     positional fields) and a blank phantom field for unused type
//     parameters
//   - New<Variant> constructor over the real fields
//   - EventName, and Value/SetValue for the unwrap field
//   - EventTarget, Traversal and AutoPropagate in entity mode
//   - Compile-time interface assertions for non-generic enums
package gen
