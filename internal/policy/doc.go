// Package policy resolves the directives of an enum and its variants into
// one EffectivePolicy per variant.
//
// Resolution rules:
//   - Unwrap: the field marked unwrap; otherwise the sole field of a
//     single-field variant; otherwise none.
//   - Target (entity mode only): the field marked target; otherwise a field
//     named "entity" whose type is the configured entity type; otherwise
//     the variant is reported with missing_target.
//   - Propagation: the enum-level propagate/auto_propagate pair is the
//     default. A variant that declares propagate replaces the pair. A
//     variant that only declares auto_propagate keeps the enum's
//     relationship and turns auto-propagation on.
package policy
