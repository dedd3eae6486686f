// Package diagnostic provides structured errors and warnings reported while
// validating and planning an enum declaration.
//
// Every diagnostic carries a stable code (e.g. "shape_violation",
// "missing_target", "conflicting_field_roles", "dangling_auto_propagate"),
// the enum it belongs to and a location inside that enum ("Variant" or
// "Variant.field"). Errors abort generation for their enum only.
package diagnostic
