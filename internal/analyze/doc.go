// Package analyze loads generated packages and reports what they provide.
//
// It uses golang.org/x/tools/go/packages with go/types to type-check the
// generated code and read the method set of every variant type.
//
// Key types:
//   - PackageReport: one loaded package, its compile errors and types
//   - TypeReport: the capabilities a generated type implements
//   - Capability: event, unwrap, target, propagate
package analyze
