// Package cli implements the enumevent-generator command line.
//
// Commands:
//
//	gen      generate one package per enum of a declaration file
//	plan     print the resolved plan (json, yaml or text)
//	check    type-check generated packages against their plan
//	ident    print the namespace of enum names
//	version  print the build version
package cli
