// Command enumevent-generator generates Go event types from tagged-union
// enum declarations.
//
// Usage:
//
//	enumevent-generator gen events.yaml -o ./events
//	enumevent-generator plan events.yaml --format yaml
//	enumevent-generator check events.yaml --package-path example.com/app/events
package main

import (
	"os"

	"enumevent-generator/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
