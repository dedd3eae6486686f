package decl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML declaration file from the given path.
// JSON files are accepted too since JSON is valid YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Enums {
		Normalize(&f.Enums[i])
	}
}

// Normalize fills derived values of an enum: default constraints, Go
// field names and trimmed doc comments. It is idempotent.
func Normalize(e *Enum) {
	e.Doc = trimDoc(e.Doc)

	for i := range e.TypeParams {
		if e.TypeParams[i].Constraint == "" {
			e.TypeParams[i].Constraint = "any"
		}
	}

	for i := range e.Variants {
		v := &e.Variants[i]
		v.Doc = trimDoc(v.Doc)

		for j := range v.Fields {
			f := &v.Fields[j]
			f.Doc = trimDoc(f.Doc)

			if v.Kind == KindPositional {
				f.GoName = PositionalName(j)
			} else {
				f.GoName = ExportName(f.Name)
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal declaration: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}
