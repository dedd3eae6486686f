package gen

import (
	"bytes"
	"fmt"
	"path/filepath"

	"golang.org/x/tools/imports"

	"enumevent-generator/internal/plan"
)

// DefaultFileSuffix is appended to the namespace to name generated files.
const DefaultFileSuffix = "_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory generated packages are written under.
	// It is also where unformatted sources land when formatting fails.
	OutputDir string
	// FileSuffix names the generated file of a package: <namespace><suffix>.
	FileSuffix string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// Assertions enables compile-time interface assertions for
	// non-generic enums.
	Assertions bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		FileSuffix:       DefaultFileSuffix,
		GenerateComments: true,
		Assertions:       true,
	}
}

// Generator generates Go code from enum plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.FileSuffix == "" {
		config.FileSuffix = DefaultFileSuffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is relative to the output directory
	// (e.g. "game_event/game_event_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the path of the file generated for p, relative to the
// output directory.
func (g *Generator) Filename(p *plan.EnumPlan) string {
	return filepath.Join(p.Namespace, p.Namespace+g.config.FileSuffix)
}

// Generate generates the package of a single enum plan.
// When formatting fails the unformatted source is returned together with
// the error and, if an output directory is configured, written next to
// the intended file.
func (g *Generator) Generate(p *plan.EnumPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(p)
	filename := g.Filename(p)

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", p.Enum, err)
	}

	formatted, err := imports.Process(filepath.Join(g.config.OutputDir, filename), buf.Bytes(), importOptions)
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code for %s: %w", p.Enum, err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// GenerateAll generates one file per plan.
func (g *Generator) GenerateAll(plans []*plan.EnumPlan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(plans))

	for _, p := range plans {
		file, err := g.Generate(p)
		if err != nil {
			return nil, err
		}

		files = append(files, *file)
	}

	return files, nil
}

var importOptions = &imports.Options{
	Comments:  true,
	TabIndent: true,
	TabWidth:  8,
}
