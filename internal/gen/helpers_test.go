package gen

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/plan"
)

var spaces = regexp.MustCompile(`\s+`)

// squash collapses whitespace so assertions don't depend on gofmt alignment.
func squash(s string) string {
	return spaces.ReplaceAllString(s, " ")
}

func planYAML(t *testing.T, yaml string) []*plan.EnumPlan {
	t.Helper()

	f, err := decl.Parse([]byte(yaml))
	require.NoError(t, err)

	res := plan.BuildFile(f, plan.DefaultConfig())
	require.True(t, res.Diagnostics.IsValid(), "errors: %v", res.Diagnostics.Errors)

	return res.Plans
}

func generateYAML(t *testing.T, yaml string) []GeneratedFile {
	t.Helper()

	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = t.TempDir()

	files, err := NewGenerator(cfg).GenerateAll(planYAML(t, yaml))
	require.NoError(t, err)

	return files
}

type eventImporter struct {
	event    *types.Package
	fallback types.Importer
}

func (i *eventImporter) Import(path string) (*types.Package, error) {
	if path == plan.DefaultRuntimeImport {
		return i.event, nil
	}

	return i.fallback.Import(path)
}

// typeCheck type-checks generated sources (plus optional extra files of the
// same package) against the event package of this module.
func typeCheck(t *testing.T, src []byte, extra ...string) (*types.Package, *types.Package) {
	t.Helper()

	fset := token.NewFileSet()
	std := importer.ForCompiler(fset, "source", nil)

	eventFile, err := parser.ParseFile(fset, filepath.Join("..", "..", "event", "event.go"), nil, 0)
	require.NoError(t, err)

	eventPkg, err := (&types.Config{Importer: std}).Check(plan.DefaultRuntimeImport, fset, []*ast.File{eventFile}, nil)
	require.NoError(t, err)

	genFile, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))

	files := []*ast.File{genFile}

	for i, x := range extra {
		f, err := parser.ParseFile(fset, "extra"+string(rune('a'+i))+".go", x, 0)
		require.NoError(t, err, x)

		files = append(files, f)
	}

	conf := &types.Config{Importer: &eventImporter{event: eventPkg, fallback: std}}

	pkg, err := conf.Check("example.com/generated/"+genFile.Name.Name, fset, files, nil)
	require.NoError(t, err, string(src))

	return pkg, eventPkg
}

// iface returns a named interface of the event package.
func iface(t *testing.T, eventPkg *types.Package, name string) *types.Interface {
	t.Helper()

	obj := eventPkg.Scope().Lookup(name)
	require.NotNil(t, obj, name)

	it, ok := obj.Type().Underlying().(*types.Interface)
	require.True(t, ok, name)

	return it
}

// named returns a type declared by the generated package.
func named(t *testing.T, pkg *types.Package, name string) types.Type {
	t.Helper()

	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj, name)

	return obj.Type()
}
