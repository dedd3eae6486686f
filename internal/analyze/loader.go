package analyze

import (
	"context"
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// contractInterfaces are the non-generic runtime interfaces checked on
// generated types.
var contractInterfaces = []string{"Event", "EntityEvent", "Propagating"}

// Checker loads generated packages with the go command.
type Checker struct {
	// runtimeImport is the import path of the event contract package.
	runtimeImport string
	// dir is the directory the go command runs in ("" for the current one).
	dir string
}

// NewChecker creates a Checker resolving contract interfaces from
// runtimeImport. Patterns are resolved relative to dir.
func NewChecker(runtimeImport, dir string) *Checker {
	return &Checker{runtimeImport: runtimeImport, dir: dir}
}

// LoadPackages loads the packages matching patterns (e.g.
// "./events/...") and reports one PackageReport per package. Compile
// errors are reported per package, not returned.
func (c *Checker) LoadPackages(ctx context.Context, patterns ...string) ([]*PackageReport, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     c.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	reports := make([]*PackageReport, 0, len(pkgs))
	for _, pkg := range pkgs {
		reports = append(reports, c.processPackage(pkg))
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	return reports, nil
}

// processPackage extracts the generated types of a loaded package.
func (c *Checker) processPackage(pkg *packages.Package) *PackageReport {
	report := &PackageReport{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	for _, e := range pkg.Errors {
		report.Errors = append(report.Errors, e.Error())
	}

	if pkg.Types == nil {
		return report
	}

	contract := c.contract(pkg)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		if _, isStruct := named.Underlying().(*types.Struct); !isStruct {
			continue
		}

		report.Types = append(report.Types, analyzeType(named, contract))
	}

	return report
}

// contract looks up the runtime interfaces in the imports of pkg.
func (c *Checker) contract(pkg *packages.Package) map[string]*types.Interface {
	rt, ok := pkg.Imports[c.runtimeImport]
	if !ok || rt.Types == nil {
		return nil
	}

	out := map[string]*types.Interface{}

	for _, name := range contractInterfaces {
		obj := rt.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}

		if it, ok := obj.Type().Underlying().(*types.Interface); ok {
			out[name] = it
		}
	}

	return out
}

// analyzeType reads the capabilities of a generated type from the method
// set of its pointer, which includes value-receiver methods.
func analyzeType(named *types.Named, contract map[string]*types.Interface) TypeReport {
	tr := TypeReport{
		Name:    named.Obj().Name(),
		Generic: named.TypeParams().Len() > 0,
	}

	mset := types.NewMethodSet(types.NewPointer(named))

	for _, c := range []Capability{CapabilityEvent, CapabilityUnwrap, CapabilityTarget, CapabilityPropagate} {
		if hasMethods(mset, named.Obj().Pkg(), capabilityMethods[c]...) {
			tr.Capabilities = append(tr.Capabilities, c)
		}
	}

	if sig := methodSignature(mset, named.Obj().Pkg(), "Value"); sig != nil && sig.Results().Len() == 1 {
		tr.Unwrap = types.TypeString(sig.Results().At(0).Type(), qualifier(named.Obj().Pkg()))
	}

	if sig := methodSignature(mset, named.Obj().Pkg(), "EventTarget"); sig != nil && sig.Results().Len() == 1 {
		tr.Target = types.TypeString(sig.Results().At(0).Type(), qualifier(named.Obj().Pkg()))
	}

	if tr.Generic {
		return tr
	}

	for _, name := range contractInterfaces {
		if it, ok := contract[name]; ok && types.Implements(named, it) {
			tr.Contract = append(tr.Contract, name)
		}
	}

	return tr
}

func hasMethods(mset *types.MethodSet, pkg *types.Package, names ...string) bool {
	for _, name := range names {
		if mset.Lookup(pkg, name) == nil {
			return false
		}
	}

	return true
}

func methodSignature(mset *types.MethodSet, pkg *types.Package, name string) *types.Signature {
	sel := mset.Lookup(pkg, name)
	if sel == nil {
		return nil
	}

	sig, _ := sel.Type().(*types.Signature)

	return sig
}

// qualifier prints types of other packages by package name.
func qualifier(self *types.Package) types.Qualifier {
	return func(p *types.Package) string {
		if p == self {
			return ""
		}

		return p.Name()
	}
}
