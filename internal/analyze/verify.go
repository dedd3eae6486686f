package analyze

import (
	"fmt"
	"strings"

	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/diagnostic"
	"enumevent-generator/internal/plan"
)

// Diagnostic codes reported when a generated package doesn't match its plan.
const (
	CodeCompileError       = "compile_error"
	CodeMissingPackage     = "missing_package"
	CodeMissingType        = "missing_type"
	CodeCapabilityMismatch = "capability_mismatch"
)

// Verify compares the loaded packages against the plans they were
// generated from. Packages are matched to plans by package name.
func Verify(plans []*plan.EnumPlan, reports []*PackageReport) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	byName := make(map[string]*PackageReport, len(reports))
	for _, r := range reports {
		byName[r.Name] = r
	}

	for _, p := range plans {
		r, ok := byName[p.Namespace]
		if !ok {
			diags.AddError(CodeMissingPackage,
				fmt.Sprintf("package %s was not found; run gen first", p.Namespace), p.Enum, "")

			continue
		}

		for _, e := range r.Errors {
			diags.AddError(CodeCompileError, e, p.Enum, "")
		}

		for i := range p.Types {
			verifyType(&diags, p, &p.Types[i], r)
		}
	}

	return diags
}

func verifyType(diags *diagnostic.Diagnostics, p *plan.EnumPlan, gt *plan.GeneratedType, r *PackageReport) {
	tr := r.Type(gt.Name)
	if tr == nil {
		diags.AddError(CodeMissingType, fmt.Sprintf("type %s is missing from package %s", gt.Name, r.Path),
			p.Enum, gt.Name)

		return
	}

	want := map[Capability]bool{
		CapabilityEvent:     true,
		CapabilityUnwrap:    gt.Policy.Unwrap != nil,
		CapabilityTarget:    gt.Policy.Target != nil,
		CapabilityPropagate: gt.Policy.HasPropagation(),
	}

	var problems []string

	for _, c := range []Capability{CapabilityEvent, CapabilityUnwrap, CapabilityTarget, CapabilityPropagate} {
		switch has := tr.Has(c); {
		case want[c] && !has:
			problems = append(problems, "missing "+c.String())
		case !want[c] && has:
			problems = append(problems, "unexpected "+c.String())
		}
	}

	if f := gt.UnwrapField(); f != nil && tr.Unwrap != "" && !decl.SameType(f.Type, tr.Unwrap) {
		problems = append(problems, fmt.Sprintf("Value returns %s, want %s", tr.Unwrap, f.Type))
	}

	if len(problems) > 0 {
		diags.AddError(CodeCapabilityMismatch, strings.Join(problems, "; "), p.Enum, gt.Name)
	}
}
