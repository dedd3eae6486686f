package gen

import (
	"fmt"
	"slices"
	"strings"

	"enumevent-generator/internal/common"
	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/plan"
)

// templateData holds all data needed for the enum package template.
type templateData struct {
	PackageName      string
	PackageDoc       string
	RuntimeImport    string
	Imports          []string
	RuntimeAlias     string
	EntityType       string
	TypeParams       string
	GenerateComments bool
	Types            []typeData
	Assertions       []assertion
}

// typeData represents one generated variant type.
type typeData struct {
	Name        string
	Ref         string
	Constructor string
	EventName   string
	Doc         string
	Fields      []fieldData
	Phantom     string
	Unwrap      *fieldData
	Target      *fieldData
	Propagates  bool
	Traversal   string
	Auto        bool
}

// IsEmpty reports whether the struct has no fields at all.
func (t typeData) IsEmpty() bool {
	return common.IsEmpty(t.Fields) && t.Phantom == ""
}

// fieldData represents a single struct field.
type fieldData struct {
	GoName string
	Type   string
	Tag    string
	Doc    string
	Param  string
}

// assertion is a compile-time interface check: var _ Iface = Value.
type assertion struct {
	Iface string
	Value string
}

// buildTemplateData constructs the template data from an enum plan.
func (g *Generator) buildTemplateData(p *plan.EnumPlan) *templateData {
	data := &templateData{
		PackageName:      p.Namespace,
		RuntimeImport:    p.RuntimeImport,
		RuntimeAlias:     p.RuntimeAlias,
		EntityType:       p.EntityType,
		TypeParams:       p.TypeParams,
		GenerateComments: g.config.GenerateComments,
	}

	for _, imp := range p.Imports {
		if imp != p.RuntimeImport && !slices.Contains(data.Imports, imp) {
			data.Imports = append(data.Imports, imp)
		}
	}

	data.PackageDoc = p.Doc
	if g.config.GenerateComments {
		data.PackageDoc = joinDoc(
			fmt.Sprintf("Package %s contains the events generated from the %s enum.", p.Namespace, p.Enum), p.Doc)
	}

	for i := range p.Types {
		t := g.buildTypeData(p, &p.Types[i])
		data.Types = append(data.Types, t)

		if g.config.Assertions && !p.IsGeneric() {
			data.Assertions = append(data.Assertions, assertionsFor(p, &t)...)
		}
	}

	return data
}

func (g *Generator) buildTypeData(p *plan.EnumPlan, gt *plan.GeneratedType) typeData {
	t := typeData{
		Name:        gt.Name,
		Ref:         gt.Name + p.TypeArgs,
		Constructor: gt.Constructor(),
		EventName:   gt.EventName,
		Phantom:     gt.Phantom,
	}

	t.Doc = gt.Doc
	if g.config.GenerateComments {
		t.Doc = joinDoc(fmt.Sprintf("%s is the %s variant of %s.", gt.Name, gt.Kind, p.Enum), gt.Doc)
	}

	for _, f := range gt.Fields {
		t.Fields = append(t.Fields, fieldData{
			GoName: f.GoName,
			Type:   f.Type,
			Tag:    f.Tag,
			Doc:    f.Doc,
			Param:  f.Param,
		})
	}

	if ref := gt.Policy.Unwrap; ref != nil {
		t.Unwrap = &t.Fields[ref.Index]
	}

	if ref := gt.Policy.Target; ref != nil {
		t.Target = &t.Fields[ref.Index]
	}

	if pr := gt.Policy.Propagation; pr != nil {
		t.Propagates = true
		t.Auto = pr.Auto

		if pr.IsDefault() {
			t.Traversal = "return " + p.RuntimeAlias + ".ChildOf{}"
		} else {
			t.Traversal = "var rel " + pr.Relationship + "\n\treturn rel"
		}
	}

	return t
}

// assertionsFor lists the interfaces a non-generic type must implement.
func assertionsFor(p *plan.EnumPlan, t *typeData) []assertion {
	rt := p.RuntimeAlias
	value := t.Ref + "{}"

	out := []assertion{{Iface: rt + ".Event", Value: value}}

	if t.Unwrap != nil {
		out = append(out, assertion{
			Iface: fmt.Sprintf("%s.Unwrapper[%s]", rt, t.Unwrap.Type),
			Value: fmt.Sprintf("(*%s)(nil)", t.Ref),
		})
	}

	// EntityEvent fixes the target type to the runtime's Entity.
	if t.Target != nil && decl.SameType(p.EntityType, rt+".Entity") {
		out = append(out, assertion{Iface: rt + ".EntityEvent", Value: value})
	}

	if t.Propagates {
		out = append(out, assertion{Iface: rt + ".Propagating", Value: value})
	}

	return out
}

// joinDoc appends a declared doc comment to a generated summary line.
func joinDoc(summary, doc string) string {
	if doc == "" {
		return summary
	}

	return summary + "\n\n" + doc
}

// comment renders text as a line comment block.
func comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + l
		}
	}

	return strings.Join(lines, "\n")
}

// structTag wraps a tag in backquotes.
func structTag(tag string) string {
	return "`" + tag + "`"
}
