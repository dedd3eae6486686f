package plan

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"enumevent-generator/internal/diagnostic"
)

// Format selects the encoding of an exported plan.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatText}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q (expected one of json, yaml, text)", s)
}

// Export encodes a planning result in the given format.
func Export(res *Result, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return ExportJSON(res)
	case FormatYAML:
		return ExportYAML(res)
	case FormatText:
		return []byte(FormatReport(GenerateReport(res))), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// ExportJSON encodes a planning result as indented JSON.
func ExportJSON(res *Result) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode plan as JSON: %w", err)
	}

	return append(data, '\n'), nil
}

// ExportYAML encodes a planning result as YAML.
func ExportYAML(res *Result) ([]byte, error) {
	data, err := yaml.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode plan as YAML: %w", err)
	}

	return data, nil
}

// Report is a human-readable summary of a planning result.
type Report struct {
	Enums    []EnumReport
	Problems []string
}

// EnumReport summarizes one planned enum.
type EnumReport struct {
	Enum      string
	Namespace string
	Mode      string
	Types     []TypeReport
}

// TypeReport describes the capabilities of one generated type.
type TypeReport struct {
	Name         string
	Kind         string
	Unwrap       string
	Target       string
	Relationship string
	Auto         bool
	Phantom      string
}

// GenerateReport creates a report from a planning result.
func GenerateReport(res *Result) *Report {
	report := &Report{}

	for _, p := range res.Plans {
		er := EnumReport{
			Enum:      p.Enum,
			Namespace: p.Namespace,
			Mode:      p.Mode.String(),
		}

		for i := range p.Types {
			t := &p.Types[i]
			tr := TypeReport{
				Name:    t.Name,
				Kind:    t.Kind.String(),
				Phantom: t.Phantom,
			}

			if f := t.UnwrapField(); f != nil {
				tr.Unwrap = f.GoName + " " + f.Type
			}

			if f := t.TargetField(); f != nil {
				tr.Target = f.GoName
			}

			if pr := t.Policy.Propagation; pr != nil {
				tr.Relationship = pr.Relationship
				if pr.IsDefault() {
					tr.Relationship = p.RuntimeAlias + ".ChildOf"
				}

				tr.Auto = pr.Auto
			}

			er.Types = append(er.Types, tr)
		}

		report.Enums = append(report.Enums, er)
	}

	for _, group := range [][]string{
		diagStrings(res.Diagnostics.Errors, "error"),
		diagStrings(res.Diagnostics.Warnings, "warning"),
	} {
		report.Problems = append(report.Problems, group...)
	}

	return report
}

// FormatReport formats a report as human-readable text.
func FormatReport(report *Report) string {
	var sb strings.Builder

	for _, e := range report.Enums {
		sb.WriteString(fmt.Sprintf("=== %s -> package %s (%s) ===\n", e.Enum, e.Namespace, e.Mode))

		for _, t := range e.Types {
			sb.WriteString(fmt.Sprintf("  %s [%s]", t.Name, t.Kind))

			if t.Unwrap != "" {
				sb.WriteString(" unwrap=" + t.Unwrap)
			}

			if t.Target != "" {
				sb.WriteString(" target=" + t.Target)
			}

			if t.Relationship != "" {
				sb.WriteString(" propagate=" + t.Relationship)

				if t.Auto {
					sb.WriteString(" auto")
				}
			}

			if t.Phantom != "" {
				sb.WriteString(" phantom=" + t.Phantom)
			}

			sb.WriteString("\n")
		}
	}

	if len(report.Problems) > 0 {
		sb.WriteString("\nProblems:\n")

		for _, p := range report.Problems {
			sb.WriteString("  " + p + "\n")
		}
	}

	return sb.String()
}

func diagStrings(ds []diagnostic.Diagnostic, severity string) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = severity + ": " + d.String()
	}

	return out
}
