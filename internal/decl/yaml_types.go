package decl

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Mode YAML methods ---

// UnmarshalYAML accepts "event" (or an empty value) and "entity".
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string

	err := node.Decode(&s)
	if err != nil {
		return err
	}

	switch s {
	case "", ModeEvent.String():
		*m = ModeEvent
	case ModeEntity.String():
		*m = ModeEntity
	default:
		return fmt.Errorf("line %d: invalid mode %q (expected %q or %q)", node.Line, s, ModeEvent, ModeEntity)
	}

	return nil
}

// MarshalYAML renders the mode by name.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// --- Directive YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Directive.
// Accepts:
//   - Keyword: unwrap, target, propagate, auto_propagate
//   - Keyword with argument: "propagate = event.ChildOf"
//   - Single key map: {propagate: event.ChildOf}
func (d *Directive) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*d = ParseDirective(str)

		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: expected single key-value map like {propagate: Type}", node.Line)
		}

		var key, value string

		if err := node.Content[0].Decode(&key); err != nil {
			return fmt.Errorf("invalid directive name: %w", err)
		}

		if err := node.Content[1].Decode(&value); err != nil {
			return fmt.Errorf("invalid directive argument: %w", err)
		}

		*d = ParseDirective(key + " = " + value)

		return nil

	default:
		return fmt.Errorf("line %d: expected directive string or map, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs the scalar form of the directive.
func (d Directive) MarshalYAML() (any, error) {
	return d.String(), nil
}

// --- Variant YAML methods ---

// rawVariant is the mapping form of a variant before field shape detection.
type rawVariant struct {
	Name       string     `yaml:"name"`
	Doc        string     `yaml:"doc"`
	Directives Directives `yaml:"directives"`
	Fields     yaml.Node  `yaml:"fields"`
}

// rawField is the mapping form of a field.
type rawField struct {
	Type    string     `yaml:"type"`
	Markers Directives `yaml:"markers,omitempty"`
	Tag     string     `yaml:"tag,omitempty"`
	Doc     string     `yaml:"doc,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Variant.
// Accepts:
//   - Scalar: "GameOver" (unit variant)
//   - Map without fields: {name: GameOver, directives: [...]} (unit)
//   - Map with a fields sequence: positional variant
//   - Map with a fields mapping: named variant, YAML order preserved
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		*v = Variant{Name: name, Kind: KindUnit}

		return nil

	case yaml.MappingNode:
		var raw rawVariant

		err := node.Decode(&raw)
		if err != nil {
			return err
		}

		out := Variant{
			Name:       raw.Name,
			Doc:        raw.Doc,
			Directives: raw.Directives,
		}

		fields := &raw.Fields

		switch {
		case fields.Kind == 0, fields.Kind == yaml.ScalarNode && fields.Tag == "!!null":
			out.Kind = KindUnit

		case fields.Kind == yaml.SequenceNode:
			out.Kind = KindPositional

			for _, item := range fields.Content {
				f, err := decodeField(item)
				if err != nil {
					return fmt.Errorf("variant %s: %w", raw.Name, err)
				}

				out.Fields = append(out.Fields, f)
			}

		case fields.Kind == yaml.MappingNode:
			out.Kind = KindNamed

			for i := 0; i+1 < len(fields.Content); i += 2 {
				var name string

				if err := fields.Content[i].Decode(&name); err != nil {
					return fmt.Errorf("variant %s: invalid field name: %w", raw.Name, err)
				}

				f, err := decodeField(fields.Content[i+1])
				if err != nil {
					return fmt.Errorf("variant %s, field %s: %w", raw.Name, name, err)
				}

				f.Name = name
				out.Fields = append(out.Fields, f)
			}

		default:
			return fmt.Errorf("line %d: variant %s: fields must be a sequence or a mapping", fields.Line, raw.Name)
		}

		*v = out

		return nil

	default:
		return fmt.Errorf("line %d: expected variant name or map, got %v", node.Line, node.Kind)
	}
}

// decodeField parses a field given as a type scalar or a {type, markers, tag, doc} map.
func decodeField(node *yaml.Node) (Field, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var typ string

		err := node.Decode(&typ)
		if err != nil {
			return Field{}, err
		}

		return Field{Type: typ}, nil

	case yaml.MappingNode:
		var raw rawField

		err := node.Decode(&raw)
		if err != nil {
			return Field{}, err
		}

		if raw.Type == "" {
			return Field{}, fmt.Errorf("line %d: field map requires a type", node.Line)
		}

		return Field{Type: raw.Type, Markers: raw.Markers, Tag: raw.Tag, Doc: raw.Doc}, nil

	default:
		return Field{}, errors.New("expected field type string or map")
	}
}

// MarshalYAML implements custom YAML marshaling for Variant.
// Plain unit variants are written as a bare name.
func (v Variant) MarshalYAML() (any, error) {
	if v.Kind == KindUnit && v.Doc == "" && len(v.Directives) == 0 {
		return v.Name, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	appendScalar(node, "name", v.Name)

	if v.Doc != "" {
		appendScalar(node, "doc", v.Doc)
	}

	if len(v.Directives) > 0 {
		var dirs yaml.Node
		if err := dirs.Encode(v.Directives); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, scalarNode("directives"), &dirs)
	}

	switch v.Kind {
	case KindPositional:
		seq := &yaml.Node{Kind: yaml.SequenceNode}

		for _, f := range v.Fields {
			item, err := encodeField(f)
			if err != nil {
				return nil, err
			}

			seq.Content = append(seq.Content, item)
		}

		node.Content = append(node.Content, scalarNode("fields"), seq)

	case KindNamed:
		m := &yaml.Node{Kind: yaml.MappingNode}

		for _, f := range v.Fields {
			item, err := encodeField(f)
			if err != nil {
				return nil, err
			}

			m.Content = append(m.Content, scalarNode(f.Name), item)
		}

		node.Content = append(node.Content, scalarNode("fields"), m)

	case KindUnit:
	}

	return node, nil
}

func encodeField(f Field) (*yaml.Node, error) {
	if len(f.Markers) == 0 && f.Tag == "" && f.Doc == "" {
		return scalarNode(f.Type), nil
	}

	var n yaml.Node

	err := n.Encode(rawField{Type: f.Type, Markers: f.Markers, Tag: f.Tag, Doc: f.Doc})
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func appendScalar(node *yaml.Node, key, value string) {
	node.Content = append(node.Content, scalarNode(key), scalarNode(value))
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
