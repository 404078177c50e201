package schemadoc

// Package schemadoc imports schema documents (a JSON-Schema-flavoured
// subset, in YAML or JSON syntax) into schema node trees, so that type
// declarations can be generated from documents authored outside Go.

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/brainthinks/express-zod-api/schema"
)

// Definition is one named schema imported from a multi-document input.
type Definition struct {
	Name   string
	Schema schema.Node
}

// Import parses the first document of data into a schema node tree.
// JSON inputs parse through the same path; YAML is a superset of the
// JSON syntax this package accepts.
func Import(data []byte) (schema.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("schemadoc: invalid document: %w", err)
	}
	body := documentBody(&root)
	if body == nil {
		return nil, errors.New("schemadoc: empty document")
	}
	return importNode(body)
}

// ImportAll parses a multi-document input, naming each schema after
// its title field. Untitled documents get Doc1, Doc2, ... by position.
func ImportAll(data []byte) ([]Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []Definition
	for i := 1; ; i++ {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("schemadoc: document %d: %w", i, err)
		}
		body := documentBody(&root)
		if body == nil {
			continue
		}
		node, err := importNode(body)
		if err != nil {
			return nil, fmt.Errorf("schemadoc: document %d: %w", i, err)
		}
		name := scalarEntry(body, "title")
		if name == "" {
			name = fmt.Sprintf("Doc%d", i)
		}
		out = append(out, Definition{Name: name, Schema: node})
	}
	return out, nil
}

func documentBody(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return root.Content[0]
	}
	if root.Kind == yaml.MappingNode {
		return root
	}
	return nil
}

func importNode(n *yaml.Node) (schema.Node, error) {
	if n.Kind == yaml.AliasNode {
		return importNode(n.Alias)
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schemadoc: expected a mapping at line %d", n.Line)
	}

	if c := mapEntry(n, "const"); c != nil {
		return constSchema(c)
	}
	if e := mapEntry(n, "enum"); e != nil {
		return enumSchema(e)
	}
	if o := mapEntry(n, "oneOf"); o != nil {
		return unionSchema(o)
	}

	base, err := typedSchema(n)
	if err != nil {
		return nil, err
	}
	if scalarEntry(n, "nullable") == "true" {
		base = schema.NullableOf(base)
	}
	if d := mapEntry(n, "default"); d != nil {
		var v any
		if err := d.Decode(&v); err != nil {
			return nil, fmt.Errorf("schemadoc: bad default at line %d: %w", d.Line, err)
		}
		base = &schema.Default{Inner: base, Value: v}
	}
	return base, nil
}

func typedSchema(n *yaml.Node) (schema.Node, error) {
	switch scalarEntry(n, "type") {
	case "string":
		switch scalarEntry(n, "format") {
		case "date-time", "date":
			return schema.Date(), nil
		case "binary":
			return schema.BufferFile(), nil
		}
		return schema.String(), nil
	case "number", "integer":
		return schema.Number(), nil
	case "boolean":
		return schema.Bool(), nil
	case "null":
		return schema.Null(), nil
	case "array":
		items := mapEntry(n, "items")
		if items == nil {
			return schema.ArrayOf(schema.Any()), nil
		}
		elem, err := importNode(items)
		if err != nil {
			return nil, err
		}
		return schema.ArrayOf(elem), nil
	case "object":
		return objectSchema(n)
	case "":
		return schema.Any(), nil
	default:
		// Unrecognized types degrade the same way the converter does.
		return schema.Any(), nil
	}
}

// objectSchema builds an object from properties (order preserved) and
// required, or a record when only additionalProperties carries a
// schema.
func objectSchema(n *yaml.Node) (schema.Node, error) {
	props := mapEntry(n, "properties")
	if props == nil {
		if ap := mapEntry(n, "additionalProperties"); ap != nil && ap.Kind == yaml.MappingNode {
			value, err := importNode(ap)
			if err != nil {
				return nil, err
			}
			return &schema.Record{Key: schema.String(), Value: value}, nil
		}
		return schema.ObjectOf(), nil
	}
	if props.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schemadoc: properties must be a mapping at line %d", props.Line)
	}

	required := map[string]bool{}
	if req := mapEntry(n, "required"); req != nil && req.Kind == yaml.SequenceNode {
		for _, item := range req.Content {
			required[item.Value] = true
		}
	}

	fields := make([]schema.Field, 0, len(props.Content)/2)
	for i := 0; i+1 < len(props.Content); i += 2 {
		name := props.Content[i].Value
		child, err := importNode(props.Content[i+1])
		if err != nil {
			return nil, err
		}
		if !required[name] {
			child = schema.OptionalOf(child)
		}
		f := schema.F(name, child)
		if desc := scalarEntry(props.Content[i+1], "description"); desc != "" {
			f = f.Describe(desc)
		}
		fields = append(fields, f)
	}
	return schema.ObjectOf(fields...), nil
}

func constSchema(n *yaml.Node) (schema.Node, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("schemadoc: bad const at line %d: %w", n.Line, err)
	}
	return schema.Lit(v), nil
}

func enumSchema(n *yaml.Node) (schema.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("schemadoc: enum must be a sequence at line %d", n.Line)
	}
	options := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		options = append(options, item.Value)
	}
	return schema.EnumOf(options...), nil
}

func unionSchema(n *yaml.Node) (schema.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("schemadoc: oneOf must be a sequence at line %d", n.Line)
	}
	options := make([]schema.Node, 0, len(n.Content))
	for _, item := range n.Content {
		o, err := importNode(item)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return schema.UnionOf(options...), nil
}

// mapEntry returns the value node for key in a mapping, or nil.
func mapEntry(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// scalarEntry returns the scalar value for key in a mapping, or "".
func scalarEntry(n *yaml.Node, key string) string {
	v := mapEntry(n, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return ""
	}
	return v.Value
}
