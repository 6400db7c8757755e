// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated example payload.
type ExampleFormat string

// GenerateExampleJSON returns example payload for ref encoded as pretty JSON.
func GenerateExampleJSON(ref Reference) ([]byte, error) {
	typ, err := resolveReference(ref)
	if err != nil {
		return nil, err
	}

	data, err := marshalExampleJSON(Generate(typ))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return data, nil
}

// GenerateExampleYAML returns example payload for ref encoded as YAML with member docs as comments.
func GenerateExampleYAML(ref Reference) ([]byte, error) {
	typ, err := resolveReference(ref)
	if err != nil {
		return nil, err
	}

	rootNode, err := yamlNodeForValue(Generate(typ))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	annotateYAMLNode(rootNode, typ)

	data, err := marshalExampleYAMLNode(rootNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return data, nil
}

// GenerateExample returns example payload for ref encoded in selected format.
func GenerateExample(ref Reference, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExampleFormatJSON:
		return GenerateExampleJSON(ref)
	case ExampleFormatYAML:
		return GenerateExampleYAML(ref)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// resolveReference returns type definition behind caller reference.
func resolveReference(ref Reference) (*TypeDefinition, error) {
	if ref == nil {
		return nil, ErrInvalidReference
	}

	typ := ref.ExampleType()
	if typ == nil {
		return nil, fmt.Errorf("%w: %T does not resolve to a type", ErrInvalidReference, ref)
	}

	return typ, nil
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// marshalExampleJSON serializes example document as JSON indented by two spaces.
func marshalExampleJSON(root *Object) ([]byte, error) {
	compact, err := root.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalExampleYAMLNode serializes example node tree as YAML.
func marshalExampleYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// yamlNodeForValue builds yaml.Node tree from example document keeping key order.
func yamlNodeForValue(value Node) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case Elision:
		return yamlScalarNode("!!str", ElisionKey), nil

	case Scalar:
		switch typed.kind {
		case scalarNumber:
			if strings.ContainsAny(typed.text, ".eE") {
				return yamlScalarNode("!!float", typed.text), nil
			}
			return yamlScalarNode("!!int", typed.text), nil
		case scalarBool:
			return yamlScalarNode("!!bool", typed.text), nil
		case scalarNull:
			return yamlScalarNode("!!null", "null"), nil
		default:
			return yamlScalarNode("!!str", typed.text), nil
		}

	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := typed.oldest(); pair != nil; pair = pair.Next() {
			valueNode, err := yamlNodeForValue(pair.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, yamlScalarNode("!!str", pair.Key), valueNode)
		}
		return node, nil

	case Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, valueNode)
		}
		return node, nil

	default:
		return nil, fmt.Errorf("unsupported example node %T", value)
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// memberDoc is documentation and type of one member keyed by output name.
type memberDoc struct {
	Type    BaseType
	Element *Element
	Doc     string
}

// annotateYAMLNode assigns member docs as head comments to YAML map keys.
func annotateYAMLNode(node *yaml.Node, typ *TypeDefinition) {
	if node == nil || typ == nil || node.Kind != yaml.MappingNode {
		return
	}

	members := collectMemberDocs(typ)
	for index := 0; index+1 < len(node.Content); index += 2 {
		keyNode := node.Content[index]
		valueNode := node.Content[index+1]

		member, ok := members[keyNode.Value]
		if !ok {
			continue
		}

		if comment := memberComment(member); comment != "" {
			keyNode.HeadComment = comment
		}

		if member.Element != nil && member.Element.Collection {
			annotateYAMLSequence(valueNode, *member.Element)
			continue
		}

		if ref, ok := member.Type.(ClassRef); ok {
			annotateYAMLNode(valueNode, ref.Type)
		}
	}
}

// annotateYAMLSequence annotates collection items with their choice types.
func annotateYAMLSequence(node *yaml.Node, element Element) {
	if node.Kind != yaml.SequenceNode {
		return
	}

	index := 0
	for _, choice := range element.Choices {
		for range choice.MaxOccurs.iterations() {
			if index >= len(node.Content) {
				return
			}

			if ref, ok := choice.Type.(ClassRef); ok && !choice.GlobalRef {
				annotateYAMLNode(node.Content[index], ref.Type)
			}

			index++
		}
	}
}

// collectMemberDocs indexes members of type and its bases; subtype members win.
func collectMemberDocs(typ *TypeDefinition) map[string]memberDoc {
	out := make(map[string]memberDoc)
	seen := make(map[string]struct{})

	for current := typ; current != nil; current = current.baseDefinition() {
		name := current.QualifiedName()
		if _, ok := seen[name]; ok {
			break
		}

		seen[name] = struct{}{}

		add := func(key string, member memberDoc) {
			if _, exists := out[key]; !exists {
				out[key] = member
			}
		}

		for _, attribute := range current.Attributes {
			add(attribute.Name, memberDoc{Type: attribute.Type, Doc: attribute.Doc})
		}

		if current.Value != nil {
			add(current.Value.Name, memberDoc{Type: current.Value.Type, Doc: current.Value.Doc})
		}

		for index := range current.Elements {
			element := &current.Elements[index]
			add(element.Name, memberDoc{Type: element.Type, Doc: element.Doc, Element: element})
		}
	}

	return out
}

// memberComment returns member doc or doc of referenced type.
func memberComment(member memberDoc) string {
	if comment := normalizeYAMLComment(member.Doc); comment != "" {
		return comment
	}

	if ref, ok := member.Type.(ClassRef); ok && ref.Type != nil {
		return normalizeYAMLComment(ref.Type.Doc)
	}

	return ""
}

// normalizeYAMLComment strips empty lines from comment body.
func normalizeYAMLComment(comment string) string {
	lines := strings.Split(strings.ReplaceAll(comment, "\r\n", "\n"), "\n")
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		normalized = append(normalized, line)
	}

	return strings.Join(normalized, "\n")
}
