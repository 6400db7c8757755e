// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// schemaFile is the on-disk schema model document.
type schemaFile struct {
	Namespaces   []NamespaceInfo   `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	SimpleTypes  []simpleTypeFile  `json:"simpleTypes,omitempty" yaml:"simpleTypes,omitempty"`
	Types        []typeFile        `json:"types,omitempty" yaml:"types,omitempty"`
	RootElements []rootElementFile `json:"rootElements,omitempty" yaml:"rootElements,omitempty"`
}

// simpleTypeFile declares a named leaf type, for example an enumeration.
type simpleTypeFile struct {
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}

type typeFile struct {
	Value       *memberFile   `json:"value,omitempty" yaml:"value,omitempty"`
	Name        string        `json:"name" yaml:"name"`
	Namespace   string        `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Doc         string        `json:"doc,omitempty" yaml:"doc,omitempty"`
	Base        string        `json:"base,omitempty" yaml:"base,omitempty"`
	Attributes  []memberFile  `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Elements    []elementFile `json:"elements,omitempty" yaml:"elements,omitempty"`
	Polymorphic bool          `json:"polymorphic,omitempty" yaml:"polymorphic,omitempty"`
}

type memberFile struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Doc     string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
	Exclude bool   `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

type elementFile struct {
	memberFile `yaml:",inline"`

	Choices    []choiceFile `json:"choices,omitempty" yaml:"choices,omitempty"`
	Collection bool         `json:"collection,omitempty" yaml:"collection,omitempty"`
	Ref        bool         `json:"ref,omitempty" yaml:"ref,omitempty"`
}

type choiceFile struct {
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	MaxOccurs string `json:"maxOccurs,omitempty" yaml:"maxOccurs,omitempty"`
	Ref       bool   `json:"ref,omitempty" yaml:"ref,omitempty"`
}

type rootElementFile struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Type      string `json:"type" yaml:"type"`
	Doc       string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// LoadSchemaFile reads and parses schema model file.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return ParseSchema(data)
}

// ParseSchema decodes JSON or YAML schema model, resolves type references and validates result.
func ParseSchema(data []byte) (*Schema, error) {
	file, err := decodeSchemaFile(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	schema, err := buildSchema(file)
	if err != nil {
		return nil, err
	}

	if err := ValidateSchema(schema); err != nil {
		return nil, err
	}

	return schema, nil
}

// decodeSchemaFile decodes JSON documents with go-json and everything else as YAML.
func decodeSchemaFile(data []byte) (schemaFile, error) {
	var file schemaFile

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return file, errors.New("empty schema document")
	}

	if trimmed[0] == '{' {
		decoder := json.NewDecoder(bytes.NewReader(trimmed))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&file); err != nil {
			return file, errors.Wrap(err, "decode json")
		}

		return file, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(trimmed))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return file, errors.Wrap(err, "decode yaml")
	}

	return file, nil
}

// schemaResolver resolves type names of one schema document.
type schemaResolver struct {
	lookup *Schema
	leaves map[string]Leaf
}

// buildSchema turns decoded document into linked schema model.
// Types are allocated first so members may reference any type, including their own.
func buildSchema(file schemaFile) (*Schema, error) {
	types := make([]*TypeDefinition, 0, len(file.Types))
	for _, declared := range file.Types {
		types = append(types, &TypeDefinition{
			Name:        strings.TrimSpace(declared.Name),
			Namespace:   strings.TrimSpace(declared.Namespace),
			Doc:         declared.Doc,
			Polymorphic: declared.Polymorphic,
		})
	}

	lookup, err := NewSchema(types, nil, nil)
	if err != nil {
		return nil, err
	}

	resolver := schemaResolver{
		lookup: lookup,
		leaves: make(map[string]Leaf, len(file.SimpleTypes)),
	}

	for _, declared := range file.SimpleTypes {
		leaf, err := simpleTypeLeaf(declared)
		if err != nil {
			return nil, err
		}

		resolver.leaves[leaf.Name] = leaf
	}

	for index, declared := range file.Types {
		if err := resolver.fillType(types[index], declared); err != nil {
			return nil, errors.Wrapf(err, "type %q", types[index].QualifiedName())
		}
	}

	rootElements := make([]*RootElement, 0, len(file.RootElements))
	for _, declared := range file.RootElements {
		element := &RootElement{
			Name:      strings.TrimSpace(declared.Name),
			Namespace: strings.TrimSpace(declared.Namespace),
			Doc:       declared.Doc,
		}

		typ, err := resolver.resolveClass(declared.Type, element.Namespace)
		if err != nil {
			return nil, errors.Wrapf(err, "root element %q", element.QualifiedName())
		}

		element.Type = typ
		rootElements = append(rootElements, element)
	}

	return NewSchema(types, rootElements, file.Namespaces)
}

// simpleTypeLeaf converts declared simple type into leaf.
func simpleTypeLeaf(declared simpleTypeFile) (Leaf, error) {
	leaf := Leaf{
		Name:   strings.TrimSpace(declared.Name),
		Sample: declared.Example,
	}

	switch strings.ToLower(strings.TrimSpace(declared.Kind)) {
	case "", "string":
		leaf.Kind = LeafString
	case "number", "integer":
		leaf.Kind = LeafNumber
	case "boolean":
		leaf.Kind = LeafBoolean
	default:
		return Leaf{}, errors.Wrapf(ErrInvalidSchema, "simple type %q has unknown kind %q", leaf.Name, declared.Kind)
	}

	return leaf, nil
}

// fillType resolves base and members of one declared type.
func (resolver schemaResolver) fillType(typ *TypeDefinition, declared typeFile) error {
	if strings.TrimSpace(declared.Base) != "" {
		base, err := resolver.resolve(declared.Base, typ.Namespace)
		if err != nil {
			return errors.Wrap(err, "base")
		}

		typ.Base = base
	}

	for _, member := range declared.Attributes {
		baseType, err := resolver.resolve(member.Type, typ.Namespace)
		if err != nil {
			return errors.Wrapf(err, "attribute %q", member.Name)
		}

		typ.Attributes = append(typ.Attributes, Attribute{
			Name:    member.Name,
			Doc:     member.Doc,
			Type:    baseType,
			Example: member.override(),
		})
	}

	if declared.Value != nil {
		baseType, err := resolver.resolve(declared.Value.Type, typ.Namespace)
		if err != nil {
			return errors.Wrapf(err, "value %q", declared.Value.Name)
		}

		typ.Value = &Value{
			Name:    declared.Value.Name,
			Doc:     declared.Value.Doc,
			Type:    baseType,
			Example: declared.Value.override(),
		}
	}

	for _, declaredElement := range declared.Elements {
		element, err := resolver.element(declaredElement, typ.Namespace)
		if err != nil {
			return errors.Wrapf(err, "element %q", declaredElement.Name)
		}

		typ.Elements = append(typ.Elements, element)
	}

	return nil
}

// element resolves one element; elements without declared choices get a single variant.
func (resolver schemaResolver) element(declared elementFile, namespace string) (Element, error) {
	element := Element{
		Name:       declared.Name,
		Doc:        declared.Doc,
		Example:    declared.override(),
		Collection: declared.Collection,
		GlobalRef:  declared.Ref,
	}

	if strings.TrimSpace(declared.Type) != "" {
		baseType, err := resolver.resolve(declared.Type, namespace)
		if err != nil {
			return Element{}, err
		}

		element.Type = baseType
	}

	if len(declared.Choices) == 0 {
		occurs := OccursOne
		if declared.Collection {
			occurs = OccursUnbounded
		}

		element.Choices = []Choice{{Type: element.Type, MaxOccurs: occurs, GlobalRef: declared.Ref}}
		return element, nil
	}

	for index, declaredChoice := range declared.Choices {
		choice := Choice{
			Type:      element.Type,
			MaxOccurs: parseOccurs(declaredChoice.MaxOccurs),
			GlobalRef: declaredChoice.Ref,
		}

		if strings.TrimSpace(declaredChoice.Type) != "" {
			baseType, err := resolver.resolve(declaredChoice.Type, namespace)
			if err != nil {
				return Element{}, errors.Wrapf(err, "choice %d", index)
			}

			choice.Type = baseType
		}

		element.Choices = append(element.Choices, choice)
	}

	return element, nil
}

// resolve finds declared type, declared simple type or built-in leaf by name.
func (resolver schemaResolver) resolve(name, namespace string) (BaseType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(ErrUnknownType, "empty type reference")
	}

	if typ, err := resolver.lookup.Type(qualifiedName(namespace, name)); err == nil {
		return ClassRef{Type: typ}, nil
	}

	typ, err := resolver.lookup.Type(name)
	if err == nil {
		return ClassRef{Type: typ}, nil
	}

	if errors.Is(err, ErrAmbiguousType) {
		return nil, err
	}

	if leaf, ok := resolver.leaves[name]; ok {
		return leaf, nil
	}

	if leaf, ok := LookupLeaf(strings.TrimPrefix(name, "xs:")); ok {
		return leaf, nil
	}

	return nil, errors.Wrapf(ErrUnknownType, "resolve %q", name)
}

// resolveClass resolves name that must denote a declared type.
func (resolver schemaResolver) resolveClass(name, namespace string) (*TypeDefinition, error) {
	baseType, err := resolver.resolve(name, namespace)
	if err != nil {
		return nil, err
	}

	ref, ok := baseType.(ClassRef)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q is not a type definition", name)
	}

	return ref.Type, nil
}

// override returns example override declared on member, if any.
func (member memberFile) override() *ExampleOverride {
	if member.Example == "" && !member.Exclude {
		return nil
	}

	return &ExampleOverride{Value: member.Example, Exclude: member.Exclude}
}

// parseOccurs maps maxOccurs text to occurrence indicator.
func parseOccurs(value string) Occurs {
	if strings.TrimSpace(value) == "1" {
		return OccursOne
	}

	return OccursUnbounded
}
