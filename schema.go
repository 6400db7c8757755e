// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import (
	"fmt"
	"strings"
)

// NamespaceInfo describes the schema document that owns one namespace.
type NamespaceInfo struct {
	URI      string `json:"uri" yaml:"uri"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Doc      string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Schema is a resolved schema model: types, root elements and namespaces.
type Schema struct {
	typesByQName    map[string]*TypeDefinition
	typesByName     map[string][]*TypeDefinition
	elementsByQName map[string]*RootElement
	elementsByName  map[string][]*RootElement
	namespaces      map[string]NamespaceInfo

	types        []*TypeDefinition
	rootElements []*RootElement
}

// NewSchema returns schema indexing given types, root elements and namespaces.
func NewSchema(types []*TypeDefinition, rootElements []*RootElement, namespaces []NamespaceInfo) (*Schema, error) {
	schema := &Schema{
		typesByQName:    make(map[string]*TypeDefinition, len(types)),
		typesByName:     make(map[string][]*TypeDefinition, len(types)),
		elementsByQName: make(map[string]*RootElement, len(rootElements)),
		elementsByName:  make(map[string][]*RootElement, len(rootElements)),
		namespaces:      make(map[string]NamespaceInfo, len(namespaces)),
	}

	for _, typ := range types {
		qualified := typ.QualifiedName()
		if _, exists := schema.typesByQName[qualified]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateType, qualified)
		}

		schema.types = append(schema.types, typ)
		schema.typesByQName[qualified] = typ
		schema.typesByName[typ.Name] = append(schema.typesByName[typ.Name], typ)
	}

	for _, element := range rootElements {
		qualified := element.QualifiedName()
		if _, exists := schema.elementsByQName[qualified]; exists {
			return nil, fmt.Errorf("%w: root element %q", ErrDuplicateType, qualified)
		}

		schema.rootElements = append(schema.rootElements, element)
		schema.elementsByQName[qualified] = element
		schema.elementsByName[element.Name] = append(schema.elementsByName[element.Name], element)
	}

	for _, info := range namespaces {
		schema.namespaces[strings.TrimSpace(info.URI)] = info
	}

	return schema, nil
}

// Types returns type definitions in declaration order.
func (schema *Schema) Types() []*TypeDefinition {
	return schema.types
}

// RootElements returns root element declarations in declaration order.
func (schema *Schema) RootElements() []*RootElement {
	return schema.rootElements
}

// Type returns type definition by qualified name or by unambiguous plain name.
func (schema *Schema) Type(name string) (*TypeDefinition, error) {
	name = strings.TrimSpace(name)
	if typ, ok := schema.typesByQName[name]; ok {
		return typ, nil
	}

	switch candidates := schema.typesByName[name]; len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
	case 1:
		return candidates[0], nil
	default:
		return nil, fmt.Errorf("%w %q", ErrAmbiguousType, name)
	}
}

// RootElement returns root element declaration by qualified name or by unambiguous plain name.
func (schema *Schema) RootElement(name string) (*RootElement, bool) {
	name = strings.TrimSpace(name)
	if element, ok := schema.elementsByQName[name]; ok {
		return element, true
	}

	candidates := schema.elementsByName[name]
	if len(candidates) != 1 {
		return nil, false
	}

	return candidates[0], true
}

// Lookup resolves name to a root element, or to a type when no root element matches.
func (schema *Schema) Lookup(name string) (Reference, error) {
	if element, ok := schema.RootElement(name); ok {
		return element, nil
	}

	typ, err := schema.Type(name)
	if err != nil {
		return nil, err
	}

	return typ, nil
}

// SchemaForNamespace returns schema descriptor registered for namespace URI.
func (schema *Schema) SchemaForNamespace(uri string) (NamespaceInfo, bool) {
	info, ok := schema.namespaces[strings.TrimSpace(uri)]
	return info, ok
}
