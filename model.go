// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import "strings"

const (
	// DefaultExample is the override value that defers to the base type canonical example.
	DefaultExample = "##default"
	// ElisionKey is the object key and fallback literal used for elided content.
	ElisionKey = "..."
	// DiscriminatorKey is the property that carries polymorphic type names.
	DiscriminatorKey = "@type"
)

const (
	// OccursUnbounded marks a choice that may repeat.
	OccursUnbounded Occurs = iota
	// OccursOne marks a choice that appears exactly once.
	OccursOne
)

// Occurs is the maximum occurrence indicator of a choice variant.
type Occurs int

// iterations returns how many example items one choice variant contributes.
func (occurs Occurs) iterations() int {
	if occurs == OccursOne {
		return 1
	}

	return 2
}

// Reference is anything resolvable to the type definition of an example.
type Reference interface {
	ExampleType() *TypeDefinition
}

// BaseType is the type of a member or the base of a type definition.
// It is either a Leaf or a ClassRef.
type BaseType interface {
	isBaseType()
}

// ClassRef references another type definition.
type ClassRef struct {
	Type *TypeDefinition
}

func (ClassRef) isBaseType() {}

// TypeDefinition describes one structured type of the schema model.
type TypeDefinition struct {
	// Base is the parent type; only ClassRef bases contribute members.
	Base BaseType
	// Value is the simple content member; exclusive with Elements.
	Value *Value

	Name      string
	Namespace string
	Doc       string

	Attributes []Attribute
	Elements   []Element

	// Polymorphic types carry a DiscriminatorKey entry in examples.
	Polymorphic bool
}

// QualifiedName returns the "{namespace}name" form of the type name.
func (typ *TypeDefinition) QualifiedName() string {
	return qualifiedName(typ.Namespace, typ.Name)
}

// ExampleType implements Reference.
func (typ *TypeDefinition) ExampleType() *TypeDefinition {
	return typ
}

// baseDefinition returns base type definition when base is a class reference.
func (typ *TypeDefinition) baseDefinition() *TypeDefinition {
	ref, ok := typ.Base.(ClassRef)
	if !ok {
		return nil
	}

	return ref.Type
}

// Attribute is a scalar-shaped member rendered as a flat key.
type Attribute struct {
	Type    BaseType
	Example *ExampleOverride
	Name    string
	Doc     string
}

// Value is the simple content member of a type without elements.
type Value struct {
	Type    BaseType
	Example *ExampleOverride
	Name    string
	Doc     string
}

// Element is a structured member, possibly repeatable.
type Element struct {
	Type    BaseType
	Example *ExampleOverride
	Name    string
	Doc     string
	Choices []Choice

	Collection bool
	// GlobalRef marks elements documented as standalone declarations.
	GlobalRef bool
}

// RepeatedElement returns collection element modelled as a single unbounded choice.
func RepeatedElement(name string, typ BaseType) Element {
	return Element{
		Name:       name,
		Type:       typ,
		Collection: true,
		Choices:    []Choice{{Type: typ, MaxOccurs: OccursUnbounded}},
	}
}

// Choice is one variant inside a repeatable or choice element.
type Choice struct {
	Type      BaseType
	MaxOccurs Occurs
	GlobalRef bool
}

// ExampleOverride is a documentation hint attached to a member.
type ExampleOverride struct {
	// Value is the literal example; empty or DefaultExample means no override.
	Value   string
	Exclude bool
}

// excluded reports whether member must be omitted from examples.
func (override *ExampleOverride) excluded() bool {
	return override != nil && override.Exclude
}

// literal returns override value or fallback when override defers to default.
func (override *ExampleOverride) literal(fallback string) string {
	if override == nil || override.Value == "" || override.Value == DefaultExample {
		return fallback
	}

	return override.Value
}

// RootElement is a root element declaration that points at a type.
type RootElement struct {
	Type      *TypeDefinition
	Name      string
	Namespace string
	Doc       string
}

// QualifiedName returns the "{namespace}name" form of the element name.
func (element *RootElement) QualifiedName() string {
	return qualifiedName(element.Namespace, element.Name)
}

// ExampleType implements Reference.
func (element *RootElement) ExampleType() *TypeDefinition {
	if element == nil {
		return nil
	}

	return element.Type
}

// qualifiedName joins namespace and local name in Clark notation.
func qualifiedName(namespace, name string) string {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return name
	}

	return "{" + namespace + "}" + name
}
