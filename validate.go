// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import (
	"errors"
	"fmt"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
)

// baseTypeRule requires a leaf or a class reference that points at a type.
var baseTypeRule = govy.NewRule(func(typ BaseType) error {
	switch typed := typ.(type) {
	case nil:
		return errors.New("type is required")
	case ClassRef:
		if typed.Type == nil {
			return errors.New("class reference has no type definition")
		}
	}

	return nil
})

var choiceValidator = govy.New(
	govy.For(func(choice Choice) BaseType { return choice.Type }).
		WithName("type").
		Rules(baseTypeRule),
).WithName("Choice")

var attributeValidator = govy.New(
	govy.For(func(attribute Attribute) string { return attribute.Name }).
		WithName("name").
		Rules(rules.StringNotEmpty()),
	govy.For(func(attribute Attribute) BaseType { return attribute.Type }).
		WithName("type").
		Rules(baseTypeRule),
).WithName("Attribute")

var valueValidator = govy.New(
	govy.For(func(value Value) string { return value.Name }).
		WithName("name").
		Rules(rules.StringNotEmpty()),
	govy.For(func(value Value) BaseType { return value.Type }).
		WithName("type").
		Rules(baseTypeRule),
).WithName("Value")

var elementValidator = govy.New(
	govy.For(func(element Element) string { return element.Name }).
		WithName("name").
		Rules(rules.StringNotEmpty()),
	govy.For(func(element Element) Element { return element }).
		Rules(govy.NewRule(func(element Element) error {
			if element.Collection && len(element.Choices) == 0 {
				return errors.New("collection element must declare at least one choice")
			}

			if !element.Collection && !element.GlobalRef {
				return baseTypeRule.Validate(element.Type)
			}

			return nil
		})),
	govy.ForSlice(func(element Element) []Choice { return element.Choices }).
		WithName("choices").
		IncludeForEach(choiceValidator),
).WithName("Element")

var typeDefinitionValidator = govy.New(
	govy.For(func(typ TypeDefinition) string { return typ.Name }).
		WithName("name").
		Rules(rules.StringNotEmpty()),
	govy.For(func(typ TypeDefinition) TypeDefinition { return typ }).
		Rules(
			govy.NewRule(func(typ TypeDefinition) error {
				if typ.Value != nil && len(typ.Elements) > 0 {
					return errors.New("value and elements cannot be declared together")
				}

				return nil
			}),
			govy.NewRule(func(typ TypeDefinition) error {
				return checkAcyclicBase(&typ)
			}),
		),
	govy.ForSlice(func(typ TypeDefinition) []Attribute { return typ.Attributes }).
		WithName("attributes").
		IncludeForEach(attributeValidator),
	govy.ForPointer(func(typ TypeDefinition) *Value { return typ.Value }).
		WithName("value").
		Include(valueValidator),
	govy.ForSlice(func(typ TypeDefinition) []Element { return typ.Elements }).
		WithName("elements").
		IncludeForEach(elementValidator),
).WithName("TypeDefinition")

var rootElementValidator = govy.New(
	govy.For(func(element RootElement) string { return element.Name }).
		WithName("name").
		Rules(rules.StringNotEmpty()),
	govy.ForPointer(func(element RootElement) *TypeDefinition { return element.Type }).
		WithName("type").
		Required(),
).WithName("RootElement")

// ValidateSchema checks structural invariants the example generator relies on.
func ValidateSchema(schema *Schema) error {
	if schema == nil {
		return fmt.Errorf("%w: schema is nil", ErrInvalidSchema)
	}

	for _, typ := range schema.Types() {
		if err := ValidateTypeDefinition(typ); err != nil {
			return err
		}
	}

	for _, element := range schema.RootElements() {
		if err := rootElementValidator.Validate(*element); err != nil {
			return fmt.Errorf("%w: root element %q: %w", ErrInvalidSchema, element.QualifiedName(), err)
		}
	}

	return nil
}

// ValidateTypeDefinition checks one type definition and its members.
func ValidateTypeDefinition(typ *TypeDefinition) error {
	if typ == nil {
		return fmt.Errorf("%w: type definition is nil", ErrInvalidSchema)
	}

	if err := typeDefinitionValidator.Validate(*typ); err != nil {
		return fmt.Errorf("%w: type %q: %w", ErrInvalidSchema, typ.QualifiedName(), err)
	}

	return nil
}

// checkAcyclicBase walks base chain and fails when a type inherits from itself.
func checkAcyclicBase(typ *TypeDefinition) error {
	seen := map[string]struct{}{typ.QualifiedName(): {}}
	for base := typ.baseDefinition(); base != nil; base = base.baseDefinition() {
		name := base.QualifiedName()
		if _, ok := seen[name]; ok {
			return fmt.Errorf("base type chain is cyclic at %q", name)
		}

		seen[name] = struct{}{}
	}

	return nil
}
