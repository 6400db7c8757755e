// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

/*
Package exampledoc generates example JSON and YAML documents from a schema
model of types, attributes, elements and root elements.

Every type expands into an ordered object: attributes first, then the value
or the elements, then members inherited from the base type. A type that is
already being expanded on the current path is truncated to a single "..."
key, so recursive models always terminate. Collections show one example item
per choice followed by a "..." marker when more items may occur.

Load a schema model file (YAML or JSON) and generate an example:

	schema, err := exampledoc.LoadSchemaFile("gedcomx.yaml")
	if err != nil {
		return err
	}

	ref, err := schema.Lookup("person")
	if err != nil {
		return err
	}

	jsonExample, err := exampledoc.GenerateExampleJSON(ref)
	if err != nil {
		return err
	}

	fmt.Println(string(jsonExample))

YAML examples carry member documentation as comments:

	yamlExample, err := exampledoc.GenerateExample(ref, exampledoc.ExampleFormatYAML)
	if err != nil {
		return err
	}

	fmt.Print(string(yamlExample))

Models can also be built in code and expanded into the document tree:

	stringLeaf, _ := exampledoc.LookupLeaf("string")
	name := &exampledoc.TypeDefinition{
		Name: "Name",
		Attributes: []exampledoc.Attribute{{
			Name:    "lang",
			Type:    stringLeaf,
			Example: &exampledoc.ExampleOverride{Value: "en"},
		}},
	}

	doc := exampledoc.Generate(name)
	fmt.Println(doc.Keys())
*/
package exampledoc
