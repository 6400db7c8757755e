// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

// exampleBuilder converts type definitions into example documents.
// One builder serves one Generate call; activeTypes must not be shared.
type exampleBuilder struct {
	activeTypes map[string]int
}

// Generate returns example document for type definition.
func Generate(typ *TypeDefinition) *Object {
	builder := exampleBuilder{
		activeTypes: make(map[string]int),
	}

	return builder.buildType(typ)
}

// buildType expands type definition into a fresh object.
func (builder *exampleBuilder) buildType(typ *TypeDefinition) *Object {
	out := NewObject()
	if typ != nil {
		builder.expandInto(typ, out)
	}

	return out
}

// expandInto merges members of type and its base chain into out.
//
// A type already being expanded on the current path only contributes the
// elision key. Base types are merged afterwards in both cases, so a truncated
// node still carries inherited members, and the most specific polymorphic type
// sets the discriminator first.
func (builder *exampleBuilder) expandInto(typ *TypeDefinition, out *Object) {
	if release, ok := builder.enterType(typ.QualifiedName()); ok {
		if typ.Polymorphic && !out.Has(DiscriminatorKey) {
			out.Set(DiscriminatorKey, String(typ.QualifiedName()))
		}

		for _, attribute := range typ.Attributes {
			builder.putScalarMember(out, attribute.Name, attribute.Type, attribute.Example)
		}

		if typ.Value != nil {
			builder.putScalarMember(out, typ.Value.Name, typ.Value.Type, typ.Value.Example)
		} else {
			for _, element := range typ.Elements {
				builder.putElement(out, element)
			}
		}

		release()
	} else {
		out.Set(ElisionKey, Elision{})
	}

	if base := typ.baseDefinition(); base != nil {
		builder.expandInto(base, out)
	}
}

// enterType registers active type name and returns release callback.
func (builder *exampleBuilder) enterType(name string) (func(), bool) {
	if builder.activeTypes[name] > 0 {
		return nil, false
	}

	builder.activeTypes[name]++
	return func() {
		builder.activeTypes[name]--
		if builder.activeTypes[name] <= 0 {
			delete(builder.activeTypes, name)
		}
	}, true
}

// putScalarMember writes attribute or value example under key.
func (builder *exampleBuilder) putScalarMember(out *Object, key string, typ BaseType, override *ExampleOverride) {
	if override.excluded() {
		return
	}

	out.Set(key, builder.buildValue(typ, override.literal("")))
}

// putElement writes element example under its key.
func (builder *exampleBuilder) putElement(out *Object, element Element) {
	if element.Example.excluded() {
		return
	}

	if !element.Collection {
		if element.GlobalRef {
			out.Set(element.Name, NewObject())
			return
		}

		out.Set(element.Name, builder.buildValue(element.Type, element.Example.literal(ElisionKey)))
		return
	}

	literal := element.Example.literal("")
	items := make(Array, 0, 2*len(element.Choices))
	for _, choice := range element.Choices {
		for index := range choice.MaxOccurs.iterations() {
			switch {
			case choice.GlobalRef:
				items = append(items, NewObject())
			case index == 0:
				items = append(items, builder.buildValue(choice.Type, literal))
			default:
				items = append(items, Elision{})
			}
		}
	}

	out.Set(element.Name, items)
}

// buildValue renders leaf literal or expands referenced type.
// Class types always expand structurally; literal applies to leaves only.
func (builder *exampleBuilder) buildValue(typ BaseType, literal string) Node {
	switch typed := typ.(type) {
	case ClassRef:
		return builder.buildType(typed.Type)
	case Leaf:
		return typed.example(literal)
	default:
		return Leaf{}.example(literal)
	}
}
