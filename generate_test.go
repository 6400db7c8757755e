// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conclusionNamespace = "http://gedcomx.org/conclusion/v1/"

var stringLeaf = Leaf{Name: "string", Kind: LeafString}

func TestGenerateGender(t *testing.T) {
	t.Parallel()

	gender := &TypeDefinition{
		Name: "Gender",
		Attributes: []Attribute{
			{Name: "type", Type: Leaf{Name: "GenderType", Kind: LeafString}},
		},
	}

	data, err := GenerateExampleJSON(gender)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"...\"\n}", string(data))
}

func TestGenerateEventWithInheritance(t *testing.T) {
	t.Parallel()

	event := eventFixture()
	doc := Generate(event)

	assert.Equal(t, []string{DiscriminatorKey, "type", "date", "place", "id", "attribution"}, doc.Keys())
	assert.JSONEq(t, `{
		"@type": "{http://gedcomx.org/conclusion/v1/}Event",
		"type": "...",
		"date": {"original": "...", "normalized": "2012-01-01"},
		"place": {"original": "..."},
		"id": "...",
		"attribution": {"contributor": "..."}
	}`, mustMarshalJSON(t, doc))
}

func TestGenerateCycleUsesElisionMarker(t *testing.T) {
	t.Parallel()

	base := &TypeDefinition{
		Name:       "Base",
		Attributes: []Attribute{{Name: "id", Type: stringLeaf}},
	}
	person := &TypeDefinition{
		Name:       "Person",
		Base:       ClassRef{Type: base},
		Attributes: []Attribute{{Name: "name", Type: stringLeaf}},
	}
	person.Elements = []Element{{Name: "self", Type: ClassRef{Type: person}}}

	doc := Generate(person)
	assert.Equal(t, []string{"name", "self", "id"}, doc.Keys())

	self, ok := doc.Get("self")
	require.True(t, ok)
	selfObject, ok := self.(*Object)
	require.True(t, ok, "self must be an object, got %T", self)

	assert.Equal(t, []string{ElisionKey, "id"}, selfObject.Keys())
	marker, _ := selfObject.Get(ElisionKey)
	assert.Equal(t, Elision{}, marker)
}

func TestGenerateMutualRecursionTerminates(t *testing.T) {
	t.Parallel()

	left := &TypeDefinition{Name: "Left"}
	right := &TypeDefinition{Name: "Right"}
	left.Elements = []Element{{Name: "right", Type: ClassRef{Type: right}}}
	right.Elements = []Element{RepeatedElement("lefts", ClassRef{Type: left})}

	assert.JSONEq(t, `{
		"right": {
			"lefts": [{"...": "..."}, "..."]
		}
	}`, mustMarshalJSON(t, Generate(left)))
}

func TestGenerateOverrides(t *testing.T) {
	t.Parallel()

	place := &TypeDefinition{
		Name:       "Place",
		Attributes: []Attribute{{Name: "original", Type: stringLeaf}},
	}
	record := &TypeDefinition{
		Name: "Record",
		Attributes: []Attribute{
			{Name: "label", Type: stringLeaf, Example: &ExampleOverride{Value: "42"}},
			{Name: "count", Type: Leaf{Name: "int", Kind: LeafNumber, Sample: "12345"}, Example: &ExampleOverride{Value: "42"}},
			{Name: "size", Type: Leaf{Name: "int", Kind: LeafNumber, Sample: "12345"}, Example: &ExampleOverride{Value: "huge"}},
			{Name: "flag", Type: Leaf{Name: "boolean", Kind: LeafBoolean, Sample: "true"}},
			{Name: "note", Type: stringLeaf, Example: &ExampleOverride{Value: DefaultExample}},
		},
		Elements: []Element{
			{Name: "place", Type: ClassRef{Type: place}, Example: &ExampleOverride{Value: "not-a-place"}},
			{Name: "amount", Type: Leaf{Name: "int", Kind: LeafNumber, Sample: "12345"}},
		},
	}

	doc := Generate(record)
	assert.JSONEq(t, `{
		"label": "42",
		"count": 42,
		"size": "huge",
		"flag": true,
		"note": "...",
		"place": {"original": "..."},
		"amount": "..."
	}`, mustMarshalJSON(t, doc))

	label, _ := doc.Get("label")
	assert.Equal(t, String("42"), label)
}

func TestGenerateExcludedMembers(t *testing.T) {
	t.Parallel()

	exclude := &ExampleOverride{Value: "ignored", Exclude: true}
	typ := &TypeDefinition{
		Name: "Hidden",
		Attributes: []Attribute{
			{Name: "visible", Type: stringLeaf},
			{Name: "secret", Type: stringLeaf, Example: exclude},
		},
		Elements: []Element{
			{Name: "internal", Type: stringLeaf, Example: exclude},
			{Name: "items", Type: stringLeaf, Collection: true, Example: exclude, Choices: []Choice{{Type: stringLeaf}}},
		},
	}

	assert.Equal(t, []string{"visible"}, Generate(typ).Keys())

	valueType := &TypeDefinition{
		Name:  "Text",
		Value: &Value{Name: "value", Type: stringLeaf, Example: exclude},
	}
	assert.Equal(t, 0, Generate(valueType).Len())
}

func TestGenerateValueSkipsElements(t *testing.T) {
	t.Parallel()

	typ := &TypeDefinition{
		Name:       "TextValue",
		Attributes: []Attribute{{Name: "lang", Type: Leaf{Name: "language", Kind: LeafString, Sample: "en"}}},
		Value:      &Value{Name: "value", Type: stringLeaf, Example: &ExampleOverride{Value: "hello"}},
		Elements:   []Element{{Name: "ignored", Type: stringLeaf}},
	}

	assert.JSONEq(t, `{"lang": "en", "value": "hello"}`, mustMarshalJSON(t, Generate(typ)))
}

func TestGenerateDiscriminatorPrecedence(t *testing.T) {
	t.Parallel()

	parent := &TypeDefinition{
		Name:        "Conclusion",
		Namespace:   conclusionNamespace,
		Polymorphic: true,
		Attributes:  []Attribute{{Name: "id", Type: stringLeaf}},
	}
	child := &TypeDefinition{
		Name:        "Fact",
		Namespace:   conclusionNamespace,
		Polymorphic: true,
		Base:        ClassRef{Type: parent},
		Attributes:  []Attribute{{Name: "value", Type: stringLeaf}},
	}

	doc := Generate(child)
	assert.Equal(t, []string{DiscriminatorKey, "value", "id"}, doc.Keys())

	discriminator, _ := doc.Get(DiscriminatorKey)
	assert.Equal(t, String("{"+conclusionNamespace+"}Fact"), discriminator)

	plain := &TypeDefinition{Name: "Note", Base: ClassRef{Type: parent}}
	discriminator, _ = Generate(plain).Get(DiscriminatorKey)
	assert.Equal(t, String("{"+conclusionNamespace+"}Conclusion"), discriminator)
}

func TestGenerateCollectionCardinality(t *testing.T) {
	t.Parallel()

	item := &TypeDefinition{
		Name:       "Item",
		Attributes: []Attribute{{Name: "id", Type: stringLeaf}},
	}
	typ := &TypeDefinition{
		Name: "Bag",
		Elements: []Element{
			RepeatedElement("names", stringLeaf),
			{
				Name:       "single",
				Type:       stringLeaf,
				Collection: true,
				Choices:    []Choice{{Type: stringLeaf, MaxOccurs: OccursOne}},
			},
			{
				Name:       "mixed",
				Collection: true,
				Choices: []Choice{
					{Type: ClassRef{Type: item}, MaxOccurs: OccursUnbounded},
					{Type: Leaf{Name: "int", Kind: LeafNumber, Sample: "7"}, MaxOccurs: OccursOne},
				},
			},
			{
				Name:       "tagged",
				Collection: true,
				Example:    &ExampleOverride{Value: "tag"},
				Choices:    []Choice{{Type: stringLeaf}},
			},
		},
	}

	doc := Generate(typ)

	names := mustArray(t, doc, "names")
	require.Len(t, names, 2)
	assert.Equal(t, String(ElisionKey), names[0])
	assert.Equal(t, Elision{}, names[1])

	assert.Len(t, mustArray(t, doc, "single"), 1)

	mixed := mustArray(t, doc, "mixed")
	require.Len(t, mixed, 3)
	assert.IsType(t, &Object{}, mixed[0])
	assert.Equal(t, Elision{}, mixed[1])
	assert.Equal(t, Number("7"), mixed[2])

	assert.JSONEq(t, `["tag", "..."]`, mustMarshalJSON(t, mustArray(t, doc, "tagged")))
}

func TestGenerateGlobalReferencePlaceholders(t *testing.T) {
	t.Parallel()

	documented := &TypeDefinition{
		Name:       "Documented",
		Attributes: []Attribute{{Name: "id", Type: stringLeaf}},
	}
	typ := &TypeDefinition{
		Name: "Holder",
		Elements: []Element{
			{Name: "one", Type: ClassRef{Type: documented}, GlobalRef: true},
			{
				Name:       "many",
				Collection: true,
				Choices:    []Choice{{Type: ClassRef{Type: documented}, GlobalRef: true}},
			},
		},
	}

	assert.JSONEq(t, `{"one": {}, "many": [{}, {}]}`, mustMarshalJSON(t, Generate(typ)))
}

func TestGenerateNilType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Generate(nil).Len())
}

func TestGenerateConcurrentCallsAreIsolated(t *testing.T) {
	t.Parallel()

	event := eventFixture()
	node := &TypeDefinition{Name: "Node"}
	node.Elements = []Element{{Name: "next", Type: ClassRef{Type: node}}, {Name: "event", Type: ClassRef{Type: event}}}

	want := mustMarshalJSON(t, Generate(node))

	const workers = 16
	results := make([]string, workers)
	var wg sync.WaitGroup
	for index := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := Generate(node).MarshalJSON()
			if err != nil {
				results[index] = err.Error()
				return
			}

			results[index] = string(data)
		}()
	}

	wg.Wait()
	for _, got := range results {
		assert.JSONEq(t, want, got)
	}
}

// eventFixture builds Event extending Conclusion with class-typed date and place.
func eventFixture() *TypeDefinition {
	attribution := &TypeDefinition{
		Name:       "Attribution",
		Namespace:  conclusionNamespace,
		Attributes: []Attribute{{Name: "contributor", Type: stringLeaf}},
	}
	conclusion := &TypeDefinition{
		Name:       "Conclusion",
		Namespace:  conclusionNamespace,
		Attributes: []Attribute{{Name: "id", Type: Leaf{Name: "ID", Kind: LeafString}}},
		Elements:   []Element{{Name: "attribution", Type: ClassRef{Type: attribution}}},
	}
	date := &TypeDefinition{
		Name:      "Date",
		Namespace: conclusionNamespace,
		Elements: []Element{
			{Name: "original", Type: stringLeaf},
			{Name: "normalized", Type: Leaf{Name: "date", Kind: LeafString, Sample: "2012-01-01"}, Example: &ExampleOverride{Value: "2012-01-01"}},
		},
	}
	place := &TypeDefinition{
		Name:      "Place",
		Namespace: conclusionNamespace,
		Elements:  []Element{{Name: "original", Type: stringLeaf}},
	}

	return &TypeDefinition{
		Name:        "Event",
		Namespace:   conclusionNamespace,
		Polymorphic: true,
		Base:        ClassRef{Type: conclusion},
		Attributes:  []Attribute{{Name: "type", Type: Leaf{Name: "QName", Kind: LeafString}}},
		Elements: []Element{
			{Name: "date", Type: ClassRef{Type: date}},
			{Name: "place", Type: ClassRef{Type: place}},
		},
	}
}

func mustArray(t *testing.T, object *Object, key string) Array {
	t.Helper()

	value, ok := object.Get(key)
	require.True(t, ok, "missing key %q", key)

	array, ok := value.(Array)
	require.True(t, ok, "key %q holds %T, want Array", key, value)
	return array
}

func mustMarshalJSON(t *testing.T, node Node) string {
	t.Helper()

	data, err := marshalJSONValue(node)
	require.NoError(t, err)
	return string(data)
}
