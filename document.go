// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is one value of a generated example document:
// *Object, Array, Scalar or Elision.
type Node interface {
	isNode()
}

// Object is a string-keyed mapping that keeps insertion order.
type Object struct {
	fields *orderedmap.OrderedMap[string, Node]
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: orderedmap.New[string, Node]()}
}

func (*Object) isNode() {}

// Set stores value under key. Existing keys keep their position.
func (object *Object) Set(key string, value Node) {
	if object.fields == nil {
		object.fields = orderedmap.New[string, Node]()
	}

	if value == nil {
		value = Null()
	}

	object.fields.Set(key, value)
}

// Get returns value stored under key.
func (object *Object) Get(key string) (Node, bool) {
	if object == nil || object.fields == nil {
		return nil, false
	}

	return object.fields.Get(key)
}

// Has reports whether key is present.
func (object *Object) Has(key string) bool {
	_, ok := object.Get(key)
	return ok
}

// Len returns number of keys.
func (object *Object) Len() int {
	if object == nil || object.fields == nil {
		return 0
	}

	return object.fields.Len()
}

// Keys returns keys in insertion order.
func (object *Object) Keys() []string {
	keys := make([]string, 0, object.Len())
	for pair := object.oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// oldest returns first inserted pair or nil for empty objects.
func (object *Object) oldest() *orderedmap.Pair[string, Node] {
	if object == nil || object.fields == nil {
		return nil
	}

	return object.fields.Oldest()
}

// MarshalJSON encodes object members in insertion order.
func (object *Object) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')

	first := true
	for pair := object.oldest(); pair != nil; pair = pair.Next() {
		if !first {
			out.WriteByte(',')
		}

		first = false

		key, err := marshalJSONValue(pair.Key)
		if err != nil {
			return nil, err
		}

		value, err := marshalJSONValue(pair.Value)
		if err != nil {
			return nil, err
		}

		out.Write(key)
		out.WriteByte(':')
		out.Write(value)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// Array is an ordered sequence of nodes.
type Array []Node

func (Array) isNode() {}

// MarshalJSON encodes array items; nil arrays encode as [].
func (array Array) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('[')

	for index, item := range array {
		if index > 0 {
			out.WriteByte(',')
		}

		if item == nil {
			item = Null()
		}

		value, err := marshalJSONValue(item)
		if err != nil {
			return nil, err
		}

		out.Write(value)
	}

	out.WriteByte(']')
	return out.Bytes(), nil
}

const (
	scalarString scalarKind = iota
	scalarNumber
	scalarBool
	scalarNull
)

type scalarKind uint8

// Scalar is a string, number, boolean or null literal.
type Scalar struct {
	text string
	kind scalarKind
}

// String returns string scalar.
func String(value string) Scalar {
	return Scalar{kind: scalarString, text: value}
}

// Number returns number scalar from JSON number literal.
func Number(literal string) Scalar {
	return Scalar{kind: scalarNumber, text: literal}
}

// Bool returns boolean scalar.
func Bool(value bool) Scalar {
	return Scalar{kind: scalarBool, text: strconv.FormatBool(value)}
}

// Null returns null scalar.
func Null() Scalar {
	return Scalar{kind: scalarNull, text: "null"}
}

func (Scalar) isNode() {}

// Text returns literal text of scalar.
func (scalar Scalar) Text() string {
	return scalar.text
}

// MarshalJSON encodes scalar literal.
func (scalar Scalar) MarshalJSON() ([]byte, error) {
	if scalar.kind == scalarString {
		return marshalJSONValue(scalar.text)
	}

	return []byte(scalar.text), nil
}

// Elision marks content left out of an example. It encodes as "...".
type Elision struct{}

func (Elision) isNode() {}

// MarshalJSON encodes elision marker.
func (Elision) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ElisionKey + `"`), nil
}

// marshalJSONValue encodes one value without HTML escaping or trailing newline.
func marshalJSONValue(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimRight(out.Bytes(), "\n"), nil
}
