// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const (
	// LeafString renders examples as JSON strings.
	LeafString LeafKind = "string"
	// LeafNumber renders examples as JSON numbers.
	LeafNumber LeafKind = "number"
	// LeafBoolean renders examples as JSON booleans.
	LeafBoolean LeafKind = "boolean"
)

// LeafKind selects JSON shape of leaf examples.
type LeafKind string

// Leaf is a scalar type with one canonical example literal.
type Leaf struct {
	Name string
	Kind LeafKind
	// Sample is the canonical example; empty means ElisionKey.
	Sample string
}

func (Leaf) isBaseType() {}

// builtinLeaves maps XML Schema simple type names to canonical examples.
var builtinLeaves = map[string]Leaf{}

func init() {
	registerLeaves(LeafString, "",
		"string", "normalizedString", "token", "anyURI", "QName", "NCName", "Name",
		"ID", "IDREF", "IDREFS", "NMTOKEN", "language", "base64Binary", "hexBinary", "anySimpleType")
	registerLeaves(LeafNumber, "12345",
		"int", "integer", "long", "short", "byte", "nonNegativeInteger", "positiveInteger",
		"negativeInteger", "nonPositiveInteger", "unsignedInt", "unsignedLong",
		"unsignedShort", "unsignedByte")
	registerLeaves(LeafNumber, "12345.67", "decimal", "float", "double")
	registerLeaves(LeafBoolean, "true", "boolean")
	registerLeaves(LeafString, "2012-01-01", "date")
	registerLeaves(LeafString, "2012-01-01T00:00:00Z", "dateTime")
	registerLeaves(LeafString, "12:00:00", "time")
	registerLeaves(LeafString, "P1D", "duration")
}

// registerLeaves adds built-in leaves sharing kind and sample.
func registerLeaves(kind LeafKind, sample string, names ...string) {
	for _, name := range names {
		builtinLeaves[name] = Leaf{Name: name, Kind: kind, Sample: sample}
	}
}

// LookupLeaf returns built-in leaf type by XML Schema name.
func LookupLeaf(name string) (Leaf, bool) {
	leaf, ok := builtinLeaves[strings.TrimSpace(name)]
	return leaf, ok
}

// BuiltinLeafNames returns sorted names of all built-in leaf types.
func BuiltinLeafNames() []string {
	names := make([]string, 0, len(builtinLeaves))
	for name := range builtinLeaves {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// example renders literal, or canonical sample when literal is empty.
func (leaf Leaf) example(literal string) Node {
	if literal == "" {
		literal = leaf.Sample
	}

	if literal == "" {
		literal = ElisionKey
	}

	switch leaf.Kind {
	case LeafNumber:
		if isJSONNumber(literal) {
			return Number(literal)
		}
	case LeafBoolean:
		if value, err := strconv.ParseBool(literal); err == nil {
			return Bool(value)
		}
	}

	return String(literal)
}

// isJSONNumber reports whether literal is a finite number in JSON syntax.
func isJSONNumber(literal string) bool {
	if _, err := strconv.ParseFloat(literal, 64); err != nil {
		return false
	}

	return json.Valid([]byte(literal))
}
