// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

package exampledoc

import "errors"

var (
	// ErrInvalidReference is returned when example reference is missing or does not resolve to a type.
	ErrInvalidReference = errors.New("example reference must be a type definition or root element")
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema model decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrUnknownType is returned when a type reference names no declared or built-in type.
	ErrUnknownType = errors.New("unknown type")
	// ErrAmbiguousType is returned when a plain type name matches types in several namespaces.
	ErrAmbiguousType = errors.New("ambiguous type name")
	// ErrDuplicateType is returned when schema declares the same qualified name twice.
	ErrDuplicateType = errors.New("duplicate type")
	// ErrInvalidSchema is returned when schema model breaks its structural invariants.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
)
