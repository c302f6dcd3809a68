// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"fmt"
	"strings"
	"time"
)

// FieldType is the abstract shape of a field.
type FieldType string

// Supported field types.
const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
	TypeDate    FieldType = "date"
	TypeArray   FieldType = "array"
)

var fieldTypes = []FieldType{TypeString, TypeInteger, TypeBoolean, TypeDate, TypeArray}

// FieldTypes returns every field type in canonical order.
func FieldTypes() []FieldType {
	out := make([]FieldType, len(fieldTypes))
	copy(out, fieldTypes)
	return out
}

// ParseFieldType converts a type name (case-insensitive) to a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(strings.ToLower(strings.TrimSpace(s)))
	for _, ft := range fieldTypes {
		if ft == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown field type %q (expected one of %s)", s, joinTypes(fieldTypes))
}

func joinTypes(types []FieldType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Field is a single named, typed member of a declaration.
type Field struct {
	Name string    `yaml:"name" json:"name"`
	Type FieldType `yaml:"type" json:"type"`
}

func (f Field) String() string {
	return f.Name + ":" + string(f.Type)
}

// Language identifies a target output language.
type Language string

// Supported languages.
const (
	Java       Language = "java"
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
)

// Format identifies a declaration style within a language.
type Format string

// Value is one synthesized sample value. Only the member matching Type is meaningful.
// Dates are carried as ISO-8601 text in Text.
type Value struct {
	Type FieldType
	Text string
	Int  int
	Bool bool
	List []string
}

// TextValue wraps a string value.
func TextValue(s string) Value { return Value{Type: TypeString, Text: s} }

// IntValue wraps an integer value.
func IntValue(n int) Value { return Value{Type: TypeInteger, Int: n} }

// BoolValue wraps a boolean value.
func BoolValue(b bool) Value { return Value{Type: TypeBoolean, Bool: b} }

// DateValue encodes t as RFC 3339 text in UTC with second precision.
func DateValue(t time.Time) Value {
	return Value{Type: TypeDate, Text: t.UTC().Truncate(time.Second).Format(time.RFC3339)}
}

// ListValue wraps an ordered list of strings.
func ListValue(items []string) Value { return Value{Type: TypeArray, List: items} }

// Items returns the list elements, treating a scalar text value as a single-element list.
func (v Value) Items() []string {
	if v.List == nil && v.Text != "" {
		return []string{v.Text}
	}
	return v.List
}

// ValueSource produces sample values for fields.
type ValueSource interface {
	Value(t FieldType, fieldName string) Value
}
