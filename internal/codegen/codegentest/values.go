// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegentest provides a deterministic value source for generator tests.
package codegentest

import (
	"time"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// Date is the instant every date field resolves to.
var Date = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// Values returns the same value for a field on every call:
// strings echo the field name, integers are 42, booleans are true,
// dates are Date and arrays are ["a", "b"].
type Values struct{}

var _ codegen.ValueSource = Values{}

// Value implements codegen.ValueSource.
func (Values) Value(t codegen.FieldType, fieldName string) codegen.Value {
	switch t {
	case codegen.TypeInteger:
		return codegen.IntValue(42)
	case codegen.TypeBoolean:
		return codegen.BoolValue(true)
	case codegen.TypeDate:
		return codegen.DateValue(Date)
	case codegen.TypeArray:
		return codegen.ListValue([]string{"a", "b"})
	default:
		return codegen.TextValue(fieldName)
	}
}

// UserFields is the id/username/email/isActive field list used across generator tests.
func UserFields() []codegen.Field {
	return []codegen.Field{
		{Name: "id", Type: codegen.TypeInteger},
		{Name: "username", Type: codegen.TypeString},
		{Name: "email", Type: codegen.TypeString},
		{Name: "isActive", Type: codegen.TypeBoolean},
	}
}
