// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"errors"
	"fmt"
)

// ErrMissingType indicates a language has no mapping for a field type.
var ErrMissingType = errors.New("missing type mapping")

// LiteralFunc renders a value as a literal in the target language.
type LiteralFunc func(v Value) string

// TypeSpec is the per-language spelling of one field type.
type TypeSpec struct {
	// Name is the type spelling used in declarations (e.g. "List<String>").
	Name string
	// Literal formats a synthesized value of this type.
	Literal LiteralFunc
	// Placeholder is a fixed literal used where no value is synthesized. Optional.
	Placeholder string
}

// TypeTable maps every FieldType to its spelling in one language.
type TypeTable map[FieldType]TypeSpec

// Spec returns the mapping for t, or ErrMissingType.
func (tt TypeTable) Spec(t FieldType) (TypeSpec, error) {
	spec, ok := tt[t]
	if !ok || spec.Literal == nil {
		return TypeSpec{}, fmt.Errorf("%w: %s", ErrMissingType, t)
	}
	return spec, nil
}

// Validate checks that every FieldType has a complete entry.
func (tt TypeTable) Validate() error {
	var missing []FieldType
	for _, t := range fieldTypes {
		spec, ok := tt[t]
		if !ok || spec.Name == "" || spec.Literal == nil {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingType, joinTypes(missing))
	}
	return nil
}
