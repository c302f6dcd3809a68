// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package fieldset reads ordered field lists from flags, YAML files and JSON Schema documents.
package fieldset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// ErrInvalidField indicates a malformed field definition.
var ErrInvalidField = errors.New("invalid field")

// File is the YAML layout of a field file.
//
//	name: User
//	fields:
//	  - name: id
//	    type: integer
type File struct {
	Name   string          `yaml:"name,omitempty"`
	Fields []codegen.Field `yaml:"fields"`
}

// Parse reads a "name:type" definition. The type is case-insensitive.
func Parse(def string) (codegen.Field, error) {
	name, typ, ok := strings.Cut(strings.TrimSpace(def), ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return codegen.Field{}, fmt.Errorf("%w %q: expected name:type", ErrInvalidField, def)
	}
	t, err := codegen.ParseFieldType(typ)
	if err != nil {
		return codegen.Field{}, fmt.Errorf("%w %q: %v", ErrInvalidField, def, err)
	}
	return codegen.Field{Name: name, Type: t}, nil
}

// ParseAll reads definitions in order. Each entry may hold several comma-separated definitions.
func ParseAll(defs []string) ([]codegen.Field, error) {
	var fields []codegen.Field
	for _, entry := range defs {
		for _, def := range strings.Split(entry, ",") {
			if strings.TrimSpace(def) == "" {
				continue
			}
			f, err := Parse(def)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
	}
	return fields, nil
}

// LoadYAML decodes a field file and validates its fields.
func LoadYAML(r io.Reader) (*File, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode field file: %w", err)
	}
	if err := Validate(file.Fields); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks that every field has a name and a known type.
// Type names are rewritten in place to their canonical lower-case form.
func Validate(fields []codegen.Field) error {
	for i, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%w at position %d: name is required", ErrInvalidField, i+1)
		}
		t, err := codegen.ParseFieldType(string(f.Type))
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrInvalidField, f.Name, err)
		}
		fields[i].Type = t
	}
	return nil
}

// Format renders fields as comma-separated "name:type" definitions.
func Format(fields []codegen.Field) string {
	defs := make([]string, len(fields))
	for i, f := range fields {
		defs[i] = f.String()
	}
	return strings.Join(defs, ", ")
}
