// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package ecma holds the literal syntax and instance rendering shared by the
// JavaScript and TypeScript generators, whose value literals are identical.
package ecma

import (
	"fmt"
	"strings"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// Types builds a type table from per-type spellings using the shared literal rules.
func Types(names map[codegen.FieldType]string) codegen.TypeTable {
	literals := map[codegen.FieldType]codegen.LiteralFunc{
		codegen.TypeString:  codegen.StringLiteral,
		codegen.TypeInteger: codegen.IntLiteral,
		codegen.TypeBoolean: codegen.BoolLiteral,
		codegen.TypeDate:    DateLiteral,
		codegen.TypeArray:   ListLiteral,
	}

	table := make(codegen.TypeTable, len(names))
	for t, name := range names {
		table[t] = codegen.TypeSpec{Name: name, Literal: literals[t], Placeholder: "null"}
	}
	return table
}

// DateLiteral constructs a Date from the ISO-8601 text.
func DateLiteral(v codegen.Value) string {
	return "new Date(" + codegen.Quote(v.Text) + ")"
}

// ListLiteral renders an array literal of strings.
func ListLiteral(v codegen.Value) string {
	return "[" + codegen.QuoteAll(v.Items()) + "]"
}

// ObjectInstance renders each record as an object literal keyed by field name.
func ObjectInstance(fields []codegen.Field) func([]string) string {
	return func(literals []string) string {
		props := make([]string, len(literals))
		for i, f := range fields {
			props[i] = fmt.Sprintf("    %s: %s", f.Name, literals[i])
		}
		return codegen.Collection("", "  {", props, "  }")
	}
}

// NewInstance renders each record as a positional constructor call.
func NewInstance(className string) func([]string) string {
	return func(literals []string) string {
		return fmt.Sprintf("  new %s(%s)", className, strings.Join(literals, ", "))
	}
}

// Collection renders the sample array. When typed is set the binding is annotated
// with the declaration type.
func Collection(g *codegen.Generation, typed bool, records []string) string {
	binding := g.CollectionName("List")
	if typed {
		binding += ": " + g.Name + "[]"
	}
	return codegen.Collection(
		codegen.GeneratedComment("//", g.Count),
		"const "+binding+" = [",
		records,
		"];",
	)
}

// Records synthesizes the sample records of g and wraps them in a collection.
func Records(g *codegen.Generation, typed bool, instance func([]string) string) (string, error) {
	records, err := g.Records(instance)
	if err != nil {
		return "", err
	}
	return Collection(g, typed, records), nil
}
